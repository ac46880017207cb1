// Package migrations applies the embedded schema. Files run in name order on
// Up and in reverse name order on Down.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed *.sql
var files embed.FS

func Up(ctx context.Context, pool *pgxpool.Pool) error {
	return run(ctx, pool, ".up.sql", false)
}

func Down(ctx context.Context, pool *pgxpool.Pool) error {
	return run(ctx, pool, ".down.sql", true)
}

func names(suffix string, reverse bool) ([]string, error) {
	all, err := fs.Glob(files, "*"+suffix)
	if err != nil {
		return nil, err
	}
	slices.Sort(all)
	if reverse {
		slices.Reverse(all)
	}
	return all, nil
}

func run(ctx context.Context, pool *pgxpool.Pool, suffix string, reverse bool) error {
	list, err := names(suffix, reverse)
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	for _, name := range list {
		sql, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("execute migration %s: %w", strings.TrimSuffix(name, suffix), err)
		}
	}
	return nil
}
