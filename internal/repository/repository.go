package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/actuallystonmai/recipe-service/internal/domain"
	"github.com/actuallystonmai/recipe-service/internal/metrics"
)

// Repository is the PostgreSQL recipe store.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// observe records the query duration; use as
// defer observe("op", time.Now(), &err). Not-found is not a failure.
func observe(op string, start time.Time, err *error) {
	e := *err
	if errors.Is(e, domain.ErrRecipeNotFound) {
		e = nil
	}
	metrics.RecordDBQuery(op, time.Since(start), e)
}
