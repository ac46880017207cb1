package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/actuallystonmai/recipe-service/internal/domain"
)

func (r *Repository) ListIngredients(ctx context.Context) (items []domain.Ingredient, err error) {
	defer observe("list_ingredients", time.Now(), &err)

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, category, icon FROM ingredients ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query ingredients: %w", err)
	}
	defer rows.Close()

	items = []domain.Ingredient{}
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Category, &ing.Icon); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		items = append(items, ing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}
	return items, nil
}

// CreateIngredient inserts ing and sets its ID. Names are unique.
func (r *Repository) CreateIngredient(ctx context.Context, ing *domain.Ingredient) (err error) {
	defer observe("create_ingredient", time.Now(), &err)

	err = r.pool.QueryRow(ctx,
		`INSERT INTO ingredients (name, category, icon) VALUES ($1, $2, $3) RETURNING id`,
		ing.Name, ing.Category, ing.Icon,
	).Scan(&ing.ID)
	if err != nil {
		return fmt.Errorf("insert ingredient %q: %w", ing.Name, err)
	}
	return nil
}
