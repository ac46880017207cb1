package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/actuallystonmai/recipe-service/internal/domain"
)

const recipeColumns = `id, name, description, image_url, cooking_time, difficulty, servings,
	calories, rating, review_count, category, ingredients, instructions, tags,
	average_price, icon`

func scanRecipe(row pgx.Row, rec *domain.Recipe) error {
	return row.Scan(
		&rec.ID, &rec.Name, &rec.Description, &rec.ImageURL, &rec.CookingTime,
		&rec.Difficulty, &rec.Servings, &rec.Calories, &rec.Rating, &rec.ReviewCount,
		&rec.Category, &rec.Ingredients, &rec.Instructions, &rec.Tags,
		&rec.AveragePrice, &rec.Icon,
	)
}

// ListRecipes returns the whole catalog in store order (id ascending).
func (r *Repository) ListRecipes(ctx context.Context) (items []domain.Recipe, err error) {
	defer observe("list_recipes", time.Now(), &err)

	rows, err := r.pool.Query(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	items = []domain.Recipe{}
	for rows.Next() {
		var rec domain.Recipe
		if err := scanRecipe(rows, &rec); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		items = append(items, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return items, nil
}

func (r *Repository) GetRecipeByID(ctx context.Context, id int64) (rec *domain.Recipe, err error) {
	defer observe("get_recipe", time.Now(), &err)

	rec = &domain.Recipe{}
	err = scanRecipe(r.pool.QueryRow(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, id,
	), rec)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("query recipe id=%d: %w", id, err)
	}
	return rec, nil
}

// CreateRecipe inserts rec and sets its ID. Rating and review count are
// stored as given so seeded baselines survive.
func (r *Repository) CreateRecipe(ctx context.Context, rec *domain.Recipe) (err error) {
	defer observe("create_recipe", time.Now(), &err)

	if rec.Servings == 0 {
		rec.Servings = domain.DefaultServings
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	if rec.Instructions == nil {
		rec.Instructions = []string{}
	}

	err = r.pool.QueryRow(ctx,
		`INSERT INTO recipes (name, description, image_url, cooking_time, difficulty, servings,
			calories, rating, review_count, category, ingredients, instructions, tags,
			average_price, icon)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		rec.Name, rec.Description, rec.ImageURL, rec.CookingTime, rec.Difficulty, rec.Servings,
		rec.Calories, rec.Rating, rec.ReviewCount, rec.Category, rec.Ingredients, rec.Instructions,
		rec.Tags, rec.AveragePrice, rec.Icon,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert recipe %q: %w", rec.Name, err)
	}
	return nil
}

func (r *Repository) CountRecipes(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM recipes`,
	).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return total, nil
}
