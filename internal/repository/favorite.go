package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/actuallystonmai/recipe-service/internal/domain"
)

const foreignKeyViolation = "23503"

// FavoriteIDs returns the recipe ids the user has favorited.
func (r *Repository) FavoriteIDs(ctx context.Context, userID int64) (ids []int64, err error) {
	defer observe("favorite_ids", time.Now(), &err)

	rows, err := r.pool.Query(ctx,
		`SELECT recipe_id FROM favorites WHERE user_id = $1 ORDER BY recipe_id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query favorites for user %d: %w", userID, err)
	}
	defer rows.Close()

	ids = []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return ids, nil
}

// AddFavorite is idempotent. A missing recipe is ErrRecipeNotFound.
func (r *Repository) AddFavorite(ctx context.Context, userID, recipeID int64) (err error) {
	defer observe("add_favorite", time.Now(), &err)

	_, err = r.pool.Exec(ctx,
		`INSERT INTO favorites (user_id, recipe_id) VALUES ($1, $2)
		ON CONFLICT (user_id, recipe_id) DO NOTHING`,
		userID, recipeID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return domain.ErrRecipeNotFound
		}
		return fmt.Errorf("add favorite user=%d recipe=%d: %w", userID, recipeID, err)
	}
	return nil
}

// RemoveFavorite is idempotent.
func (r *Repository) RemoveFavorite(ctx context.Context, userID, recipeID int64) (err error) {
	defer observe("remove_favorite", time.Now(), &err)

	_, err = r.pool.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2`,
		userID, recipeID,
	)
	if err != nil {
		return fmt.Errorf("remove favorite user=%d recipe=%d: %w", userID, recipeID, err)
	}
	return nil
}
