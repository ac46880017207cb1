package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/actuallystonmai/recipe-service/internal/domain"
)

// AddRating stores the rating and folds it into the recipe's running
// average in one transaction. A missing recipe is ErrRecipeNotFound.
func (r *Repository) AddRating(ctx context.Context, rating *domain.Rating) (err error) {
	defer observe("add_rating", time.Now(), &err)

	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE recipes
			SET rating = (rating * review_count + $2::double precision) / (review_count + 1),
			    review_count = review_count + 1
			WHERE id = $1`,
			rating.RecipeID, float64(rating.Rating),
		)
		if err != nil {
			return fmt.Errorf("update recipe rating id=%d: %w", rating.RecipeID, err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrRecipeNotFound
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO ratings (user_id, recipe_id, rating, comment)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`,
			rating.UserID, rating.RecipeID, rating.Rating, rating.Comment,
		).Scan(&rating.ID, &rating.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert rating: %w", err)
		}
		return nil
	})
	return err
}

func (r *Repository) AddWebsiteRating(ctx context.Context, rating *domain.WebsiteRating) (err error) {
	defer observe("add_website_rating", time.Now(), &err)

	err = r.pool.QueryRow(ctx,
		`INSERT INTO website_ratings (user_id, rating, feedback)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		rating.UserID, rating.Rating, rating.Feedback,
	).Scan(&rating.ID, &rating.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert website rating: %w", err)
	}
	return nil
}
