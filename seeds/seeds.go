package seeds

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/actuallystonmai/recipe-service/internal/domain"
	"github.com/actuallystonmai/recipe-service/internal/logging"
	"github.com/actuallystonmai/recipe-service/internal/repository"
)

// Store is the part of the recipe repository seeding writes through.
type Store interface {
	CreateIngredient(ctx context.Context, ing *domain.Ingredient) error
	CreateRecipe(ctx context.Context, rec *domain.Recipe) error
}

// Setup wipes the catalog tables and loads the fixed ingredient and recipe
// catalog through the repository.
func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	log := logging.WithComponent("seed")

	log.Info().Msg("truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE website_ratings, ratings, favorites, ingredients, recipes RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	if err := Load(ctx, repository.New(pool)); err != nil {
		return err
	}

	log.Info().Msg("seeding complete")
	return nil
}

// Load inserts the catalog into store. Baseline ratings come from a fixed
// seed so every run produces the same data.
func Load(ctx context.Context, store Store) error {
	log := logging.WithComponent("seed")
	rng := rand.New(rand.NewSource(42))

	log.Info().Int("count", len(ingredientData)).Msg("inserting ingredients")
	for _, ing := range ingredientData {
		if err := store.CreateIngredient(ctx, ing.toDomain()); err != nil {
			return fmt.Errorf("seed ingredients: %w", err)
		}
	}

	log.Info().Int("count", len(recipeData)).Msg("inserting recipes")
	for _, r := range recipeData {
		if err := store.CreateRecipe(ctx, r.toDomain(rng)); err != nil {
			return fmt.Errorf("seed recipes: %w", err)
		}
	}
	return nil
}

func (s ingredientSeed) toDomain() *domain.Ingredient {
	icon := s.icon
	return &domain.Ingredient{Name: s.name, Category: s.category, Icon: &icon}
}

func (s recipeSeed) toDomain(rng *rand.Rand) *domain.Recipe {
	rating, reviews := baselineRating(rng)
	calories, price, icon := s.calories, s.averagePrice, s.icon
	return &domain.Recipe{
		Name:         s.name,
		Description:  s.description,
		ImageURL:     imageURL(s.name),
		CookingTime:  s.cookingTime,
		Difficulty:   s.difficulty,
		Servings:     s.servings,
		Calories:     &calories,
		Rating:       rating,
		ReviewCount:  reviews,
		Category:     s.category,
		Ingredients:  s.ingredients,
		Instructions: s.instructions,
		Tags:         s.tags,
		AveragePrice: &price,
		Icon:         &icon,
	}
}

// baselineRating returns a rating in [3.5, 5.0] rounded to one decimal and
// a review count in [5, 200).
func baselineRating(rng *rand.Rand) (float64, int) {
	rating := math.Round((3.5+rng.Float64()*1.5)*10) / 10
	return rating, 5 + rng.Intn(195)
}

func imageURL(name string) string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return "https://images.example.com/recipes/" + slug + ".jpg"
}
