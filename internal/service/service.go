package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/actuallystonmai/recipe-service/internal/domain"
	"github.com/actuallystonmai/recipe-service/internal/logging"
	"github.com/actuallystonmai/recipe-service/internal/metrics"
	"github.com/actuallystonmai/recipe-service/internal/model"
	"github.com/actuallystonmai/recipe-service/internal/session"
)

const (
	featuredCount    = 3
	recommendedCount = 3
	popularCount     = 4
)

type RecipeRepository interface {
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipeByID(ctx context.Context, id int64) (*domain.Recipe, error)
	ListIngredients(ctx context.Context) ([]domain.Ingredient, error)
	FavoriteIDs(ctx context.Context, userID int64) ([]int64, error)
	AddFavorite(ctx context.Context, userID, recipeID int64) error
	RemoveFavorite(ctx context.Context, userID, recipeID int64) error
	AddRating(ctx context.Context, rating *domain.Rating) error
	AddWebsiteRating(ctx context.Context, rating *domain.WebsiteRating) error
}

// SuggestionStore holds the last suggestion ranking of each session.
type SuggestionStore interface {
	Get(ctx context.Context, sessionID string) ([]int64, error)
	Set(ctx context.Context, sessionID string, ids []int64) error
}

type Service struct {
	repo        RecipeRepository
	suggestions SuggestionStore
	modelClient *model.Client

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewService takes ownership of rng. A nil rng is seeded from the clock.
func NewService(repo RecipeRepository, suggestions SuggestionStore, modelClient *model.Client, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		repo:        repo,
		suggestions: suggestions,
		modelClient: modelClient,
		rng:         rng,
	}
}

type favoriteSet map[int64]struct{}

func (f favoriteSet) annotate(recipes []domain.Recipe) {
	for i := range recipes {
		_, recipes[i].IsFavorite = f[recipes[i].ID]
	}
}

func (f favoriteSet) has(id int64) bool {
	_, ok := f[id]
	return ok
}

// loadCatalog fetches the recipes and the caller's favorites concurrently.
func (s *Service) loadCatalog(ctx context.Context) ([]domain.Recipe, favoriteSet, error) {
	var (
		wg                sync.WaitGroup
		recipes           []domain.Recipe
		favIDs            []int64
		recipeErr, favErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		recipes, recipeErr = s.repo.ListRecipes(ctx)
	}()
	go func() {
		defer wg.Done()
		favIDs, favErr = s.repo.FavoriteIDs(ctx, session.UserID(ctx))
	}()
	wg.Wait()

	if recipeErr != nil {
		return nil, nil, fmt.Errorf("fetch recipes: %w", recipeErr)
	}
	if favErr != nil {
		return nil, nil, fmt.Errorf("fetch favorites: %w", favErr)
	}
	return recipes, toSet(favIDs), nil
}

func (s *Service) favorites(ctx context.Context) (favoriteSet, error) {
	ids, err := s.repo.FavoriteIDs(ctx, session.UserID(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch favorites: %w", err)
	}
	return toSet(ids), nil
}

func toSet(ids []int64) favoriteSet {
	set := make(favoriteSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s *Service) sample(recipes []domain.Recipe, n int) []domain.Recipe {
	s.mu.Lock()
	perm := s.rng.Perm(len(recipes))
	s.mu.Unlock()

	n = min(n, len(perm))
	out := make([]domain.Recipe, n)
	for i := range n {
		out[i] = recipes[perm[i]]
	}
	return out
}

func (s *Service) ListRecipes(ctx context.Context, opts domain.ListOptions) (*domain.ListResult, error) {
	recipes, favs, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	result := model.List(recipes, opts)
	favs.annotate(result.Recipes)
	return &result, nil
}

func (s *Service) GetFeatured(ctx context.Context) ([]domain.Recipe, error) {
	return s.random(ctx, featuredCount)
}

func (s *Service) GetRecommended(ctx context.Context) ([]domain.Recipe, error) {
	return s.random(ctx, recommendedCount)
}

func (s *Service) random(ctx context.Context, n int) ([]domain.Recipe, error) {
	recipes, favs, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	out := s.sample(recipes, n)
	favs.annotate(out)
	return out, nil
}

// GetPopular ranks by rating, then review count.
func (s *Service) GetPopular(ctx context.Context) ([]domain.Recipe, error) {
	recipes, favs, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	model.PopularityOrder(recipes)
	if len(recipes) > popularCount {
		recipes = recipes[:popularCount]
	}
	favs.annotate(recipes)
	return recipes, nil
}

// GetFavorites lists the caller's favorites newest first, optionally
// narrowed by a query on name, description or ingredients.
func (s *Service) GetFavorites(ctx context.Context, query string) ([]domain.Recipe, error) {
	recipes, favs, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	out := []domain.Recipe{}
	for i := range recipes {
		r := &recipes[i]
		if !favs.has(r.ID) {
			continue
		}
		if query != "" && !model.MatchesNameDescriptionOrIngredients(r, query) {
			continue
		}
		r.IsFavorite = true
		out = append(out, *r)
	}
	model.Sort(out, domain.SortNewest)
	return out, nil
}

// SuggestByIngredients ranks the catalog against the provided ingredients
// and replaces the caller session's suggestion set with the result.
func (s *Service) SuggestByIngredients(ctx context.Context, ingredients []string) ([]domain.ScoredRecipe, error) {
	recipes, favs, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	scored := s.modelClient.Suggest(recipes, ingredients)
	metrics.RecordSuggestionMatches(len(scored))

	ids := make([]int64, len(scored))
	for i := range scored {
		ids[i] = scored[i].ID
		_, scored[i].IsFavorite = favs[scored[i].ID]
	}

	if err := s.suggestions.Set(ctx, session.SessionID(ctx), ids); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("component", "service").Msg("suggestion store set failed")
	}
	return scored, nil
}

// GetSuggested returns the session's stored suggestions in rank order,
// filtered by name/description query and category without re-scoring.
func (s *Service) GetSuggested(ctx context.Context, query, category string) ([]domain.Recipe, error) {
	ids, err := s.suggestions.Get(ctx, session.SessionID(ctx))
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("component", "service").Msg("suggestion store get failed")
		ids = nil
	}
	if len(ids) == 0 {
		return []domain.Recipe{}, nil
	}

	recipes, favs, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*domain.Recipe, len(recipes))
	for i := range recipes {
		byID[recipes[i].ID] = &recipes[i]
	}

	out := []domain.Recipe{}
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			continue
		}
		if query != "" && !model.MatchesNameOrDescription(r, query) {
			continue
		}
		if !model.MatchesCategory(r, category) {
			continue
		}
		out = append(out, *r)
	}
	favs.annotate(out)
	return out, nil
}

func (s *Service) GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	recipe, err := s.repo.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	favs, err := s.favorites(ctx)
	if err != nil {
		return nil, err
	}
	recipe.IsFavorite = favs.has(recipe.ID)
	return recipe, nil
}

// GetSimilar ranks every other recipe against the one with the given id.
// An unknown id yields an empty list.
func (s *Service) GetSimilar(ctx context.Context, id int64) ([]domain.Recipe, error) {
	source, err := s.repo.GetRecipeByID(ctx, id)
	if errors.Is(err, domain.ErrRecipeNotFound) {
		return []domain.Recipe{}, nil
	}
	if err != nil {
		return nil, err
	}
	recipes, favs, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	out := s.modelClient.Similar(*source, recipes)
	favs.annotate(out)
	return out, nil
}

// ToggleFavorite sets the favorite state and returns the recipe carrying it.
// Setting the current state again is a no-op.
func (s *Service) ToggleFavorite(ctx context.Context, id int64, isFavorite bool) (*domain.Recipe, error) {
	recipe, err := s.repo.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	userID := session.UserID(ctx)
	if isFavorite {
		err = s.repo.AddFavorite(ctx, userID, id)
	} else {
		err = s.repo.RemoveFavorite(ctx, userID, id)
	}
	if err != nil {
		return nil, err
	}

	recipe.IsFavorite = isFavorite
	return recipe, nil
}

func (s *Service) RateRecipe(ctx context.Context, id int64, rating int, comment *string) (*domain.Rating, error) {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, domain.ErrInvalidRating
	}

	r := &domain.Rating{
		UserID:   session.UserID(ctx),
		RecipeID: id,
		Rating:   rating,
		Comment:  comment,
	}
	if err := s.repo.AddRating(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) RateWebsite(ctx context.Context, rating int, feedback *string) (*domain.WebsiteRating, error) {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, domain.ErrInvalidRating
	}

	r := &domain.WebsiteRating{
		UserID:   session.UserID(ctx),
		Rating:   rating,
		Feedback: feedback,
	}
	if err := s.repo.AddWebsiteRating(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	items, err := s.repo.ListIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch ingredients: %w", err)
	}
	return items, nil
}
