package service

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/actuallystonmai/recipe-service/internal/domain"
)

type fakeRepo struct {
	mu          sync.Mutex
	recipes     []domain.Recipe
	ingredients []domain.Ingredient
	favorites   map[int64][]int64
	ratings     []domain.Rating
	website     []domain.WebsiteRating
	err         error
}

func newFakeRepo(recipes ...domain.Recipe) *fakeRepo {
	return &fakeRepo{recipes: recipes, favorites: map[int64][]int64{}}
}

func (f *fakeRepo) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.recipes), nil
}

func (f *fakeRepo) GetRecipeByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.recipes {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

func (f *fakeRepo) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ingredients, nil
}

func (f *fakeRepo) FavoriteIDs(ctx context.Context, userID int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.favorites[userID]), nil
}

func (f *fakeRepo) AddFavorite(ctx context.Context, userID, recipeID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !slices.Contains(f.favorites[userID], recipeID) {
		f.favorites[userID] = append(f.favorites[userID], recipeID)
	}
	return nil
}

func (f *fakeRepo) RemoveFavorite(ctx context.Context, userID, recipeID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.favorites[userID] = slices.DeleteFunc(f.favorites[userID], func(id int64) bool { return id == recipeID })
	return nil
}

func (f *fakeRepo) AddRating(ctx context.Context, rating *domain.Rating) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recipes {
		r := &f.recipes[i]
		if r.ID == rating.RecipeID {
			r.Rating = (r.Rating*float64(r.ReviewCount) + float64(rating.Rating)) / float64(r.ReviewCount+1)
			r.ReviewCount++
			rating.ID = int64(len(f.ratings) + 1)
			f.ratings = append(f.ratings, *rating)
			return nil
		}
	}
	return domain.ErrRecipeNotFound
}

func (f *fakeRepo) AddWebsiteRating(ctx context.Context, rating *domain.WebsiteRating) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rating.ID = int64(len(f.website) + 1)
	f.website = append(f.website, *rating)
	return nil
}

type fakeStore struct {
	mu   sync.Mutex
	sets map[string][]int64
	err  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{sets: map[string][]int64{}}
}

func (f *fakeStore) Get(ctx context.Context, sessionID string) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.sets[sessionID]), nil
}

func (f *fakeStore) Set(ctx context.Context, sessionID string, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sets[sessionID] = slices.Clone(ids)
	return nil
}

var errBoom = errors.New("boom")
