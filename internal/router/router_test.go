package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallystonmai/recipe-service/internal/domain"
	"github.com/actuallystonmai/recipe-service/internal/handler"
	"github.com/actuallystonmai/recipe-service/internal/session"
)

// echoService returns the caller's user id as the recipe id so tests can
// see what the session middleware put on the context.
type echoService struct{}

func (echoService) ListRecipes(ctx context.Context, opts domain.ListOptions) (*domain.ListResult, error) {
	return &domain.ListResult{Recipes: []domain.Recipe{}, TotalPages: 0}, nil
}
func (echoService) GetFeatured(ctx context.Context) ([]domain.Recipe, error) {
	return []domain.Recipe{}, nil
}
func (echoService) GetPopular(ctx context.Context) ([]domain.Recipe, error) {
	return []domain.Recipe{}, nil
}
func (echoService) GetFavorites(ctx context.Context, query string) ([]domain.Recipe, error) {
	return []domain.Recipe{{ID: session.UserID(ctx)}}, nil
}
func (echoService) GetRecommended(ctx context.Context) ([]domain.Recipe, error) {
	return []domain.Recipe{}, nil
}
func (echoService) SuggestByIngredients(ctx context.Context, ingredients []string) ([]domain.ScoredRecipe, error) {
	return []domain.ScoredRecipe{}, nil
}
func (echoService) GetSuggested(ctx context.Context, query, category string) ([]domain.Recipe, error) {
	return []domain.Recipe{{Name: session.SessionID(ctx)}}, nil
}
func (echoService) GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	if id == 99 {
		return nil, domain.ErrRecipeNotFound
	}
	return &domain.Recipe{ID: id}, nil
}
func (echoService) GetSimilar(ctx context.Context, id int64) ([]domain.Recipe, error) {
	return []domain.Recipe{}, nil
}
func (echoService) ToggleFavorite(ctx context.Context, id int64, isFavorite bool) (*domain.Recipe, error) {
	return &domain.Recipe{ID: id, IsFavorite: isFavorite}, nil
}
func (echoService) RateRecipe(ctx context.Context, id int64, rating int, comment *string) (*domain.Rating, error) {
	return &domain.Rating{}, nil
}
func (echoService) RateWebsite(ctx context.Context, rating int, feedback *string) (*domain.WebsiteRating, error) {
	return &domain.WebsiteRating{}, nil
}
func (echoService) GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	return []domain.Ingredient{}, nil
}

func newRouter(opts Options) http.Handler {
	return Setup(handler.NewHandler(echoService{}, nil), opts)
}

func TestRoutes(t *testing.T) {
	r := newRouter(Options{CORSOrigins: []string{"*"}})

	tests := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/api/recipes", "", http.StatusOK},
		{http.MethodGet, "/api/recipes/featured", "", http.StatusOK},
		{http.MethodGet, "/api/recipes/popular", "", http.StatusOK},
		{http.MethodGet, "/api/recipes/favorites", "", http.StatusOK},
		{http.MethodGet, "/api/recipes/recommended", "", http.StatusOK},
		{http.MethodPost, "/api/recipes/suggest", `{"ingredients":["rice"]}`, http.StatusOK},
		{http.MethodGet, "/api/recipes/suggested", "", http.StatusOK},
		{http.MethodGet, "/api/recipes/5", "", http.StatusOK},
		{http.MethodGet, "/api/recipes/99", "", http.StatusNotFound},
		{http.MethodGet, "/api/recipes/5/similar", "", http.StatusOK},
		{http.MethodPost, "/api/recipes/5/favorite", `{"isFavorite":true}`, http.StatusOK},
		{http.MethodPost, "/api/recipes/5/rate", `{"rating":4}`, http.StatusOK},
		{http.MethodPost, "/api/website/rate", `{"rating":4}`, http.StatusOK},
		{http.MethodGet, "/api/ingredients", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
		{http.MethodDelete, "/api/recipes/5", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestSessionAndUserOnAPI(t *testing.T) {
	r := newRouter(Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/favorites", nil)
	req.Header.Set(session.UserIDHeader, "12")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":12`)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)

	// The same cookie keeps the same session.
	req = httptest.NewRequest(http.MethodGet, "/api/recipes/suggested", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), cookies[0].Value)
}

func TestHealthHasNoSession(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(Options{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestRequestIDHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	newRouter(Options{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(Options{})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/recipes", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "recipe_api_requests_total")
	assert.Contains(t, rec.Body.String(), `method="GET"`)
}

func TestCORS(t *testing.T) {
	r := newRouter(Options{CORSOrigins: []string{"http://app.test"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/recipes", nil)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "http://app.test", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	r := newRouter(Options{RateLimitRequests: 2, RateLimitWindow: time.Minute})

	codes := make([]int, 3)
	for i := range codes {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recipes", nil))
		codes[i] = rec.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// probes are not limited
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
