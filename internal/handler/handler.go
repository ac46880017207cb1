package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/actuallystonmai/recipe-service/internal/domain"
	"github.com/actuallystonmai/recipe-service/internal/logging"
)

const maxBodyBytes = 1 << 20

// Service is what the handlers need from the service layer.
type Service interface {
	ListRecipes(ctx context.Context, opts domain.ListOptions) (*domain.ListResult, error)
	GetFeatured(ctx context.Context) ([]domain.Recipe, error)
	GetPopular(ctx context.Context) ([]domain.Recipe, error)
	GetFavorites(ctx context.Context, query string) ([]domain.Recipe, error)
	GetRecommended(ctx context.Context) ([]domain.Recipe, error)
	SuggestByIngredients(ctx context.Context, ingredients []string) ([]domain.ScoredRecipe, error)
	GetSuggested(ctx context.Context, query, category string) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error)
	GetSimilar(ctx context.Context, id int64) ([]domain.Recipe, error)
	ToggleFavorite(ctx context.Context, id int64, isFavorite bool) (*domain.Recipe, error)
	RateRecipe(ctx context.Context, id int64, rating int, comment *string) (*domain.Rating, error)
	RateWebsite(ctx context.Context, rating int, feedback *string) (*domain.WebsiteRating, error)
	GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error)
}

// Pinger is a dependency checked by the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	service Service
	checks  map[string]Pinger
}

func NewHandler(svc Service, checks map[string]Pinger) *Handler {
	return &Handler{service: svc, checks: checks}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// writeServiceError maps service errors onto status codes. Unknown errors
// are logged and hidden behind internal_error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		msg := "Recipe not found"
		if id := chi.URLParam(r, "id"); id != "" {
			msg = fmt.Sprintf("Recipe with ID %s does not exist", id)
		}
		writeError(w, http.StatusNotFound, "recipe_not_found", msg)
	case errors.Is(err, domain.ErrInvalidRating):
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "request_timeout",
			"Request timed out, please try again")
	default:
		logging.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

// parseID reads the {id} URL parameter. Only positive integers are valid.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodeBody reads a JSON body into v. An empty body is an error.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("malformed JSON: %w", err)
	}
	return nil
}
