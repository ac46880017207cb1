package handler

import (
	"net/http"

	"github.com/actuallystonmai/recipe-service/internal/validation"
)

// GET /api/recipes
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	lq, bad := parseListQuery(r)
	if bad != "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid "+bad+" parameter")
		return
	}
	if err := validation.Struct(&lq); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	result, err := h.service.ListRecipes(r.Context(), lq.options())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GET /api/recipes/featured
func (h *Handler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.GetFeatured(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// GET /api/recipes/popular
func (h *Handler) GetPopular(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.GetPopular(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// GET /api/recipes/recommended
func (h *Handler) GetRecommended(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.GetRecommended(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// GET /api/recipes/favorites
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	fq := filterQuery{Query: r.URL.Query().Get("q")}
	if err := validation.Struct(&fq); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	recipes, err := h.service.GetFavorites(r.Context(), fq.Query)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// POST /api/recipes/suggest
func (h *Handler) SuggestByIngredients(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Ingredients must be an array: "+err.Error())
		return
	}
	if err := validation.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	recipes, err := h.service.SuggestByIngredients(r.Context(), req.Ingredients)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// GET /api/recipes/suggested
func (h *Handler) GetSuggested(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fq := filterQuery{Query: q.Get("q"), Category: q.Get("category")}
	if err := validation.Struct(&fq); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	recipes, err := h.service.GetSuggested(r.Context(), fq.Query, fq.Category)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// GET /api/recipes/{id}
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid recipe id")
		return
	}

	recipe, err := h.service.GetRecipe(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

// GET /api/recipes/{id}/similar
func (h *Handler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid recipe id")
		return
	}

	recipes, err := h.service.GetSimilar(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// POST /api/recipes/{id}/favorite
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid recipe id")
		return
	}

	var req favoriteRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	if err := validation.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	recipe, err := h.service.ToggleFavorite(r.Context(), id, *req.IsFavorite)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}
