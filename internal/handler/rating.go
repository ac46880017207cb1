package handler

import (
	"net/http"

	"github.com/actuallystonmai/recipe-service/internal/validation"
)

// POST /api/recipes/{id}/rate
func (h *Handler) RateRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid recipe id")
		return
	}

	var req rateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	if err := validation.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	if _, err := h.service.RateRecipe(r.Context(), id, req.Rating, req.Comment); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Rating submitted successfully"})
}

// POST /api/website/rate
func (h *Handler) RateWebsite(w http.ResponseWriter, r *http.Request) {
	var req websiteRateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	if err := validation.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	if _, err := h.service.RateWebsite(r.Context(), req.Rating, req.Feedback); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Website rating submitted successfully"})
}
