package handler

import "net/http"

// GET /api/ingredients
func (h *Handler) GetAllIngredients(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetAllIngredients(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
