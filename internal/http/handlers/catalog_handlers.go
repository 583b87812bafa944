package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/perugo/perugo-api/internal/domain"
	"github.com/perugo/perugo-api/internal/http/response"
)

// ListDestinations returns the full catalog. No filtering or pagination:
// the catalog is a flat, seed-sized table.
func (h *Handlers) ListDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.catalogService.ListDestinations(r.Context())
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"destinations": destinations,
	})
}

func (h *Handlers) GetDestination(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	destination, err := h.catalogService.GetDestination(r.Context(), slug)
	if err != nil {
		// Missing catalog entries are a real 404, unlike the auth routes
		// where not-found stays 400.
		if domain.KindOf(err) == domain.KindNotFound {
			response.WriteError(w, http.StatusNotFound, err.Error(), response.CodeNotFound)
			return
		}
		response.WriteDomainError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, destination)
}
