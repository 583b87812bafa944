package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/perugo/perugo-api/internal/domain"
	"github.com/perugo/perugo-api/internal/http/response"
	"github.com/perugo/perugo-api/internal/logger"
	"github.com/perugo/perugo-api/internal/rdf"
)

// rdfExportLimit caps the full-graph export to the newest catalog rows.
const rdfExportLimit = 10

// ExportRDF serves the newest destinations and their tours as a Turtle
// graph anchored on the requesting user.
func (h *Handlers) ExportRDF(w http.ResponseWriter, r *http.Request) {
	usuario := rdfUsuario(r)

	destinations, err := h.catalogService.RecentDestinations(r.Context(), rdfExportLimit)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	writeTurtle(w, rdf.Graph(usuario, destinations))
}

// ExportDestinationRDF serves the graph of a single destination. An unknown
// slug yields a graph holding only the user node, not an error.
func (h *Handlers) ExportDestinationRDF(w http.ResponseWriter, r *http.Request) {
	usuario := rdfUsuario(r)
	slug := chi.URLParam(r, "slug")

	var destinations []domain.Destination
	destination, err := h.catalogService.GetDestination(r.Context(), slug)
	switch {
	case err == nil:
		destinations = []domain.Destination{*destination}
	case domain.KindOf(err) == domain.KindNotFound:
		logger.WarnContext(r.Context(), "No destination for RDF export", "slug", slug)
	default:
		response.WriteDomainError(w, err)
		return
	}

	writeTurtle(w, rdf.Graph(usuario, destinations))
}

func rdfUsuario(r *http.Request) string {
	if usuario := r.URL.Query().Get("usuario"); usuario != "" {
		return usuario
	}
	return "Usuario123"
}

func writeTurtle(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc)); err != nil {
		logger.Error("Failed to write RDF response", "error", err)
	}
}
