package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	mw "github.com/perugo/perugo-api/internal/http/middleware"
	"github.com/perugo/perugo-api/internal/http/response"
	"github.com/perugo/perugo-api/internal/service"
)

type Handlers struct {
	authService    service.AuthService
	catalogService service.CatalogService
}

func New(authService service.AuthService, catalogService service.CatalogService) *Handlers {
	return &Handlers{
		authService:    authService,
		catalogService: catalogService,
	}
}

// availableRoutes is the public route table, returned by the 404 fallback
// and the auth status route.
var availableRoutes = []string{
	"GET /",
	"GET /auth/status",
	"POST /auth/login",
	"POST /auth/register",
	"POST /auth/recover",
	"GET /destinations",
	"GET /destinations/{slug}",
	"GET /rdf",
	"GET /rdf/destino/{slug}",
	"GET /health",
}

func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000", "*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", h.Home)
	r.Get("/health", h.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/status", h.AuthStatus)
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/recover", h.Recover)
	})

	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", h.ListDestinations)
		r.Get("/{slug}", h.GetDestination)
	})

	r.Route("/rdf", func(r chi.Router) {
		r.Get("/", h.ExportRDF)
		r.Get("/destino/{slug}", h.ExportDestinationRDF)
	})

	// Every unmatched request gets the JSON 404 with the route table,
	// including wrong-method hits on known paths.
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	return r
}

// Meta handlers

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Servidor backend operativo.",
	})
}

func (h *Handlers) AuthStatus(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Servicio de autenticación operativo",
		"routes": []string{
			"POST /auth/login",
			"POST /auth/register",
			"POST /auth/recover",
		},
	})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusNotFound, map[string]interface{}{
		"error":           "Ruta no encontrada",
		"path":            r.URL.Path,
		"availableRoutes": availableRoutes,
	})
}
