package handlers

import (
	"net/http"

	"github.com/itdeptjamiat/portfolio/middleware"
	"github.com/itdeptjamiat/portfolio/services"

	"github.com/gorilla/mux"
)

type RouterConfig struct {
	Projects      *services.ProjectService
	Contacts      *services.ContactService
	MaxPageLimit  int
	Version       string
	AllowedOrigin string
}

// NewRouter wires every route of the service and wraps the router in the
// request logging, recovery and CORS middleware. RequestLogger is outermost
// so recovered panics are logged with their 500 status.
func NewRouter(cfg RouterConfig) http.Handler {
	projectHandler := NewProjectHandler(cfg.Projects, cfg.MaxPageLimit)
	contactHandler := NewContactHandler(cfg.Contacts)

	r := mux.NewRouter()
	r.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/api", APIInfoHandler(cfg.Version)).Methods(http.MethodGet)

	// static project paths must be registered before /{id}
	r.HandleFunc("/api/projects", projectHandler.ListProjectsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/projects", projectHandler.CreateProject).Methods(http.MethodPost)
	r.HandleFunc("/api/projects/featured", projectHandler.FeaturedProjectsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/projects/categories", projectHandler.CategoriesHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/projects/technologies", projectHandler.TechnologiesHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/projects/{id}", projectHandler.GetProjectByIDHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/projects/{id}", projectHandler.UpdateProject).Methods(http.MethodPut)
	r.HandleFunc("/api/projects/{id}", projectHandler.DeleteProject).Methods(http.MethodDelete)

	r.HandleFunc("/api/contact", contactHandler.SubmitContact).Methods(http.MethodPost)
	r.HandleFunc("/api/contacts", contactHandler.ListContacts).Methods(http.MethodGet)
	r.HandleFunc("/api/contacts/{id}/status", contactHandler.UpdateContactStatus).Methods(http.MethodPatch)

	r.NotFoundHandler = http.HandlerFunc(NotFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(NotFoundHandler)

	return middleware.Chain(r,
		middleware.RequestLogger,
		middleware.Recoverer,
		middleware.CORS(cfg.AllowedOrigin),
	)
}
