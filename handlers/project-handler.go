package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/itdeptjamiat/portfolio/logging"
	"github.com/itdeptjamiat/portfolio/models"
	"github.com/itdeptjamiat/portfolio/services"

	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	Service      *services.ProjectService
	MaxPageLimit int
}

func NewProjectHandler(service *services.ProjectService, maxPageLimit int) *ProjectHandler {
	return &ProjectHandler{Service: service, MaxPageLimit: maxPageLimit}
}

// ListProjectsHandler serves the filtered, searched and paginated listing.
func (h *ProjectHandler) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	q := ParseProjectQuery(r.URL.Query(), h.MaxPageLimit)
	logging.Logger.Debugf("Event ID: PROJECTS_LIST, Description: Listing projects with %+v", q)

	page, err := h.Service.ListProjects(r.Context(), q)
	if err != nil {
		writeError(w, r, err, "Failed to fetch projects")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success:    true,
		Data:       page.Projects,
		Pagination: &page.Pagination,
	})
}

func (h *ProjectHandler) FeaturedProjectsHandler(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Service.FeaturedProjects(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch featured projects")
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: projects})
}

func (h *ProjectHandler) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.Categories(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch categories")
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: categories})
}

func (h *ProjectHandler) TechnologiesHandler(w http.ResponseWriter, r *http.Request) {
	technologies, err := h.Service.Technologies(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch technologies")
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: technologies})
}

func (h *ProjectHandler) GetProjectByIDHandler(w http.ResponseWriter, r *http.Request) {
	project, err := h.Service.GetProjectByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err, "Failed to fetch project")
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: project})
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Message: "Failed to create project",
			Error:   fmt.Sprintf("invalid request payload: %v", err),
		})
		return
	}

	created, err := h.Service.CreateProject(r.Context(), project)
	if err != nil {
		writeError(w, r, err, "Failed to create project")
		return
	}

	writeJSON(w, http.StatusCreated, response{
		Success: true,
		Message: "Project created successfully",
		Data:    created,
	})
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var patch models.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Message: "Failed to update project",
			Error:   fmt.Sprintf("invalid request payload: %v", err),
		})
		return
	}

	updated, err := h.Service.UpdateProject(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, r, err, "Failed to update project")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Project updated successfully",
		Data:    updated,
	})
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteProject(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err, "Failed to delete project")
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Project deleted successfully"})
}
