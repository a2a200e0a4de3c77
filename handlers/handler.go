package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/itdeptjamiat/portfolio/logging"
	"github.com/itdeptjamiat/portfolio/middleware"
	"github.com/itdeptjamiat/portfolio/models"
	"github.com/itdeptjamiat/portfolio/services"
)

// response is the envelope every API route answers with.
type response struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Count      *int               `json:"count,omitempty"`
	Data       interface{}        `json:"data,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Logger.Errorf("Event ID: RESPONSE_ENCODE_FAILED, Description: Error encoding response: %v", err)
	}
}

// writeError maps service errors onto status codes. message is the
// human readable summary for the failed operation.
func writeError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		writeJSON(w, http.StatusNotFound, response{Message: "Project not found"})
	case errors.Is(err, services.ErrContactNotFound):
		writeJSON(w, http.StatusNotFound, response{Message: "Contact not found"})
	case services.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, response{Message: message, Error: err.Error()})
	default:
		logging.Logger.WithField("request_id", middleware.RequestID(r.Context())).
			Errorf("Event ID: REQUEST_FAILED, Description: %s: %v", message, err)
		writeJSON(w, http.StatusInternalServerError, response{Message: message, Error: err.Error()})
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "OK", Message: "Server is running"})
}

type apiInfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func APIInfoHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, apiInfoResponse{
			Message: "Welcome to the Portfolio API",
			Version: version,
			Endpoints: map[string]string{
				"health":   "/health",
				"api":      "/api",
				"contact":  "/api/contact",
				"contacts": "/api/contacts",
				"projects": "/api/projects",
			},
		})
	}
}

func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	logging.Logger.Debugf("Event ID: ROUTE_NOT_FOUND, Description: No route for %s %s", r.Method, r.URL.Path)
	writeJSON(w, http.StatusNotFound, response{Message: "Route not found"})
}
