package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/itdeptjamiat/portfolio/models"
	"github.com/itdeptjamiat/portfolio/services"

	"github.com/gorilla/mux"
)

type ContactHandler struct {
	Service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{Service: service}
}

func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var in services.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Message: "Invalid request payload"})
		return
	}

	contact, err := h.Service.Submit(r.Context(), in)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, response{Message: ve.Message, Error: ve.Error()})
			return
		}
		writeError(w, r, err, "Failed to send message. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, response{
		Success: true,
		Message: "Message sent successfully!",
		Data:    contact,
	})
}

func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch contacts")
		return
	}
	count := len(contacts)
	writeJSON(w, http.StatusOK, response{Success: true, Count: &count, Data: contacts})
}

func (h *ContactHandler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status models.ContactStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Message: "Invalid request payload"})
		return
	}

	contact, err := h.Service.UpdateStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		writeError(w, r, err, "Failed to update contact status")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Contact status updated",
		Data:    contact,
	})
}
