package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/itdeptjamiat/portfolio/logging"
	"github.com/itdeptjamiat/portfolio/models"

	"github.com/google/uuid"
)

type ContactService struct {
	store ContactStore
	now   func() time.Time
}

func NewContactService(store ContactStore) *ContactService {
	return &ContactService{
		store: store,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit stores a new contact form submission in the pending state.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.Contact, error) {
	contact := models.Contact{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		Status:    models.ContactPending,
		CreatedAt: s.now(),
	}

	if err := validateStruct(contact, "Invalid contact submission"); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) && hasFieldMessage(ve, "is required") {
			ve.Message = "All fields are required"
		}
		return nil, err
	}

	if err := s.store.Append(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to store contact submission: %w", err)
	}

	logging.Logger.Infof("Event ID: CONTACT_RECEIVED, Description: Contact submission %s received from %s", contact.ID, contact.Email)
	return &contact, nil
}

func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contacts: %w", err)
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, nil
}

func (s *ContactService) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error) {
	if !status.Valid() {
		return nil, &ValidationError{
			Message: "Invalid contact status",
			Fields: []FieldError{{
				Field:   "status",
				Message: fmt.Sprintf("must be one of [%s, %s, %s], got %q", models.ContactPending, models.ContactRead, models.ContactReplied, status),
			}},
		}
	}

	contact, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}
	return contact, nil
}
