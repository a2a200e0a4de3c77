package services

import (
	"context"

	"github.com/itdeptjamiat/portfolio/models"
)

// ProjectStore is the document store behind the project engine. Lookups by
// an unknown or malformed id return models.ErrNotFound.
type ProjectStore interface {
	Find(ctx context.Context, q models.ProjectQuery) ([]models.Project, error)
	Count(ctx context.Context, q models.ProjectQuery) (int64, error)
	FindFeatured(ctx context.Context, limit int) ([]models.Project, error)
	FindByID(ctx context.Context, id string) (*models.Project, error)
	Insert(ctx context.Context, p *models.Project) error
	Replace(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id string) error
	DistinctCategories(ctx context.Context) ([]string, error)
	DistinctTechnologies(ctx context.Context) ([]string, error)
}

// ContactStore keeps contact form submissions.
type ContactStore interface {
	Append(ctx context.Context, c models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error)
}
