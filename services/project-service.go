package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/itdeptjamiat/portfolio/logging"
	"github.com/itdeptjamiat/portfolio/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type ProjectService struct {
	store ProjectStore
	now   func() time.Time
}

func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{
		store: store,
		now: func() time.Time {
			// stores keep millisecond precision
			return time.Now().UTC().Truncate(time.Millisecond)
		},
	}
}

// ListProjects returns one page of the filtered listing together with the
// pagination metadata of the whole match set.
func (s *ProjectService) ListProjects(ctx context.Context, q models.ProjectQuery) (*models.ProjectPage, error) {
	var (
		projects []models.Project
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.store.Find(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.Count(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	if projects == nil {
		projects = []models.Project{}
	}
	return &models.ProjectPage{
		Projects:   projects,
		Pagination: models.NewPagination(q.Page, q.Limit, total),
	}, nil
}

func (s *ProjectService) FeaturedProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.store.FindFeatured(ctx, models.FeaturedProjectsMax)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured projects: %w", err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// Categories lists the distinct categories currently in use.
func (s *ProjectService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.store.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// Technologies lists every technology used by any project, deduplicated and sorted.
func (s *ProjectService) Technologies(ctx context.Context) ([]string, error) {
	technologies, err := s.store.DistinctTechnologies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch technologies: %w", err)
	}

	seen := make(map[string]struct{}, len(technologies))
	unique := make([]string, 0, len(technologies))
	for _, t := range technologies {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		unique = append(unique, t)
	}
	sort.Strings(unique)
	return unique, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	project.ApplyDefaults()
	if err := validateStruct(project, "Project validation failed"); err != nil {
		return nil, err
	}

	now := s.now()
	project.ID = primitive.NewObjectID()
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.store.Insert(ctx, &project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	logging.Logger.Infof("Event ID: PROJECT_CREATED, Description: Project %s (%s) created", project.ID.Hex(), project.Name)
	return &project, nil
}

// UpdateProject applies the provided fields to the stored project and
// validates the merged document before saving it.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(project)
	project.Name = strings.TrimSpace(project.Name)
	project.ApplyDefaults()
	if err := validateStruct(project, "Project validation failed"); err != nil {
		return nil, err
	}
	project.UpdatedAt = s.now()

	if err := s.store.Replace(ctx, project); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	logging.Logger.Infof("Event ID: PROJECT_UPDATED, Description: Project %s updated", project.ID.Hex())
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	logging.Logger.Infof("Event ID: PROJECT_DELETED, Description: Project %s deleted", id)
	return nil
}
