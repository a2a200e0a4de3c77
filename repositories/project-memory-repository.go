package repositories

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/itdeptjamiat/portfolio/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectMemoryRepository keeps projects in process memory with the same
// filter and ordering rules as the MongoDB repository.
type ProjectMemoryRepository struct {
	mu       sync.RWMutex
	projects []models.Project
}

func NewProjectMemoryRepository() *ProjectMemoryRepository {
	return &ProjectMemoryRepository{}
}

func (r *ProjectMemoryRepository) Find(ctx context.Context, q models.ProjectQuery) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.filter(func(p *models.Project) bool { return matchesQuery(p, q) })
	sort.SliceStable(matched, func(i, j int) bool { return listingLess(&matched[i], &matched[j]) })

	skip := q.Skip()
	if skip >= int64(len(matched)) {
		return []models.Project{}, nil
	}
	matched = matched[skip:]
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (r *ProjectMemoryRepository) Count(ctx context.Context, q models.ProjectQuery) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for i := range r.projects {
		if matchesQuery(&r.projects[i], q) {
			n++
		}
	}
	return n, nil
}

func (r *ProjectMemoryRepository) FindFeatured(ctx context.Context, limit int) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	featured := r.filter(func(p *models.Project) bool { return p.Featured })
	sort.SliceStable(featured, func(i, j int) bool { return newerFirst(&featured[i], &featured[j]) })
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}

func (r *ProjectMemoryRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(oid)
	if i < 0 {
		return nil, models.ErrNotFound
	}
	p := cloneProject(r.projects[i])
	return &p, nil
}

func (r *ProjectMemoryRepository) Insert(ctx context.Context, p *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.projects = append(r.projects, cloneProject(*p))
	return nil
}

func (r *ProjectMemoryRepository) Replace(ctx context.Context, p *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(p.ID)
	if i < 0 {
		return models.ErrNotFound
	}
	r.projects[i] = cloneProject(*p)
	return nil
}

func (r *ProjectMemoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(oid)
	if i < 0 {
		return models.ErrNotFound
	}
	r.projects = append(r.projects[:i], r.projects[i+1:]...)
	return nil
}

// DistinctCategories returns categories in order of first appearance.
func (r *ProjectMemoryRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	categories := []string{}
	for _, p := range r.projects {
		c := string(p.Category)
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (r *ProjectMemoryRepository) DistinctTechnologies(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	technologies := []string{}
	for _, p := range r.projects {
		for _, t := range p.Technologies {
			if !seen[t] {
				seen[t] = true
				technologies = append(technologies, t)
			}
		}
	}
	return technologies, nil
}

func (r *ProjectMemoryRepository) filter(keep func(*models.Project) bool) []models.Project {
	out := []models.Project{}
	for i := range r.projects {
		if keep(&r.projects[i]) {
			out = append(out, cloneProject(r.projects[i]))
		}
	}
	return out
}

func (r *ProjectMemoryRepository) indexOf(id primitive.ObjectID) int {
	for i := range r.projects {
		if r.projects[i].ID == id {
			return i
		}
	}
	return -1
}

func matchesQuery(p *models.Project, q models.ProjectQuery) bool {
	if q.Category != "" && string(p.Category) != q.Category {
		return false
	}
	if q.Featured != nil && p.Featured != *q.Featured {
		return false
	}
	if q.Status != "" && string(p.Status) != q.Status {
		return false
	}
	if q.Technology != "" && !containsExact(p.Technologies, q.Technology) {
		return false
	}
	if q.Search != "" && !matchesSearch(p, q.Search) {
		return false
	}
	return true
}

func matchesSearch(p *models.Project, search string) bool {
	needle := strings.ToLower(search)
	if containsFold(p.Name, needle) || containsFold(p.Description, needle) || containsFold(p.ShortDescription, needle) {
		return true
	}
	for _, t := range p.Technologies {
		if containsFold(t, needle) {
			return true
		}
	}
	return false
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

func containsExact(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func listingLess(a, b *models.Project) bool {
	if a.Featured != b.Featured {
		return a.Featured
	}
	return newerFirst(a, b)
}

func newerFirst(a, b *models.Project) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) > 0
}

func cloneProject(p models.Project) models.Project {
	p.Technologies = cloneStrings(p.Technologies)
	p.Screenshots = cloneStrings(p.Screenshots)
	p.Highlights = cloneStrings(p.Highlights)
	p.Challenges = cloneStrings(p.Challenges)
	p.Solutions = cloneStrings(p.Solutions)
	if p.CompletionDate != nil {
		d := *p.CompletionDate
		p.CompletionDate = &d
	}
	return p
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}
