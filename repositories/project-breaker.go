package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/itdeptjamiat/portfolio/logging"
	"github.com/itdeptjamiat/portfolio/models"
	"github.com/itdeptjamiat/portfolio/services"

	"github.com/sony/gobreaker"
)

// ErrStoreUnavailable is returned while the breaker rejects calls.
var ErrStoreUnavailable = errors.New("project store unavailable")

// halfOpenRequests is the number of trial calls let through once the breaker
// timeout expires. A listing issues Find and Count together, so both must fit.
const halfOpenRequests = 2

// ProjectBreakerStore guards a ProjectStore with a circuit breaker so a
// failing database is not hammered by every incoming request.
type ProjectBreakerStore struct {
	next services.ProjectStore
	cb   *gobreaker.CircuitBreaker
}

type BreakerSettings struct {
	Name        string
	Timeout     time.Duration
	MaxFailures uint32
}

func NewProjectBreakerStore(next services.ProjectStore, settings BreakerSettings) *ProjectBreakerStore {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: halfOpenRequests,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > settings.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Warnf("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
		// a missing document or an abandoned request says nothing about store health
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, models.ErrNotFound) ||
				errors.Is(err, context.Canceled)
		},
	})
	return &ProjectBreakerStore{next: next, cb: cb}
}

func (b *ProjectBreakerStore) State() gobreaker.State {
	return b.cb.State()
}

func (b *ProjectBreakerStore) Find(ctx context.Context, q models.ProjectQuery) ([]models.Project, error) {
	return guard(b, func() ([]models.Project, error) { return b.next.Find(ctx, q) })
}

func (b *ProjectBreakerStore) Count(ctx context.Context, q models.ProjectQuery) (int64, error) {
	return guard(b, func() (int64, error) { return b.next.Count(ctx, q) })
}

func (b *ProjectBreakerStore) FindFeatured(ctx context.Context, limit int) ([]models.Project, error) {
	return guard(b, func() ([]models.Project, error) { return b.next.FindFeatured(ctx, limit) })
}

func (b *ProjectBreakerStore) FindByID(ctx context.Context, id string) (*models.Project, error) {
	return guard(b, func() (*models.Project, error) { return b.next.FindByID(ctx, id) })
}

func (b *ProjectBreakerStore) Insert(ctx context.Context, p *models.Project) error {
	_, err := guard(b, func() (struct{}, error) { return struct{}{}, b.next.Insert(ctx, p) })
	return err
}

func (b *ProjectBreakerStore) Replace(ctx context.Context, p *models.Project) error {
	_, err := guard(b, func() (struct{}, error) { return struct{}{}, b.next.Replace(ctx, p) })
	return err
}

func (b *ProjectBreakerStore) Delete(ctx context.Context, id string) error {
	_, err := guard(b, func() (struct{}, error) { return struct{}{}, b.next.Delete(ctx, id) })
	return err
}

func (b *ProjectBreakerStore) DistinctCategories(ctx context.Context) ([]string, error) {
	return guard(b, func() ([]string, error) { return b.next.DistinctCategories(ctx) })
}

func (b *ProjectBreakerStore) DistinctTechnologies(ctx context.Context) ([]string, error) {
	return guard(b, func() ([]string, error) { return b.next.DistinctTechnologies(ctx) })
}

func guard[T any](b *ProjectBreakerStore, call func() (T, error)) (T, error) {
	var zero T
	result, err := b.cb.Execute(func() (interface{}, error) {
		return call()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return zero, err
	}
	v, _ := result.(T)
	return v, nil
}
