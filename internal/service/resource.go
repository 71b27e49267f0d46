package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deppfellow/blogful/internal/errs"
	"github.com/deppfellow/blogful/internal/model"
)

// Store is the data access a resource service needs. It is satisfied by
// *repository.Table.
type Store[T model.Entity] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Insert(ctx context.Context, fields map[string]any) (*T, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ResourceService implements the CRUD operations of one resource and turns
// missing rows into 404s. Store errors are returned as they are.
type ResourceService[T model.Entity] struct {
	store Store[T]
	noun  string
}

func NewResourceService[T model.Entity](store Store[T], noun string) *ResourceService[T] {
	return &ResourceService[T]{store: store, noun: noun}
}

// Noun is the singular resource name used in messages ("article").
func (s *ResourceService[T]) Noun() string {
	return s.noun
}

func (s *ResourceService[T]) notFound() error {
	return errs.NewNotFoundError(fmt.Sprintf("%s not found", s.noun), nil)
}

func (s *ResourceService[T]) List(ctx context.Context) ([]T, error) {
	return s.store.List(ctx)
}

// Get returns the row with the given id or a 404.
func (s *ResourceService[T]) Get(ctx context.Context, id int64) (*T, error) {
	item, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, s.notFound()
	}
	return item, nil
}

// Create inserts the payload and returns the stored row.
func (s *ResourceService[T]) Create(ctx context.Context, payload model.Payload) (*T, error) {
	item, err := s.store.Insert(ctx, payload.Columns())
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("resource", s.noun).
		Int64("id", (*item).GetID()).
		Msg("created")

	return item, nil
}

// Update applies the payload to the row with the given id. A row removed
// since the existence check is reported as a 404.
func (s *ResourceService[T]) Update(ctx context.Context, id int64, payload model.Payload) error {
	item, err := s.store.Update(ctx, id, payload.Columns())
	if err != nil {
		return err
	}
	if item == nil {
		return s.notFound()
	}

	zerolog.Ctx(ctx).Info().
		Str("resource", s.noun).
		Int64("id", id).
		Msg("updated")

	return nil
}

// Delete removes the row with the given id, 404 when nothing was removed.
func (s *ResourceService[T]) Delete(ctx context.Context, id int64) error {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return s.notFound()
	}

	zerolog.Ctx(ctx).Info().
		Str("resource", s.noun).
		Int64("id", id).
		Msg("deleted")

	return nil
}
