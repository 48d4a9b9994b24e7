package repository

import (
	"context"

	"github.com/alexanderramin/golive/internal/domain"
)

// RunFilter narrows a run listing. Zero values match everything.
type RunFilter struct {
	Kind  domain.RunKind
	Limit int
}

type RunRepo interface {
	Create(ctx context.Context, r *domain.Run) error
	GetByID(ctx context.Context, id string) (*domain.Run, error)
	List(ctx context.Context, filter RunFilter) ([]*domain.Run, error)
	Delete(ctx context.Context, id string) error
}
