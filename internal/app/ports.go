package app

import (
	"context"

	"github.com/alexanderramin/golive/internal/domain"
)

type QualityUseCase interface {
	Quality(ctx context.Context, req QualityRequest) (*QualityResponse, error)
}

type PropagateUseCase interface {
	Propagate(ctx context.Context, req PropagateRequest) (*PropagateResponse, error)
}

type SimulateUseCase interface {
	Simulate(ctx context.Context, req SimulateRequest) (*SimulateResponse, error)
}

type OptimizeUseCase interface {
	Optimize(ctx context.Context, req OptimizeRequest) (*OptimizeResponse, error)
}

type HealthUseCase interface {
	Health(ctx context.Context, req HealthRequest) (*HealthResponse, error)
}

type ImpactUseCase interface {
	Impact(ctx context.Context, req ImpactRequest) (*ImpactResponse, error)
}

type HistoryUseCase interface {
	List(ctx context.Context, req HistoryRequest) ([]*domain.Run, error)
	Get(ctx context.Context, id string) (*domain.Run, error)
	Delete(ctx context.Context, id string) error
}
