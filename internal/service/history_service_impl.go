package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/golive/internal/app"
	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/repository"
)

const defaultHistoryLimit = 20

type historyService struct {
	runs     repository.RunRepo
	observer UseCaseObserver
}

func NewHistoryService(runs repository.RunRepo, observers ...UseCaseObserver) HistoryService {
	return &historyService{runs: runs, observer: useCaseObserverOrNoop(observers)}
}

func (s *historyService) List(ctx context.Context, req app.HistoryRequest) (runs []*domain.Run, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"kind": string(req.Kind)}
	defer func() { emitUseCase(ctx, s.observer, "history", startedAt, fields, err) }()

	if req.Kind != "" && !domain.ValidRunKinds[string(req.Kind)] {
		return nil, domain.InvalidInputf("unknown run kind %q", req.Kind)
	}
	if req.Limit < 0 {
		return nil, domain.InvalidInputf("limit must be non-negative, got %d", req.Limit)
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	runs, err = s.runs.List(ctx, repository.RunFilter{Kind: req.Kind, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	fields["count"] = len(runs)
	return runs, nil
}

func (s *historyService) Get(ctx context.Context, id string) (*domain.Run, error) {
	run, err := s.runs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", id, err)
	}
	return run, nil
}

func (s *historyService) Delete(ctx context.Context, id string) error {
	return s.runs.Delete(ctx, id)
}
