package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/golive/internal/db"
	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/optimizer"
	"github.com/alexanderramin/golive/internal/repository"
	"github.com/alexanderramin/golive/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func setupEngine(t *testing.T, opts EngineOptions, observers ...UseCaseObserver) (EngineService, *repository.SQLiteRunRepo, *sql.DB) {
	t.Helper()
	database, uow := testutil.NewTestLedger(t)
	return setupEngineWithUoW(database, uow, opts, observers...), repository.NewSQLiteRunRepo(database), database
}

func setupEngineWithUoW(database *sql.DB, uow db.UnitOfWork, opts EngineOptions, observers ...UseCaseObserver) EngineService {
	return NewEngineService(domain.DefaultCoefficients(), optimizer.DefaultSettings(), opts, uow, observers...)
}

func seed(v uint64) *uint64 { return &v }

func ptrFloat(f float64) *float64 { return &f }
