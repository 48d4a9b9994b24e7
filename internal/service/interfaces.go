package service

import (
	"github.com/alexanderramin/golive/internal/app"
)

// EngineService bundles the numeric use cases behind one set of coefficients.
type EngineService interface {
	app.QualityUseCase
	app.PropagateUseCase
	app.SimulateUseCase
	app.OptimizeUseCase
	app.HealthUseCase
	app.ImpactUseCase
}

type HistoryService interface {
	app.HistoryUseCase
}
