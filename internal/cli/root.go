package cli

import (
	"time"

	golive "github.com/alexanderramin/golive/internal/app"
	"github.com/spf13/cobra"
)

// App holds the use cases the commands call. History is nil when the run
// ledger is unavailable.
type App struct {
	Quality   golive.QualityUseCase
	Propagate golive.PropagateUseCase
	Simulate  golive.SimulateUseCase
	Optimize  golive.OptimizeUseCase
	Health    golive.HealthUseCase
	Impact    golive.ImpactUseCase
	History   golive.HistoryUseCase

	// Now is the clock for relative timestamps; nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "golive" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "golive",
		Short:         "Go-Live quality estimation, delay propagation and delay optimization",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newQualityCmd(app),
		newPropagateCmd(app),
		newSimulateCmd(app),
		newOptimizeCmd(app),
		newHealthCmd(app),
		newImpactCmd(app),
		newHistoryCmd(app),
		newExportCmd(app),
	)

	return root
}
