package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/golive/internal/cli"
	"github.com/alexanderramin/golive/internal/cli/formatter"
	"github.com/alexanderramin/golive/internal/config"
	"github.com/alexanderramin/golive/internal/db"
	"github.com/alexanderramin/golive/internal/repository"
	"github.com/alexanderramin/golive/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	coef, err := cfg.Coefficients()
	if err != nil {
		return err
	}

	// Open the run ledger
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	runRepo := repository.NewSQLiteRunRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogRuns {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	opts := service.EngineOptions{
		Iterations: cfg.Iterations,
		RecordRuns: cfg.RecordRuns,
	}
	if cfg.Seeded {
		opts.Seed = &cfg.Seed
	}
	engine := service.NewEngineService(coef, cfg.OptimizerSettings(), opts, uow, observer)

	app := &cli.App{
		Quality:   engine,
		Propagate: engine,
		Simulate:  engine,
		Optimize:  engine,
		Health:    engine,
		Impact:    engine,
		History:   service.NewHistoryService(runRepo, observer),
	}

	// Plain output when stdout is piped or redirected.
	fd := os.Stdout.Fd()
	formatter.SetPlain(!isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
