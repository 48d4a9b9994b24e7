package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/importer"
	"github.com/alexanderramin/golive/internal/optimizer"
)

// Config holds process-wide settings for the engine and its run ledger.
type Config struct {
	DBPath          string
	LogRuns         bool
	RecordRuns      bool
	SolverTimeoutMs int
	// Iterations is the default sample count for a full distribution;
	// PointIterations is used when a single point estimate is enough.
	Iterations      int
	PointIterations int
	Seed            uint64
	Seeded          bool
	// CoefficientsPath names an optional JSON coefficient table.
	CoefficientsPath string

	ReferenceTeamSize    int
	MonthlyCostPerMember float64
	OverheadFactor       float64
}

// DefaultConfig returns a Config with the calibrated defaults. Runs are
// recorded but not logged.
func DefaultConfig() Config {
	s := optimizer.DefaultSettings()
	return Config{
		DBPath:               defaultDBPath(),
		LogRuns:              false,
		RecordRuns:           true,
		SolverTimeoutMs:      int(s.SolverTimeout / time.Millisecond),
		Iterations:           1000,
		PointIterations:      100,
		ReferenceTeamSize:    s.ReferenceTeamSize,
		MonthlyCostPerMember: s.MonthlyCostPerMember,
		OverheadFactor:       s.OverheadFactor,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or malformed values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GOLIVE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("GOLIVE_LOG_RUNS"); v != "" {
		cfg.LogRuns, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("GOLIVE_RECORD_RUNS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RecordRuns = b
		}
	}
	if v := os.Getenv("GOLIVE_SOLVER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SolverTimeoutMs = n
		}
	}
	if v := os.Getenv("GOLIVE_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Iterations = n
		}
	}
	if v := os.Getenv("GOLIVE_POINT_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PointIterations = n
		}
	}
	if v := os.Getenv("GOLIVE_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
			cfg.Seeded = true
		}
	}
	if v := os.Getenv("GOLIVE_COEFFICIENTS"); v != "" {
		cfg.CoefficientsPath = v
	}
	if v := os.Getenv("GOLIVE_REFERENCE_TEAM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ReferenceTeamSize = n
		}
	}
	if v := os.Getenv("GOLIVE_MONTHLY_COST"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.MonthlyCostPerMember = f
		}
	}
	if v := os.Getenv("GOLIVE_OVERHEAD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 1 {
			cfg.OverheadFactor = f
		}
	}

	return cfg
}

// SolverTimeout returns the configured LP timeout as a duration.
func (c Config) SolverTimeout() time.Duration {
	return time.Duration(c.SolverTimeoutMs) * time.Millisecond
}

// OptimizerSettings applies the cost and staffing overrides to the
// optimizer's planning constants.
func (c Config) OptimizerSettings() optimizer.Settings {
	s := optimizer.DefaultSettings()
	s.ReferenceTeamSize = c.ReferenceTeamSize
	s.MonthlyCostPerMember = c.MonthlyCostPerMember
	s.OverheadFactor = c.OverheadFactor
	s.SolverTimeout = c.SolverTimeout()
	return s
}

// Coefficients returns the calibrated table, overlaid with the coefficient
// file when one is configured.
func (c Config) Coefficients() (domain.Coefficients, error) {
	base := domain.DefaultCoefficients()
	if c.CoefficientsPath == "" {
		return base, nil
	}
	file, err := importer.LoadCoefficientsFile(c.CoefficientsPath)
	if err != nil {
		return domain.Coefficients{}, fmt.Errorf("loading coefficients: %w", err)
	}
	if errs := importer.ValidateCoefficientsFile(file); len(errs) > 0 {
		return domain.Coefficients{}, fmt.Errorf("invalid coefficients file %s: %v", c.CoefficientsPath, errs[0])
	}
	return importer.ToCoefficients(file, base), nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "golive.db"
	}
	return filepath.Join(home, ".golive", "golive.db")
}
