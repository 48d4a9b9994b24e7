package cli

import (
	"fmt"
	"time"

	golive "github.com/alexanderramin/golive/internal/app"
	"github.com/alexanderramin/golive/internal/cli/formatter"
	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/report"
	"github.com/spf13/cobra"
)

func newQualityCmd(app *App) *cobra.Command {
	var flags scenarioFlags

	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Compute Go-Live quality from phase completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUseCase(cmd, app.Quality != nil); err != nil {
				return err
			}
			c, err := flags.baseline()
			if err != nil {
				return engineErr(err)
			}
			resp, err := app.Quality.Quality(cmd.Context(), golive.QualityRequest{Completion: c})
			if err != nil {
				return engineErr(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuality(resp))
			return nil
		},
	}
	flags.register(cmd.Flags(), true, false)
	return cmd
}

func newPropagateCmd(app *App) *cobra.Command {
	var flags scenarioFlags
	var isBaseline bool

	cmd := &cobra.Command{
		Use:   "propagate",
		Short: "Apply phase delays and Migration blocking to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUseCase(cmd, app.Propagate != nil); err != nil {
				return err
			}
			req := golive.PropagateRequest{IsBaseline: isBaseline}
			var err error
			if req.Baseline, err = flags.baseline(); err != nil {
				return engineErr(err)
			}
			if req.Delays, err = flags.delayVector(); err != nil {
				return engineErr(err)
			}
			if req.Risk, err = flags.riskProfile(); err != nil {
				return engineErr(err)
			}
			resp, err := app.Propagate.Propagate(cmd.Context(), req)
			if err != nil {
				return engineErr(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPropagate(resp))
			return nil
		},
	}
	flags.register(cmd.Flags(), true, true)
	cmd.Flags().BoolVar(&isBaseline, "baseline", false, "Treat as the reference scenario (risk ignored)")
	return cmd
}

func newSimulateCmd(app *App) *cobra.Command {
	var flags scenarioFlags
	var (
		isBaseline bool
		iterations int
		seed       uint64
		threshold  float64
		xlsxPath   string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Monte Carlo quality distribution under risk",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUseCase(cmd, app.Simulate != nil); err != nil {
				return err
			}
			req := golive.NewSimulateRequest()
			req.IsBaseline = isBaseline
			req.Iterations = iterations
			var err error
			if req.Baseline, err = flags.baseline(); err != nil {
				return engineErr(err)
			}
			if req.Delays, err = flags.delayVector(); err != nil {
				return engineErr(err)
			}
			if req.Risk, err = flags.riskProfile(); err != nil {
				return engineErr(err)
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}
			if cmd.Flags().Changed("threshold") {
				req.Threshold = &threshold
			}

			resp, err := app.Simulate.Simulate(cmd.Context(), req)
			if err != nil {
				return engineErr(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSimulation(resp))

			if xlsxPath != "" {
				f, err := report.SimulationWorkbook(resp.Samples, resp.Summary)
				if err != nil {
					return err
				}
				if err := report.Save(f, xlsxPath); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Samples written to "+xlsxPath))
			}
			return nil
		},
	}
	flags.register(cmd.Flags(), true, true)
	cmd.Flags().BoolVar(&isBaseline, "baseline", false, "Treat as the reference scenario (deterministic)")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "Number of samples (0 uses the configured default)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for a reproducible run")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Report the probability of reaching this quality")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write samples and summary to an xlsx file")
	return cmd
}

func newOptimizeCmd(app *App) *cobra.Command {
	var (
		target   float64
		risk     map[string]string
		team     int
		budget   float64
		current  map[string]string
		minDelay map[string]int
		maxDelay map[string]int
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Find the minimal phase delays that reach a target quality",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUseCase(cmd, app.Optimize != nil); err != nil {
				return err
			}
			req := golive.NewOptimizeRequest(target)
			if cmd.Flags().Changed("team") {
				req.TeamSize = team
			}
			req.Budget = budget
			req.SolverTimeout = timeout

			var err error
			if req.Risk, err = parseRisk(risk); err != nil {
				return engineErr(err)
			}
			if err := applyBounds(&req, current, minDelay, maxDelay); err != nil {
				return engineErr(err)
			}

			resp, err := app.Optimize.Optimize(cmd.Context(), req)
			if err != nil {
				return engineErr(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOptimize(resp, target))
			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", 0, "Target Go-Live quality percentage (50-100)")
	cmd.Flags().StringToStringVar(&risk, "risk", nil, "Risk sliders 0-100, e.g. technical=40,business=20")
	cmd.Flags().IntVar(&team, "team", 0, "Team size (default: reference team)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Cost cap for added delay-days (0 = unconstrained)")
	cmd.Flags().StringToStringVar(&current, "current", nil, "Completion at Go-Live without delay, e.g. UAT=0.9,E2E=80%")
	cmd.Flags().StringToIntVar(&minDelay, "min-delay", nil, "Minimum delay-days per phase")
	cmd.Flags().StringToIntVar(&maxDelay, "max-delay", nil, "Maximum delay-days per phase")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Solver timeout (0 uses the configured default)")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// applyBounds overlays per-phase flags on the default delay windows. Only
// the delayable phases are accepted.
func applyBounds(req *golive.OptimizeRequest, current map[string]string, minDelay, maxDelay map[string]int) error {
	for _, name := range sortedKeys(current) {
		p, err := parseDelayablePhase(name)
		if err != nil {
			return err
		}
		v, err := parseFraction(current[name])
		if err != nil {
			return domain.InvalidInputf("%s current completion: %v", p, err)
		}
		req.Bounds[p].Current = v
	}
	for _, name := range sortedKeys(minDelay) {
		p, err := parseDelayablePhase(name)
		if err != nil {
			return err
		}
		req.Bounds[p].MinDelay = minDelay[name]
	}
	for _, name := range sortedKeys(maxDelay) {
		p, err := parseDelayablePhase(name)
		if err != nil {
			return err
		}
		req.Bounds[p].MaxDelay = maxDelay[name]
	}
	return nil
}

func parseDelayablePhase(name string) (domain.Phase, error) {
	p, err := domain.ParsePhase(name)
	if err != nil {
		return 0, err
	}
	for _, d := range domain.DelayablePhases {
		if d == p {
			return p, nil
		}
	}
	return 0, domain.InvalidInputf("%s cannot be delayed", p)
}
