package cli

import (
	"fmt"

	golive "github.com/alexanderramin/golive/internal/app"
	"github.com/alexanderramin/golive/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHealthCmd(app *App) *cobra.Command {
	var flags scenarioFlags
	var (
		qualityPct float64
		budgetUsed float64
		phaseRisk  map[string]string
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Score project health and find the weakest phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUseCase(cmd, app.Health != nil); err != nil {
				return err
			}
			req := golive.HealthRequest{Quality: qualityPct, BudgetUsedPct: budgetUsed}
			var err error
			if req.Delays, err = flags.delayVector(); err != nil {
				return engineErr(err)
			}
			if req.Risk, err = flags.riskProfile(); err != nil {
				return engineErr(err)
			}
			if req.ExecutionRisk, err = parsePhaseValues(phaseRisk); err != nil {
				return engineErr(err)
			}

			resp, err := app.Health.Health(cmd.Context(), req)
			if err != nil {
				return engineErr(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHealth(resp))
			return nil
		},
	}
	flags.register(cmd.Flags(), false, true)
	cmd.Flags().Float64Var(&qualityPct, "quality", 0, "Expected Go-Live quality percentage")
	cmd.Flags().Float64Var(&budgetUsed, "budget-used", 0, "Budget spent, percent of plan")
	cmd.Flags().StringToStringVar(&phaseRisk, "phase-risk", nil, "Execution risk 0-100 per phase, e.g. Migration=40")
	_ = cmd.MarkFlagRequired("quality")
	return cmd
}

func newImpactCmd(app *App) *cobra.Command {
	var flags scenarioFlags

	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Break down the quality cost of each delayed phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUseCase(cmd, app.Impact != nil); err != nil {
				return err
			}
			delays, err := flags.delayVector()
			if err != nil {
				return engineErr(err)
			}
			resp, err := app.Impact.Impact(cmd.Context(), golive.ImpactRequest{Delays: delays})
			if err != nil {
				return engineErr(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImpact(resp))
			return nil
		},
	}
	flags.register(cmd.Flags(), false, false)
	return cmd
}
