package cli

import (
	"context"
	"fmt"
	"strings"

	golive "github.com/alexanderramin/golive/internal/app"
	"github.com/alexanderramin/golive/internal/cli/formatter"
	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/report"
	"github.com/alexanderramin/golive/internal/repository"
	"github.com/spf13/cobra"
)

// Prefix lookups scan at most this many recent runs.
const resolveScanLimit = 500

func newHistoryCmd(app *App) *cobra.Command {
	var kind string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded simulate and optimize runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUseCase(cmd, app.History != nil); err != nil {
				return err
			}
			runs, err := app.History.List(cmd.Context(), golive.HistoryRequest{
				Kind:  domain.RunKind(kind),
				Limit: limit,
			})
			if err != nil {
				return engineErr(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(runs, app.now()))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only runs of this kind (simulate|optimize)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum runs to list (0 = default)")

	cmd.AddCommand(newHistoryShowCmd(app), newHistoryDeleteCmd(app))
	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUseCase(cmd, app.History != nil); err != nil {
				return err
			}
			run, err := resolveRun(cmd.Context(), app, args[0])
			if err != nil {
				return engineErr(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRun(run))
			return nil
		},
	}
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUseCase(cmd, app.History != nil); err != nil {
				return err
			}
			run, err := resolveRun(cmd.Context(), app, args[0])
			if err != nil {
				return engineErr(err)
			}
			if err := app.History.Delete(cmd.Context(), run.ID); err != nil {
				return engineErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", run.ID)
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <run-id>",
		Short: "Export a recorded run to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUseCase(cmd, app.History != nil); err != nil {
				return err
			}
			run, err := resolveRun(cmd.Context(), app, args[0])
			if err != nil {
				return engineErr(err)
			}
			path := out
			if path == "" {
				path = fmt.Sprintf("golive-%s-%s.xlsx", run.Kind, shortID(run.ID))
			}
			f, err := report.RunWorkbook(run)
			if err != nil {
				return err
			}
			if err := report.Save(f, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported run %s to %s\n", shortID(run.ID), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default golive-<kind>-<id>.xlsx)")
	return cmd
}

// resolveRun accepts a full run ID or a unique prefix of one.
func resolveRun(ctx context.Context, app *App, input string) (*domain.Run, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, domain.InvalidInputf("run ID is required")
	}
	if run, err := app.History.Get(ctx, input); err == nil {
		return run, nil
	}

	runs, err := app.History.List(ctx, golive.HistoryRequest{Limit: resolveScanLimit})
	if err != nil {
		return nil, err
	}
	var matches []*domain.Run
	for _, r := range runs {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("run %q: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, domain.InvalidInputf("run prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
