package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/golive/internal/domain"
)

// FormatHistory renders recorded runs newest first.
func FormatHistory(runs []*domain.Run, now time.Time) string {
	if len(runs) == 0 {
		return RenderBox("Run History", Dim("No recorded runs.")+"\n")
	}
	headers := []string{"ID", "KIND", "WHEN", "TARGET", "QUALITY", "RESULT", "DELAY"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		target := Dim("--")
		var t float64
		if r.TargetQuality != nil {
			t = *r.TargetQuality
			target = Pct(t)
		}
		result := StyleGreen.Render("ok")
		if !r.Success {
			result = StyleRed.Render(fmt.Sprintf("failed (%d)", len(r.Reasons)))
		}
		delay := Dim("--")
		if r.Delays != nil {
			delay = Days(r.TotalDelayDays)
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			string(r.Kind),
			HumanTimestampFrom(r.CreatedAt, now),
			target,
			QualityStyle(r.Quality, t).Render(Pct(r.Quality)),
			result,
			delay,
		})
	}
	return RenderBox("Run History", RenderTable(headers, rows))
}

// FormatRun renders one run in full.
func FormatRun(r *domain.Run) string {
	var b strings.Builder
	pairs := [][2]string{
		{"ID", r.ID},
		{"Kind", string(r.Kind)},
		{"Created", r.CreatedAt.UTC().Format(time.RFC3339)},
	}
	if r.TargetQuality != nil {
		pairs = append(pairs, [2]string{"Target", Pct(*r.TargetQuality)})
	}
	pairs = append(pairs,
		[2]string{"Quality", Bold(fmt.Sprintf("%.2f%%", r.Quality))},
		[2]string{"Risk", fmt.Sprintf("technical %.0f, business %.0f, scope %.0f", r.Risk.Technical, r.Risk.Business, r.Risk.Scope)},
	)
	if r.Kind == domain.RunSimulate {
		pairs = append(pairs,
			[2]string{"Iterations", fmt.Sprintf("%d", r.Iterations)},
			[2]string{"Std dev", fmt.Sprintf("%.4f", r.StdDev)},
		)
	}
	if r.Kind == domain.RunOptimize {
		pairs = append(pairs, [2]string{"Result", Verdict(r.Success)})
		if r.Success {
			pairs = append(pairs,
				[2]string{"Total delay", Days(r.TotalDelayDays)},
				[2]string{"Estimated cost", Amount(r.EstimatedCost)},
			)
		}
	}
	b.WriteString(KeyValues(pairs))

	if r.Delays != nil && !r.Delays.IsZero() {
		b.WriteString("\n" + delayTable(*r.Delays))
	}
	if len(r.Reasons) > 0 {
		b.WriteString("\n" + Bold("Reasons") + "\n" + numbered(r.Reasons))
	}
	return RenderBox("Run", b.String())
}
