package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/golive/internal/app"
	"github.com/alexanderramin/golive/internal/domain"
)

const gaugeWidth = 20

// FormatQuality shows the Go-Live quality and the structural ceiling.
func FormatQuality(resp *app.QualityResponse) string {
	var b strings.Builder
	b.WriteString(RenderGauge(resp.Quality, 0, gaugeWidth) + "\n\n")
	b.WriteString(KeyValues([][2]string{
		{"Quality", Bold(Pct(resp.Quality))},
		{"Weighted sum", fmt.Sprintf("%.4f", resp.Raw)},
		{"Ceiling", Pct(resp.MaxAchievable)},
	}))
	return RenderBox("Go-Live Quality", b.String())
}

// FormatPropagate lists the adjusted completion per phase.
func FormatPropagate(resp *app.PropagateResponse) string {
	var b strings.Builder
	b.WriteString(completionTable(resp.Params))
	b.WriteString("\n")

	pairs := [][2]string{
		{"Quality", Bold(Pct(resp.Quality))},
		{"Aggregate risk", fmt.Sprintf("%.0f", resp.SumRisks)},
	}
	if resp.Blocked {
		pairs = append(pairs,
			[2]string{"Blocking factor", StyleYellow.Render(fmt.Sprintf("%.3f", resp.BlockingFactor))},
			[2]string{"Blocking cut", StyleRed.Render(fmt.Sprintf("-%.1f pp", resp.BlockingCutPct))},
		)
	}
	b.WriteString(KeyValues(pairs))
	return RenderBox("Delay Propagation", b.String())
}

// FormatSimulation summarizes the sample distribution.
func FormatSimulation(resp *app.SimulateResponse) string {
	var b strings.Builder
	s := resp.Summary

	if resp.Deterministic {
		b.WriteString(Dim("No aggregate risk: a single deterministic evaluation.") + "\n\n")
	}
	b.WriteString(RenderGauge(s.Mean, 0, gaugeWidth) + "\n\n")

	pairs := [][2]string{
		{"Model quality", Pct(resp.Quality)},
		{"Samples", fmt.Sprintf("%d", s.Count)},
		{"Mean", Bold(Pct(s.Mean))},
		{"Median", Pct(s.Median)},
		{"Std dev", fmt.Sprintf("%.4f", resp.StdDev)},
		{"P10 / P90", fmt.Sprintf("%s / %s", Pct(s.P10), Pct(s.P90))},
		{"Min / Max", fmt.Sprintf("%s / %s", Pct(s.Min), Pct(s.Max))},
	}
	if !resp.Deterministic {
		pairs = append(pairs,
			[2]string{"Noise std", fmt.Sprintf("%.4f", resp.NoiseStd)},
			[2]string{"Seed", fmt.Sprintf("%d", resp.Seed)},
		)
	}
	if resp.ProbabilityAtLeast != nil {
		pairs = append(pairs, [2]string{"P(at least threshold)", Pct(*resp.ProbabilityAtLeast * 100)})
	}
	if resp.RunID != "" {
		pairs = append(pairs, [2]string{"Run", TruncID(resp.RunID)})
	}
	b.WriteString(KeyValues(pairs))
	return RenderBox("Monte Carlo", b.String())
}

// FormatOptimize shows the delay plan on success or the ordered reasons.
func FormatOptimize(resp *app.OptimizeResponse, target float64) string {
	var b strings.Builder
	res := resp.Result

	b.WriteString(Verdict(res.Success) + "\n\n")
	b.WriteString(RenderGauge(res.AchievedQuality, target, gaugeWidth) + "\n\n")

	pairs := [][2]string{
		{"Target", Pct(target)},
		{"Achieved", QualityStyle(res.AchievedQuality, target).Render(fmt.Sprintf("%.2f%%", res.AchievedQuality))},
		{"Ceiling", Pct(resp.MaxAchievable)},
	}
	if res.Success {
		pairs = append(pairs,
			[2]string{"Total delay", Days(res.TotalDelayDays)},
			[2]string{"Estimated cost", Amount(res.EstimatedCost)},
		)
	}
	if resp.RunID != "" {
		pairs = append(pairs, [2]string{"Run", TruncID(resp.RunID)})
	}
	b.WriteString(KeyValues(pairs))

	if res.Success && res.Delays != nil {
		b.WriteString("\n")
		b.WriteString(delayTable(*res.Delays))
	}
	if len(res.Reasons) > 0 {
		b.WriteString("\n" + Bold("Reasons") + "\n")
		b.WriteString(numbered(res.Reasons))
	}
	return RenderBox("Delay Optimization", b.String())
}

// FormatHealth shows the composite score and the per-phase breakdown.
func FormatHealth(resp *app.HealthResponse) string {
	var b strings.Builder
	sc := resp.Score

	b.WriteString(fmt.Sprintf("%s  %s\n\n", RiskIndicator(sc.Level), Bold(fmt.Sprintf("%.1f / 100", sc.Score))))
	b.WriteString(KeyValues([][2]string{
		{"Quality", fmt.Sprintf("%.1f", sc.QualityComponent)},
		{"Time", fmt.Sprintf("%.1f", sc.TimeComponent)},
		{"Budget", fmt.Sprintf("%.1f", sc.BudgetComponent)},
		{"Risk", fmt.Sprintf("%.1f", sc.RiskComponent)},
	}))
	b.WriteString("\n")

	headers := []string{"PHASE", "HEALTH", "DIRECT", "INHERITED", "RISK", "SEVERITY"}
	rows := make([][]string, 0, len(resp.Diagnosis.Phases))
	for _, ph := range resp.Diagnosis.Phases {
		rows = append(rows, []string{
			ph.Phase.String(),
			Pct(ph.Health),
			Pct(ph.DirectPct),
			Pct(ph.AccumulatedPct),
			Pct(ph.RiskPct),
			SeverityIndicator(ph.Severity),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + Bold("Main risk: ") + resp.Diagnosis.Summary() + "\n")
	return RenderBox("Project Health", b.String())
}

// FormatImpact lists each delayed phase and what it pushes out.
func FormatImpact(resp *app.ImpactResponse) string {
	if len(resp.Impacts) == 0 {
		return RenderBox("Delay Impact", Dim("No delayed phases.")+"\n")
	}
	headers := []string{"PHASE", "DELAY", "PER DAY", "IMPACT", "CUMULATIVE", "AFFECTS"}
	rows := make([][]string, 0, len(resp.Impacts))
	for _, im := range resp.Impacts {
		rows = append(rows, []string{
			im.Phase.String(),
			Days(im.DelayDays),
			fmt.Sprintf("%.2f pp", im.ImpactPerDay),
			StyleRed.Render(fmt.Sprintf("-%.2f pp", im.MarginalPct)),
			fmt.Sprintf("-%.2f pp", im.AccumulatedPct),
			PhaseList(im.Affected),
		})
	}
	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + KeyValues([][2]string{{"Total impact", Bold(fmt.Sprintf("-%.2f pp", resp.TotalPct))}}))
	return RenderBox("Delay Impact", b.String())
}

func completionTable(c domain.Completion) string {
	rows := make([][]string, 0, domain.PhaseCount)
	for _, p := range domain.Phases {
		rows = append(rows, []string{p.String(), Pct(c[p] * 100)})
	}
	return RenderTable([]string{"PHASE", "COMPLETION"}, rows)
}

func delayTable(d domain.DelayVector) string {
	rows := make([][]string, 0, len(domain.DelayablePhases))
	for _, p := range domain.DelayablePhases {
		days := Dim("0")
		if d[p] > 0 {
			days = StyleYellow.Render(fmt.Sprintf("+%d", d[p]))
		}
		rows = append(rows, []string{p.String(), days})
	}
	return RenderTable([]string{"PHASE", "EXTRA DAYS"}, rows)
}

func numbered(lines []string) string {
	var b strings.Builder
	for i, l := range lines {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, l)
	}
	return b.String()
}
