package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/golive/internal/app"
	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/health"
	"github.com/alexanderramin/golive/internal/montecarlo"
	"github.com/alexanderramin/golive/internal/optimizer"
	"github.com/alexanderramin/golive/internal/propagation"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func usePlain(t *testing.T) {
	t.Helper()
	SetPlain(true)
	t.Cleanup(func() { SetPlain(false) })
}

func TestRenderGauge(t *testing.T) {
	usePlain(t)
	assert.Equal(t, "[#####.....]  50.0%", stripANSI(RenderGauge(50, 0, 10)))
	assert.Equal(t, "[##########] 100.0%", stripANSI(RenderGauge(140, 0, 10)))
	assert.Equal(t, "[..........]   0.0%", stripANSI(RenderGauge(-3, 0, 10)))
}

func TestQualityStyle_AgainstTarget(t *testing.T) {
	assert.Equal(t, StyleGreen, QualityStyle(93, 93))
	assert.Equal(t, StyleYellow, QualityStyle(89, 93))
	assert.Equal(t, StyleRed, QualityStyle(80, 93))
	assert.Equal(t, StyleYellow, QualityStyle(85, 0))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	usePlain(t)
	out := stripANSI(RenderTable([]string{"A", "LONG"}, [][]string{{"xyz", "1"}}))
	assert.Equal(t, "A    LONG\n---  ----\nxyz  1\n", out)
}

func TestRenderBox_PlainHasNoBorder(t *testing.T) {
	usePlain(t)
	out := stripANSI(RenderBox("Run", "body\n"))
	assert.Equal(t, "RUN\n---\nbody\n", out)
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Feb 27, 2026 12:00", HumanTimestampFrom(now.Add(-48*time.Hour), now))
}

func TestFormatOptimize_Failure(t *testing.T) {
	usePlain(t)
	resp := &app.OptimizeResponse{
		Result: optimizer.Result{
			AchievedQuality: 86.318,
			Reasons:         []string{"first reason", "second reason"},
		},
		MaxAchievable: 95.4545,
	}
	out := stripANSI(FormatOptimize(resp, 90))

	assert.Contains(t, out, "TARGET NOT REACHED")
	assert.Contains(t, out, "86.32%")
	assert.Contains(t, out, "95.5%")
	assert.Contains(t, out, "1. first reason")
	assert.Contains(t, out, "2. second reason")
	assert.NotContains(t, out, "EXTRA DAYS")
}

func TestFormatOptimize_Success(t *testing.T) {
	usePlain(t)
	var d domain.DelayVector
	d[domain.PhaseUAT] = 3
	resp := &app.OptimizeResponse{
		RunID: "0123456789abcdef",
		Result: optimizer.Result{
			Success: true, Delays: &d, AchievedQuality: 93.08,
			TotalDelayDays: 3, EstimatedCost: 14783.2,
		},
		MaxAchievable: 95.4545,
	}
	out := stripANSI(FormatOptimize(resp, 93))

	assert.Contains(t, out, "TARGET REACHABLE")
	assert.Contains(t, out, "3 days")
	assert.Contains(t, out, "14783")
	assert.Contains(t, out, "+3")
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "89abcdef")
}

func TestFormatSimulation_Deterministic(t *testing.T) {
	usePlain(t)
	resp := &app.SimulateResponse{
		Quality:       95.4545,
		Deterministic: true,
		Samples:       []float64{95.4545},
		Summary:       montecarlo.Summarize([]float64{95.4545}),
	}
	out := stripANSI(FormatSimulation(resp))
	assert.Contains(t, out, "single deterministic evaluation")
	assert.NotContains(t, out, "Seed")
}

func TestFormatPropagate_ShowsBlocking(t *testing.T) {
	usePlain(t)
	out := stripANSI(FormatPropagate(&app.PropagateResponse{
		Params:         domain.FullCompletion(),
		Quality:        88.5,
		Blocked:        true,
		BlockingFactor: 0.588,
		BlockingCutPct: 6.54,
	}))
	assert.Contains(t, out, "0.588")
	assert.Contains(t, out, "-6.5 pp")
	assert.Contains(t, out, "Hypercare")
}

func TestFormatHealth(t *testing.T) {
	usePlain(t)
	diag, err := health.Diagnose(domain.DefaultCoefficients(), domain.DelayVector{}, domain.PhaseValues{})
	assert.NoError(t, err)
	out := stripANSI(FormatHealth(&app.HealthResponse{
		Score:     health.ComputeScore(health.ScoreInput{Quality: 95}),
		Diagnosis: diag,
	}))
	assert.Contains(t, out, "ON TRACK")
	assert.Contains(t, out, "Main risk:")
	assert.Contains(t, out, "mild")
}

func TestFormatImpact(t *testing.T) {
	usePlain(t)
	assert.Contains(t, stripANSI(FormatImpact(&app.ImpactResponse{})), "No delayed phases.")

	out := stripANSI(FormatImpact(&app.ImpactResponse{
		Impacts: []propagation.PhaseImpact{{
			Phase: domain.PhaseMigration, DelayDays: 5, ImpactPerDay: 0.4,
			MarginalPct: 2, AccumulatedPct: 2,
			Affected: []domain.Phase{domain.PhaseE2E, domain.PhaseTraining},
		}},
		TotalPct: 2,
	}))
	assert.Contains(t, out, "E2E, Training")
	assert.Contains(t, out, "-2.00 pp")
}

func TestFormatHistory(t *testing.T) {
	usePlain(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	target := 93.0
	runs := []*domain.Run{
		{ID: "aaaaaaaa-1", Kind: domain.RunOptimize, TargetQuality: &target, Quality: 91, Reasons: []string{"x"}, CreatedAt: now.Add(-time.Hour)},
		{ID: "bbbbbbbb-2", Kind: domain.RunSimulate, Quality: 95.4, Success: true, CreatedAt: now.Add(-2 * time.Minute)},
	}
	out := stripANSI(FormatHistory(runs, now))

	assert.Contains(t, out, "aaaaaaaa")
	assert.Contains(t, out, "failed (1)")
	assert.Contains(t, out, "2m ago")
	assert.Contains(t, stripANSI(FormatHistory(nil, now)), "No recorded runs.")
}
