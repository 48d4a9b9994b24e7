// Package report writes engine results to xlsx workbooks.
package report

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/montecarlo"
)

const (
	SheetSummary = "Summary"
	SheetDelays  = "Delays"
	SheetReasons = "Reasons"
	SheetSamples = "Samples"
)

// RunWorkbook lays out one recorded run: a key/value summary, the per-phase
// delay plan and the ordered failure reasons.
func RunWorkbook(run *domain.Run) (*excelize.File, error) {
	if run == nil {
		return nil, errors.New("run is nil")
	}
	w, err := newWorkbook(SheetSummary)
	if err != nil {
		return nil, err
	}

	target := "-"
	if run.TargetQuality != nil {
		target = fmt.Sprintf("%.1f", *run.TargetQuality)
	}
	rows := [][]any{
		{"Field", "Value"},
		{"Run ID", run.ID},
		{"Kind", string(run.Kind)},
		{"Created", run.CreatedAt.UTC().Format(time.RFC3339)},
		{"Target quality", target},
		{"Quality", round2(run.Quality)},
		{"Std dev", round2(run.StdDev)},
		{"Success", run.Success},
		{"Iterations", run.Iterations},
		{"Technical risk", run.Risk.Technical},
		{"Business risk", run.Risk.Business},
		{"Scope risk", run.Risk.Scope},
		{"Total delay days", run.TotalDelayDays},
		{"Estimated cost", round2(run.EstimatedCost)},
	}
	if err := w.writeRows(SheetSummary, rows); err != nil {
		return nil, w.fail(err)
	}

	if err := w.addSheet(SheetDelays); err != nil {
		return nil, w.fail(err)
	}
	delayRows := [][]any{{"Phase", "Delay days"}}
	if run.Delays != nil {
		for _, p := range domain.Phases {
			delayRows = append(delayRows, []any{p.String(), run.Delays[p]})
		}
	}
	if err := w.writeRows(SheetDelays, delayRows); err != nil {
		return nil, w.fail(err)
	}

	if err := w.addSheet(SheetReasons); err != nil {
		return nil, w.fail(err)
	}
	reasonRows := [][]any{{"#", "Reason"}}
	for i, r := range run.Reasons {
		reasonRows = append(reasonRows, []any{i + 1, r})
	}
	if err := w.writeRows(SheetReasons, reasonRows); err != nil {
		return nil, w.fail(err)
	}
	if err := w.f.SetColWidth(SheetReasons, "B", "B", 110); err != nil {
		return nil, w.fail(err)
	}

	return w.f, nil
}

// SimulationWorkbook writes the sample set and its distribution summary.
func SimulationWorkbook(samples []float64, summary montecarlo.Summary) (*excelize.File, error) {
	w, err := newWorkbook(SheetSummary)
	if err != nil {
		return nil, err
	}

	rows := [][]any{
		{"Statistic", "Value"},
		{"Samples", summary.Count},
		{"Mean", round2(summary.Mean)},
		{"Median", round2(summary.Median)},
		{"Std dev", round2(summary.StdDev)},
		{"P10", round2(summary.P10)},
		{"P90", round2(summary.P90)},
		{"Min", round2(summary.Min)},
		{"Max", round2(summary.Max)},
	}
	if err := w.writeRows(SheetSummary, rows); err != nil {
		return nil, w.fail(err)
	}

	if err := w.addSheet(SheetSamples); err != nil {
		return nil, w.fail(err)
	}
	sampleRows := make([][]any, 0, len(samples)+1)
	sampleRows = append(sampleRows, []any{"#", "Quality"})
	for i, s := range samples {
		sampleRows = append(sampleRows, []any{i + 1, s})
	}
	if err := w.writeRows(SheetSamples, sampleRows); err != nil {
		return nil, w.fail(err)
	}
	return w.f, nil
}

// Save writes f to path and closes it.
func Save(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		_ = f.Close()
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return f.Close()
}

type workbook struct {
	f      *excelize.File
	header int
}

// newWorkbook renames the default sheet to first and registers the bold
// header style.
func newWorkbook(first string) (*workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", first); err != nil {
		_ = f.Close()
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &workbook{f: f, header: style}, nil
}

func (w *workbook) addSheet(name string) error {
	_, err := w.f.NewSheet(name)
	return err
}

// writeRows writes rows from A1 down and bolds the first one.
func (w *workbook) writeRows(sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := w.f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(sheet, "A1", last, w.header)
}

func (w *workbook) fail(err error) error {
	_ = w.f.Close()
	return err
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
