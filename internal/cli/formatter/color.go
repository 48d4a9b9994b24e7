package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RiskIndicator returns a colored project health level such as "● AT RISK".
func RiskIndicator(risk domain.RiskLevel) string {
	switch risk {
	case domain.RiskCritical:
		return StyleRed.Render("● CRITICAL")
	case domain.RiskAtRisk:
		return StyleYellow.Render("● AT RISK")
	case domain.RiskOnTrack:
		return StyleGreen.Render("● ON TRACK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// SeverityIndicator colors a phase severity.
func SeverityIndicator(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return StyleRed.Render("▲ critical")
	case domain.SeverityModerate:
		return StyleYellow.Render("● moderate")
	default:
		return StyleGreen.Render("○ mild")
	}
}

// Verdict renders the optimizer outcome.
func Verdict(success bool) string {
	if success {
		return StyleGreen.Render("✔ TARGET REACHABLE")
	}
	return StyleRed.Render("✖ TARGET NOT REACHED")
}

// QualityStyle picks a color for a quality percentage against target.
// A zero target grades against the fixed 90/80 bands.
func QualityStyle(q, target float64) lipgloss.Style {
	if target > 0 {
		if q >= target {
			return StyleGreen
		}
		if q >= target-5 {
			return StyleYellow
		}
		return StyleRed
	}
	switch {
	case q >= 90:
		return StyleGreen
	case q >= 80:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat(rule(), len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
