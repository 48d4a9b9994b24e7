package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// plain drops box borders and box-drawing rules for non-terminal output.
var plain bool

// SetPlain switches between boxed terminal output and plain text.
func SetPlain(v bool) {
	plain = v
}

func rule() string {
	if plain {
		return "-"
	}
	return "─"
}

// RenderBox wraps content in a rounded-border box with an optional title.
// In plain mode the title becomes a header line and the border is dropped.
func RenderBox(title string, content string) string {
	if plain {
		if title == "" {
			return content
		}
		return Header(title) + "\n" + content
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered+"\n\n"+content) + "\n"
	}
	return boxStyle.Render(content) + "\n"
}

// Pct formats a percentage with one decimal, the display precision of the
// model.
func Pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Days formats a whole-day count.
func Days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// Amount formats a cost without currency.
func Amount(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// PhaseList joins phase names.
func PhaseList(phases []domain.Phase) string {
	if len(phases) == 0 {
		return Dim("--")
	}
	names := make([]string, len(phases))
	for i, p := range phases {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}

// KeyValues renders label/value pairs with labels padded to one column.
func KeyValues(pairs [][2]string) string {
	width := 0
	for _, kv := range pairs {
		width = max(width, lipgloss.Width(kv[0]))
	}
	var b strings.Builder
	for _, kv := range pairs {
		fmt.Fprintf(&b, "%s%s  %s\n", Dim(kv[0]), strings.Repeat(" ", width-lipgloss.Width(kv[0])), kv[1])
	}
	return b.String()
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	return HumanTimestampFrom(t, time.Now())
}

// HumanTimestampFrom is HumanTimestamp against a fixed reference time.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006 15:04")
	}
}
