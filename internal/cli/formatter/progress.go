package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderGauge renders a quality percentage as a bar like [████░░░░] 45.0%,
// colored against target the way QualityStyle grades it.
func RenderGauge(pct, target float64, width int) string {
	pct = max(0, min(100, pct))
	if width < 2 {
		width = 2
	}

	filled := min(int(pct/100*float64(width)), width)
	fill, empty := filledBlock, emptyBlock
	if plain {
		fill, empty = "#", "."
	}
	bar := strings.Repeat(fill, filled) + strings.Repeat(empty, width-filled)

	return fmt.Sprintf("[%s] %5.1f%%", QualityStyle(pct, target).Render(bar), pct)
}
