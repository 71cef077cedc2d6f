package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%. The bar fill
// is capped at the full width; the printed percentage is not, so overtime
// reads as a full bar at, say, 125%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if width < 2 {
		width = 2
	}

	barPct := pct
	if barPct > 100 {
		barPct = 100
	}
	filled := int(barPct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	pctStr := fmt.Sprintf("%3.0f%%", pct)
	return fmt.Sprintf("[%s] %s", FulfillmentStyle(pct).Render(bar), pctStr)
}
