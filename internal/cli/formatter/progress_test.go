package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name    string
		pct     float64
		width   int
		wantPct string
	}{
		{"zero", 0, 8, "  0%"},
		{"half", 50, 8, " 50%"},
		{"full", 100, 8, "100%"},
		{"overtime keeps real percentage", 125, 8, "125%"},
		{"negative clamps to zero", -10, 8, "  0%"},
		{"tiny width clamps to 2", 50, 1, " 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.Contains(t, got, tt.wantPct)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "]")
		})
	}
}

func TestRenderProgress_BarNeverOverflows(t *testing.T) {
	got := RenderProgress(250, 6)
	assert.Contains(t, got, "250%")
	// full bar, no more than width filled blocks
	assert.NotContains(t, got, filledBlock+filledBlock+filledBlock+filledBlock+filledBlock+filledBlock+filledBlock)
}

func TestRenderProgress_EmptyAtZero(t *testing.T) {
	got := RenderProgress(0, 4)
	assert.Contains(t, got, emptyBlock)
	assert.NotContains(t, got, filledBlock)
}
