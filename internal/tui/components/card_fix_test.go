package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/hojung1231/nestegg/internal/tui/theme"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Monthly Payment", "186만", 24)
	tallCard := ContentCard("Net Worth", "Year 1\nYear 2\nYear 3\nYear 4\nYear 5", 24)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("setup: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("joined height = %d, want tallest card height %d", len(lines), tallLines)
	}
}

func TestLayoutRowSumsExactly(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 3},
		{99, 4},
		{7, 2},
		{120, 5},
	}
	for _, tc := range tests {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
	if LayoutRow(50, 0) != nil {
		t.Error("LayoutRow with zero columns should be nil")
	}
}

func TestBarChartRendersNegativeRegion(t *testing.T) {
	theme.SetActive("flexoki-dark")

	values := []float64{3000, 1500, -800, 2200}
	labels := []string{"2025", "2026", "2027", "2028"}
	out := BarChart(values, labels, theme.Active.Blue, 60, 12)

	if !strings.Contains(out, "┼") {
		t.Error("chart with deficits should cross the zero axis")
	}
	if !strings.Contains(out, "-") {
		t.Error("chart should carry a negative tick label")
	}

	// All-positive data keeps the plain corner axis.
	out = BarChart([]float64{3000, 1500, 800}, []string{"a", "b", "c"}, theme.Active.Blue, 60, 12)
	if !strings.Contains(out, "└") {
		t.Error("all-positive chart should use the corner axis glyph")
	}
}

func TestSparklineSpansNegatives(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := Sparkline([]float64{-10, 0, 10}, theme.Active.Green)
	if !strings.Contains(out, "▁") || !strings.Contains(out, "█") {
		t.Errorf("sparkline should span the full block range, got %q", out)
	}
}
