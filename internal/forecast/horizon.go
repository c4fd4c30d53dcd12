// Package forecast implements the projection core: net-income projection,
// housing amortization, the household expense ledger, and the cash-flow
// reconciliation that ties them together. Everything here is pure — the
// same inputs always produce the same outputs, and callers recompute in
// full on every change.
package forecast

import (
	"fmt"

	"github.com/hojung1231/nestegg/internal/model"
)

// fallbackSpan extends the horizon to at least this many years when both
// spouses retire early.
const fallbackSpan = 10

// Horizon is the inclusive span of modeled calendar years. Every monthly
// grid in the planner shares one horizon.
type Horizon struct {
	StartYear int
	EndYear   int
}

// NewHorizon derives the horizon from both spouses' last working years,
// holding it open to at least fallbackSpan years.
func NewHorizon(startYear int, husband, wife model.Person) Horizon {
	end := husband.LastWorkingYear()
	if w := wife.LastWorkingYear(); w > end {
		end = w
	}
	if min := startYear + fallbackSpan - 1; end < min {
		end = min
	}
	return Horizon{StartYear: startYear, EndYear: end}
}

// YearCount returns the number of calendar years in the horizon.
func (h Horizon) YearCount() int {
	return h.EndYear - h.StartYear + 1
}

// Months returns the horizon length in months.
func (h Horizon) Months() int {
	return 12 * h.YearCount()
}

// YearIndex returns the zero-based offset of a calendar year, or -1 if the
// year falls outside the horizon.
func (h Horizon) YearIndex(year int) int {
	if year < h.StartYear || year > h.EndYear {
		return -1
	}
	return year - h.StartYear
}

// Contains reports whether the calendar year lies inside the horizon.
func (h Horizon) Contains(year int) bool {
	return h.YearIndex(year) >= 0
}

// Year returns the calendar year for a zero-based year offset.
func (h Horizon) Year(idx int) int {
	return h.StartYear + idx
}

// MonthLabel formats a month index as "2025Y 3M".
func (h Horizon) MonthLabel(i int) string {
	return fmt.Sprintf("%dY %dM", h.StartYear+i/12, i%12+1)
}

// YearLabels returns one label per calendar year.
func (h Horizon) YearLabels() []string {
	labels := make([]string, h.YearCount())
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", h.StartYear+i)
	}
	return labels
}
