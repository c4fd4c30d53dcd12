package forecast

import (
	"math"

	"github.com/hojung1231/nestegg/internal/model"
)

// childcareMaxAgeMonths bounds the cost curve: ages 0 through 22.
const childcareMaxAgeMonths = 12 * 23

// childcareBase returns the flat monthly cost in 만원 for an age in months,
// zero outside the modeled window.
func childcareBase(ageMonths int) float64 {
	switch {
	case ageMonths < 0 || ageMonths >= childcareMaxAgeMonths:
		return 0
	case ageMonths < 36: // 0-2
		return 60
	case ageMonths < 84: // 3-6
		return 80
	case ageMonths < 156: // 7-12
		return 100
	case ageMonths < 228: // 13-18
		return 140
	default: // 19-22
		return 180
	}
}

// ChildcareCosts returns one child's monthly cost curve over the horizon.
// The age is anchored to the child's birth year and month; inflation
// compounds from the horizon's start year, not the birth year.
func ChildcareCosts(c model.ChildRecord, h Horizon, inflationPct float64) []float64 {
	months := h.Months()
	costs := make([]float64, months)
	for i := 0; i < months; i++ {
		curYear := h.StartYear + i/12
		curMonth := i%12 + 1
		ageMonths := (curYear-c.BirthYear)*12 + (curMonth - c.BirthMonth)
		base := childcareBase(ageMonths)
		if base == 0 {
			continue
		}
		yearOffset := curYear - h.StartYear
		costs[i] = base * math.Pow(1+inflationPct/100, float64(yearOffset))
	}
	return costs
}

// inflate spreads a flat monthly base across the horizon, compounding
// inflation once per elapsed full year from the horizon start.
func inflate(base float64, months int, inflationPct float64) []float64 {
	out := make([]float64, months)
	for i := range out {
		yearOffset := i / 12
		out[i] = base * math.Pow(1+inflationPct/100, float64(yearOffset))
	}
	return out
}

// ProjectExpenses recomputes the full expense projection from the ledger's
// current contents. There is no incremental state: adding an item and
// re-projecting rebuilds every array over the whole horizon, so later
// additions apply retroactively.
func ProjectExpenses(l *model.ExpenseLedger, h Horizon) *model.ExpenseProjection {
	months := h.Months()
	proj := &model.ExpenseProjection{
		StartYear: h.StartYear,
		Fixed:     make([]float64, months),
		Variable:  make([]float64, months),
		Housing:   make([]float64, months),
		Childcare: make([]float64, months),
		Total:     make([]float64, months),
	}

	for _, base := range l.Fixed {
		for i, v := range inflate(base, months, l.InflationPct) {
			proj.Fixed[i] += v
		}
	}
	for _, base := range l.Variable {
		for i, v := range inflate(base, months, l.InflationPct) {
			proj.Variable[i] += v
		}
	}
	copy(proj.Housing, inflate(l.Housing, months, l.InflationPct))
	for _, child := range l.Children {
		for i, v := range ChildcareCosts(child, h, l.InflationPct) {
			proj.Childcare[i] += v
		}
	}

	for i := 0; i < months; i++ {
		proj.Total[i] = proj.Fixed[i] + proj.Variable[i] + proj.Housing[i] + proj.Childcare[i]
	}
	return proj
}
