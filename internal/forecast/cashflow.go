package forecast

import (
	"errors"
	"fmt"

	"github.com/hojung1231/nestegg/internal/model"
)

// maxWindowYears bounds the monthly view to keep it readable.
const maxWindowYears = 5

// ErrMissingPrerequisite is returned when reconciliation is requested
// before both the income and expense projections exist. Absence is a
// distinct state, never treated as zero-filled data.
var ErrMissingPrerequisite = errors.New("income and expense projections must be computed first")

// Reconcile merges the income and expense projections into the monthly
// net-savings series. Both inputs must cover the identical horizon.
func Reconcile(income *model.IncomeProjection, expenses *model.ExpenseProjection) (*model.CashFlow, error) {
	if income == nil || expenses == nil {
		return nil, ErrMissingPrerequisite
	}
	monthly := income.CombinedMonthly()
	if len(monthly) != expenses.Months() {
		return nil, fmt.Errorf("horizon mismatch: income covers %d months, expenses %d",
			len(monthly), expenses.Months())
	}

	cf := &model.CashFlow{
		StartYear: income.StartYear,
		Income:    monthly,
		Expense:   append([]float64(nil), expenses.Total...),
		Net:       make([]float64, len(monthly)),
	}
	for i := range cf.Net {
		cf.Net[i] = cf.Income[i] - cf.Expense[i]
	}
	return cf, nil
}

// Annual sums the monthly series into per-calendar-year totals.
func Annual(cf *model.CashFlow) []model.AnnualFlow {
	years := len(cf.Net) / 12
	out := make([]model.AnnualFlow, years)
	for y := 0; y < years; y++ {
		af := model.AnnualFlow{Year: cf.StartYear + y}
		for m := y * 12; m < (y+1)*12; m++ {
			af.Income += cf.Income[m]
			af.Expense += cf.Expense[m]
			af.Net += cf.Net[m]
		}
		out[y] = af
	}
	return out
}

// Window slices a monthly view starting at a calendar year, spanning up to
// maxWindowYears years (clamped to the horizon), with a running cumulative
// sum of net savings across the window.
func Window(cf *model.CashFlow, startYear, spanYears int) (*model.MonthlyWindow, error) {
	totalYears := len(cf.Net) / 12
	yearIdx := startYear - cf.StartYear
	if yearIdx < 0 || yearIdx >= totalYears {
		return nil, fmt.Errorf("start year %d outside modeled horizon", startYear)
	}
	if spanYears < 1 {
		spanYears = 1
	}
	if spanYears > maxWindowYears {
		spanYears = maxWindowYears
	}
	if rest := totalYears - yearIdx; spanYears > rest {
		spanYears = rest
	}

	start := yearIdx * 12
	end := start + spanYears*12
	w := &model.MonthlyWindow{
		StartYear:  startYear,
		StartIdx:   start,
		Income:     cf.Income[start:end],
		Expense:    cf.Expense[start:end],
		Net:        cf.Net[start:end],
		Cumulative: make([]float64, end-start),
	}
	var sum float64
	for i, n := range w.Net {
		sum += n
		w.Cumulative[i] = sum
	}
	return w, nil
}
