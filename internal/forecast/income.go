package forecast

import (
	"math"

	"github.com/hojung1231/nestegg/internal/model"
)

// netRetention is the flat after-tax approximation: take-home pay is 90%
// of gross, truncated to a whole 만원.
const netRetention = 0.90

// Parental-leave pay caps in 만원, by leave-month index.
const (
	leaveCapFirst  = 250 // months 1-3, 100% of gross
	leaveCapSecond = 200 // months 4-6, 100% of gross
	leaveCapRest   = 150 // months 7+, 80% of gross
)

// NetFromGross converts a monthly gross salary to net pay.
func NetFromGross(gross float64) int {
	return int(gross * netRetention)
}

// GrossBase normalizes an income entry to a 12-month gross salary array.
// Monthly-net entries are mapped back to gross by dividing out the
// retention rate.
func GrossBase(in model.IncomeInput) []float64 {
	base := make([]float64, 12)
	switch in.Mode {
	case model.IncomeMonthlyGross:
		copy(base, in.MonthlyGross)
	case model.IncomeMonthlyNet:
		for i, net := range in.MonthlyNet {
			if i >= 12 {
				break
			}
			base[i] = net / netRetention
		}
	default: // annual gross
		monthly := in.AnnualGross / 12
		for i := range base {
			base[i] = monthly
		}
	}
	return base
}

// ApplyRaise compounds the annual raise onto a 12-month gross array.
// Offset 0 is the base year and returns the base values unchanged.
func ApplyRaise(base []float64, raisePct float64, offset int) []float64 {
	factor := math.Pow(1+raisePct/100, float64(offset))
	out := make([]float64, len(base))
	for i, g := range base {
		out[i] = g * factor
	}
	return out
}

// ProjectNet produces one 12-month net-pay array per horizon year from a
// base gross array and an annual raise rate.
func ProjectNet(base []float64, raisePct float64, h Horizon) [][]int {
	years := make([][]int, h.YearCount())
	for i := range years {
		gross := ApplyRaise(base, raisePct, i)
		nets := make([]int, 12)
		for m, g := range gross {
			nets[m] = NetFromGross(g)
		}
		years[i] = nets
	}
	return years
}

// LeavePay computes parental-leave pay for a single leave month. idx counts
// from the start of this spouse's leave, independent of the calendar month.
// Manual override values win while they last; indices past the override
// table fall back to the statutory formula.
func LeavePay(gross float64, idx int, w model.LeaveWindow) int {
	if w.PayMode == model.LeavePayManual && idx < len(w.Manual) {
		return w.Manual[idx]
	}
	var pay float64
	var limit int
	switch {
	case idx < 3:
		pay = gross
		limit = leaveCapFirst
	case idx < 6:
		pay = gross
		limit = leaveCapSecond
	default:
		pay = gross * 0.8
		limit = leaveCapRest
	}
	result := int(pay * netRetention)
	if result > limit {
		return limit
	}
	return result
}

// ApplyLeave overwrites the leave window's months in a projected net grid
// with leave pay. A start year outside the horizon is a no-op, and leave
// months past the last modeled year are dropped silently — both are
// deliberate, not error states. The substituted gross is recomputed from
// the base array at each covered month's own year offset, so leave that
// spans a year boundary picks up the raise.
func ApplyLeave(years [][]int, h Horizon, w model.LeaveWindow, base []float64, raisePct float64) [][]int {
	if w.Months == 0 {
		return years
	}
	startIdx := h.YearIndex(w.StartYear)
	if startIdx < 0 {
		return years
	}
	monthIdx := w.StartMonth - 1
	for i := 0; i < w.Months; i++ {
		cy := startIdx + (monthIdx+i)/12
		cm := (monthIdx + i) % 12
		if cy >= len(years) {
			break
		}
		gross := ApplyRaise(base, raisePct, cy)[cm]
		years[cy][cm] = LeavePay(gross, i, w)
	}
	return years
}

// ProjectIncome runs the full compensation projection for both spouses:
// raise-compounded net grids with each spouse's leave window overlaid.
func ProjectIncome(h Horizon, husband, wife model.IncomeInput, husbandLeave, wifeLeave model.LeaveWindow) *model.IncomeProjection {
	hBase := GrossBase(husband)
	wBase := GrossBase(wife)

	hYears := ProjectNet(hBase, husband.RaisePct, h)
	wYears := ProjectNet(wBase, wife.RaisePct, h)

	hYears = ApplyLeave(hYears, h, husbandLeave, hBase, husband.RaisePct)
	wYears = ApplyLeave(wYears, h, wifeLeave, wBase, wife.RaisePct)

	return &model.IncomeProjection{
		StartYear: h.StartYear,
		Husband:   hYears,
		Wife:      wYears,
	}
}
