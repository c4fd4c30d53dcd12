package forecast

import (
	"math"

	"github.com/hojung1231/nestegg/internal/model"
)

// wonPerUnit converts between 만원 plan amounts and absolute KRW. The
// amortization runs on absolute KRW so the 10-KRW payment rounding matches
// bank statements, then results are scaled back.
const wonPerUnit = 10_000

// Loan returns the required principal in 만원, floored at zero when cash
// covers the price.
func Loan(p model.PurchasePlan) float64 {
	if need := p.Price - p.Cash; need > 0 {
		return need
	}
	return 0
}

// MonthlyPaymentWon computes the fixed amortized payment in absolute KRW,
// floor-rounded to the nearest 10 KRW. A zero rate or zero loan yields 0
// here; the zero-rate purchase case is handled by the straight-line branch
// in RemainingBalance.
func MonthlyPaymentWon(p model.PurchasePlan) float64 {
	loan := Loan(p) * wonPerUnit
	r := p.RatePct / 100 / 12
	n := float64(p.TermYears * 12)
	if r <= 0 || loan <= 0 {
		return 0
	}
	growth := math.Pow(1+r, n)
	payment := loan * r * growth / (growth - 1)
	return math.Floor(payment/10) * 10
}

// RemainingBalance returns the outstanding principal in 만원 after
// yearsElapsed years of payments, via the closed-form amortization
// remainder. A zero rate switches to straight-line amortization — a
// required branch, not an error path.
func RemainingBalance(p model.PurchasePlan, yearsElapsed int) float64 {
	loanWon := Loan(p) * wonPerUnit
	r := p.RatePct / 100 / 12
	n := float64(p.TermYears * 12)
	if loanWon <= 0 {
		return 0
	}
	if r > 0 {
		growth := math.Pow(1+r, n)
		paid := math.Pow(1+r, float64(12*yearsElapsed))
		return loanWon * (growth - paid) / (growth - 1) / wonPerUnit
	}
	// Straight-line: no interest, equal principal installments.
	remain := loanWon - loanWon/n*12*float64(yearsElapsed)
	if remain < 0 {
		remain = 0
	}
	return remain / wonPerUnit
}

// SimulatePurchase runs the year-by-year purchase scenario: house value
// under independent up and down price paths (each compounded from year
// zero, not chained), remaining loan balance, and net worth per path.
func SimulatePurchase(p model.PurchasePlan) *model.HousingProjection {
	payment := MonthlyPaymentWon(p)

	proj := &model.HousingProjection{
		Mode:           model.HousingPurchase,
		Loan:           Loan(p),
		MonthlyPayment: int(payment / wonPerUnit),
	}
	if p.Price > 0 {
		proj.Leverage = Loan(p) / p.Price
	}

	proj.Years = make([]model.HousingYear, 0, p.SimYears)
	for i := 1; i <= p.SimYears; i++ {
		up := p.Price * math.Pow(1+p.UpRatePct/100, float64(i))
		down := p.Price * math.Pow(1+p.DownRatePct/100, float64(i))
		balance := RemainingBalance(p, i)
		proj.Years = append(proj.Years, model.HousingYear{
			Year:         i,
			ValueUp:      up,
			ValueDown:    down,
			LoanBalance:  balance,
			NetWorthUp:   up - balance,
			NetWorthDown: down - balance,
		})
	}
	return proj
}

// SimulateJeonse returns the zero-leverage deposit position: no
// amortization, no price exposure, and a zero housing payment published
// to the ledger.
func SimulateJeonse(p model.JeonsePlan) *model.HousingProjection {
	return &model.HousingProjection{
		Mode:     model.HousingJeonse,
		Position: p.Deposit + p.Cash,
	}
}
