package forecast

import (
	"math"
	"testing"

	"github.com/hojung1231/nestegg/internal/model"
)

// Reference values follow the standard amortized-loan formulas:
//
//	payment = P·r·(1+r)^n / ((1+r)^n − 1)
//	balance = P·((1+r)^n − (1+r)^p) / ((1+r)^n − 1)
//
// with r the monthly rate and n the term in months. Principal is absolute
// KRW; the payment is floor-rounded to 10 KRW before rescaling.

const balanceTolerance = 0.5 // 만원

func refPayment(loanWon, annualRate float64, termYears int) float64 {
	r := annualRate / 100 / 12
	n := float64(termYears * 12)
	g := math.Pow(1+r, n)
	return math.Floor(loanWon*r*g/(g-1)/10) * 10
}

func TestLoanFloorsAtZero(t *testing.T) {
	tests := []struct {
		price, cash float64
		want        float64
	}{
		{70000, 30000, 40000},
		{50000, 50000, 0},
		{40000, 60000, 0},
	}
	for _, tc := range tests {
		p := model.PurchasePlan{Price: tc.price, Cash: tc.cash}
		if got := Loan(p); got != tc.want {
			t.Errorf("Loan(price %.0f, cash %.0f) = %.0f, want %.0f", tc.price, tc.cash, got, tc.want)
		}
	}
}

func TestMonthlyPaymentMatchesFormula(t *testing.T) {
	tests := []struct {
		name      string
		plan      model.PurchasePlan
		wantWon   float64
		wantLedge int // 만원 published to the ledger
	}{
		{
			name:      "40000 at 3.8 percent over 30y",
			plan:      model.PurchasePlan{Price: 70000, Cash: 30000, TermYears: 30, RatePct: 3.8, SimYears: 10},
			wantWon:   1_863_820,
			wantLedge: 186,
		},
		{
			name:      "20000 at 4 percent over 25y",
			plan:      model.PurchasePlan{Price: 20000, Cash: 0, TermYears: 25, RatePct: 4.0, SimYears: 5},
			wantWon:   1_055_670,
			wantLedge: 105,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MonthlyPaymentWon(tc.plan)
			if got != tc.wantWon {
				t.Fatalf("payment = %.0f KRW, want %.0f", got, tc.wantWon)
			}
			ref := refPayment(Loan(tc.plan)*wonPerUnit, tc.plan.RatePct, tc.plan.TermYears)
			if got != ref {
				t.Fatalf("payment %.0f disagrees with reference formula %.0f", got, ref)
			}
			proj := SimulatePurchase(tc.plan)
			if proj.MonthlyPayment != tc.wantLedge {
				t.Fatalf("published payment = %d, want %d", proj.MonthlyPayment, tc.wantLedge)
			}
		})
	}
}

func TestRemainingBalanceReachesZeroAtTerm(t *testing.T) {
	p := model.PurchasePlan{Price: 70000, Cash: 30000, TermYears: 30, RatePct: 3.8}
	if bal := RemainingBalance(p, 30); math.Abs(bal) > balanceTolerance {
		t.Fatalf("balance at term end = %.4f, want 0", bal)
	}
}

func TestRemainingBalanceStrictlyDecreases(t *testing.T) {
	p := model.PurchasePlan{Price: 70000, Cash: 30000, TermYears: 30, RatePct: 3.8}
	prev := Loan(p)
	for year := 1; year <= 30; year++ {
		bal := RemainingBalance(p, year)
		if bal >= prev {
			t.Fatalf("balance did not decrease at year %d: %.2f >= %.2f", year, bal, prev)
		}
		prev = bal
	}
}

func TestRemainingBalanceZeroRateStraightLine(t *testing.T) {
	// Zero rate switches to linear principal amortization.
	p := model.PurchasePlan{Price: 12000, Cash: 0, TermYears: 10, RatePct: 0}
	tests := []struct {
		years int
		want  float64
	}{
		{0, 12000},
		{5, 6000},
		{10, 0},
	}
	for _, tc := range tests {
		if got := RemainingBalance(p, tc.years); math.Abs(got-tc.want) > balanceTolerance {
			t.Errorf("zero-rate balance after %dy = %.2f, want %.0f", tc.years, got, tc.want)
		}
	}
}

func TestSimulatePurchaseScenarioPaths(t *testing.T) {
	p := model.PurchasePlan{
		Price: 70000, Cash: 30000,
		TermYears: 30, RatePct: 3.8,
		UpRatePct: 3.0, DownRatePct: -2.0,
		SimYears: 10,
	}
	proj := SimulatePurchase(p)

	if len(proj.Years) != 10 {
		t.Fatalf("simulated years = %d, want 10", len(proj.Years))
	}
	if math.Abs(proj.Leverage-40000.0/70000.0) > 1e-9 {
		t.Fatalf("leverage = %.4f, want %.4f", proj.Leverage, 40000.0/70000.0)
	}

	for i, y := range proj.Years {
		// Each path compounds from year zero, not chained off last year.
		wantUp := 70000 * math.Pow(1.03, float64(i+1))
		wantDown := 70000 * math.Pow(0.98, float64(i+1))
		if math.Abs(y.ValueUp-wantUp) > 1e-6 {
			t.Fatalf("year %d up value = %.2f, want %.2f", y.Year, y.ValueUp, wantUp)
		}
		if math.Abs(y.ValueDown-wantDown) > 1e-6 {
			t.Fatalf("year %d down value = %.2f, want %.2f", y.Year, y.ValueDown, wantDown)
		}
		if math.Abs(y.NetWorthUp-(y.ValueUp-y.LoanBalance)) > 1e-9 {
			t.Fatalf("year %d net worth up inconsistent", y.Year)
		}
		if math.Abs(y.NetWorthDown-(y.ValueDown-y.LoanBalance)) > 1e-9 {
			t.Fatalf("year %d net worth down inconsistent", y.Year)
		}
	}
}

func TestSimulateJeonse(t *testing.T) {
	proj := SimulateJeonse(model.JeonsePlan{Deposit: 40000, Cash: 30000})
	if proj.Position != 70000 {
		t.Fatalf("position = %.0f, want 70000", proj.Position)
	}
	if proj.MonthlyPayment != 0 {
		t.Fatalf("jeonse payment = %d, want 0", proj.MonthlyPayment)
	}
	if len(proj.Years) != 0 {
		t.Fatalf("jeonse has %d simulated years, want none", len(proj.Years))
	}
}
