package forecast

import (
	"errors"
	"math"
	"testing"

	"github.com/hojung1231/nestegg/internal/model"
)

func annualInput(annual, raisePct float64) model.IncomeInput {
	return model.IncomeInput{Mode: model.IncomeAnnualGross, AnnualGross: annual, RaisePct: raisePct}
}

var noLeave = model.LeaveWindow{PayMode: model.LeavePayAuto}

func TestReconcileRequiresBothProjections(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2025}
	income := ProjectIncome(h, annualInput(4800, 3.5), annualInput(3600, 3.5), noLeave, noLeave)
	expenses := ProjectExpenses(model.NewExpenseLedger(), h)

	if _, err := Reconcile(nil, expenses); !errors.Is(err, ErrMissingPrerequisite) {
		t.Fatalf("nil income: err = %v, want ErrMissingPrerequisite", err)
	}
	if _, err := Reconcile(income, nil); !errors.Is(err, ErrMissingPrerequisite) {
		t.Fatalf("nil expenses: err = %v, want ErrMissingPrerequisite", err)
	}
	if _, err := Reconcile(income, expenses); err != nil {
		t.Fatalf("both present: unexpected err %v", err)
	}
}

func TestReconcileRejectsHorizonMismatch(t *testing.T) {
	income := ProjectIncome(Horizon{StartYear: 2024, EndYear: 2026},
		annualInput(4800, 0), annualInput(3600, 0), noLeave, noLeave)
	expenses := ProjectExpenses(model.NewExpenseLedger(), Horizon{StartYear: 2024, EndYear: 2025})

	if _, err := Reconcile(income, expenses); err == nil {
		t.Fatal("mismatched horizons reconciled without error")
	}
}

func TestReconcileNetIdentity(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2026}
	income := ProjectIncome(h, annualInput(4800, 3.5), annualInput(3600, 3.5), noLeave, noLeave)

	ledger := model.NewExpenseLedger()
	ledger.AddFixed("food", 60)
	ledger.AddVariable("dining", 15)
	ledger.Housing = 130
	ledger.InflationPct = 2.2
	expenses := ProjectExpenses(ledger, h)

	cf, err := Reconcile(income, expenses)
	if err != nil {
		t.Fatal(err)
	}
	if len(cf.Net) != h.Months() {
		t.Fatalf("net series has %d months, want %d", len(cf.Net), h.Months())
	}
	for i := range cf.Net {
		if math.Abs(cf.Net[i]-(cf.Income[i]-cf.Expense[i])) > 1e-9 {
			t.Fatalf("month %d: net %.6f != income %.6f - expense %.6f",
				i, cf.Net[i], cf.Income[i], cf.Expense[i])
		}
	}
}

func TestAnnualMatchesMonthlyTotals(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2028}
	income := ProjectIncome(h, annualInput(4800, 3.5), annualInput(3600, 2.0), noLeave, noLeave)
	ledger := model.NewExpenseLedger()
	ledger.AddFixed("maintenance", 20)
	ledger.Housing = 130
	ledger.InflationPct = 2.2
	expenses := ProjectExpenses(ledger, h)

	cf, err := Reconcile(income, expenses)
	if err != nil {
		t.Fatal(err)
	}

	annual := Annual(cf)
	if len(annual) != h.YearCount() {
		t.Fatalf("annual rows = %d, want %d", len(annual), h.YearCount())
	}
	if annual[0].Year != 2024 || annual[len(annual)-1].Year != 2028 {
		t.Fatalf("year range %d-%d, want 2024-2028", annual[0].Year, annual[len(annual)-1].Year)
	}

	var annualNet, monthlyNet float64
	for _, af := range annual {
		if math.Abs(af.Net-(af.Income-af.Expense)) > 1e-9 {
			t.Fatalf("year %d: net %.6f != income - expense", af.Year, af.Net)
		}
		annualNet += af.Net
	}
	for _, n := range cf.Net {
		monthlyNet += n
	}
	if math.Abs(annualNet-monthlyNet) > 1e-6 {
		t.Fatalf("annual net sum %.6f != monthly net sum %.6f", annualNet, monthlyNet)
	}
}

func TestWindowClampsSpan(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2033}
	income := ProjectIncome(h, annualInput(4800, 0), annualInput(3600, 0), noLeave, noLeave)
	cf, err := Reconcile(income, ProjectExpenses(model.NewExpenseLedger(), h))
	if err != nil {
		t.Fatal(err)
	}

	// Requests beyond five years collapse to five.
	w, err := Window(cf, 2024, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(w.Net) != 5*12 {
		t.Fatalf("window covers %d months, want 60", len(w.Net))
	}

	// Near the horizon end the window shrinks to what remains.
	w, err = Window(cf, 2032, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(w.Net) != 2*12 {
		t.Fatalf("tail window covers %d months, want 24", len(w.Net))
	}

	// Zero or negative spans mean a single year.
	w, err = Window(cf, 2024, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(w.Net) != 12 {
		t.Fatalf("zero-span window covers %d months, want 12", len(w.Net))
	}
}

func TestWindowRejectsOutOfRangeStart(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2026}
	income := ProjectIncome(h, annualInput(4800, 0), annualInput(3600, 0), noLeave, noLeave)
	cf, err := Reconcile(income, ProjectExpenses(model.NewExpenseLedger(), h))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Window(cf, 2023, 1); err == nil {
		t.Fatal("start year before horizon accepted")
	}
	if _, err := Window(cf, 2027, 1); err == nil {
		t.Fatal("start year past horizon accepted")
	}
}

func TestWindowCumulativeIsPrefixSum(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2026}
	income := ProjectIncome(h, annualInput(4800, 3.5), annualInput(3600, 3.5), noLeave, noLeave)
	ledger := model.NewExpenseLedger()
	ledger.AddFixed("food", 60)
	ledger.InflationPct = 2.2
	cf, err := Reconcile(income, ProjectExpenses(ledger, h))
	if err != nil {
		t.Fatal(err)
	}

	w, err := Window(cf, 2025, 2)
	if err != nil {
		t.Fatal(err)
	}
	if w.StartIdx != 12 {
		t.Fatalf("start index = %d, want 12", w.StartIdx)
	}
	var sum float64
	for i, n := range w.Net {
		sum += n
		if math.Abs(w.Cumulative[i]-sum) > 1e-9 {
			t.Fatalf("cumulative[%d] = %.6f, want %.6f", i, w.Cumulative[i], sum)
		}
	}
}

func TestCoupleRetirementDrivesHorizon(t *testing.T) {
	husband := model.Person{BirthYear: 1990, RetireAge: 60}
	wife := model.Person{BirthYear: 1992, RetireAge: 60}
	h := NewHorizon(2024, husband, wife)

	if h.StartYear != 2024 {
		t.Fatalf("start year = %d, want 2024", h.StartYear)
	}
	// The later retiree (born 1992, retiring at 60) works through 2051.
	if h.EndYear != 2051 {
		t.Fatalf("end year = %d, want 2051", h.EndYear)
	}

	income := ProjectIncome(h, annualInput(4800, 3.5), annualInput(3600, 3.5), noLeave, noLeave)
	cf, err := Reconcile(income, ProjectExpenses(model.NewExpenseLedger(), h))
	if err != nil {
		t.Fatal(err)
	}
	if len(cf.Net) != 28*12 {
		t.Fatalf("cash flow covers %d months, want %d", len(cf.Net), 28*12)
	}
}
