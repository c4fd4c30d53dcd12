package forecast

import (
	"math"
	"testing"

	"github.com/hojung1231/nestegg/internal/model"
)

func TestChildcareBaseBands(t *testing.T) {
	tests := []struct {
		ageMonths int
		want      float64
	}{
		{-1, 0},
		{0, 60},
		{35, 60},
		{36, 80},
		{83, 80},
		{84, 100},
		{155, 100},
		{156, 140},
		{227, 140},
		{228, 180},
		{275, 180},
		{276, 0},
		{400, 0},
	}
	for _, tc := range tests {
		if got := childcareBase(tc.ageMonths); got != tc.want {
			t.Errorf("childcareBase(%d) = %.0f, want %.0f", tc.ageMonths, got, tc.want)
		}
	}
}

func TestChildcareCostsBirthAnchored(t *testing.T) {
	// Child born 2025-03, horizon starting 2025, 2.2% inflation.
	h := Horizon{StartYear: 2025, EndYear: 2030}
	child := model.ChildRecord{BirthYear: 2025, BirthMonth: 3}
	costs := ChildcareCosts(child, h, 2.2)

	// January and February 2025: not born yet.
	if costs[0] != 0 || costs[1] != 0 {
		t.Fatalf("pre-birth months = %.2f/%.2f, want 0/0", costs[0], costs[1])
	}
	// March 2025: age 0, no inflation yet at the horizon base year.
	if costs[2] != 60 {
		t.Fatalf("birth month cost = %.2f, want 60", costs[2])
	}
	// March 2028: age 36 months, band 80, three years of inflation from
	// the horizon base.
	want := 80 * math.Pow(1.022, 3)
	if got := costs[3*12+2]; math.Abs(got-want) > 1e-9 {
		t.Fatalf("2028-03 cost = %.6f, want %.6f", got, want)
	}
}

func TestChildcareInflationUsesHorizonBase(t *testing.T) {
	// A child born after the horizon start still compounds inflation from
	// the horizon's base year, not the birth year.
	h := Horizon{StartYear: 2024, EndYear: 2030}
	child := model.ChildRecord{BirthYear: 2026, BirthMonth: 1}
	costs := ChildcareCosts(child, h, 2.2)

	want := 60 * math.Pow(1.022, 2) // 2026 is offset 2 from 2024
	if got := costs[2*12]; math.Abs(got-want) > 1e-9 {
		t.Fatalf("2026-01 cost = %.6f, want %.6f", got, want)
	}
}

func TestProjectExpensesInflationPerElapsedYear(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2026}
	ledger := model.NewExpenseLedger()
	ledger.AddFixed("maintenance", 20)
	ledger.AddFixed("telecom", 10)
	ledger.AddVariable("transport", 8)
	ledger.Housing = 130
	ledger.InflationPct = 2.2

	proj := ProjectExpenses(ledger, h)
	if proj.Months() != 36 {
		t.Fatalf("months = %d, want 36", proj.Months())
	}

	// Year 0 is uninflated.
	if proj.Fixed[0] != 30 || proj.Variable[0] != 8 || proj.Housing[0] != 130 {
		t.Fatalf("month 0 = %.2f/%.2f/%.2f, want 30/8/130", proj.Fixed[0], proj.Variable[0], proj.Housing[0])
	}
	// All twelve months of a year share one inflation factor.
	if proj.Fixed[11] != proj.Fixed[0] {
		t.Fatalf("month 11 fixed = %.4f, want %.4f", proj.Fixed[11], proj.Fixed[0])
	}
	// Month 12 steps to the next factor, identically for every line item.
	factor := 1.022
	if math.Abs(proj.Fixed[12]-30*factor) > 1e-9 {
		t.Fatalf("month 12 fixed = %.6f, want %.6f", proj.Fixed[12], 30*factor)
	}
	if math.Abs(proj.Housing[12]-130*factor) > 1e-9 {
		t.Fatalf("month 12 housing = %.6f, want %.6f", proj.Housing[12], 130*factor)
	}

	// Total is the elementwise sum of the four component arrays.
	for i := 0; i < proj.Months(); i++ {
		sum := proj.Fixed[i] + proj.Variable[i] + proj.Housing[i] + proj.Childcare[i]
		if math.Abs(proj.Total[i]-sum) > 1e-9 {
			t.Fatalf("month %d total = %.6f, component sum = %.6f", i, proj.Total[i], sum)
		}
	}
}

func TestProjectExpensesRecomputesWholeHorizon(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2025}
	ledger := model.NewExpenseLedger()
	ledger.AddFixed("food", 60)

	before := ProjectExpenses(ledger, h)

	// A later addition applies retroactively from month zero: projection
	// is a full recompute, never a blend with prior arrays.
	ledger.AddVariable("dining", 15)
	after := ProjectExpenses(ledger, h)

	if after.Variable[0] != 15 {
		t.Fatalf("month 0 variable after addition = %.2f, want 15", after.Variable[0])
	}
	if after.Total[0] != before.Total[0]+15 {
		t.Fatalf("month 0 total = %.2f, want %.2f", after.Total[0], before.Total[0]+15)
	}
}

func TestProjectExpensesSumsChildren(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2027}
	ledger := model.NewExpenseLedger()
	ledger.Children = []model.ChildRecord{
		{BirthYear: 2024, BirthMonth: 1},
		{BirthYear: 2025, BirthMonth: 1},
	}

	proj := ProjectExpenses(ledger, h)
	// First month: only the first child exists.
	if proj.Childcare[0] != 60 {
		t.Fatalf("month 0 childcare = %.2f, want 60", proj.Childcare[0])
	}
	// 2025-01: both children in the 0-2 band, zero inflation configured.
	if proj.Childcare[12] != 120 {
		t.Fatalf("2025-01 childcare = %.2f, want 120", proj.Childcare[12])
	}
}
