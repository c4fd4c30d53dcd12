package model

// IncomeProjection holds both spouses' projected net pay over the horizon:
// one 12-element array per calendar year, leave substitution applied.
type IncomeProjection struct {
	StartYear int
	Husband   [][]int // [yearOffset][month0-11], 만원
	Wife      [][]int
}

// Years returns the number of projected calendar years.
func (p *IncomeProjection) Years() int {
	return len(p.Husband)
}

// CombinedMonthly flattens husband+wife into one month-indexed array.
func (p *IncomeProjection) CombinedMonthly() []float64 {
	out := make([]float64, 0, len(p.Husband)*12)
	for y := range p.Husband {
		for m := 0; m < 12; m++ {
			out = append(out, float64(p.Husband[y][m]+p.Wife[y][m]))
		}
	}
	return out
}

// HousingYear is one simulated year of the purchase scenario. Values are
// 만원; the up and down price paths are each compounded from year zero.
type HousingYear struct {
	Year         int // 1-based offset from purchase
	ValueUp      float64
	ValueDown    float64
	LoanBalance  float64
	NetWorthUp   float64
	NetWorthDown float64
}

// HousingProjection is the housing simulation output plus the monthly
// payment published to the expense ledger.
type HousingProjection struct {
	Mode           HousingMode
	Loan           float64
	MonthlyPayment int // 만원, 0 for jeonse
	Leverage       float64
	Position       float64 // jeonse: deposit + cash
	Years          []HousingYear
}

// ExpenseProjection holds the four parallel monthly cost arrays plus their
// elementwise sum, covering the full horizon.
type ExpenseProjection struct {
	StartYear int
	Fixed     []float64
	Variable  []float64
	Housing   []float64
	Childcare []float64
	Total     []float64
}

// Months returns the horizon length in months.
func (p *ExpenseProjection) Months() int {
	return len(p.Total)
}

// CashFlow is the reconciled month-indexed income/expense/net series.
type CashFlow struct {
	StartYear int
	Income    []float64
	Expense   []float64
	Net       []float64
}

// AnnualFlow is one calendar year summed from twelve consecutive months.
type AnnualFlow struct {
	Year    int
	Income  float64
	Expense float64
	Net     float64
}

// MonthlyWindow is a bounded monthly view with a running cumulative sum of
// net savings across the window.
type MonthlyWindow struct {
	StartYear  int
	StartIdx   int // month index into the full horizon
	Income     []float64
	Expense    []float64
	Net        []float64
	Cumulative []float64
}
