// Package model defines the plain data structures shared across the planner:
// the couple's plan inputs and the projection outputs derived from them.
// All monetary values are in units of 10,000 KRW (만원) unless noted.
package model

// Person identifies one spouse by birth year and planned retirement age.
type Person struct {
	BirthYear int
	RetireAge int
}

// LastWorkingYear returns the final calendar year of employment.
func (p Person) LastWorkingYear() int {
	return p.BirthYear + p.RetireAge - 1
}

// IncomeMode selects how a spouse's base salary was entered.
type IncomeMode string

const (
	IncomeAnnualGross  IncomeMode = "annual-gross"
	IncomeMonthlyGross IncomeMode = "monthly-gross"
	IncomeMonthlyNet   IncomeMode = "monthly-net"
)

// IncomeInput holds one spouse's salary entry plus the annual raise rate.
// Only the field matching Mode is meaningful; the others are ignored.
type IncomeInput struct {
	Mode         IncomeMode
	AnnualGross  float64
	MonthlyGross []float64 // 12 entries
	MonthlyNet   []float64 // 12 entries
	RaisePct     float64
}

// LeavePayMode selects how parental-leave pay is computed.
type LeavePayMode string

const (
	LeavePayAuto   LeavePayMode = "auto"
	LeavePayManual LeavePayMode = "manual"
)

// LeaveWindow describes one spouse's parental leave. Months of 0 disables
// the window entirely. Manual holds the 12 per-month override values used
// when PayMode is LeavePayManual.
type LeaveWindow struct {
	StartYear  int
	StartMonth int // 1-12
	Months     int // 0-36
	PayMode    LeavePayMode
	Manual     []int // 12 entries, 만원
}

// HousingMode selects between buying and a jeonse deposit.
type HousingMode string

const (
	HousingPurchase HousingMode = "purchase"
	HousingJeonse   HousingMode = "jeonse"
)

// PurchasePlan holds the inputs for a leveraged home purchase.
type PurchasePlan struct {
	Cash        float64
	Price       float64
	TermYears   int     // 10-40
	RatePct     float64 // 2.0-8.0
	UpRatePct   float64 // annual price appreciation scenario
	DownRatePct float64 // annual price decline scenario
	SimYears    int     // 1-30
}

// JeonsePlan holds the inputs for a zero-leverage deposit position.
type JeonsePlan struct {
	Deposit float64
	Cash    float64
}

// ChildRecord is one planned child, anchoring the age-banded cost curve.
type ChildRecord struct {
	BirthYear  int
	BirthMonth int // 1-12
}

// ExpenseLedger is the session-owned mapping of named recurring costs plus
// the housing payment published by the housing simulation. Item names are
// unique by construction (map keys).
type ExpenseLedger struct {
	Fixed        map[string]float64
	Variable     map[string]float64
	Housing      float64 // monthly payment, 만원
	InflationPct float64
	Children     []ChildRecord
}

// NewExpenseLedger returns an empty ledger with initialized maps.
func NewExpenseLedger() *ExpenseLedger {
	return &ExpenseLedger{
		Fixed:    make(map[string]float64),
		Variable: make(map[string]float64),
	}
}

// AddFixed inserts or replaces a named fixed-cost item.
func (l *ExpenseLedger) AddFixed(name string, monthly float64) {
	l.Fixed[name] = monthly
}

// AddVariable inserts or replaces a named variable-cost item.
func (l *ExpenseLedger) AddVariable(name string, monthly float64) {
	l.Variable[name] = monthly
}
