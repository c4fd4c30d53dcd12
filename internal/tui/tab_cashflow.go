package tui

import (
	"fmt"
	"strings"

	"github.com/hojung1231/nestegg/internal/cli"
	"github.com/hojung1231/nestegg/internal/forecast"
	"github.com/hojung1231/nestegg/internal/model"
	"github.com/hojung1231/nestegg/internal/tui/components"
	"github.com/hojung1231/nestegg/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Expense series toggles, indexed into cashState.include.
const (
	seriesFixed = iota
	seriesVariable
	seriesHousing
	seriesChildcare
	seriesCount
)

var seriesNames = [seriesCount]string{"fixed", "variable", "housing", "childcare"}

// Which stream the chart plots.
const (
	chartNet = iota
	chartIncome
	chartExpense
	chartCount
)

var chartNames = [chartCount]string{"Net", "Income", "Expense"}

// cashState tracks the cash-flow tab's view mode and monthly window.
type cashState struct {
	annual    bool
	startYear int
	spanYears int
	chart     int
	include   [seriesCount]bool
}

func newCashState(h forecast.Horizon) cashState {
	return cashState{
		annual:    true,
		startYear: h.StartYear,
		spanYears: 5,
		include:   [seriesCount]bool{true, true, true, true},
	}
}

func (s *cashState) shiftStart(delta int, h forecast.Horizon) {
	year := s.startYear + delta
	if year < h.StartYear {
		year = h.StartYear
	}
	if year > h.EndYear {
		year = h.EndYear
	}
	s.startYear = year
}

func (a App) updateCashFlowTab(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "t":
		a.cash.annual = !a.cash.annual
		return a, nil, true
	case "[":
		a.cash.shiftStart(-1, a.horizon)
		return a, nil, true
	case "]":
		a.cash.shiftStart(1, a.horizon)
		return a, nil, true
	case "s":
		a.cash.chart = (a.cash.chart + 1) % chartCount
		return a, nil, true
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		a.cash.include[idx] = !a.cash.include[idx]
		return a, nil, true
	}
	return a, nil, false
}

// selectedExpenses clones the expense projection with only the toggled
// series summed into Total, so the reconciliation reflects the subset.
func (a App) selectedExpenses() *model.ExpenseProjection {
	src := a.expenses
	months := src.Months()
	out := &model.ExpenseProjection{
		StartYear: src.StartYear,
		Fixed:     src.Fixed,
		Variable:  src.Variable,
		Housing:   src.Housing,
		Childcare: src.Childcare,
		Total:     make([]float64, months),
	}
	parts := [seriesCount][]float64{src.Fixed, src.Variable, src.Housing, src.Childcare}
	for i := 0; i < months; i++ {
		for s, arr := range parts {
			if a.cash.include[s] {
				out.Total[i] += arr[i]
			}
		}
	}
	return out
}

func (a App) renderCashFlowTab(cw, contentH int) string {
	t := theme.Active

	// Both upstream projections must exist before reconciling
	if a.income == nil || a.expenses == nil {
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

		var body strings.Builder
		body.WriteString(warnStyle.Render("Cash flow needs both upstream projections."))
		body.WriteString("\n\n")
		if a.income == nil {
			body.WriteString(labelStyle.Render("  • Income: not computed — open the [i]ncome tab"))
			body.WriteString("\n")
		}
		if a.expenses == nil {
			body.WriteString(labelStyle.Render("  • Expenses: not computed — open the [b]udget tab"))
			body.WriteString("\n")
		}
		return components.ContentCard("Cash Flow", body.String(), cw)
	}

	cf, err := forecast.Reconcile(a.income, a.selectedExpenses())
	if err != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
		return components.ContentCard("Cash Flow", warnStyle.Render(err.Error()), cw)
	}

	if a.cash.annual {
		return a.renderAnnualFlow(cw, cf)
	}
	return a.renderMonthlyWindow(cw, cf)
}

func (a App) renderAnnualFlow(cw int, cf *model.CashFlow) string {
	t := theme.Active
	var b strings.Builder

	annual := forecast.Annual(cf)

	var totalNet, firstDeficit float64
	firstDeficitYear := 0
	for _, af := range annual {
		totalNet += af.Net
		if af.Net < 0 && firstDeficitYear == 0 {
			firstDeficitYear = af.Year
			firstDeficit = af.Net
		}
	}

	deficitCaption := "none"
	if firstDeficitYear != 0 {
		deficitCaption = fmt.Sprintf("%d (%s)", firstDeficitYear, cli.FormatSignedWon(firstDeficit))
	}

	cards := []struct{ Label, Value, Caption string }{
		{"Net This Year", cli.FormatSignedWon(annual[0].Net), fmt.Sprintf("%d", annual[0].Year)},
		{"Lifetime Net", cli.FormatEok(totalNet), fmt.Sprintf("through %d", a.horizon.EndYear)},
		{"First Deficit", deficitCaption, ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	chartVals := make([]float64, len(annual))
	chartLabels := make([]string, len(annual))
	for i, af := range annual {
		switch a.cash.chart {
		case chartIncome:
			chartVals[i] = af.Income
		case chartExpense:
			chartVals[i] = af.Expense
		default:
			chartVals[i] = af.Net
		}
		chartLabels[i] = fmt.Sprintf("%d", af.Year)
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Annual %s %s", chartNames[a.cash.chart], a.seriesCaption()),
		components.BarChart(chartVals, chartLabels, a.chartColor(), components.CardInnerWidth(cw), 12),
		cw,
	))
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var tableBody strings.Builder
	tableBody.WriteString(labelStyle.Render(fmt.Sprintf("%-6s %14s %14s %14s",
		"Year", "Income", "Expense", "Net")))
	tableBody.WriteString("\n")
	limit := 10
	if len(annual) < limit {
		limit = len(annual)
	}
	for _, af := range annual[:limit] {
		tableBody.WriteString(valueStyle.Render(fmt.Sprintf("%-6d %14s %14s ",
			af.Year, cli.FormatEok(af.Income), cli.FormatEok(af.Expense))))
		tableBody.WriteString(cli.RenderNet(af.Net))
		tableBody.WriteString("\n")
	}
	tableBody.WriteString("\n")
	tableBody.WriteString(labelStyle.Render("[t] monthly view  [s] chart stream  [1-4] toggle expense series"))

	b.WriteString(components.ContentCard("First Decade", tableBody.String(), cw))

	return b.String()
}

func (a App) renderMonthlyWindow(cw int, cf *model.CashFlow) string {
	t := theme.Active
	var b strings.Builder

	w, err := forecast.Window(cf, a.cash.startYear, a.cash.spanYears)
	if err != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
		return components.ContentCard("Cash Flow", warnStyle.Render(err.Error()), cw)
	}

	endTotal := w.Cumulative[len(w.Cumulative)-1]
	cards := []struct{ Label, Value, Caption string }{
		{"Window Start", fmt.Sprintf("%d", w.StartYear), fmt.Sprintf("%d months", len(w.Net))},
		{"First Month", cli.FormatSignedWon(w.Net[0]), ""},
		{"Window Total", cli.FormatSignedWon(endTotal), "cumulative net"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Monthly values, labeled at each January
	chartVals := w.Net
	switch a.cash.chart {
	case chartIncome:
		chartVals = w.Income
	case chartExpense:
		chartVals = w.Expense
	}
	chartLabels := make([]string, len(chartVals))
	for i := range chartLabels {
		if (w.StartIdx+i)%12 == 0 {
			chartLabels[i] = fmt.Sprintf("%d", cf.StartYear+(w.StartIdx+i)/12)
		}
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Monthly %s %s", chartNames[a.cash.chart], a.seriesCaption()),
		components.BarChart(chartVals, chartLabels, a.chartColor(), components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var sparkBody strings.Builder
	sparkBody.WriteString(components.Sparkline(w.Cumulative, t.Green))
	sparkBody.WriteString("\n\n")
	sparkBody.WriteString(labelStyle.Render("[t] annual view  [ / ] shift start year  [s] chart stream  [1-4] toggle expense series"))

	b.WriteString(components.ContentCard("Cumulative Savings Across Window", sparkBody.String(), cw))

	return b.String()
}

// chartColor maps the selected stream to its conventional color.
func (a App) chartColor() lipgloss.Color {
	t := theme.Active
	switch a.cash.chart {
	case chartIncome:
		return t.Green
	case chartExpense:
		return t.Orange
	}
	return t.Blue
}

// seriesCaption names the active expense subset, or nothing when all
// series are included.
func (a App) seriesCaption() string {
	var on, off []string
	for i, name := range seriesNames {
		if a.cash.include[i] {
			on = append(on, name)
		} else {
			off = append(off, name)
		}
	}
	if len(off) == 0 {
		return ""
	}
	return "(" + strings.Join(on, "+") + ")"
}
