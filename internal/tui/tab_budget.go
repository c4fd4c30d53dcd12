package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hojung1231/nestegg/internal/cli"
	"github.com/hojung1231/nestegg/internal/config"
	"github.com/hojung1231/nestegg/internal/model"
	"github.com/hojung1231/nestegg/internal/tui/components"
	"github.com/hojung1231/nestegg/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Add-item modes for the budget tab.
const (
	addNone = iota
	addFixed
	addVariable
	addChild
)

// budgetState tracks the budget tab's cursor and add-item flow.
type budgetState struct {
	cursor int
	adding int
	input  textinput.Model
	errMsg string
}

// budgetItem is one row in the item list: a named ledger entry or a child.
type budgetItem struct {
	kind  int // addFixed, addVariable, or addChild
	name  string
	value float64
	child model.ChildRecord
}

// items returns the ledger contents in stable display order.
func budgetItems(l *model.ExpenseLedger) []budgetItem {
	var out []budgetItem
	for _, name := range sortedKeys(l.Fixed) {
		out = append(out, budgetItem{kind: addFixed, name: name, value: l.Fixed[name]})
	}
	for _, name := range sortedKeys(l.Variable) {
		out = append(out, budgetItem{kind: addVariable, name: name, value: l.Variable[name]})
	}
	for _, c := range l.Children {
		out = append(out, budgetItem{
			kind:  addChild,
			name:  "child " + cli.FormatMonth(c.BirthYear, c.BirthMonth),
			child: c,
		})
	}
	return out
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *budgetState) clampCursor(l *model.ExpenseLedger) {
	n := len(budgetItems(l))
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func newBudgetInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 30
	ti.Focus()
	return ti
}

func (a App) updateBudgetTab(key string) (tea.Model, tea.Cmd, bool) {
	items := budgetItems(a.ledger)

	switch key {
	case "j", "down":
		if a.budget.cursor < len(items)-1 {
			a.budget.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.budget.cursor > 0 {
			a.budget.cursor--
		}
		return a, nil, true
	case "a":
		a.budget.adding = addFixed
		a.budget.input = newBudgetInput("name amount, e.g. food 60")
		a.budget.errMsg = ""
		return a, a.budget.input.Cursor.BlinkCmd(), true
	case "v":
		a.budget.adding = addVariable
		a.budget.input = newBudgetInput("name amount, e.g. dining 15")
		a.budget.errMsg = ""
		return a, a.budget.input.Cursor.BlinkCmd(), true
	case "n":
		a.budget.adding = addChild
		a.budget.input = newBudgetInput("birth month, e.g. 2026-03")
		a.budget.errMsg = ""
		return a, a.budget.input.Cursor.BlinkCmd(), true
	case "d":
		if a.budget.cursor < len(items) {
			a.deleteBudgetItem(items[a.budget.cursor])
			a.budget.clampCursor(a.ledger)
			a.computeExpenses()
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a *App) deleteBudgetItem(item budgetItem) {
	switch item.kind {
	case addFixed:
		delete(a.ledger.Fixed, item.name)
		delete(a.cfg.Expenses.Fixed, item.name)
	case addVariable:
		delete(a.ledger.Variable, item.name)
		delete(a.cfg.Expenses.Variable, item.name)
	case addChild:
		for i, c := range a.ledger.Children {
			if c == item.child {
				a.ledger.Children = append(a.ledger.Children[:i], a.ledger.Children[i+1:]...)
				break
			}
		}
		for i, c := range a.cfg.Children {
			if c.BirthYear == item.child.BirthYear && c.BirthMonth == item.child.BirthMonth {
				a.cfg.Children = append(a.cfg.Children[:i], a.cfg.Children[i+1:]...)
				break
			}
		}
	}
	_ = config.Save(a.cfg)
}

func (a App) updateBudgetInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.budget.adding = addNone
		a.budget.errMsg = ""
		return a, nil
	case "enter":
		val := strings.TrimSpace(a.budget.input.Value())
		if err := a.applyBudgetInput(val); err != nil {
			a.budget.errMsg = err.Error()
			return a, nil
		}
		a.budget.adding = addNone
		a.budget.errMsg = ""
		_ = config.Save(a.cfg)
		a.computeExpenses()
		return a, nil
	}

	var cmd tea.Cmd
	a.budget.input, cmd = a.budget.input.Update(msg)
	return a, cmd
}

func (a *App) applyBudgetInput(val string) error {
	if a.budget.adding == addChild {
		year, month, err := parseYearMonth(val)
		if err != nil {
			return err
		}
		a.ledger.Children = append(a.ledger.Children, model.ChildRecord{BirthYear: year, BirthMonth: month})
		a.cfg.Children = append(a.cfg.Children, config.ChildConfig{BirthYear: year, BirthMonth: month})
		return nil
	}

	fields := strings.Fields(val)
	if len(fields) < 2 {
		return fmt.Errorf("enter a name and amount, e.g. food 60")
	}
	amount, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("amount must be a positive number in 만원")
	}
	name := strings.Join(fields[:len(fields)-1], " ")

	if a.budget.adding == addFixed {
		a.ledger.AddFixed(name, amount)
		if a.cfg.Expenses.Fixed == nil {
			a.cfg.Expenses.Fixed = make(map[string]float64)
		}
		a.cfg.Expenses.Fixed[name] = amount
	} else {
		a.ledger.AddVariable(name, amount)
		if a.cfg.Expenses.Variable == nil {
			a.cfg.Expenses.Variable = make(map[string]float64)
		}
		a.cfg.Expenses.Variable[name] = amount
	}
	return nil
}

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	proj := a.expenses
	var b strings.Builder

	if proj == nil {
		return components.ContentCard("Budget",
			"No projection yet. Revisit this tab to compute one.", cw)
	}

	// Row 1: first-month composition
	housingCaption := "from housing sim"
	if a.housing == nil {
		housingCaption = "fallback amount"
	}
	cards := []struct{ Label, Value, Caption string }{
		{"Fixed", cli.FormatWon(proj.Fixed[0]), fmt.Sprintf("%d items", len(a.ledger.Fixed))},
		{"Variable", cli.FormatWon(proj.Variable[0]), fmt.Sprintf("%d items", len(a.ledger.Variable))},
		{"Housing", cli.FormatWon(proj.Housing[0]), housingCaption},
		{"Childcare", cli.FormatWon(proj.Childcare[0]), fmt.Sprintf("%d children", len(a.ledger.Children))},
		{"Total (mo)", cli.FormatWon(proj.Total[0]), fmt.Sprintf("inflation %.1f%%", a.ledger.InflationPct)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: total monthly expense over the horizon
	chartVals := make([]float64, a.horizon.YearCount())
	for y := range chartVals {
		chartVals[y] = proj.Total[y*12] // January of each year
	}
	b.WriteString(components.ContentCard(
		"Monthly Expense by Year (January)",
		components.BarChart(chartVals, a.horizon.YearLabels(), t.Orange, components.CardInnerWidth(cw), 8),
		cw,
	))
	b.WriteString("\n")

	// Row 3: item list with cursor
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	kindLabels := map[int]string{addFixed: "fixed", addVariable: "variable", addChild: "child"}

	var listBody strings.Builder
	items := budgetItems(a.ledger)
	for i, item := range items {
		line := fmt.Sprintf("%-9s %-24s", kindLabels[item.kind], truncStr(item.name, 24))
		if item.kind != addChild {
			line += fmt.Sprintf("%10s", cli.FormatWon(item.value))
		}
		if i == a.budget.cursor {
			listBody.WriteString(markerStyle.Render("▸ "))
			listBody.WriteString(selectedStyle.Render(line))
		} else {
			listBody.WriteString(valueStyle.Render("  " + line))
		}
		listBody.WriteString("\n")
	}
	if len(items) == 0 {
		listBody.WriteString(labelStyle.Render("No items yet."))
		listBody.WriteString("\n")
	}

	if a.budget.adding != addNone {
		prompts := map[int]string{
			addFixed:    "New fixed item:",
			addVariable: "New variable item:",
			addChild:    "Child's birth month:",
		}
		listBody.WriteString("\n")
		listBody.WriteString(labelStyle.Render(prompts[a.budget.adding] + " "))
		listBody.WriteString(a.budget.input.View())
		if a.budget.errMsg != "" {
			listBody.WriteString("\n")
			listBody.WriteString(warnStyle.Render(a.budget.errMsg))
		}
	} else {
		listBody.WriteString("\n")
		listBody.WriteString(labelStyle.Render("[a] fixed  [v] variable  [n] child  [d] delete  [j/k] move"))
	}

	b.WriteString(components.ContentCard("Ledger Items", listBody.String(), cw))

	return b.String()
}
