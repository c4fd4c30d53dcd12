package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hojung1231/nestegg/internal/cli"
	"github.com/hojung1231/nestegg/internal/model"
	"github.com/hojung1231/nestegg/internal/tui/components"
	"github.com/hojung1231/nestegg/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Leave entry steps
const (
	leaveStepSpouse = iota
	leaveStepStart
	leaveStepMonths
)

// incomeState tracks the income tab's leave-entry flow.
type incomeState struct {
	entering bool
	step     int
	input    textinput.Model
	spouse   string // "h" or "w"
	startStr string // "YYYY-MM"
	errMsg   string
}

func newLeaveInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 16
	ti.Width = 20
	ti.Focus()
	return ti
}

func (a App) updateIncomeTab(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "l":
		a.incomeSt = incomeState{
			entering: true,
			step:     leaveStepSpouse,
			input:    newLeaveInput("h or w"),
		}
		return a, a.incomeSt.input.Cursor.BlinkCmd(), true
	case "r":
		a.husbandLeave = model.LeaveWindow{}
		a.wifeLeave = model.LeaveWindow{}
		a.computeIncome()
		return a, nil, true
	}
	return a, nil, false
}

func (a App) updateLeaveInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.incomeSt = incomeState{}
		return a, nil
	case "enter":
		val := strings.TrimSpace(a.incomeSt.input.Value())
		switch a.incomeSt.step {
		case leaveStepSpouse:
			if val != "h" && val != "w" {
				a.incomeSt.errMsg = "enter h (husband) or w (wife)"
				return a, nil
			}
			a.incomeSt.spouse = val
			a.incomeSt.step = leaveStepStart
			a.incomeSt.input = newLeaveInput("YYYY-MM")
			a.incomeSt.errMsg = ""
			return a, a.incomeSt.input.Cursor.BlinkCmd()
		case leaveStepStart:
			if _, _, err := parseYearMonth(val); err != nil {
				a.incomeSt.errMsg = err.Error()
				return a, nil
			}
			a.incomeSt.startStr = val
			a.incomeSt.step = leaveStepMonths
			a.incomeSt.input = newLeaveInput("months (1-36)")
			a.incomeSt.errMsg = ""
			return a, a.incomeSt.input.Cursor.BlinkCmd()
		case leaveStepMonths:
			months, err := strconv.Atoi(val)
			if err != nil || months < 1 || months > 36 {
				a.incomeSt.errMsg = "enter 1-36 months"
				return a, nil
			}
			year, month, _ := parseYearMonth(a.incomeSt.startStr)
			w := model.LeaveWindow{
				StartYear:  year,
				StartMonth: month,
				Months:     months,
				PayMode:    model.LeavePayAuto,
			}
			if a.incomeSt.spouse == "h" {
				a.husbandLeave = w
			} else {
				a.wifeLeave = w
			}
			a.incomeSt = incomeState{}
			a.computeIncome()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.incomeSt.input, cmd = a.incomeSt.input.Update(msg)
	return a, cmd
}

func parseYearMonth(s string) (int, int, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("use YYYY-MM, e.g. 2026-03")
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || year < 1900 || year > 2100 || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("use YYYY-MM, e.g. 2026-03")
	}
	return year, month, nil
}

func (a App) renderIncomeTab(cw int) string {
	t := theme.Active
	proj := a.income
	var b strings.Builder

	if proj == nil {
		return components.ContentCard("Income",
			"No projection yet. Press Enter or revisit this tab.", cw)
	}

	// Row 1: metric cards for the first modeled month
	husbandNow := float64(proj.Husband[0][0])
	wifeNow := float64(proj.Wife[0][0])
	combined := proj.CombinedMonthly()

	var annual0 float64
	for _, v := range combined[:12] {
		annual0 += v
	}

	cards := []struct{ Label, Value, Caption string }{
		{"Husband (net/mo)", cli.FormatWon(husbandNow), fmt.Sprintf("raise %.1f%%", a.cfg.Income.HusbandRaisePct)},
		{"Wife (net/mo)", cli.FormatWon(wifeNow), fmt.Sprintf("raise %.1f%%", a.cfg.Income.WifeRaisePct)},
		{"Combined (mo)", cli.FormatWon(combined[0]), ""},
		{"First Year", cli.FormatEok(annual0), "net take-home"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: combined annual net income over the working horizon
	years := proj.Years()
	chartVals := make([]float64, years)
	chartLabels := a.horizon.YearLabels()
	for y := 0; y < years; y++ {
		for m := y * 12; m < (y+1)*12; m++ {
			chartVals[y] += combined[m]
		}
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Combined Annual Net (%d-%d)", a.horizon.StartYear, a.horizon.EndYear),
		components.BarChart(chartVals, chartLabels, t.Blue, components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	// Row 3: leave windows + entry flow
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var leaveBody strings.Builder
	writeWindow := func(who string, w model.LeaveWindow) {
		leaveBody.WriteString(labelStyle.Render(fmt.Sprintf("%-9s", who)))
		if w.Months == 0 {
			leaveBody.WriteString(valueStyle.Render("none"))
		} else {
			leaveBody.WriteString(valueStyle.Render(fmt.Sprintf("%s, %d months",
				cli.FormatMonth(w.StartYear, w.StartMonth), w.Months)))
		}
		leaveBody.WriteString("\n")
	}
	writeWindow("Husband:", a.husbandLeave)
	writeWindow("Wife:", a.wifeLeave)

	if a.incomeSt.entering {
		prompts := map[int]string{
			leaveStepSpouse: "Whose leave?",
			leaveStepStart:  "Start month?",
			leaveStepMonths: "How many months?",
		}
		leaveBody.WriteString("\n")
		leaveBody.WriteString(labelStyle.Render(prompts[a.incomeSt.step] + " "))
		leaveBody.WriteString(a.incomeSt.input.View())
		if a.incomeSt.errMsg != "" {
			leaveBody.WriteString("\n")
			leaveBody.WriteString(warnStyle.Render(a.incomeSt.errMsg))
		}
	} else {
		leaveBody.WriteString("\n")
		leaveBody.WriteString(labelStyle.Render("[l] add leave  [r] clear"))
	}

	b.WriteString(components.ContentCard("Parental Leave", leaveBody.String(), cw))

	return b.String()
}
