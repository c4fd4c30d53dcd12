package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hojung1231/nestegg/internal/config"
	"github.com/hojung1231/nestegg/internal/tui/components"
	"github.com/hojung1231/nestegg/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldBaseYear = iota
	settingsFieldHusbandBirth
	settingsFieldHusbandRetire
	settingsFieldWifeBirth
	settingsFieldWifeRetire
	settingsFieldHusbandGross
	settingsFieldHusbandRaise
	settingsFieldWifeGross
	settingsFieldWifeRaise
	settingsFieldInflation
	settingsFieldFallbackHousing
	settingsFieldPrice
	settingsFieldCash
	settingsFieldRate
	settingsFieldTerm
	settingsFieldSimYears
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldBaseYear:
		ti.SetValue(strconv.Itoa(a.cfg.Household.BaseYear))
	case settingsFieldHusbandBirth:
		ti.SetValue(strconv.Itoa(a.cfg.Household.HusbandBirthYear))
	case settingsFieldHusbandRetire:
		ti.SetValue(strconv.Itoa(a.cfg.Household.HusbandRetireAge))
	case settingsFieldWifeBirth:
		ti.SetValue(strconv.Itoa(a.cfg.Household.WifeBirthYear))
	case settingsFieldWifeRetire:
		ti.SetValue(strconv.Itoa(a.cfg.Household.WifeRetireAge))
	case settingsFieldHusbandGross:
		ti.SetValue(fmt.Sprintf("%.0f", a.cfg.Income.HusbandAnnualGross))
	case settingsFieldHusbandRaise:
		ti.SetValue(fmt.Sprintf("%.1f", a.cfg.Income.HusbandRaisePct))
	case settingsFieldWifeGross:
		ti.SetValue(fmt.Sprintf("%.0f", a.cfg.Income.WifeAnnualGross))
	case settingsFieldWifeRaise:
		ti.SetValue(fmt.Sprintf("%.1f", a.cfg.Income.WifeRaisePct))
	case settingsFieldInflation:
		ti.SetValue(fmt.Sprintf("%.1f", a.cfg.Expenses.InflationPct))
	case settingsFieldFallbackHousing:
		ti.SetValue(fmt.Sprintf("%.0f", a.cfg.Expenses.FallbackHousing))
	case settingsFieldPrice:
		ti.SetValue(fmt.Sprintf("%.0f", a.cfg.Housing.Price))
	case settingsFieldCash:
		ti.SetValue(fmt.Sprintf("%.0f", a.cfg.Housing.Cash))
	case settingsFieldRate:
		ti.SetValue(fmt.Sprintf("%.1f", a.cfg.Housing.RatePct))
	case settingsFieldTerm:
		ti.SetValue(strconv.Itoa(a.cfg.Housing.TermYears))
	case settingsFieldSimYears:
		ti.SetValue(strconv.Itoa(a.cfg.Housing.SimYears))
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
		ti.SetValue(a.cfg.Appearance.Theme)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave parses the input into the plan, persists it, and rebuilds
// projections. Unparseable input leaves the field unchanged.
func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())

	parseInt := func(lo, hi int, dst *int) {
		if n, err := strconv.Atoi(val); err == nil && n >= lo && n <= hi {
			*dst = n
		}
	}
	parseFloat := func(lo, hi float64, dst *float64) {
		if f, err := strconv.ParseFloat(val, 64); err == nil && f >= lo && f <= hi {
			*dst = f
		}
	}

	switch a.settings.cursor {
	case settingsFieldBaseYear:
		parseInt(1990, 2100, &a.cfg.Household.BaseYear)
	case settingsFieldHusbandBirth:
		parseInt(1900, 2100, &a.cfg.Household.HusbandBirthYear)
	case settingsFieldHusbandRetire:
		parseInt(40, 80, &a.cfg.Household.HusbandRetireAge)
	case settingsFieldWifeBirth:
		parseInt(1900, 2100, &a.cfg.Household.WifeBirthYear)
	case settingsFieldWifeRetire:
		parseInt(40, 80, &a.cfg.Household.WifeRetireAge)
	case settingsFieldHusbandGross:
		parseFloat(1, 1e6, &a.cfg.Income.HusbandAnnualGross)
	case settingsFieldHusbandRaise:
		parseFloat(0, 50, &a.cfg.Income.HusbandRaisePct)
	case settingsFieldWifeGross:
		parseFloat(1, 1e6, &a.cfg.Income.WifeAnnualGross)
	case settingsFieldWifeRaise:
		parseFloat(0, 50, &a.cfg.Income.WifeRaisePct)
	case settingsFieldInflation:
		parseFloat(0, 20, &a.cfg.Expenses.InflationPct)
	case settingsFieldFallbackHousing:
		parseFloat(0, 1e5, &a.cfg.Expenses.FallbackHousing)
	case settingsFieldPrice:
		parseFloat(0, 1e7, &a.cfg.Housing.Price)
	case settingsFieldCash:
		parseFloat(0, 1e7, &a.cfg.Housing.Cash)
	case settingsFieldRate:
		parseFloat(2.0, 8.0, &a.cfg.Housing.RatePct)
	case settingsFieldTerm:
		parseInt(10, 40, &a.cfg.Housing.TermYears)
	case settingsFieldSimYears:
		parseInt(1, 30, &a.cfg.Housing.SimYears)
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				a.cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	}

	a.settings.saveErr = config.Save(a.cfg)
	a.rebuild()
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceHover).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Base Year", strconv.Itoa(a.cfg.Household.BaseYear)},
		{"Husband Birth Year", strconv.Itoa(a.cfg.Household.HusbandBirthYear)},
		{"Husband Retire Age", strconv.Itoa(a.cfg.Household.HusbandRetireAge)},
		{"Wife Birth Year", strconv.Itoa(a.cfg.Household.WifeBirthYear)},
		{"Wife Retire Age", strconv.Itoa(a.cfg.Household.WifeRetireAge)},
		{"Husband Gross (yr)", fmt.Sprintf("%.0f만", a.cfg.Income.HusbandAnnualGross)},
		{"Husband Raise", fmt.Sprintf("%.1f%%", a.cfg.Income.HusbandRaisePct)},
		{"Wife Gross (yr)", fmt.Sprintf("%.0f만", a.cfg.Income.WifeAnnualGross)},
		{"Wife Raise", fmt.Sprintf("%.1f%%", a.cfg.Income.WifeRaisePct)},
		{"Inflation", fmt.Sprintf("%.1f%%", a.cfg.Expenses.InflationPct)},
		{"Fallback Housing", fmt.Sprintf("%.0f만", a.cfg.Expenses.FallbackHousing)},
		{"Home Price", fmt.Sprintf("%.0f만", a.cfg.Housing.Price)},
		{"Cash on Hand", fmt.Sprintf("%.0f만", a.cfg.Housing.Cash)},
		{"Loan Rate", fmt.Sprintf("%.1f%%", a.cfg.Housing.RatePct)},
		{"Loan Term", fmt.Sprintf("%dy", a.cfg.Housing.TermYears)},
		{"Simulation Years", strconv.Itoa(a.cfg.Housing.SimYears)},
		{"Theme", a.cfg.Appearance.Theme},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-20s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-20s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceHover).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// Plan summary card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Horizon:      ") + valueStyle.Render(fmt.Sprintf("%d-%d (%d years)",
		a.horizon.StartYear, a.horizon.EndYear, a.horizon.YearCount())) + "\n")
	infoBody.WriteString(labelStyle.Render("Housing mode: ") + valueStyle.Render(a.cfg.Housing.Mode) + "\n")
	infoBody.WriteString(labelStyle.Render("Children:     ") + valueStyle.Render(strconv.Itoa(len(a.cfg.Children))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Plan Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Summary", infoBody.String(), cw))

	return b.String()
}
