package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hojung1231/nestegg/internal/config"
	"github.com/hojung1231/nestegg/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the raw string answers from the first-run form.
type setupValues struct {
	husbandBirth  string
	husbandRetire string
	wifeBirth     string
	wifeRetire    string
	husbandGross  string
	wifeGross     string
	husbandRaise  string
	wifeRaise     string
	themeName     string
}

func validYear(s string) error {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1900 || y > 2100 {
		return fmt.Errorf("enter a four-digit year")
	}
	return nil
}

func validAge(s string) error {
	a, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || a < 40 || a > 80 {
		return fmt.Errorf("enter a retirement age between 40 and 80")
	}
	return nil
}

func validAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive amount in 만원")
	}
	return nil
}

func validRate(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a percentage, e.g. 3.5")
	}
	return nil
}

// newSetupForm builds the first-run wizard, prefilled from defaults.
func newSetupForm(vals *setupValues, cfg config.Config) *huh.Form {
	vals.husbandBirth = strconv.Itoa(cfg.Household.HusbandBirthYear)
	vals.husbandRetire = strconv.Itoa(cfg.Household.HusbandRetireAge)
	vals.wifeBirth = strconv.Itoa(cfg.Household.WifeBirthYear)
	vals.wifeRetire = strconv.Itoa(cfg.Household.WifeRetireAge)
	vals.husbandGross = fmt.Sprintf("%.0f", cfg.Income.HusbandAnnualGross)
	vals.wifeGross = fmt.Sprintf("%.0f", cfg.Income.WifeAnnualGross)
	vals.husbandRaise = fmt.Sprintf("%.1f", cfg.Income.HusbandRaisePct)
	vals.wifeRaise = fmt.Sprintf("%.1f", cfg.Income.WifeRaisePct)
	vals.themeName = cfg.Appearance.Theme

	themeOptions := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOptions[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to nestegg!").
				Description("A few questions about your household.\nAmounts are in 만원 (10,000 KRW)."),
			huh.NewInput().
				Title("Husband's birth year").
				Value(&vals.husbandBirth).
				Validate(validYear),
			huh.NewInput().
				Title("Husband's retirement age").
				Value(&vals.husbandRetire).
				Validate(validAge),
			huh.NewInput().
				Title("Wife's birth year").
				Value(&vals.wifeBirth).
				Validate(validYear),
			huh.NewInput().
				Title("Wife's retirement age").
				Value(&vals.wifeRetire).
				Validate(validAge),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Husband's annual gross salary (만원)").
				Value(&vals.husbandGross).
				Validate(validAmount),
			huh.NewInput().
				Title("Annual raise (%)").
				Value(&vals.husbandRaise).
				Validate(validRate),
			huh.NewInput().
				Title("Wife's annual gross salary (만원)").
				Value(&vals.wifeGross).
				Validate(validAmount),
			huh.NewInput().
				Title("Annual raise (%)").
				Value(&vals.wifeRaise).
				Validate(validRate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&vals.themeName),
		),
	)
}

// saveSetupConfig folds the form answers into the plan and persists it.
// Parse errors can't happen past validation; bad values keep the defaults.
func (a *App) saveSetupConfig() {
	v := &a.setupVals

	if y, err := strconv.Atoi(strings.TrimSpace(v.husbandBirth)); err == nil {
		a.cfg.Household.HusbandBirthYear = y
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v.husbandRetire)); err == nil {
		a.cfg.Household.HusbandRetireAge = n
	}
	if y, err := strconv.Atoi(strings.TrimSpace(v.wifeBirth)); err == nil {
		a.cfg.Household.WifeBirthYear = y
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v.wifeRetire)); err == nil {
		a.cfg.Household.WifeRetireAge = n
	}
	if g, err := strconv.ParseFloat(strings.TrimSpace(v.husbandGross), 64); err == nil {
		a.cfg.Income.HusbandAnnualGross = g
	}
	if g, err := strconv.ParseFloat(strings.TrimSpace(v.wifeGross), 64); err == nil {
		a.cfg.Income.WifeAnnualGross = g
	}
	if r, err := strconv.ParseFloat(strings.TrimSpace(v.husbandRaise), 64); err == nil {
		a.cfg.Income.HusbandRaisePct = r
	}
	if r, err := strconv.ParseFloat(strings.TrimSpace(v.wifeRaise), 64); err == nil {
		a.cfg.Income.WifeRaisePct = r
	}
	if v.themeName != "" {
		a.cfg.Appearance.Theme = v.themeName
		theme.SetActive(v.themeName)
	}

	_ = config.Save(a.cfg)
}
