package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/hojung1231/nestegg/internal/model"
)

// Config holds the couple's saved plan plus appearance preferences.
type Config struct {
	Household  HouseholdConfig  `toml:"household"`
	Income     IncomeConfig     `toml:"income"`
	Housing    HousingConfig    `toml:"housing"`
	Expenses   ExpensesConfig   `toml:"expenses"`
	Children   []ChildConfig    `toml:"children,omitempty"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// HouseholdConfig identifies the couple and the projection base year.
type HouseholdConfig struct {
	BaseYear         int `toml:"base_year"`
	HusbandBirthYear int `toml:"husband_birth_year"`
	HusbandRetireAge int `toml:"husband_retire_age"`
	WifeBirthYear    int `toml:"wife_birth_year"`
	WifeRetireAge    int `toml:"wife_retire_age"`
}

// IncomeConfig holds each spouse's salary entry. Amounts are annual gross
// in 만원; per-month gross or net entry happens interactively, not here.
type IncomeConfig struct {
	HusbandAnnualGross float64 `toml:"husband_annual_gross"`
	HusbandRaisePct    float64 `toml:"husband_raise_pct"`
	WifeAnnualGross    float64 `toml:"wife_annual_gross"`
	WifeRaisePct       float64 `toml:"wife_raise_pct"`
}

// HousingConfig holds both housing scenarios; Mode picks the active one.
type HousingConfig struct {
	Mode          string  `toml:"mode"` // "purchase" or "jeonse"
	Cash          float64 `toml:"cash"`
	Price         float64 `toml:"price"`
	TermYears     int     `toml:"term_years"`
	RatePct       float64 `toml:"rate_pct"`
	UpRatePct     float64 `toml:"up_rate_pct"`
	DownRatePct   float64 `toml:"down_rate_pct"`
	SimYears      int     `toml:"sim_years"`
	JeonseDeposit float64 `toml:"jeonse_deposit"`
	JeonseCash    float64 `toml:"jeonse_cash"`
}

// ExpensesConfig holds the recurring monthly items in 만원. FallbackHousing
// is charged when no housing simulation has published a payment.
type ExpensesConfig struct {
	InflationPct    float64            `toml:"inflation_pct"`
	FallbackHousing float64            `toml:"fallback_housing"`
	Fixed           map[string]float64 `toml:"fixed"`
	Variable        map[string]float64 `toml:"variable"`
}

// ChildConfig is one planned or existing child.
type ChildConfig struct {
	BirthYear  int `toml:"birth_year"`
	BirthMonth int `toml:"birth_month"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns a plan prefilled with typical values so the tool
// is usable before the first setup run.
func DefaultConfig() Config {
	return Config{
		Household: HouseholdConfig{
			BaseYear:         2025,
			HusbandBirthYear: 1990,
			HusbandRetireAge: 60,
			WifeBirthYear:    1992,
			WifeRetireAge:    60,
		},
		Income: IncomeConfig{
			HusbandAnnualGross: 4800,
			HusbandRaisePct:    3.5,
			WifeAnnualGross:    3600,
			WifeRaisePct:       3.5,
		},
		Housing: HousingConfig{
			Mode:          string(model.HousingPurchase),
			Cash:          30000,
			Price:         70000,
			TermYears:     30,
			RatePct:       3.8,
			UpRatePct:     3.0,
			DownRatePct:   -2.0,
			SimYears:      10,
			JeonseDeposit: 40000,
			JeonseCash:    30000,
		},
		Expenses: ExpensesConfig{
			InflationPct:    2.2,
			FallbackHousing: 130,
			Fixed: map[string]float64{
				"maintenance": 20,
				"telecom":     10,
				"insurance":   15,
				"car upkeep":  20,
				"food":        60,
			},
			Variable: map[string]float64{
				"clothing":  10,
				"dining":    15,
				"transport": 8,
			},
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Husband returns the husband as a model person.
func (c Config) Husband() model.Person {
	return model.Person{BirthYear: c.Household.HusbandBirthYear, RetireAge: c.Household.HusbandRetireAge}
}

// Wife returns the wife as a model person.
func (c Config) Wife() model.Person {
	return model.Person{BirthYear: c.Household.WifeBirthYear, RetireAge: c.Household.WifeRetireAge}
}

// HusbandIncome returns the husband's salary entry as a model input.
func (c Config) HusbandIncome() model.IncomeInput {
	return model.IncomeInput{
		Mode:        model.IncomeAnnualGross,
		AnnualGross: c.Income.HusbandAnnualGross,
		RaisePct:    c.Income.HusbandRaisePct,
	}
}

// WifeIncome returns the wife's salary entry as a model input.
func (c Config) WifeIncome() model.IncomeInput {
	return model.IncomeInput{
		Mode:        model.IncomeAnnualGross,
		AnnualGross: c.Income.WifeAnnualGross,
		RaisePct:    c.Income.WifeRaisePct,
	}
}

// PurchasePlan returns the purchase scenario inputs.
func (c Config) PurchasePlan() model.PurchasePlan {
	return model.PurchasePlan{
		Cash:        c.Housing.Cash,
		Price:       c.Housing.Price,
		TermYears:   c.Housing.TermYears,
		RatePct:     c.Housing.RatePct,
		UpRatePct:   c.Housing.UpRatePct,
		DownRatePct: c.Housing.DownRatePct,
		SimYears:    c.Housing.SimYears,
	}
}

// JeonsePlan returns the jeonse scenario inputs.
func (c Config) JeonsePlan() model.JeonsePlan {
	return model.JeonsePlan{Deposit: c.Housing.JeonseDeposit, Cash: c.Housing.JeonseCash}
}

// Ledger builds a fresh expense ledger from the configured items. The
// housing slot starts at the fallback amount until a simulation publishes
// a real payment.
func (c Config) Ledger() *model.ExpenseLedger {
	l := model.NewExpenseLedger()
	for name, amount := range c.Expenses.Fixed {
		l.AddFixed(name, amount)
	}
	for name, amount := range c.Expenses.Variable {
		l.AddVariable(name, amount)
	}
	l.Housing = c.Expenses.FallbackHousing
	l.InflationPct = c.Expenses.InflationPct
	for _, child := range c.Children {
		l.Children = append(l.Children, model.ChildRecord{
			BirthYear:  child.BirthYear,
			BirthMonth: child.BirthMonth,
		})
	}
	return l
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nestegg")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "nestegg")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return loadFrom(ConfigPath())
}

func loadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return saveTo(ConfigPath(), cfg)
}

func saveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
