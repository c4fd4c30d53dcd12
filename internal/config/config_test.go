package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Income.HusbandAnnualGross != 4800 || cfg.Income.WifeAnnualGross != 3600 {
		t.Errorf("default incomes = %.0f/%.0f, want 4800/3600",
			cfg.Income.HusbandAnnualGross, cfg.Income.WifeAnnualGross)
	}
	if cfg.Expenses.InflationPct != 2.2 {
		t.Errorf("default inflation = %.1f, want 2.2", cfg.Expenses.InflationPct)
	}
	if cfg.Expenses.Fixed["food"] != 60 {
		t.Errorf("default food = %.0f, want 60", cfg.Expenses.Fixed["food"])
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("default theme = %q", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Household.HusbandBirthYear = 1988
	cfg.Housing.Mode = "jeonse"
	cfg.Housing.JeonseDeposit = 45000
	cfg.Children = []ChildConfig{{BirthYear: 2025, BirthMonth: 3}}

	if err := saveTo(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := loadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Household.HusbandBirthYear != 1988 {
		t.Errorf("birth year = %d, want 1988", got.Household.HusbandBirthYear)
	}
	if got.Housing.Mode != "jeonse" || got.Housing.JeonseDeposit != 45000 {
		t.Errorf("housing = %q/%.0f, want jeonse/45000", got.Housing.Mode, got.Housing.JeonseDeposit)
	}
	if len(got.Children) != 1 || got.Children[0].BirthMonth != 3 {
		t.Errorf("children = %+v, want one born month 3", got.Children)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("household = not valid"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFrom(path); err == nil {
		t.Fatal("malformed config loaded without error")
	}
}

func TestLedgerFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Children = []ChildConfig{{BirthYear: 2025, BirthMonth: 3}}

	l := cfg.Ledger()
	if len(l.Fixed) != 5 || len(l.Variable) != 3 {
		t.Fatalf("ledger has %d fixed / %d variable items, want 5/3", len(l.Fixed), len(l.Variable))
	}
	if l.Housing != 130 {
		t.Errorf("fallback housing = %.0f, want 130", l.Housing)
	}
	if len(l.Children) != 1 || l.Children[0].BirthYear != 2025 {
		t.Errorf("children = %+v", l.Children)
	}
}
