package cmd

import (
	"fmt"

	"github.com/hojung1231/nestegg/internal/cli"
	"github.com/hojung1231/nestegg/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Household]")
	fmt.Printf("    Base year:    %d\n", cfg.Household.BaseYear)
	fmt.Printf("    Husband:      born %d, retires at %d\n", cfg.Household.HusbandBirthYear, cfg.Household.HusbandRetireAge)
	fmt.Printf("    Wife:         born %d, retires at %d\n", cfg.Household.WifeBirthYear, cfg.Household.WifeRetireAge)
	fmt.Println()

	fmt.Println("  [Income]")
	fmt.Printf("    Husband:      %s gross, %.1f%% raises\n", cli.FormatWon(cfg.Income.HusbandAnnualGross), cfg.Income.HusbandRaisePct)
	fmt.Printf("    Wife:         %s gross, %.1f%% raises\n", cli.FormatWon(cfg.Income.WifeAnnualGross), cfg.Income.WifeRaisePct)
	fmt.Println()

	fmt.Println("  [Housing]")
	fmt.Printf("    Mode:         %s\n", cfg.Housing.Mode)
	fmt.Printf("    Purchase:     %s price, %s cash, %.1f%% / %dy\n",
		cli.FormatEok(cfg.Housing.Price), cli.FormatEok(cfg.Housing.Cash), cfg.Housing.RatePct, cfg.Housing.TermYears)
	fmt.Printf("    Jeonse:       %s deposit, %s cash\n",
		cli.FormatEok(cfg.Housing.JeonseDeposit), cli.FormatEok(cfg.Housing.JeonseCash))
	fmt.Println()

	fmt.Println("  [Expenses]")
	fmt.Printf("    Inflation:    %.1f%%\n", cfg.Expenses.InflationPct)
	fmt.Printf("    Fixed items:  %d\n", len(cfg.Expenses.Fixed))
	fmt.Printf("    Variable:     %d\n", len(cfg.Expenses.Variable))
	fmt.Printf("    Children:     %d\n", len(cfg.Children))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `nestegg setup` to reconfigure.")
	return nil
}
