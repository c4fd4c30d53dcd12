package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hojung1231/nestegg/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to nestegg!")
	fmt.Println("  Amounts are in 만원 (10,000 KRW). Enter to keep the shown value.")
	fmt.Println()

	fmt.Println("  1. Household")
	cfg.Household.BaseYear = askInt(reader, "Base year", cfg.Household.BaseYear)
	cfg.Household.HusbandBirthYear = askInt(reader, "Husband birth year", cfg.Household.HusbandBirthYear)
	cfg.Household.HusbandRetireAge = askInt(reader, "Husband retire age", cfg.Household.HusbandRetireAge)
	cfg.Household.WifeBirthYear = askInt(reader, "Wife birth year", cfg.Household.WifeBirthYear)
	cfg.Household.WifeRetireAge = askInt(reader, "Wife retire age", cfg.Household.WifeRetireAge)
	fmt.Println()

	fmt.Println("  2. Salaries (annual gross)")
	cfg.Income.HusbandAnnualGross = askFloat(reader, "Husband annual gross", cfg.Income.HusbandAnnualGross)
	cfg.Income.HusbandRaisePct = askFloat(reader, "Husband raise %", cfg.Income.HusbandRaisePct)
	cfg.Income.WifeAnnualGross = askFloat(reader, "Wife annual gross", cfg.Income.WifeAnnualGross)
	cfg.Income.WifeRaisePct = askFloat(reader, "Wife raise %", cfg.Income.WifeRaisePct)
	fmt.Println()

	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Housing, expenses, and children are edited in `nestegg tui`.")
	fmt.Println()

	return nil
}

func askInt(reader *bufio.Reader, label string, current int) int {
	fmt.Printf("     %s [%d]: ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		fmt.Println("     (kept previous value)")
		return current
	}
	return v
}

func askFloat(reader *bufio.Reader, label string, current float64) float64 {
	fmt.Printf("     %s [%.1f]: ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Println("     (kept previous value)")
		return current
	}
	return v
}
