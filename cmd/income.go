package cmd

import (
	"fmt"

	"github.com/hojung1231/nestegg/internal/cli"
	"github.com/hojung1231/nestegg/internal/forecast"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Net take-home projection per spouse, year by year",
	RunE:  runIncome,
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}

func runIncome(_ *cobra.Command, _ []string) error {
	p, err := loadPlan()
	if err != nil {
		return err
	}

	hLeave, wLeave, err := leaveWindows()
	if err != nil {
		return err
	}
	income := forecast.ProjectIncome(p.horizon, p.cfg.HusbandIncome(), p.cfg.WifeIncome(), hLeave, wLeave)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("NET INCOME  %d-%d", p.horizon.StartYear, p.horizon.EndYear)))
	fmt.Println()

	rows := make([][]string, 0, income.Years())
	for y := 0; y < income.Years(); y++ {
		var husband, wife int
		for m := 0; m < 12; m++ {
			husband += income.Husband[y][m]
			wife += income.Wife[y][m]
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.horizon.Year(y)),
			cli.FormatWon(float64(husband)),
			cli.FormatWon(float64(wife)),
			cli.FormatWon(float64(husband + wife)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Husband", "Wife", "Combined"},
		Rows:    rows,
	}))

	if hLeave.Months > 0 {
		fmt.Printf("  Husband leave: %s, %d months\n",
			cli.FormatMonth(hLeave.StartYear, hLeave.StartMonth), hLeave.Months)
	}
	if wLeave.Months > 0 {
		fmt.Printf("  Wife leave:    %s, %d months\n",
			cli.FormatMonth(wLeave.StartYear, wLeave.StartMonth), wLeave.Months)
	}

	fmt.Printf("  Monthly trend  %s\n\n", cli.RenderSparkline(income.CombinedMonthly()))
	return nil
}
