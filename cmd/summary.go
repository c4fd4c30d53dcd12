package cmd

import (
	"fmt"

	"github.com/hojung1231/nestegg/internal/cli"
	"github.com/hojung1231/nestegg/internal/forecast"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Plan overview: income, housing, expenses, lifetime net",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	p, err := loadPlan()
	if err != nil {
		return err
	}

	income, housing, expenses, err := projectAll(p)
	if err != nil {
		return err
	}

	cf, err := forecast.Reconcile(income, expenses)
	if err != nil {
		return err
	}
	annual := forecast.Annual(cf)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HOUSEHOLD PLAN  %d-%d", p.horizon.StartYear, p.horizon.EndYear)))
	fmt.Println()

	first := annual[0]
	var lifetime float64
	firstDeficit := 0
	for _, y := range annual {
		lifetime += y.Net
		if y.Net < 0 && firstDeficit == 0 {
			firstDeficit = y.Year
		}
	}

	hc := p.cfg.Housing
	housingRow := []string{"Housing", fmt.Sprintf("jeonse %s deposit", cli.FormatEok(hc.JeonseDeposit))}
	if housing.MonthlyPayment > 0 {
		housingRow = []string{"Housing", fmt.Sprintf("purchase %s, %s/mo",
			cli.FormatEok(hc.Price), cli.FormatWon(float64(housing.MonthlyPayment)))}
	}

	rows := [][]string{
		{"Horizon", fmt.Sprintf("%d years (%d months)", p.horizon.YearCount(), p.horizon.Months())},
		{"Children", fmt.Sprintf("%d", len(p.cfg.Children))},
		housingRow,
		{"---"},
		{fmt.Sprintf("Income %d", first.Year), cli.FormatWon(first.Income)},
		{fmt.Sprintf("Expenses %d", first.Year), cli.FormatWon(first.Expense)},
		{fmt.Sprintf("Net %d", first.Year), cli.FormatSignedWon(first.Net)},
		{"---"},
		{"Lifetime Net", cli.FormatSignedWon(lifetime)},
	}
	if firstDeficit > 0 {
		rows = append(rows, []string{"First Deficit", fmt.Sprintf("%d", firstDeficit)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	nets := make([]float64, len(annual))
	for i, y := range annual {
		nets[i] = y.Net
	}
	fmt.Printf("  Annual net  %s\n\n", cli.RenderSparkline(nets))

	fmt.Println("  Run `nestegg tui` for the interactive dashboard.")
	return nil
}
