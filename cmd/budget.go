package cmd

import (
	"fmt"
	"sort"

	"github.com/hojung1231/nestegg/internal/cli"
	"github.com/hojung1231/nestegg/internal/forecast"
	"github.com/hojung1231/nestegg/internal/model"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Household expense ledger and its inflation-indexed projection",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	p, err := loadPlan()
	if err != nil {
		return err
	}

	ledger := p.cfg.Ledger()
	var housingNote string
	if p.cfg.Housing.Mode == string(model.HousingJeonse) {
		ledger.Housing = 0
		housingNote = "jeonse, no payment"
	} else {
		sim := forecast.SimulatePurchase(p.cfg.PurchasePlan())
		ledger.Housing = float64(sim.MonthlyPayment)
		housingNote = "loan payment"
	}

	proj := forecast.ProjectExpenses(ledger, p.horizon)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY BUDGET  %d", p.horizon.StartYear)))
	fmt.Println()

	rows := make([][]string, 0, len(ledger.Fixed)+len(ledger.Variable)+8)
	for _, name := range sortedNames(ledger.Fixed) {
		rows = append(rows, []string{name, "fixed", cli.FormatWon(ledger.Fixed[name])})
	}
	for _, name := range sortedNames(ledger.Variable) {
		rows = append(rows, []string{name, "variable", cli.FormatWon(ledger.Variable[name])})
	}
	rows = append(rows, []string{"housing", housingNote, cli.FormatWon(ledger.Housing)})
	if len(proj.Childcare) > 0 && proj.Childcare[0] > 0 {
		rows = append(rows, []string{"childcare", fmt.Sprintf("%d children", len(ledger.Children)), cli.FormatWon(proj.Childcare[0])})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", cli.FormatWon(proj.Total[0])})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Item", "Kind", "Monthly"},
		Rows:    rows,
	}))

	// January totals per year show the inflation drift
	yearRows := make([][]string, 0, p.horizon.YearCount())
	for y := 0; y < p.horizon.YearCount(); y++ {
		i := y * 12
		yearRows = append(yearRows, []string{
			fmt.Sprintf("%d", p.horizon.Year(y)),
			cli.FormatWon(proj.Fixed[i] + proj.Variable[i]),
			cli.FormatWon(proj.Housing[i]),
			cli.FormatWon(proj.Childcare[i]),
			cli.FormatWon(proj.Total[i]),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("January totals, %.1f%% inflation", ledger.InflationPct),
		Headers: []string{"Year", "Living", "Housing", "Childcare", "Total"},
		Rows:    yearRows,
	}))

	fmt.Println()
	return nil
}

func sortedNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
