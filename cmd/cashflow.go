package cmd

import (
	"fmt"

	"github.com/hojung1231/nestegg/internal/cli"
	"github.com/hojung1231/nestegg/internal/forecast"
	"github.com/hojung1231/nestegg/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagFlowView  string
	flagFlowStart int
	flagFlowYears int
)

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Reconcile income against expenses over the horizon",
	RunE:  runCashflow,
}

func init() {
	cashflowCmd.Flags().StringVar(&flagFlowView, "view", "annual", "View: annual or monthly")
	cashflowCmd.Flags().IntVar(&flagFlowStart, "start", 0, "Start year for the monthly view (default: horizon start)")
	cashflowCmd.Flags().IntVar(&flagFlowYears, "years", 5, "Span of the monthly view in years (max 5)")
	rootCmd.AddCommand(cashflowCmd)
}

func runCashflow(_ *cobra.Command, _ []string) error {
	p, err := loadPlan()
	if err != nil {
		return err
	}

	income, _, expenses, err := projectAll(p)
	if err != nil {
		return err
	}
	cf, err := forecast.Reconcile(income, expenses)
	if err != nil {
		return err
	}

	switch flagFlowView {
	case "monthly":
		return printMonthlyFlow(p, cf)
	case "annual":
		return printAnnualFlow(p, cf)
	default:
		return fmt.Errorf("unknown view %q, want annual or monthly", flagFlowView)
	}
}

func printAnnualFlow(p plan, cf *model.CashFlow) error {
	annual := forecast.Annual(cf)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CASH FLOW  %d-%d", p.horizon.StartYear, p.horizon.EndYear)))
	fmt.Println()

	var lifetime float64
	maxAbs := 0.0
	for _, y := range annual {
		lifetime += y.Net
		if a := y.Net; a < 0 {
			a = -a
			if a > maxAbs {
				maxAbs = a
			}
		} else if a > maxAbs {
			maxAbs = a
		}
	}

	rows := make([][]string, 0, len(annual)+2)
	for _, y := range annual {
		rows = append(rows, []string{
			fmt.Sprintf("%d", y.Year),
			cli.FormatWon(y.Income),
			cli.FormatWon(y.Expense),
			cli.FormatSignedWon(y.Net),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", "", cli.FormatSignedWon(lifetime)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Income", "Expenses", "Net"},
		Rows:    rows,
	}))

	for _, y := range annual {
		fmt.Printf("  %d  %s  %s\n", y.Year,
			cli.RenderHorizontalBar(y.Net, maxAbs, 30), cli.RenderNet(y.Net))
	}
	fmt.Println()
	return nil
}

func printMonthlyFlow(p plan, cf *model.CashFlow) error {
	start := flagFlowStart
	if start == 0 {
		start = p.horizon.StartYear
	}
	win, err := forecast.Window(cf, start, flagFlowYears)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY CASH FLOW  from %d", win.StartYear)))
	fmt.Println()

	rows := make([][]string, 0, len(win.Net))
	for i := range win.Net {
		rows = append(rows, []string{
			p.horizon.MonthLabel(win.StartIdx + i),
			cli.FormatWon(win.Income[i]),
			cli.FormatWon(win.Expense[i]),
			cli.FormatSignedWon(win.Net[i]),
			cli.FormatSignedWon(win.Cumulative[i]),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Income", "Expenses", "Net", "Cumulative"},
		Rows:    rows,
	}))

	fmt.Printf("  Cumulative  %s\n\n", cli.RenderSparkline(win.Cumulative))
	return nil
}
