package cmd

import (
	"fmt"

	"github.com/hojung1231/nestegg/internal/cli"
	"github.com/hojung1231/nestegg/internal/forecast"
	"github.com/hojung1231/nestegg/internal/model"

	"github.com/spf13/cobra"
)

var flagHousingMode string

var housingCmd = &cobra.Command{
	Use:   "housing",
	Short: "Purchase scenario with amortization, or jeonse position",
	RunE:  runHousing,
}

func init() {
	housingCmd.Flags().StringVarP(&flagHousingMode, "mode", "m", "", "Override mode: purchase or jeonse")
	rootCmd.AddCommand(housingCmd)
}

func runHousing(_ *cobra.Command, _ []string) error {
	p, err := loadPlan()
	if err != nil {
		return err
	}

	mode := p.cfg.Housing.Mode
	if flagHousingMode != "" {
		mode = flagHousingMode
	}

	switch mode {
	case string(model.HousingJeonse):
		return printJeonse(p)
	case string(model.HousingPurchase):
		return printPurchase(p)
	default:
		return fmt.Errorf("unknown housing mode %q", mode)
	}
}

func printPurchase(p plan) error {
	hc := p.cfg.Housing
	proj := forecast.SimulatePurchase(p.cfg.PurchasePlan())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HOME PURCHASE  %s @ %.1f%%", cli.FormatEok(hc.Price), hc.RatePct)))
	fmt.Println()

	payment := float64(proj.MonthlyPayment)
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Price", cli.FormatEok(hc.Price)},
			{"Cash", cli.FormatEok(hc.Cash)},
			{"Loan", cli.FormatEok(proj.Loan)},
			{"Leverage", cli.FormatPercent(proj.Leverage)},
			{"---"},
			{"Term", fmt.Sprintf("%d years", hc.TermYears)},
			{"Monthly Payment", cli.FormatWon(payment)},
			{"Exact", cli.FormatKRW(payment) + "원"},
		},
	}))

	rows := make([][]string, 0, len(proj.Years))
	for _, y := range proj.Years {
		rows = append(rows, []string{
			fmt.Sprintf("%d", y.Year),
			cli.FormatEok(y.ValueUp),
			cli.FormatEok(y.ValueDown),
			cli.FormatEok(y.LoanBalance),
			cli.FormatEok(y.NetWorthUp),
			cli.FormatEok(y.NetWorthDown),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Scenarios: %+.1f%% / %+.1f%% per year", hc.UpRatePct, hc.DownRatePct),
		Headers: []string{"Year", "Value ↑", "Value ↓", "Balance", "Net ↑", "Net ↓"},
		Rows:    rows,
	}))

	if len(proj.Years) > 0 && proj.Loan > 0 {
		last := proj.Years[len(proj.Years)-1]
		fmt.Printf("  Principal repaid by year %d  %s\n\n",
			last.Year, cli.RenderPayoffBar(proj.Loan-last.LoanBalance, proj.Loan, 30))
	}
	return nil
}

func printJeonse(p plan) error {
	hc := p.cfg.Housing
	proj := forecast.SimulateJeonse(p.cfg.JeonsePlan())

	fmt.Println()
	fmt.Println(cli.RenderTitle("JEONSE"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Deposit", cli.FormatEok(hc.JeonseDeposit)},
			{"Cash Kept", cli.FormatEok(hc.JeonseCash)},
			{"Position", cli.FormatEok(proj.Position)},
			{"Monthly Payment", "0만"},
		},
	}))

	fmt.Println("  The deposit comes back at contract end; no loan, no price exposure.")
	fmt.Println()
	return nil
}
