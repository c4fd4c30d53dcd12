// Package cmd implements the nestegg CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hojung1231/nestegg/internal/config"
	"github.com/hojung1231/nestegg/internal/forecast"
	"github.com/hojung1231/nestegg/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagVerbose      bool
	flagHusbandLeave string
	flagWifeLeave    string
)

var rootCmd = &cobra.Command{
	Use:   "nestegg",
	Short: "Household finance planner for couples in Korea",
	Long: "Project net take-home pay through retirement, compare buying a home\n" +
		"against a jeonse deposit, and reconcile income with household expenses.\n" +
		"All amounts are in 만원 (10,000 KRW).",
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagHusbandLeave, "husband-leave", "", "Husband parental leave as YYYY-MM:months")
	rootCmd.PersistentFlags().StringVar(&flagWifeLeave, "wife-leave", "", "Wife parental leave as YYYY-MM:months")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.WarnLevel)
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}
}

// plan bundles the loaded config with the derived horizon. Every command
// starts from one of these.
type plan struct {
	cfg     config.Config
	horizon forecast.Horizon
}

func loadPlan() (plan, error) {
	cfg, err := config.Load()
	if err != nil {
		return plan{}, fmt.Errorf("loading config: %w", err)
	}
	h := forecast.NewHorizon(cfg.Household.BaseYear, cfg.Husband(), cfg.Wife())
	logrus.WithFields(logrus.Fields{
		"config": config.ConfigPath(),
		"start":  h.StartYear,
		"end":    h.EndYear,
	}).Debug("plan loaded")
	return plan{cfg: cfg, horizon: h}, nil
}

// leaveWindows parses the --husband-leave / --wife-leave flags. An empty
// flag means no leave.
func leaveWindows() (model.LeaveWindow, model.LeaveWindow, error) {
	husband, err := parseLeaveFlag(flagHusbandLeave)
	if err != nil {
		return husband, husband, fmt.Errorf("--husband-leave: %w", err)
	}
	wife, err := parseLeaveFlag(flagWifeLeave)
	if err != nil {
		return husband, wife, fmt.Errorf("--wife-leave: %w", err)
	}
	return husband, wife, nil
}

func parseLeaveFlag(s string) (model.LeaveWindow, error) {
	w := model.LeaveWindow{PayMode: model.LeavePayAuto}
	if s == "" {
		return w, nil
	}
	start, months, ok := strings.Cut(s, ":")
	if !ok {
		return w, fmt.Errorf("expected YYYY-MM:months, got %q", s)
	}
	ym, mo, ok := strings.Cut(start, "-")
	if !ok {
		return w, fmt.Errorf("expected YYYY-MM:months, got %q", s)
	}
	year, err := strconv.Atoi(ym)
	if err != nil || year < 1900 || year > 2200 {
		return w, fmt.Errorf("bad year in %q", s)
	}
	month, err := strconv.Atoi(mo)
	if err != nil || month < 1 || month > 12 {
		return w, fmt.Errorf("bad month in %q", s)
	}
	n, err := strconv.Atoi(months)
	if err != nil || n < 1 {
		return w, fmt.Errorf("bad month count in %q", s)
	}
	w.StartYear = year
	w.StartMonth = month
	w.Months = n
	return w, nil
}

// projectAll runs the full pipeline: income with leave windows, the housing
// simulation (whose payment feeds the ledger), and the expense projection.
func projectAll(p plan) (*model.IncomeProjection, *model.HousingProjection, *model.ExpenseProjection, error) {
	hLeave, wLeave, err := leaveWindows()
	if err != nil {
		return nil, nil, nil, err
	}

	income := forecast.ProjectIncome(p.horizon, p.cfg.HusbandIncome(), p.cfg.WifeIncome(), hLeave, wLeave)

	ledger := p.cfg.Ledger()
	var housing *model.HousingProjection
	if p.cfg.Housing.Mode == string(model.HousingJeonse) {
		housing = forecast.SimulateJeonse(p.cfg.JeonsePlan())
		ledger.Housing = 0
	} else {
		housing = forecast.SimulatePurchase(p.cfg.PurchasePlan())
		ledger.Housing = float64(housing.MonthlyPayment)
	}
	logrus.WithField("housing", ledger.Housing).Debug("monthly housing cost published to ledger")

	expenses := forecast.ProjectExpenses(ledger, p.horizon)
	return income, housing, expenses, nil
}
