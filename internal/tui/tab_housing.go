package tui

import (
	"fmt"
	"strings"

	"github.com/hojung1231/nestegg/internal/cli"
	"github.com/hojung1231/nestegg/internal/model"
	"github.com/hojung1231/nestegg/internal/tui/components"
	"github.com/hojung1231/nestegg/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHousingTab(cw int) string {
	proj := a.housing
	if proj == nil {
		return components.ContentCard("Housing",
			"No simulation yet. Revisit this tab to run one.", cw)
	}

	if proj.Mode == model.HousingJeonse {
		return a.renderJeonse(cw, proj)
	}
	return a.renderPurchase(cw, proj)
}

func (a App) renderPurchase(cw int, proj *model.HousingProjection) string {
	t := theme.Active
	hc := a.cfg.Housing
	var b strings.Builder

	// Row 1: loan terms
	cards := []struct{ Label, Value, Caption string }{
		{"Price", cli.FormatEok(hc.Price), "cash " + cli.FormatEok(hc.Cash)},
		{"Loan", cli.FormatEok(float64(proj.Loan)), fmt.Sprintf("%.1f%% / %dy", hc.RatePct, hc.TermYears)},
		{"Monthly Payment", cli.FormatWon(float64(proj.MonthlyPayment)), cli.FormatKRW(float64(proj.MonthlyPayment)) + "원"},
		{"Leverage", cli.FormatPercent(proj.Leverage), "loan / price"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: principal repaid by the end of the simulated span
	if proj.Loan > 0 && len(proj.Years) > 0 {
		last := proj.Years[len(proj.Years)-1]
		paidPct := (float64(proj.Loan) - last.LoanBalance) / float64(proj.Loan)
		yearsLeft := hc.TermYears - len(proj.Years)
		if yearsLeft < 0 {
			yearsLeft = 0
		}
		barW := components.CardInnerWidth(cw) - 28
		if barW < 10 {
			barW = 10
		}
		b.WriteString(components.ContentCard("Principal Repaid",
			components.PayoffBar(fmt.Sprintf("year %d", last.Year), paidPct, yearsLeft, 8, barW), cw))
		b.WriteString("\n")
	}

	// Row 3: net worth under the appreciation scenario
	chartVals := make([]float64, len(proj.Years))
	chartLabels := make([]string, len(proj.Years))
	for i, y := range proj.Years {
		chartVals[i] = y.NetWorthUp
		chartLabels[i] = fmt.Sprintf("%d", y.Year)
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Net Worth, +%.1f%%/yr Scenario", hc.UpRatePct),
		components.BarChart(chartVals, chartLabels, t.Green, components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	// Row 4: both scenario paths year by year
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	upStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	downStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	var tableBody strings.Builder
	tableBody.WriteString(labelStyle.Render(fmt.Sprintf("%-6s %14s %14s %14s %14s",
		"Year", "Value ↑", "Value ↓", "Balance", "Net Worth ↑")))
	tableBody.WriteString("\n")
	for _, y := range proj.Years {
		tableBody.WriteString(valueStyle.Render(fmt.Sprintf("%-6d ", y.Year)))
		tableBody.WriteString(upStyle.Render(fmt.Sprintf("%14s ", cli.FormatEok(y.ValueUp))))
		tableBody.WriteString(downStyle.Render(fmt.Sprintf("%14s ", cli.FormatEok(y.ValueDown))))
		tableBody.WriteString(valueStyle.Render(fmt.Sprintf("%14s ", cli.FormatEok(y.LoanBalance))))
		tableBody.WriteString(upStyle.Render(fmt.Sprintf("%14s", cli.FormatEok(y.NetWorthUp))))
		tableBody.WriteString("\n")
	}
	tableBody.WriteString("\n")
	tableBody.WriteString(labelStyle.Render("[m] switch to jeonse"))

	b.WriteString(components.ContentCard(
		fmt.Sprintf("Scenario Paths (+%.1f%% / %.1f%%)", hc.UpRatePct, hc.DownRatePct),
		tableBody.String(), cw))

	return b.String()
}

func (a App) renderJeonse(cw int, proj *model.HousingProjection) string {
	t := theme.Active
	hc := a.cfg.Housing
	var b strings.Builder

	cards := []struct{ Label, Value, Caption string }{
		{"Deposit", cli.FormatEok(hc.JeonseDeposit), ""},
		{"Cash Kept", cli.FormatEok(hc.JeonseCash), ""},
		{"Position", cli.FormatEok(proj.Position), "deposit + cash"},
		{"Monthly Payment", "0만", "no loan"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var body strings.Builder
	body.WriteString(valueStyle.Render("A jeonse deposit carries no monthly housing cost."))
	body.WriteString("\n")
	body.WriteString(valueStyle.Render("The deposit is returned at the end of the contract,"))
	body.WriteString("\n")
	body.WriteString(valueStyle.Render("so the position neither appreciates nor amortizes."))
	body.WriteString("\n\n")
	body.WriteString(labelStyle.Render("[m] switch to purchase"))

	b.WriteString(components.ContentCard("Jeonse", body.String(), cw))

	return b.String()
}
