// Package tui provides the interactive Bubble Tea dashboard for nestegg.
package tui

import (
	"fmt"
	"strings"

	"github.com/hojung1231/nestegg/internal/config"
	"github.com/hojung1231/nestegg/internal/forecast"
	"github.com/hojung1231/nestegg/internal/model"
	"github.com/hojung1231/nestegg/internal/tui/components"
	"github.com/hojung1231/nestegg/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tab indices, matching components.Tabs order.
const (
	tabIncome = iota
	tabHousing
	tabBudget
	tabCashFlow
	tabSettings
)

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5
)

// App is the root Bubble Tea model. Projections start nil and are computed
// when their tab is first opened; the cash-flow tab refuses to render until
// both the income and expense projections exist.
type App struct {
	cfg     config.Config
	horizon forecast.Horizon
	ledger  *model.ExpenseLedger

	// Leave windows live in session state, not in the saved plan
	husbandLeave model.LeaveWindow
	wifeLeave    model.LeaveWindow

	income   *model.IncomeProjection
	housing  *model.HousingProjection
	expenses *model.ExpenseProjection

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	incomeSt incomeState
	budget   budgetState
	cash     cashState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model.
func NewApp() App {
	needSetup := !config.Exists()

	cfg := loadConfigOrDefault()
	theme.SetActive(cfg.Appearance.Theme)

	a := App{
		cfg:       cfg,
		needSetup: needSetup,
	}
	a.rebuild()

	if needSetup {
		a.setupForm = newSetupForm(&a.setupVals, cfg)
	}

	return a
}

// rebuild derives the horizon and ledger from the current plan and drops
// every computed projection. Any change to the plan goes through here.
func (a *App) rebuild() {
	a.horizon = forecast.NewHorizon(a.cfg.Household.BaseYear, a.cfg.Husband(), a.cfg.Wife())
	a.ledger = a.cfg.Ledger()
	a.income = nil
	a.housing = nil
	a.expenses = nil
	a.cash = newCashState(a.horizon)
	a.budget.clampCursor(a.ledger)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// openTab switches the active tab and computes whatever projection that
// tab depends on.
func (a *App) openTab(idx int) {
	a.activeTab = idx
	switch idx {
	case tabIncome:
		a.computeIncome()
	case tabHousing:
		a.computeHousing()
	case tabBudget:
		a.computeExpenses()
	}
}

func (a *App) computeIncome() {
	a.income = forecast.ProjectIncome(a.horizon,
		a.cfg.HusbandIncome(), a.cfg.WifeIncome(),
		a.husbandLeave, a.wifeLeave)
}

// computeHousing runs the active housing scenario and publishes its monthly
// payment into the ledger, replacing the fallback amount. The expense
// projection is dropped so the next budget visit picks up the new payment.
func (a *App) computeHousing() {
	switch model.HousingMode(a.cfg.Housing.Mode) {
	case model.HousingJeonse:
		a.housing = forecast.SimulateJeonse(a.cfg.JeonsePlan())
		a.ledger.Housing = 0
	default:
		a.housing = forecast.SimulatePurchase(a.cfg.PurchasePlan())
		a.ledger.Housing = float64(a.housing.MonthlyPayment)
	}
	a.expenses = nil
}

func (a *App) computeExpenses() {
	a.expenses = forecast.ProjectExpenses(a.ledger, a.horizon)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabCashFlow {
				a.cash.shiftStart(-1, a.horizon)
			}
			return a, nil
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabCashFlow {
				a.cash.shiftStart(1, a.horizon)
			}
			return a, nil
		case tea.MouseButtonLeft:
			// Tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.openTab(tab)
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Active text inputs intercept all keys
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}
		if a.activeTab == tabBudget && a.budget.adding != addNone {
			return a.updateBudgetInput(msg)
		}
		if a.activeTab == tabIncome && a.incomeSt.entering {
			return a.updateLeaveInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Per-tab keybindings
		switch a.activeTab {
		case tabIncome:
			if m, cmd, handled := a.updateIncomeTab(key); handled {
				return m, cmd
			}
		case tabBudget:
			if m, cmd, handled := a.updateBudgetTab(key); handled {
				return m, cmd
			}
		case tabCashFlow:
			if m, cmd, handled := a.updateCashFlowTab(key); handled {
				return m, cmd
			}
		case tabSettings:
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		case tabHousing:
			if key == "m" {
				if model.HousingMode(a.cfg.Housing.Mode) == model.HousingPurchase {
					a.cfg.Housing.Mode = string(model.HousingJeonse)
				} else {
					a.cfg.Housing.Mode = string(model.HousingPurchase)
				}
				_ = config.Save(a.cfg)
				a.computeHousing()
				return a, nil
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left":
			a.openTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
		case "right":
			a.openTab((a.activeTab + 1) % len(components.Tabs))
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.openTab(idx)
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.rebuild()
		a.needSetup = false
		a.setupForm = nil
		a.openTab(tabIncome)
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  nestegg needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"i h b c x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"l", "Add parental leave (Income)"},
		{"m", "Toggle purchase/jeonse (Housing)"},
		{"a v n d", "Add fixed/variable/child, delete (Budget)"},
		{"t [ ]", "Toggle view, shift window (Cash Flow)"},
		{"s", "Cycle charted stream (Cash Flow)"},
		{"1-4", "Toggle expense series (Cash Flow)"},
		{"Enter", "Edit / Confirm"},
		{"Esc", "Back / Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + plan pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") +
		pillAccentStyle.Render(a.cfg.Housing.Mode) +
		pillStyle.Render(" │ ") +
		pillAccentStyle.Render(fmt.Sprintf("%.1f%% inflation", a.cfg.Expenses.InflationPct)) +
		pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pill)

	// 2. Status bar
	horizonLabel := fmt.Sprintf("%d-%d", a.horizon.StartYear, a.horizon.EndYear)
	statusBar := components.RenderStatusBar(w, horizonLabel)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabIncome:
		content = a.renderIncomeTab(cw)
	case tabHousing:
		content = a.renderHousingTab(cw)
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabCashFlow:
		content = a.renderCashFlowTab(cw, contentH)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Two-space separator between tabs
		if i < len(components.Tabs)-1 {
			pos += 2
		}
	}
	return -1
}
