// Package tui provides the interactive Bubble Tea client for SpendBuddy.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/config"
	"github.com/balaji-matta18/spendbuddy/internal/export"
	"github.com/balaji-matta18/spendbuddy/internal/metrics"
	"github.com/balaji-matta18/spendbuddy/internal/route"
	"github.com/balaji-matta18/spendbuddy/internal/session"
	"github.com/balaji-matta18/spendbuddy/internal/tui/components"
	"github.com/balaji-matta18/spendbuddy/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabDashboard = iota
	tabExpenses
	tabBudgets
	tabReports
	tabSettings
)

// App is the root Bubble Tea model. Every protected tab sits behind the
// route guard; the login screen is the single public view.
type App struct {
	store  *session.Store
	client *api.Client
	cfg    config.Config

	width  int
	height int

	restored  bool
	activeTab int
	notice    string
	showHelp  bool

	// Auth screen. loginVals is shared by pointer so the form's bound fields
	// survive the model being copied between updates.
	loginForm *huh.Form
	loginVals *loginValues
	authBusy  bool

	// Request-sequence guard: each tab switch bumps seq, and responses
	// carrying an older seq are dropped instead of overwriting fresh state.
	seq      int
	fetching bool
	spinner  spinner.Model

	// Tab data
	dashStats  metrics.Stats
	dashRecent []api.Expense
	expenses   []api.Expense
	budgetRows []metrics.BudgetSummary
	report     export.Report
	reportRng  string

	// Settings tab
	editingDay bool
	dayInput   textinput.Model
}

// NewApp creates the TUI model. The session store must not have been
// restored yet; the app owns the restore so the guard can show its loading
// placeholder until the outcome is known.
func NewApp(store *session.Store, client *api.Client, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	di := textinput.New()
	di.Placeholder = "1-28"
	di.CharLimit = 2
	di.Width = 6

	rng := cfg.General.DefaultRange
	if !api.ValidRange(rng) {
		rng = api.Range6M
	}

	return App{
		store:     store,
		client:    client,
		cfg:       cfg,
		reportRng: rng,
		spinner:   sp,
		dayInput:  di,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.restoreCmd(), a.spinner.Tick)
}

// enterLogin swaps to the login screen, resetting the tab stack so there is
// no back-navigation into a protected view. Safe to call repeatedly: a 401
// arriving on three in-flight fetches still produces one transition.
func (a *App) enterLogin(notice string) {
	// Re-arm the client so the sign-in from this screen reaches the backend
	// even when an expiry latched the client on the way here.
	a.client.Reset()
	if a.loginForm == nil {
		email := ""
		if a.loginVals != nil {
			email = a.loginVals.Email
		}
		a.loginVals = &loginValues{Mode: "signin", Email: email}
		a.loginForm = newLoginForm(a.loginVals)
	}
	if notice != "" {
		a.notice = notice
	}
	a.activeTab = tabDashboard
	a.fetching = false
	a.dashRecent = nil
	a.expenses = nil
	a.budgetRows = nil
	a.report = export.Report{}
}

// enterTabs swaps to the protected screens and kicks off the active tab's
// fetch.
func (a *App) enterTabs() tea.Cmd {
	a.loginForm = nil
	a.authBusy = false
	return a.refetch()
}

// refetch bumps the sequence guard and fetches the active tab's data.
func (a *App) refetch() tea.Cmd {
	a.seq++
	a.fetching = true
	switch a.activeTab {
	case tabDashboard:
		return a.fetchDashboardCmd(a.seq)
	case tabExpenses:
		return a.fetchExpensesCmd(a.seq)
	case tabBudgets:
		return a.fetchBudgetsCmd(a.seq)
	case tabReports:
		return a.fetchReportsCmd(a.seq, a.reportRng)
	default:
		a.fetching = false
		return nil
	}
}

// handleFetchErr routes fetch failures: a 401 means the client already fired
// the session-expired hook, so the only job here is the single hard
// transition back to login. Anything else is a transient notice. The
// returned cmd initializes the login form when the transition happens.
func (a *App) handleFetchErr(err error) tea.Cmd {
	a.fetching = false
	if errors.Is(err, api.ErrUnauthorized) {
		a.enterLogin("Session expired. Please sign in again.")
		return a.loginForm.Init()
	}
	a.notice = err.Error()
	return nil
}

// stale reports whether a fetch response was superseded; stale responses
// must not overwrite fresher in-flight state.
func (a App) stale(seq int) bool {
	return seq != a.seq || a.onLogin()
}

func (a App) onLogin() bool {
	return a.loginForm != nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.loginForm != nil {
			a.loginForm = a.loginForm.WithWidth(msg.Width)
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case restoredMsg:
		a.restored = true
		switch route.Decide(route.Protected, a.store.State()) {
		case route.Render:
			return a, a.enterTabs()
		default:
			a.enterLogin("")
			return a, a.loginForm.Init()
		}

	case authDoneMsg:
		a.authBusy = false
		if msg.created {
			// Account created but no token: back to the login form with a
			// notice instead of the authenticated landing view.
			a.loginForm = nil
			a.enterLogin("Account created. Please log in.")
			return a, a.loginForm.Init()
		}
		if msg.err != nil {
			a.loginForm = nil
			a.enterLogin(errMessage(msg.err))
			return a, a.loginForm.Init()
		}
		a.notice = fmt.Sprintf("Welcome back, %s!", a.username())
		return a, a.enterTabs()

	case dashboardMsg:
		if a.stale(msg.seq) {
			return a, nil
		}
		if msg.err != nil {
			return a, a.handleFetchErr(msg.err)
		}
		a.fetching = false
		a.dashStats = metrics.ComputeStats(msg.txs)
		a.dashRecent = msg.recent
		return a, nil

	case expensesMsg:
		if a.stale(msg.seq) {
			return a, nil
		}
		if msg.err != nil {
			return a, a.handleFetchErr(msg.err)
		}
		a.fetching = false
		a.expenses = msg.txs
		return a, nil

	case budgetsMsg:
		if a.stale(msg.seq) {
			return a, nil
		}
		if msg.err != nil {
			return a, a.handleFetchErr(msg.err)
		}
		a.fetching = false
		a.budgetRows = metrics.BudgetSummaries(msg.cats, msg.txs, metrics.BackendBudget(msg.budgets))
		return a, nil

	case reportsMsg:
		if a.stale(msg.seq) {
			return a, nil
		}
		if msg.err != nil {
			return a, a.handleFetchErr(msg.err)
		}
		a.fetching = false
		a.report = msg.rep
		return a, nil

	case daySavedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				return a, a.handleFetchErr(msg.err)
			}
			a.notice = msg.err.Error()
		} else {
			a.notice = "Preferences updated."
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	// Forward everything else to the login form while it is active.
	if a.loginForm != nil {
		return a.updateLoginForm(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.restored {
		return a, nil
	}

	if a.loginForm != nil {
		return a.updateLoginForm(msg)
	}

	// Settings day editor intercepts keys while editing
	if a.activeTab == tabSettings && a.editingDay {
		return a.updateDayInput(msg)
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "?":
		a.showHelp = !a.showHelp
		return a, nil
	case "R":
		return a, a.refetch()
	case "tab", "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, a.refetch()
	case "shift+tab", "left":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		return a, a.refetch()
	case "g":
		if a.activeTab == tabReports {
			a.reportRng = nextRange(a.reportRng)
			return a, a.refetch()
		}
	case "m":
		if a.activeTab == tabSettings {
			a.editingDay = true
			a.dayInput.SetValue("")
			a.dayInput.Focus()
			return a, textinput.Blink
		}
	case "L":
		a.store.SignOut()
		a.enterLogin("Logged out successfully!")
		return a, a.loginForm.Init()
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, a.refetch()
		}
	}

	return a, nil
}

func (a App) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.authBusy {
		return a, nil
	}

	f, cmd := a.loginForm.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		a.loginForm = form
	}

	if a.loginForm.State == huh.StateCompleted {
		vals := *a.loginVals
		if err := validateAuth(vals); err != nil {
			// Validation failures never reach the network.
			a.loginForm = nil
			a.enterLogin(err.Error())
			return a, a.loginForm.Init()
		}
		a.authBusy = true
		a.notice = ""
		return a, a.authCmd(vals)
	}

	return a, cmd
}

func (a App) updateDayInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editingDay = false
		return a, nil
	case "enter":
		a.editingDay = false
		return a, a.saveDayCmd(a.dayInput.Value())
	}
	var cmd tea.Cmd
	a.dayInput, cmd = a.dayInput.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	// Guard: no redirect decision while the restore is in flight.
	if route.Decide(route.Protected, a.sessionState()) == route.Placeholder {
		return components.Placeholder(a.spinner.View()+" Loading...", a.width, a.height)
	}

	if a.onLogin() {
		return a.renderLogin()
	}

	return a.renderTabs()
}

func (a App) sessionState() session.State {
	if !a.restored {
		return session.StateLoading
	}
	return a.store.State()
}

func (a App) renderLogin() string {
	var b strings.Builder
	b.WriteString("\n")
	if a.authBusy {
		b.WriteString(components.Placeholder(a.spinner.View()+" Signing in...", a.width, 3))
	} else {
		b.WriteString(a.loginForm.View())
	}
	if a.notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(theme.Active.Orange)
		b.WriteString("\n " + noticeStyle.Render(a.notice))
	}
	return b.String()
}

func (a App) renderTabs() string {
	var b strings.Builder

	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	if a.showHelp {
		b.WriteString(a.renderHelp())
	} else if a.fetching {
		b.WriteString(components.Placeholder(a.spinner.View()+" Fetching...", a.width, a.contentHeight()))
	} else {
		switch a.activeTab {
		case tabDashboard:
			b.WriteString(a.renderDashboardTab())
		case tabExpenses:
			b.WriteString(a.renderExpensesTab())
		case tabBudgets:
			b.WriteString(a.renderBudgetsTab())
		case tabReports:
			b.WriteString(a.renderReportsTab())
		case tabSettings:
			b.WriteString(a.renderSettingsTab())
		}
	}

	rendered := b.String()
	gap := a.height - lipgloss.Height(rendered) - 1
	if gap > 0 {
		rendered += strings.Repeat("\n", gap)
	}
	rendered += components.RenderStatusBar(a.width, a.username(), a.notice)
	return rendered
}

func (a App) renderHelp() string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	rows := []struct{ key, desc string }{
		{"d/e/b/r/x", "switch tab"},
		{"tab / shift+tab", "next / previous tab"},
		{"R", "refetch current tab"},
		{"g", "cycle report range (reports tab)"},
		{"m", "edit month start day (settings tab)"},
		{"L", "log out"},
		{"q", "quit"},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-16s", r.key)),
			descStyle.Render(r.desc)))
	}
	return components.ContentCard("Keys", b.String(), a.contentWidth())
}

func (a App) username() string {
	if sess, ok := a.store.Current(); ok {
		return sess.Username
	}
	return ""
}

func (a App) contentWidth() int {
	w := a.width - 2
	if w > 110 {
		w = 110
	}
	if w < 40 {
		w = 40
	}
	return w
}

func (a App) contentHeight() int {
	h := a.height - 5
	if h < 5 {
		h = 5
	}
	return h
}

func nextRange(rng string) string {
	switch rng {
	case api.Range3M:
		return api.Range6M
	case api.Range6M:
		return api.RangeAll
	default:
		return api.Range3M
	}
}

// errMessage surfaces the server-provided message, or a generic fallback.
func errMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, session.ErrNoToken) {
		return "Sign in failed: no token returned from backend."
	}
	if err != nil {
		return "Sign in failed. Check credentials."
	}
	return ""
}
