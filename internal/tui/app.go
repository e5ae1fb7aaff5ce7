package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NirunaShyamal/farm-sub001/internal/api"
	"github.com/NirunaShyamal/farm-sub001/internal/config"
	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/NirunaShyamal/farm-sub001/internal/store"
	"github.com/NirunaShyamal/farm-sub001/internal/tui/views"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// MaxContentWidth is the maximum width for content display
const MaxContentWidth = 120

// Stores bundles the record collections the application drives.
type Stores struct {
	Production store.Collection[models.ProductionRecord]
	Sales      store.Collection[models.SalesOrder]
	Feed       store.Collection[models.FeedItem]
	Tasks      store.Collection[models.Task]
	Finance    store.Collection[models.FinancialRecord]
}

// App is the main Bubble Tea application model.
type App struct {
	// Dependencies
	client *api.Client
	config *config.Config

	// Pages
	pages map[string]views.Handler

	// UI state
	theme       *Theme
	keys        KeyMap
	width       int
	height      int
	ready       bool
	quitting    bool
	showConfirm bool

	currentModule  string
	previousModule string

	// Alerts
	alerts []Alert
}

// Alert is one entry on the alert bar.
type Alert struct {
	Level   AlertLevel
	Message string
	Time    time.Time
}

// AlertLevel indicates the severity of an alert.
type AlertLevel int

const (
	AlertInfo AlertLevel = iota
	AlertWarning
	AlertCritical
)

// tickMsg is sent periodically to update the clock display.
type tickMsg time.Time

// New creates a new App instance.
func New(client *api.Client, cfg *config.Config, stores Stores) *App {
	currency := cfg.Farm.Currency

	pages := map[string]views.Handler{
		"dashboard": views.NewDashboard(client,
			stores.Production, stores.Sales, stores.Feed, stores.Tasks, stores.Finance,
			currency),
		"production": views.NewProductionPage(stores.Production),
		"sales":      views.NewSalesPage(stores.Sales, currency),
		"feed":       views.NewFeedPage(stores.Feed),
		"tasks":      views.NewTasksPage(stores.Tasks),
		"finance":    views.NewFinancePage(stores.Finance, currency),
		"contact":    views.NewContact(client),
	}

	return &App{
		client:        client,
		config:        cfg,
		pages:         pages,
		theme:         NewTheme(cfg.Display.ColorScheme),
		keys:          DefaultKeyMap(),
		currentModule: "dashboard",
		alerts:        []Alert{},
	}
}

// Page returns the handler for a module name, or nil.
func (a *App) Page(name string) views.Handler {
	return a.pages[name]
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
		a.loadPage(a.pages["dashboard"]),
	)
}

// tickCmd returns a command that sends tick messages.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type pageLoadedMsg struct {
	page string
	err  error
}

type opDoneMsg struct {
	kind views.OpKind
	err  error
}

// loadPage fetches a page's data off the update loop.
func (a *App) loadPage(page views.Handler) tea.Cmd {
	return func() tea.Msg {
		err := page.Load(context.Background())
		return pageLoadedMsg{page: page.Name(), err: err}
	}
}

// runOp executes a deferred page operation.
func (a *App) runOp(op *views.Op) tea.Cmd {
	return func() tea.Msg {
		err := op.Do(context.Background())
		return opDoneMsg{kind: op.Kind, err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tickMsg:
		return a, tickCmd()

	case pageLoadedMsg:
		if msg.err != nil {
			// Reads degrade: the page shows stale or empty data and
			// the alert bar carries the failure.
			slog.Error("page load failed", "page", msg.page, "error", msg.err)
			a.AddAlert(AlertWarning, "Failed to load "+msg.page+": "+msg.err.Error())
		}
		return a, nil

	case opDoneMsg:
		switch msg.kind {
		case views.OpLoad:
			if msg.err != nil {
				slog.Error("refresh failed", "error", msg.err)
				a.AddAlert(AlertWarning, "Refresh failed: "+msg.err.Error())
			}
		case views.OpSave:
			if msg.err != nil {
				// The form stays open with the message; the alert is
				// just the ambient echo.
				a.AddAlert(AlertWarning, "Save failed: "+msg.err.Error())
			} else {
				a.AddAlert(AlertInfo, "Record saved")
			}
		case views.OpDelete:
			if msg.err != nil {
				a.AddAlert(AlertWarning, "Delete failed: "+msg.err.Error())
			} else {
				a.AddAlert(AlertInfo, "Record deleted")
			}
		case views.OpSend:
			if msg.err != nil {
				a.AddAlert(AlertWarning, "Send failed: "+msg.err.Error())
			} else {
				a.AddAlert(AlertInfo, "Message sent")
			}
		}
		return a, nil
	}

	return a, nil
}

// handleKeyPress processes key press events.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit confirmation takes priority over everything.
	if a.showConfirm {
		switch msg.String() {
		case "y", "Y", "enter":
			a.quitting = true
			return a, tea.Quit
		case "n", "N", "esc":
			a.showConfirm = false
		}
		return a, nil
	}

	// Function key navigation is always available, even inside forms:
	// text inputs cannot consume function keys.
	if a.keys.IsFunctionKey(msg) {
		return a.navigate(a.keys.GetFunctionKeyModule(msg))
	}

	page := a.pages[a.currentModule]

	// Forms need every remaining key.
	if a.currentModule != "help" && page.Capturing() {
		if op := page.HandleKey(msg.String()); op != nil {
			return a, a.runOp(op)
		}
		return a, nil
	}

	if a.keys.IsQuit(msg) {
		a.showConfirm = true
		return a, nil
	}

	if a.currentModule == "help" {
		if a.keys.Back.Matches(msg) && a.previousModule != "" {
			a.currentModule = a.previousModule
			a.previousModule = ""
		}
		return a, nil
	}

	if op := page.HandleKey(msg.String()); op != nil {
		return a, a.runOp(op)
	}
	return a, nil
}

// navigate switches to the named module.
func (a *App) navigate(module string) (tea.Model, tea.Cmd) {
	switch module {
	case "":
		return a, nil
	case "quit":
		a.showConfirm = true
		return a, nil
	case "help":
		if a.currentModule != "help" {
			a.previousModule = a.currentModule
			a.currentModule = "help"
		}
		return a, nil
	}

	page, ok := a.pages[module]
	if !ok {
		return a, nil
	}
	a.currentModule = module
	return a, a.loadPage(page)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.quitting {
		return a.theme.Title.Render("Farm management terminal shutting down...")
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	b.WriteString(a.renderAlertBar())
	b.WriteString("\n")

	contentHeight := a.height - 6 // header, alert, footer
	if a.showConfirm {
		b.WriteString(a.renderConfirmDialog(contentHeight))
	} else {
		b.WriteString(a.renderContent(contentHeight))
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderHeader renders the top header bar.
func (a *App) renderHeader() string {
	title := fmt.Sprintf("FARM MANAGEMENT TERMINAL v%s", Version)

	farmInfo := a.config.Farm.Name
	if a.config.Farm.Location != "" {
		farmInfo += " | " + a.config.Farm.Location
	}

	spacing := a.width - lipgloss.Width(title) - lipgloss.Width(farmInfo) - 2
	if spacing < 1 {
		spacing = 1
	}

	header := a.theme.Header.Render(title) +
		strings.Repeat(" ", spacing) +
		a.theme.Header.Render(farmInfo)

	separator := a.theme.DrawDoubleLine(a.width)

	return header + "\n" + separator
}

// renderAlertBar renders the clock plus the most recent alert.
func (a *App) renderAlertBar() string {
	timeStr := time.Now().Format(a.config.Display.DateFormat + " " + a.config.Display.TimeFormat)

	var alertText string
	if len(a.alerts) > 0 {
		alert := a.alerts[0]
		switch alert.Level {
		case AlertCritical:
			alertText = a.theme.AlertCrit.Render("CRITICAL: " + alert.Message)
		case AlertWarning:
			alertText = a.theme.AlertWarn.Render("WARNING: " + alert.Message)
		default:
			alertText = a.theme.Alert.Render("INFO: " + alert.Message)
		}
	} else {
		alertText = a.theme.Muted.Render("All systems operational")
	}

	timeDisplay := a.theme.Value.Render(timeStr)
	divider := a.theme.StatusDivider.Render()

	return timeDisplay + divider + alertText
}

// renderContent renders the main content area for the current module.
func (a *App) renderContent(height int) string {
	contentWidth := a.width
	if contentWidth > MaxContentWidth {
		contentWidth = MaxContentWidth
	}

	var content string
	if a.currentModule == "help" {
		content = a.renderHelp()
	} else {
		content = a.pages[a.currentModule].Render(contentWidth, height)
	}

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top)

	contentStyle := lipgloss.NewStyle().
		Width(contentWidth)

	return style.Render(contentStyle.Render(content))
}

// renderHelp renders the help screen.
func (a *App) renderHelp() string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ HELP ═══"))
	b.WriteString("\n\n")

	b.WriteString(a.theme.Subtitle.Render("NAVIGATION"))
	b.WriteString("\n\n")

	navItems := [][2]string{
		{"F1", "Help"},
		{"F2", "Dashboard"},
		{"F3", "Egg Production"},
		{"F4", "Sales Orders"},
		{"F5", "Feed Inventory"},
		{"F6", "Task Scheduling"},
		{"F7", "Financial Records"},
		{"F8", "Contact"},
		{"F10", "Quit"},
	}

	for _, item := range navItems {
		line := fmt.Sprintf("    %-8s  %s", item[0], item[1])
		b.WriteString(a.theme.Primary.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Subtitle.Render("LIST CONTROLS"))
	b.WriteString("\n\n")

	ctrlItems := [][2]string{
		{"Up/Down", "Navigate"},
		{"Enter", "Record details"},
		{"a", "Add record"},
		{"e", "Edit record"},
		{"d", "Delete record"},
		{"f", "Cycle filter"},
		{"1-9", "Sort by column (press again to reverse)"},
		{"r", "Refresh from backend"},
		{"Tab", "Next form field"},
		{"Ctrl+S", "Save form"},
		{"Esc", "Back/Cancel"},
	}

	for _, item := range ctrlItems {
		line := fmt.Sprintf("    %-8s  %s", item[0], item[1])
		b.WriteString(a.theme.Primary.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render("Press Esc to return"))

	return b.String()
}

// renderConfirmDialog renders the quit confirmation dialog.
func (a *App) renderConfirmDialog(height int) string {
	dialog := a.theme.Box.Render(
		a.theme.Title.Render("CONFIRM EXIT") + "\n\n" +
			a.theme.Base.Render("Are you sure you want to exit?") + "\n\n" +
			a.theme.Label.Render("[Y]es  [N]o"),
	)

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(dialog)
}

// renderFooter renders the bottom status bar.
func (a *App) renderFooter() string {
	separator := a.theme.DrawHorizontalLine(a.width)
	help := a.keys.StatusBarHelp()
	return separator + "\n" + a.theme.Footer.Render(help)
}

// AddAlert adds a new alert to the display.
func (a *App) AddAlert(level AlertLevel, message string) {
	a.alerts = append([]Alert{{
		Level:   level,
		Message: message,
		Time:    time.Now(),
	}}, a.alerts...)

	// Keep only last 10 alerts
	if len(a.alerts) > 10 {
		a.alerts = a.alerts[:10]
	}
}

// ClearAlerts removes all alerts.
func (a *App) ClearAlerts() {
	a.alerts = []Alert{}
}

// Run starts the TUI application.
func Run(ctx context.Context, client *api.Client, cfg *config.Config, stores Stores) error {
	app := New(client, cfg, stores)

	p := tea.NewProgram(app, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, err := p.Run()
	return err
}
