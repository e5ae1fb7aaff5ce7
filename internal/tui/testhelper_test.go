package tui

import (
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/NirunaShyamal/farm-sub001/internal/api"
	"github.com/NirunaShyamal/farm-sub001/internal/config"
	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/NirunaShyamal/farm-sub001/internal/store"
	"github.com/NirunaShyamal/farm-sub001/internal/stub"
)

// newTestApp creates an App backed by a seeded in-process stub backend.
// Remote collections (egg production, feed inventory) hit the stub over
// HTTP; sales, tasks and finances are session-local, like farmtui wires
// them. The window is set to 120x40 and marked ready.
func newTestApp(t *testing.T) *App {
	t.Helper()

	client := newTestClient(t)
	app := New(client, config.Default(), newTestStores(client))

	// Simulate a window size message to make the app ready
	app.width = 120
	app.height = 40
	app.ready = true

	return app
}

// newTestClient starts a seeded stub backend and returns a client for it.
func newTestClient(t *testing.T) *api.Client {
	t.Helper()

	srv := httptest.NewServer(stub.NewServer(true).Router())
	t.Cleanup(srv.Close)

	return api.NewClient(srv.URL + "/api")
}

func newTestStores(client *api.Client) Stores {
	return Stores{
		Production: store.NewRemote[models.ProductionRecord](client, api.CollectionEggProduction),
		Feed:       store.NewRemote[models.FeedItem](client, api.CollectionFeedInventory),
		Sales: store.NewLocal(testSales(), func(o models.SalesOrder, id string) models.SalesOrder {
			o.ID = id
			return o
		}),
		Tasks: store.NewLocal(testTasks(), func(tk models.Task, id string) models.Task {
			tk.ID = id
			return tk
		}),
		Finance: store.NewLocal(testFinance(), func(r models.FinancialRecord, id string) models.FinancialRecord {
			r.ID = id
			return r
		}),
	}
}

func testSales() []models.SalesOrder {
	return []models.SalesOrder{
		{ID: "1", Date: "2026-08-13", Customer: "Sunrise Grocers", Product: models.ProductFreshEggs, Quantity: 60, Price: decimal.NewFromFloat(45), Status: models.OrderCompleted},
		{ID: "2", Date: "2026-08-14", Customer: "Hilltop Bakery", Product: models.ProductOrganicEggs, Quantity: 30, Price: decimal.NewFromFloat(62.50), Status: models.OrderPending},
	}
}

func testTasks() []models.Task {
	return []models.Task{
		{ID: "1", Date: "15/08/26", TaskDescription: "Morning egg collection", Category: models.TaskCollection, AssignedTo: "Kasun", Time: "06:00 AM", Status: models.TaskPending},
	}
}

func testFinance() []models.FinancialRecord {
	return []models.FinancialRecord{
		{ID: "1", Date: "2026-08-13", Description: "Egg sales - Sunrise Grocers", Category: models.CategoryIncome, Amount: decimal.NewFromFloat(2700), PaymentMethod: models.PaymentBankTransfer},
		{ID: "2", Date: "2026-08-10", Description: "Layer mash restock", Category: models.CategoryExpense, Amount: decimal.NewFromFloat(1850), PaymentMethod: models.PaymentCash},
	}
}

// navigate sends the key and, when navigation returns a page load
// command, runs it synchronously and feeds the result back through
// Update, the way the Bubble Tea runtime would.
func navigate(t *testing.T, app *App, msg tea.KeyMsg) {
	t.Helper()

	_, cmd := app.Update(msg)
	if cmd != nil {
		app.Update(cmd())
	}
}

// keyMsg creates a tea.KeyMsg for a regular character key.
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// specialKeyMsg creates a tea.KeyMsg for a special key type.
func specialKeyMsg(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}
