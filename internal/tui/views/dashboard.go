package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/NirunaShyamal/farm-sub001/internal/api"
	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/NirunaShyamal/farm-sub001/internal/store"
	"github.com/NirunaShyamal/farm-sub001/internal/summary"
)

// Dashboard shows roll-ups across every collection plus the backend
// health indicator.
type Dashboard struct {
	client   *api.Client
	prod     store.Collection[models.ProductionRecord]
	sales    store.Collection[models.SalesOrder]
	feed     store.Collection[models.FeedItem]
	tasks    store.Collection[models.Task]
	finance  store.Collection[models.FinancialRecord]
	currency string

	// Fetch outcomes land in separate slots so one failure never
	// blanks the others.
	prodErr   error
	salesErr  error
	feedErr   error
	healthErr error
	loaded    bool
}

// NewDashboard creates the dashboard page.
func NewDashboard(
	client *api.Client,
	prod store.Collection[models.ProductionRecord],
	sales store.Collection[models.SalesOrder],
	feed store.Collection[models.FeedItem],
	tasks store.Collection[models.Task],
	finance store.Collection[models.FinancialRecord],
	currency string,
) *Dashboard {
	return &Dashboard{
		client:   client,
		prod:     prod,
		sales:    sales,
		feed:     feed,
		tasks:    tasks,
		finance:  finance,
		currency: currency,
	}
}

// Name returns the module identifier.
func (d *Dashboard) Name() string { return "dashboard" }

// Capturing always reports false; the dashboard has no form.
func (d *Dashboard) Capturing() bool { return false }

// Load fetches production, sales, feed and health concurrently. Each
// slot records its own error; a partial failure degrades the figures
// instead of failing the page.
func (d *Dashboard) Load(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		d.prodErr = d.prod.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		d.salesErr = d.sales.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		d.feedErr = d.feed.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		d.healthErr = d.client.Health(ctx)
	}()

	wg.Wait()
	d.loaded = true

	if d.prodErr != nil {
		return d.prodErr
	}
	return nil
}

// HandleKey refreshes on r; everything else is ignored.
func (d *Dashboard) HandleKey(key string) *Op {
	if key == "r" {
		return &Op{Kind: OpLoad, Do: d.Load}
	}
	return nil
}

// Render draws the dashboard metric panels.
func (d *Dashboard) Render(width, height int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ FARM DASHBOARD ═══"))
	b.WriteString("\n\n")

	if d.healthErr == nil && d.loaded {
		b.WriteString(labelStyle.Render("Backend: ") + valueStyle.Render("ONLINE"))
	} else if d.loaded {
		b.WriteString(labelStyle.Render("Backend: ") + errStyle.Render("OFFLINE"))
	} else {
		b.WriteString(labelStyle.Render("Backend: ") + labelStyle.Render("checking..."))
	}
	b.WriteString("\n\n")

	prodSummary := summary.Production(d.prod.All(), d.sales.All(), d.salesErr == nil)

	b.WriteString(titleStyle.Render("PRODUCTION"))
	b.WriteString("\n")
	if d.prodErr != nil {
		b.WriteString(errStyle.Render("Error: " + d.prodErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("Total eggs:") + "        " + valueStyle.Render(strconv.Itoa(prodSummary.TotalEggs)) + "\n")
	b.WriteString(labelStyle.Render("Damaged eggs:") + "      " + valueStyle.Render(strconv.Itoa(prodSummary.TotalDamagedEggs)) + "\n")
	b.WriteString(labelStyle.Render("Avg per record:") + "    " + valueStyle.Render(fmt.Sprintf("%.1f", prodSummary.AverageProduction)) + "\n")
	b.WriteString(labelStyle.Render("Eggs sold:") + "         " + valueStyle.Render(strconv.Itoa(prodSummary.EggsSold)) + "\n")
	b.WriteString(labelStyle.Render("Eggs in stock:") + "     " + valueStyle.Render(strconv.Itoa(prodSummary.EggsInStock)) + "\n")
	if prodSummary.SalesDataMissing {
		b.WriteString(warnStyle.Render("Sales data unavailable; stock figures exclude sales."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	salesSummary := summary.Sales(d.sales.All())
	b.WriteString(titleStyle.Render("SALES"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Orders:") + "            " + valueStyle.Render(strconv.Itoa(salesSummary.TotalOrders)) + "\n")
	b.WriteString(labelStyle.Render("Revenue:") + "           " + valueStyle.Render(d.currency+salesSummary.TotalRevenue.StringFixed(2)) + "\n")
	b.WriteString(labelStyle.Render("Pending orders:") + "    " + valueStyle.Render(strconv.Itoa(salesSummary.PendingOrders)) + "\n")
	b.WriteString("\n")

	feedSummary := summary.Feed(d.feed.All(), time.Now())
	taskSummary := summary.Tasks(d.tasks.All())
	financeSummary := summary.Finance(d.finance.All())

	b.WriteString(titleStyle.Render("FEED / TASKS / FINANCE"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Feed stock:") + "        " + valueStyle.Render(fmt.Sprintf("%.1f kg", feedSummary.TotalQuantityKg)))
	if feedSummary.ExpiringSoon > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  (%d expiring soon)", feedSummary.ExpiringSoon)))
	}
	if d.feedErr != nil {
		b.WriteString(warnStyle.Render("  (feed data unavailable)"))
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Open tasks:") + "        " + valueStyle.Render(strconv.Itoa(taskSummary.Pending+taskSummary.InProgress)) + "\n")
	net := valueStyle
	if financeSummary.NetProfit.IsNegative() {
		net = errStyle
	}
	b.WriteString(labelStyle.Render("Net profit:") + "        " + net.Render(d.currency+financeSummary.NetProfit.StringFixed(2)) + "\n")

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r:Refresh  F3-F7:Modules  F10:Quit"))

	return b.String()
}
