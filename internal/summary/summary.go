// Package summary computes the roll-up metrics shown on the dashboard
// and page headers. Everything here is a pure single-pass reduction
// over loaded collections; nothing is persisted.
package summary

import (
	"time"

	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/shopspring/decimal"
)

// feedExpiryWindowDays is how far ahead the feed summary looks for
// expiring stock.
const feedExpiryWindowDays = 30

// Production composes the cross-collection production overview.
// haveSales reports whether the sales fetch succeeded; when it did
// not, the summary degrades instead of failing: eggs sold is zeroed
// and stock ignores sales entirely, while the figures derivable from
// production alone still populate.
func Production(records []models.ProductionRecord, sales []models.SalesOrder, haveSales bool) models.ProductionSummary {
	var s models.ProductionSummary

	for _, r := range records {
		s.TotalEggs += r.EggsCollected
		s.TotalDamagedEggs += r.DamagedEggs
	}
	if len(records) > 0 {
		s.AverageProduction = float64(s.TotalEggs) / float64(len(records))
	}

	usable := s.TotalEggs - s.TotalDamagedEggs

	if !haveSales {
		s.SalesDataMissing = true
		s.EggsSold = 0
		s.EggsInStock = usable
		return s
	}

	for _, o := range sales {
		s.EggsSold += o.Quantity
	}
	s.EggsInStock = usable - s.EggsSold
	if s.EggsInStock < 0 {
		s.EggsInStock = 0
	}
	return s
}

// Sales aggregates the sales-orders collection.
func Sales(orders []models.SalesOrder) models.SalesSummary {
	s := models.SalesSummary{TotalRevenue: decimal.Zero}
	for _, o := range orders {
		s.TotalOrders++
		s.TotalQuantity += o.Quantity
		s.TotalRevenue = s.TotalRevenue.Add(o.Total())
		if o.Status == models.OrderPending {
			s.PendingOrders++
		}
	}
	return s
}

// Finance aggregates income and expenses into the ledger totals.
func Finance(records []models.FinancialRecord) models.FinanceSummary {
	s := models.FinanceSummary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, r := range records {
		switch r.Category {
		case models.CategoryIncome:
			s.TotalIncome = s.TotalIncome.Add(r.Amount)
		case models.CategoryExpense:
			s.TotalExpenses = s.TotalExpenses.Add(r.Amount)
		}
	}
	s.NetProfit = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// Feed aggregates the feed-inventory collection.
func Feed(items []models.FeedItem, now time.Time) models.FeedSummary {
	var s models.FeedSummary
	for _, f := range items {
		s.TotalItems++
		s.TotalQuantityKg += f.QuantityKg
		if f.ExpiresWithin(now, feedExpiryWindowDays) {
			s.ExpiringSoon++
		}
	}
	return s
}

// Tasks counts tasks per status.
func Tasks(tasks []models.Task) models.TaskSummary {
	var s models.TaskSummary
	for _, t := range tasks {
		switch t.Status {
		case models.TaskPending:
			s.Pending++
		case models.TaskInProgress:
			s.InProgress++
		case models.TaskCompleted:
			s.Completed++
		}
	}
	return s
}
