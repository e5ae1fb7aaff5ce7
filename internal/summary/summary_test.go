package summary

import (
	"testing"
	"time"

	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/shopspring/decimal"
)

func productionRecords() []models.ProductionRecord {
	return []models.ProductionRecord{
		{EggsCollected: 100, DamagedEggs: 10},
		{EggsCollected: 200, DamagedEggs: 5},
		{EggsCollected: 60, DamagedEggs: 0},
	}
}

func TestProduction_PrimaryPath(t *testing.T) {
	sales := []models.SalesOrder{{Quantity: 120}, {Quantity: 30}}

	s := Production(productionRecords(), sales, true)

	if s.TotalEggs != 360 {
		t.Errorf("TotalEggs = %d, want 360", s.TotalEggs)
	}
	if s.TotalDamagedEggs != 15 {
		t.Errorf("TotalDamagedEggs = %d, want 15", s.TotalDamagedEggs)
	}
	if s.AverageProduction != 120 {
		t.Errorf("AverageProduction = %f, want 120", s.AverageProduction)
	}
	if s.EggsSold != 150 {
		t.Errorf("EggsSold = %d, want 150", s.EggsSold)
	}
	// (360-15) - 150
	if s.EggsInStock != 195 {
		t.Errorf("EggsInStock = %d, want 195", s.EggsInStock)
	}
	if s.SalesDataMissing {
		t.Error("SalesDataMissing must be false on the primary path")
	}
}

func TestProduction_StockClampedAtZero(t *testing.T) {
	sales := []models.SalesOrder{{Quantity: 9999}}
	s := Production(productionRecords(), sales, true)
	if s.EggsInStock != 0 {
		t.Errorf("EggsInStock = %d, want 0", s.EggsInStock)
	}
}

func TestProduction_FallbackWithoutSales(t *testing.T) {
	// Degraded mode: sold zeroes out, stock ignores sales, the
	// production-only figures still populate.
	s := Production(productionRecords(), nil, false)

	if s.EggsSold != 0 {
		t.Errorf("EggsSold = %d, want 0", s.EggsSold)
	}
	if s.EggsInStock != 345 { // totalEggs - totalDamagedEggs
		t.Errorf("EggsInStock = %d, want 345", s.EggsInStock)
	}
	if s.TotalEggs != 360 {
		t.Errorf("TotalEggs = %d, want 360", s.TotalEggs)
	}
	if s.AverageProduction != 120 {
		t.Errorf("AverageProduction = %f, want 120", s.AverageProduction)
	}
	if !s.SalesDataMissing {
		t.Error("SalesDataMissing must be set in degraded mode")
	}
}

func TestProduction_Empty(t *testing.T) {
	s := Production(nil, nil, true)
	if s.TotalEggs != 0 || s.AverageProduction != 0 || s.EggsInStock != 0 {
		t.Errorf("Unexpected non-zero summary %+v", s)
	}
}

func TestFinance_NetProfit(t *testing.T) {
	records := []models.FinancialRecord{
		{Category: models.CategoryIncome, Amount: decimal.NewFromInt(45000)},
		{Category: models.CategoryExpense, Amount: decimal.NewFromInt(12000)},
	}

	s := Finance(records)
	if !s.NetProfit.Equal(decimal.NewFromInt(33000)) {
		t.Errorf("NetProfit = %s, want 33000", s.NetProfit)
	}

	// Adding an income record recomputes totals immediately.
	records = append(records, models.FinancialRecord{
		Category: models.CategoryIncome, Amount: decimal.NewFromInt(1000),
	})
	s = Finance(records)
	if !s.TotalIncome.Equal(decimal.NewFromInt(46000)) {
		t.Errorf("TotalIncome = %s, want 46000", s.TotalIncome)
	}
	if !s.NetProfit.Equal(decimal.NewFromInt(34000)) {
		t.Errorf("NetProfit = %s, want 34000", s.NetProfit)
	}
}

func TestSales(t *testing.T) {
	orders := []models.SalesOrder{
		{Quantity: 30, Price: decimal.RequireFromString("12.50"), Status: models.OrderPending},
		{Quantity: 10, Price: decimal.RequireFromString("15.00"), Status: models.OrderCompleted},
	}

	s := Sales(orders)
	if s.TotalOrders != 2 || s.TotalQuantity != 40 || s.PendingOrders != 1 {
		t.Errorf("Unexpected summary %+v", s)
	}
	if !s.TotalRevenue.Equal(decimal.RequireFromString("525.00")) {
		t.Errorf("TotalRevenue = %s, want 525.00", s.TotalRevenue)
	}
}

func TestFeed(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []models.FeedItem{
		{QuantityKg: 250, ExpiryDate: "2025-01-10"},
		{QuantityKg: 100, ExpiryDate: "2025-06-01"},
		{QuantityKg: 75},
	}

	s := Feed(items, now)
	if s.TotalItems != 3 || s.TotalQuantityKg != 425 {
		t.Errorf("Unexpected summary %+v", s)
	}
	if s.ExpiringSoon != 1 {
		t.Errorf("ExpiringSoon = %d, want 1", s.ExpiringSoon)
	}
}

func TestTasks(t *testing.T) {
	tasks := []models.Task{
		{Status: models.TaskPending},
		{Status: models.TaskPending},
		{Status: models.TaskInProgress},
		{Status: models.TaskCompleted},
	}

	s := Tasks(tasks)
	if s.Pending != 2 || s.InProgress != 1 || s.Completed != 1 {
		t.Errorf("Unexpected summary %+v", s)
	}
}
