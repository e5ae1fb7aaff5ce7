package stub

import (
	"github.com/shopspring/decimal"

	"github.com/NirunaShyamal/farm-sub001/internal/models"
)

// seed loads fixture data so a fresh stub looks like a working farm.
func (s *Server) seed() {
	for _, r := range []models.ProductionRecord{
		{Date: "12/08/2026", BatchNumber: "Batch-001", Birds: 150, EggsCollected: 120, DamagedEggs: 5, Notes: "Normal collection"},
		{Date: "13/08/2026", BatchNumber: "Batch-002", Birds: 150, EggsCollected: 131, DamagedEggs: 2},
		{Date: "14/08/2026", BatchNumber: "Batch-003", Birds: 148, EggsCollected: 109, DamagedEggs: 8, Notes: "Two birds off lay"},
	} {
		s.production.add(r)
	}

	for _, o := range []models.SalesOrder{
		{Date: "2026-08-13", Customer: "Sunrise Grocers", Product: models.ProductFreshEggs, Quantity: 60, Price: decimal.NewFromFloat(45), Status: models.OrderCompleted},
		{Date: "2026-08-14", Customer: "Hilltop Bakery", Product: models.ProductOrganicEggs, Quantity: 30, Price: decimal.NewFromFloat(62.50), Status: models.OrderPending},
	} {
		s.sales.add(o)
	}

	for _, i := range []models.FeedItem{
		{FeedType: models.FeedLayerMash, QuantityKg: 250, Supplier: "AgriSupply Co", PurchaseDate: "2026-08-01", ExpiryDate: "2026-11-01"},
		{FeedType: models.FeedMaize, QuantityKg: 80, Supplier: "Valley Mills", PurchaseDate: "2026-07-20", ExpiryDate: "2026-09-10", Notes: "Use before layer mash"},
	} {
		s.feed.add(i)
	}

	for _, t := range []models.Task{
		{Date: "15/08/26", TaskDescription: "Morning egg collection", Category: models.TaskCollection, AssignedTo: "Kasun", Time: "06:00 AM", Status: models.TaskPending},
		{Date: "15/08/26", TaskDescription: "Clean coop 2", Category: models.TaskCleaning, AssignedTo: "Nimal", Time: "02:00 PM", Status: models.TaskInProgress},
	} {
		s.tasks.add(t)
	}

	for _, r := range []models.FinancialRecord{
		{Date: "2026-08-13", Description: "Egg sales - Sunrise Grocers", Category: models.CategoryIncome, Amount: decimal.NewFromFloat(2700), PaymentMethod: models.PaymentBankTransfer, Reference: "INV-0081"},
		{Date: "2026-08-10", Description: "Layer mash restock", Category: models.CategoryExpense, Amount: decimal.NewFromFloat(1850), PaymentMethod: models.PaymentCash},
	} {
		s.finance.add(r)
	}
}
