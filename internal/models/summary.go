package models

import "github.com/shopspring/decimal"

// ProductionSummary is the roll-up shown on the dashboard and the
// production page. Never persisted; recomputed on every load.
type ProductionSummary struct {
	TotalEggs        int     `json:"totalEggs"`
	TotalDamagedEggs int     `json:"totalDamagedEggs"`
	// AverageProduction is the mean eggs collected per record.
	AverageProduction float64 `json:"averageProduction"`
	EggsSold          int     `json:"eggsSold"`
	EggsInStock       int     `json:"eggsInStock"`
	// SalesDataMissing is set when the sales fetch failed and the
	// degraded figures (EggsSold=0, stock ignoring sales) are in use.
	SalesDataMissing bool `json:"salesDataMissing,omitempty"`
}

// SalesSummary aggregates the sales-orders collection.
type SalesSummary struct {
	TotalOrders   int             `json:"totalOrders"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	PendingOrders int             `json:"pendingOrders"`
}

// FinanceSummary aggregates the financial-records collection.
type FinanceSummary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// FeedSummary aggregates the feed-inventory collection.
type FeedSummary struct {
	TotalItems      int     `json:"totalItems"`
	TotalQuantityKg float64 `json:"totalQuantityKg"`
	ExpiringSoon    int     `json:"expiringSoon"`
}

// TaskSummary counts tasks per status.
type TaskSummary struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// ContactMessage is the payload for the non-CRUD contact endpoint.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" validate:"required"`
}
