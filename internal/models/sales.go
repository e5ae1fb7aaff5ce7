package models

import "github.com/shopspring/decimal"

// Product is the egg product sold on an order.
type Product string

const (
	ProductFreshEggs     Product = "Fresh Eggs"
	ProductOrganicEggs   Product = "Organic Eggs"
	ProductFreeRangeEggs Product = "Free Range Eggs"
)

func (p Product) String() string { return string(p) }

// Products lists the selectable products in display order.
func Products() []Product {
	return []Product{ProductFreshEggs, ProductOrganicEggs, ProductFreeRangeEggs}
}

// OrderStatus is the fulfilment state of a sales order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderCompleted  OrderStatus = "Completed"
)

func (s OrderStatus) String() string { return string(s) }

// OrderStatuses lists the selectable statuses in display order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderPending, OrderProcessing, OrderCompleted}
}

// SalesOrder is a customer order for eggs. Date uses the ISO
// YYYY-MM-DD form.
type SalesOrder struct {
	ID       string          `json:"id"`
	Customer string          `json:"customer" validate:"required"`
	Product  Product         `json:"product" validate:"required"`
	Quantity int             `json:"quantity" validate:"min=0"`
	Price    decimal.Decimal `json:"price"`
	Status   OrderStatus     `json:"status" validate:"required"`
	Date     string          `json:"date" validate:"required"`
}

// RecordID implements store.Record.
func (o SalesOrder) RecordID() string { return o.ID }

// Total is quantity times unit price.
func (o SalesOrder) Total() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
}
