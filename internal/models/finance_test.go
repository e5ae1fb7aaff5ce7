package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFinancialRecord_Signed(t *testing.T) {
	income := FinancialRecord{Category: CategoryIncome, Amount: decimal.NewFromInt(1000)}
	if !income.Signed().Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected 1000, got %s", income.Signed())
	}

	expense := FinancialRecord{Category: CategoryExpense, Amount: decimal.NewFromInt(250)}
	if !expense.Signed().Equal(decimal.NewFromInt(-250)) {
		t.Errorf("Expected -250, got %s", expense.Signed())
	}
}

func TestSalesOrder_Total(t *testing.T) {
	o := SalesOrder{Quantity: 30, Price: decimal.RequireFromString("12.50")}
	if !o.Total().Equal(decimal.RequireFromString("375.00")) {
		t.Errorf("Expected 375.00, got %s", o.Total())
	}
}
