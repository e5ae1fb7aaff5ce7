package models

import "github.com/shopspring/decimal"

// RecordCategory splits financial records into the two ledger sides.
type RecordCategory string

const (
	CategoryIncome  RecordCategory = "Income"
	CategoryExpense RecordCategory = "Expense"
)

func (c RecordCategory) String() string { return string(c) }

// RecordCategories lists the selectable categories in display order.
func RecordCategories() []RecordCategory {
	return []RecordCategory{CategoryIncome, CategoryExpense}
}

// PaymentMethod is how a financial record was settled.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "Cash"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentCheque       PaymentMethod = "Cheque"
	PaymentCard         PaymentMethod = "Card"
)

func (m PaymentMethod) String() string { return string(m) }

// PaymentMethods lists the selectable methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentBankTransfer, PaymentCheque, PaymentCard}
}

// FinancialRecord is one income or expense entry. Date uses the ISO
// YYYY-MM-DD form. Amount is always non-negative; the category decides
// which side of the ledger it lands on.
type FinancialRecord struct {
	ID            string          `json:"id"`
	Date          string          `json:"date" validate:"required"`
	Description   string          `json:"description" validate:"required"`
	Category      RecordCategory  `json:"category" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" validate:"required"`
	Reference     string          `json:"reference,omitempty"`
}

// RecordID implements store.Record.
func (r FinancialRecord) RecordID() string { return r.ID }

// Signed returns the amount with expenses negated, for net roll-ups.
func (r FinancialRecord) Signed() decimal.Decimal {
	if r.Category == CategoryExpense {
		return r.Amount.Neg()
	}
	return r.Amount
}
