package entity

import "github.com/shopspring/decimal"

// DateLayout is the storage format for calendar dates (expenses, payments).
const DateLayout = "2006-01-02"

// Expense is one recorded outlay. Unlike bills and credit payments, expenses
// support edit and delete; the expense log is not an immutable ledger.
type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ExpenseDate string          `gorm:"size:10;not null;index;column:expense_date" json:"expense_date"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
