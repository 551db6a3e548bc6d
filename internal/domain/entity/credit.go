package entity

import "github.com/shopspring/decimal"

// CreditCustomer is a customer who buys on credit. No balance column exists:
// the balance is always derived as sum(linked bill totals) - sum(payments).
type CreditCustomer struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:255;not null" json:"name"`
	Phone *string `gorm:"size:50" json:"phone,omitempty"`
}

// TableName returns the table name for the CreditCustomer model
func (CreditCustomer) TableName() string {
	return "credit_customers"
}

// CreditBill links a bill to the credit customer who owes it. The bill id is
// the primary key, so a bill can carry at most one link; a bill with no row
// here is a cash sale.
type CreditBill struct {
	BillID     uint `gorm:"primaryKey;column:bill_id" json:"bill_id"`
	CustomerID uint `gorm:"not null;index;column:customer_id" json:"customer_id"`

	// Relationships
	Customer CreditCustomer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// TableName returns the table name for the CreditBill model
func (CreditBill) TableName() string {
	return "credit_bills"
}

// CreditPayment records a customer paying down their balance. Immutable once
// created; there is no edit or delete path.
type CreditPayment struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CustomerID uint            `gorm:"not null;index;column:customer_id" json:"customer_id"`
	Date       string          `gorm:"size:10;not null" json:"date"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
}

// TableName returns the table name for the CreditPayment model
func (CreditPayment) TableName() string {
	return "credit_payments"
}
