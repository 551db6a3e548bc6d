package entity

import "github.com/shopspring/decimal"

// BillTimeLayout is the storage format for bill timestamps: local wall-clock
// time at second precision. The calendar-date prefix is what every daily
// aggregate groups on, so this is deliberately NOT UTC.
const BillTimeLayout = "2006-01-02T15:04:05"

// Bill is an immutable bill header. Rows are never deleted; the only mutation
// is the edit-and-reprint flow, which replaces the line items while keeping
// the id and created_at.
type Bill struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CreatedAt   string          `gorm:"size:19;not null;column:created_at" json:"created_at"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;column:total_amount" json:"total_amount"`

	// Relationships
	Lines      []BillLine  `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
	CreditBill *CreditBill `gorm:"foreignKey:BillID" json:"credit_bill,omitempty"`
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// Date returns the calendar-date part of the created_at timestamp.
func (b *Bill) Date() string {
	if len(b.CreatedAt) < 10 {
		return b.CreatedAt
	}
	return b.CreatedAt[:10]
}

// Time returns the time-of-day part of the created_at timestamp.
func (b *Bill) Time() string {
	if len(b.CreatedAt) < 19 {
		return ""
	}
	return b.CreatedAt[11:19]
}

// BillLine is a line item on a bill. Rate is the item price copied at sale
// time; later menu price changes never touch historical bills.
type BillLine struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	BillID   uint            `gorm:"not null;index;column:bill_id" json:"bill_id"`
	ItemID   uint            `gorm:"not null;index;column:item_id" json:"item_id"`
	Quantity int             `gorm:"not null" json:"quantity"`
	Rate     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rate"`

	// Relationships
	Item Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// TableName returns the table name for the BillLine model
func (BillLine) TableName() string {
	return "bill_items"
}

// Amount returns rate * quantity for this line.
func (l *BillLine) Amount() decimal.Decimal {
	return l.Rate.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
