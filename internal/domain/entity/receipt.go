package entity

import "github.com/shopspring/decimal"

// ReceiptLine is a single printed line item.
type ReceiptLine struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// Receipt is a value object representing a printable bill. It is not a
// database entity; it is composed from a bill and its lines at print time.
type Receipt struct {
	StoreName string          `json:"store_name"`
	BillNo    uint            `json:"bill_no"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	BillType  string          `json:"bill_type"`
	Customer  string          `json:"customer,omitempty"`
	Lines     []ReceiptLine   `json:"lines"`
	Total     decimal.Decimal `json:"total"`
}
