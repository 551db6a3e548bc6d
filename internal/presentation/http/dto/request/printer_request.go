package request

// PrintReceiptRequest represents a receipt print request for an existing bill.
type PrintReceiptRequest struct {
	BillID uint `json:"bill_id" binding:"required"`
}
