package request

// BillLineRequest is one cart line in a bill request.
type BillLineRequest struct {
	ItemID   uint    `json:"item_id" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Rate     float64 `json:"rate" binding:"min=0"`
}

// CreateBillRequest represents a bill creation request. CustomerID is set
// only for credit sales.
type CreateBillRequest struct {
	Lines      []BillLineRequest `json:"lines" binding:"required,dive"`
	CustomerID *uint             `json:"customer_id"`
}

// UpdateBillRequest represents a bill line replacement request.
type UpdateBillRequest struct {
	Lines []BillLineRequest `json:"lines" binding:"required,dive"`
}

// BillHistoryRequest represents bill history filter parameters
type BillHistoryRequest struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}
