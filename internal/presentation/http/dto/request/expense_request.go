package request

// CreateExpenseRequest represents an expense creation request. Date defaults
// to today when omitted.
type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"min=0"`
	Date        string  `json:"date" binding:"omitempty,len=10"`
}

// UpdateExpenseRequest represents an expense update request
type UpdateExpenseRequest struct {
	Description string  `json:"description" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"min=0"`
	Date        string  `json:"date" binding:"required,len=10"`
}

// DateRangeRequest represents a date range query, inclusive on both ends.
type DateRangeRequest struct {
	Start string `form:"start" binding:"required,len=10"`
	End   string `form:"end" binding:"required,len=10"`
}
