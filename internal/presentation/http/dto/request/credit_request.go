package request

// CreateCustomerRequest represents a credit customer creation request
type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
}

// CreatePaymentRequest represents a credit payment record request. Date
// defaults to today when omitted.
type CreatePaymentRequest struct {
	Amount float64 `json:"amount" binding:"min=0"`
	Date   string  `json:"date" binding:"omitempty,len=10"`
}
