package request

// LoginRequest represents an operator login request
type LoginRequest struct {
	PIN string `json:"pin" binding:"required,min=4,max=12"`
}
