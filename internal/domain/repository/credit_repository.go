package repository

import (
	"context"

	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
)

// CreditRepository defines the interface for credit customer and payment
// data operations.
type CreditRepository interface {
	CreateCustomer(ctx context.Context, customer *entity.CreditCustomer) error
	GetCustomerByID(ctx context.Context, id uint) (*entity.CreditCustomer, error)
	// DeleteCustomer removes the customer together with their credit_bills
	// links and payments, in one transaction. The linked bills themselves
	// survive and re-classify as cash sales on later aggregation.
	DeleteCustomer(ctx context.Context, id uint) error
	// CreatePayment records a payment. Payments are append-only.
	CreatePayment(ctx context.Context, payment *entity.CreditPayment) error
}
