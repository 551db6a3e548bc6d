package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	"github.com/sridharvel/annapoorna-pos/internal/domain/repository"
	"github.com/sridharvel/annapoorna-pos/pkg/apperror"
)

// CreditService handles credit customers and their payments. Payments are
// append-only; recording one is the only way a balance goes down.
type CreditService struct {
	creditRepo repository.CreditRepository
}

// NewCreditService creates a new credit service
func NewCreditService(creditRepo repository.CreditRepository) *CreditService {
	return &CreditService{creditRepo: creditRepo}
}

// AddCustomer registers a new credit customer.
func (s *CreditService) AddCustomer(ctx context.Context, name string, phone *string) (*entity.CreditCustomer, error) {
	if name == "" {
		return nil, apperror.NewValidationError("Customer name is required")
	}

	customer := &entity.CreditCustomer{Name: name, Phone: phone}
	if err := s.creditRepo.CreateCustomer(ctx, customer); err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return customer, nil
}

// DeleteCustomer removes a customer with their payment and link rows.
// This is a hard cascade: the customer's bills survive but lose their credit
// classification, so past credit sales re-aggregate as cash afterwards.
func (s *CreditService) DeleteCustomer(ctx context.Context, id uint) error {
	customer, err := s.creditRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return apperror.NewStorageError(err)
	}
	if customer == nil {
		return apperror.NewReferenceError("Credit customer")
	}
	if err := s.creditRepo.DeleteCustomer(ctx, id); err != nil {
		return apperror.NewStorageError(err)
	}
	return nil
}

// AddPayment records a payment against a customer's balance. An empty date
// defaults to today's local date.
func (s *CreditService) AddPayment(ctx context.Context, customerID uint, amount decimal.Decimal, date string) (*entity.CreditPayment, error) {
	if amount.IsNegative() {
		return nil, apperror.NewValidationError("Amount must not be negative")
	}
	if date == "" {
		date = time.Now().Format(entity.DateLayout)
	} else if err := validateDate(date); err != nil {
		return nil, err
	}

	customer, err := s.creditRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if customer == nil {
		return nil, apperror.NewReferenceError("Credit customer")
	}

	payment := &entity.CreditPayment{
		CustomerID: customerID,
		Date:       date,
		Amount:     amount,
	}
	if err := s.creditRepo.CreatePayment(ctx, payment); err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return payment, nil
}
