package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	"github.com/sridharvel/annapoorna-pos/internal/domain/repository"
	"github.com/sridharvel/annapoorna-pos/pkg/apperror"
)

// ExpenseService handles the expense log. Expenses are mutable — edits and
// deletes are supported, unlike bills and credit payments.
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// AddExpense records an outlay. An empty date defaults to today's local date.
func (s *ExpenseService) AddExpense(ctx context.Context, description string, amount decimal.Decimal, date string) (*entity.Expense, error) {
	if description == "" {
		return nil, apperror.NewValidationError("Description is required")
	}
	if amount.IsNegative() {
		return nil, apperror.NewValidationError("Amount must not be negative")
	}
	if date == "" {
		date = time.Now().Format(entity.DateLayout)
	} else if err := validateDate(date); err != nil {
		return nil, err
	}

	expense := &entity.Expense{
		ExpenseDate: date,
		Description: description,
		Amount:      amount,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return expense, nil
}

// UpdateExpense edits a recorded expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uint, description string, amount decimal.Decimal, date string) (*entity.Expense, error) {
	if description == "" {
		return nil, apperror.NewValidationError("Description is required")
	}
	if amount.IsNegative() {
		return nil, apperror.NewValidationError("Amount must not be negative")
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if expense == nil {
		return nil, apperror.NewReferenceError("Expense")
	}

	expense.Description = description
	expense.Amount = amount
	expense.ExpenseDate = date

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return expense, nil
}

// DeleteExpense removes a recorded expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uint) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NewStorageError(err)
	}
	if expense == nil {
		return apperror.NewReferenceError("Expense")
	}
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return apperror.NewStorageError(err)
	}
	return nil
}

// GetExpensesByDateRange lists expenses in [start, end], newest first.
func (s *ExpenseService) GetExpensesByDateRange(ctx context.Context, start, end string) ([]entity.Expense, error) {
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return expenses, nil
}

// GetExpensesByDate lists one date's expenses.
func (s *ExpenseService) GetExpensesByDate(ctx context.Context, date string) ([]entity.Expense, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return expenses, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return apperror.NewValidationError("Date must be in YYYY-MM-DD format")
	}
	return nil
}

func validateDateRange(start, end string) error {
	if err := validateDate(start); err != nil {
		return err
	}
	if err := validateDate(end); err != nil {
		return err
	}
	// ISO dates compare correctly as strings.
	if start > end {
		return apperror.NewValidationError("Start date must not be after end date")
	}
	return nil
}
