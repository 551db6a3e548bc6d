package repository

import (
	"context"

	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense data operations.
// Expenses support update and delete; this mutability is deliberate and
// asymmetric with bills and credit payments.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uint) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uint) error
	// ListByDateRange returns expenses with expense_date in [start, end],
	// newest date first.
	ListByDateRange(ctx context.Context, start, end string) ([]entity.Expense, error)
	// ListByDate returns one date's expenses, newest entry first.
	ListByDate(ctx context.Context, date string) ([]entity.Expense, error)
}
