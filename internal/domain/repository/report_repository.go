package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	"github.com/sridharvel/annapoorna-pos/internal/domain/enum"
)

// DaySales is one date's sales aggregate, split cash/credit by the presence
// of a credit_bills link.
type DaySales struct {
	Date        string          `json:"date"`
	CashSales   decimal.Decimal `json:"cash_sales"`
	CreditSales decimal.Decimal `json:"credit_sales"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	BillCount   int64           `json:"bill_count"`
}

// DayExpenses is one date's expense total.
type DayExpenses struct {
	Date          string          `json:"date"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
}

// BillSummary is a bill header annotated with its inferred type and, for
// credit bills, the customer's name.
type BillSummary struct {
	ID           uint            `json:"id"`
	CreatedAt    string          `json:"created_at"`
	Time         string          `json:"time"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	BillType     enum.BillType   `json:"bill_type"`
	CustomerName *string         `json:"customer_name,omitempty"`
}

// CustomerTotals is a credit customer with their derived credit/payment sums.
// The balance is total_credit - total_paid and is computed by the caller,
// never stored.
type CustomerTotals struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Phone       *string         `json:"phone,omitempty"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
}

// CustomerBill is one bill in a credit customer's history.
type CustomerBill struct {
	ID          uint            `json:"id"`
	CreatedAt   string          `json:"created_at"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ReportRepository defines the read-only aggregation queries over the ledger.
type ReportRepository interface {
	// SalesByDay groups bills in [start, end] by the calendar-date part of
	// created_at, newest date first. Dates with no bills produce no row.
	SalesByDay(ctx context.Context, start, end string) ([]DaySales, error)
	// ExpensesByDay groups expenses in [start, end] by expense_date.
	ExpensesByDay(ctx context.Context, start, end string) ([]DayExpenses, error)
	// BillsByDate lists one date's bills, newest first, each annotated
	// CASH/CREDIT.
	BillsByDate(ctx context.Context, date string) ([]BillSummary, error)
	// CustomerTotals returns every credit customer with derived sums,
	// ordered by name.
	CustomerTotals(ctx context.Context) ([]CustomerTotals, error)
	// CustomerTotalsByID returns one customer's derived sums, nil when the
	// id does not resolve.
	CustomerTotalsByID(ctx context.Context, customerID uint) (*CustomerTotals, error)
	// CustomerBills lists a customer's linked bills, newest first.
	CustomerBills(ctx context.Context, customerID uint) ([]CustomerBill, error)
	// CustomerPayments lists a customer's payments, date descending, ties
	// broken by id descending.
	CustomerPayments(ctx context.Context, customerID uint) ([]entity.CreditPayment, error)
}
