package repository

import (
	"context"
	"errors"

	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	domainRepo "github.com/sridharvel/annapoorna-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// SalesByDay splits each day's sales into cash and credit by LEFT JOINing the
// credit_bills link table: a bill with no link row is a cash sale.
func (r *reportRepository) SalesByDay(ctx context.Context, start, end string) ([]domainRepo.DaySales, error) {
	var results []domainRepo.DaySales

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE(b.created_at) AS date,
			COALESCE(SUM(CASE WHEN cb.customer_id IS NULL THEN b.total_amount ELSE 0 END), 0) AS cash_sales,
			COALESCE(SUM(CASE WHEN cb.customer_id IS NOT NULL THEN b.total_amount ELSE 0 END), 0) AS credit_sales,
			COALESCE(SUM(b.total_amount), 0) AS total_sales,
			COUNT(b.id) AS bill_count
		FROM bills b
		LEFT JOIN credit_bills cb ON b.id = cb.bill_id
		WHERE DATE(b.created_at) >= ? AND DATE(b.created_at) <= ?
		GROUP BY DATE(b.created_at)
		ORDER BY date DESC
	`, start, end).Scan(&results).Error

	return results, err
}

func (r *reportRepository) ExpensesByDay(ctx context.Context, start, end string) ([]domainRepo.DayExpenses, error) {
	var results []domainRepo.DayExpenses

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			expense_date AS date,
			COALESCE(SUM(amount), 0) AS total_expenses
		FROM expenses
		WHERE expense_date >= ? AND expense_date <= ?
		GROUP BY expense_date
		ORDER BY date DESC
	`, start, end).Scan(&results).Error

	return results, err
}

func (r *reportRepository) BillsByDate(ctx context.Context, date string) ([]domainRepo.BillSummary, error) {
	var results []domainRepo.BillSummary

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.created_at,
			TIME(b.created_at) AS time,
			b.total_amount,
			CASE WHEN cb.customer_id IS NOT NULL THEN 'CREDIT' ELSE 'CASH' END AS bill_type,
			cc.name AS customer_name
		FROM bills b
		LEFT JOIN credit_bills cb ON b.id = cb.bill_id
		LEFT JOIN credit_customers cc ON cb.customer_id = cc.id
		WHERE DATE(b.created_at) = ?
		ORDER BY b.created_at DESC, b.id DESC
	`, date).Scan(&results).Error

	return results, err
}

func (r *reportRepository) CustomerTotals(ctx context.Context) ([]domainRepo.CustomerTotals, error) {
	var results []domainRepo.CustomerTotals

	err := r.db.WithContext(ctx).Raw(customerTotalsQuery + `
		ORDER BY cc.name ASC
	`).Scan(&results).Error

	return results, err
}

func (r *reportRepository) CustomerTotalsByID(ctx context.Context, customerID uint) (*domainRepo.CustomerTotals, error) {
	var result domainRepo.CustomerTotals

	err := r.db.WithContext(ctx).Raw(customerTotalsQuery+`
		WHERE cc.id = ?
	`, customerID).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// customerTotalsQuery derives each customer's totals from the event log.
// Balances are never stored, so they can never drift from the bills and
// payments they are computed from.
const customerTotalsQuery = `
	SELECT
		cc.id,
		cc.name,
		cc.phone,
		COALESCE((
			SELECT SUM(b.total_amount)
			FROM bills b
			JOIN credit_bills cb ON b.id = cb.bill_id
			WHERE cb.customer_id = cc.id
		), 0) AS total_credit,
		COALESCE((
			SELECT SUM(amount)
			FROM credit_payments
			WHERE customer_id = cc.id
		), 0) AS total_paid
	FROM credit_customers cc
`

func (r *reportRepository) CustomerBills(ctx context.Context, customerID uint) ([]domainRepo.CustomerBill, error) {
	var results []domainRepo.CustomerBill

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.created_at,
			DATE(b.created_at) AS date,
			TIME(b.created_at) AS time,
			b.total_amount
		FROM bills b
		JOIN credit_bills cb ON b.id = cb.bill_id
		WHERE cb.customer_id = ?
		ORDER BY b.created_at DESC, b.id DESC
	`, customerID).Scan(&results).Error

	return results, err
}

func (r *reportRepository) CustomerPayments(ctx context.Context, customerID uint) ([]entity.CreditPayment, error) {
	var payments []entity.CreditPayment
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC, id DESC").
		Find(&payments).Error
	return payments, err
}
