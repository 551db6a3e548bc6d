package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	"github.com/sridharvel/annapoorna-pos/internal/domain/repository"
	"github.com/sridharvel/annapoorna-pos/pkg/apperror"
)

// ReportService derives all reporting views from the ledger. Every figure
// here is recomputed from bills, expenses and payments on each call; nothing
// is cached or stored.
type ReportService struct {
	reportRepo  repository.ReportRepository
	expenseRepo repository.ExpenseRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, expenseRepo repository.ExpenseRepository) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		expenseRepo: expenseRepo,
	}
}

// DayRecord is one date's aggregated sales, expenses and profit.
type DayRecord struct {
	Date          string          `json:"date"`
	CashSales     decimal.Decimal `json:"cash_sales"`
	CreditSales   decimal.Decimal `json:"credit_sales"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	BillCount     int64           `json:"bill_count"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Profit        decimal.Decimal `json:"profit"`
}

// CustomerSummary is a credit customer with derived totals and balance.
type CustomerSummary struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Phone       *string         `json:"phone,omitempty"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Balance     decimal.Decimal `json:"balance"`
}

// CustomerDetail is a customer's summary plus their full bill and payment
// history, newest first.
type CustomerDetail struct {
	CustomerSummary
	Bills    []repository.CustomerBill `json:"bills"`
	Payments []entity.CreditPayment    `json:"payments"`
}

// DailyRecords merges the per-date sales and expense aggregates over an
// inclusive date range. Dates with expenses but no bills still appear, with
// zero sales and a negative profit; the result is ordered date descending.
func (s *ReportService) DailyRecords(ctx context.Context, start, end string) ([]DayRecord, error) {
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	sales, err := s.reportRepo.SalesByDay(ctx, start, end)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	expenses, err := s.reportRepo.ExpensesByDay(ctx, start, end)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	expenseByDate := make(map[string]decimal.Decimal, len(expenses))
	for _, e := range expenses {
		expenseByDate[e.Date] = e.TotalExpenses
	}

	records := make([]DayRecord, 0, len(sales)+len(expenses))
	seen := make(map[string]bool, len(sales))
	for _, day := range sales {
		exp := expenseByDate[day.Date] // zero value when absent
		records = append(records, DayRecord{
			Date:          day.Date,
			CashSales:     day.CashSales,
			CreditSales:   day.CreditSales,
			TotalSales:    day.TotalSales,
			BillCount:     day.BillCount,
			TotalExpenses: exp,
			Profit:        day.TotalSales.Sub(exp),
		})
		seen[day.Date] = true
	}

	// Expense-only dates: all sales fields zero, profit is the negated
	// expense total.
	for _, e := range expenses {
		if seen[e.Date] {
			continue
		}
		records = append(records, DayRecord{
			Date:          e.Date,
			CashSales:     decimal.Zero,
			CreditSales:   decimal.Zero,
			TotalSales:    decimal.Zero,
			TotalExpenses: e.TotalExpenses,
			Profit:        e.TotalExpenses.Neg(),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})

	return records, nil
}

// BillsByDate lists one date's bills annotated CASH/CREDIT, with the customer
// name for credit bills.
func (s *ReportService) BillsByDate(ctx context.Context, date string) ([]repository.BillSummary, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	bills, err := s.reportRepo.BillsByDate(ctx, date)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return bills, nil
}

// CustomerSummaries returns every credit customer with their derived balance,
// ordered by name.
func (s *ReportService) CustomerSummaries(ctx context.Context) ([]CustomerSummary, error) {
	totals, err := s.reportRepo.CustomerTotals(ctx)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	summaries := make([]CustomerSummary, 0, len(totals))
	for _, t := range totals {
		summaries = append(summaries, newCustomerSummary(t))
	}
	return summaries, nil
}

// CustomerDetail returns one customer's balance with full bill and payment
// history. A missing id yields (nil, nil) so callers can tell "no such
// customer" apart from a storage failure.
func (s *ReportService) CustomerDetail(ctx context.Context, customerID uint) (*CustomerDetail, error) {
	totals, err := s.reportRepo.CustomerTotalsByID(ctx, customerID)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if totals == nil {
		return nil, nil
	}

	bills, err := s.reportRepo.CustomerBills(ctx, customerID)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	payments, err := s.reportRepo.CustomerPayments(ctx, customerID)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	if bills == nil {
		bills = []repository.CustomerBill{}
	}
	if payments == nil {
		payments = []entity.CreditPayment{}
	}

	return &CustomerDetail{
		CustomerSummary: newCustomerSummary(*totals),
		Bills:           bills,
		Payments:        payments,
	}, nil
}

func newCustomerSummary(t repository.CustomerTotals) CustomerSummary {
	return CustomerSummary{
		ID:          t.ID,
		Name:        t.Name,
		Phone:       t.Phone,
		TotalCredit: t.TotalCredit,
		TotalPaid:   t.TotalPaid,
		Balance:     t.TotalCredit.Sub(t.TotalPaid),
	}
}
