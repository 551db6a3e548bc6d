package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	"github.com/sridharvel/annapoorna-pos/internal/domain/repository"
	"github.com/sridharvel/annapoorna-pos/pkg/apperror"
	"github.com/sridharvel/annapoorna-pos/pkg/pagination"
)

// BillingService handles bill creation and the edit-and-reprint flow.
type BillingService struct {
	billRepo   repository.BillRepository
	itemRepo   repository.ItemRepository
	creditRepo repository.CreditRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	itemRepo repository.ItemRepository,
	creditRepo repository.CreditRepository,
) *BillingService {
	return &BillingService{
		billRepo:   billRepo,
		itemRepo:   itemRepo,
		creditRepo: creditRepo,
	}
}

// CartLineInput is one line of the cart being billed. Rate is the price at
// sale time; it is copied onto the bill line and never re-read from the menu.
type CartLineInput struct {
	ItemID   uint
	Quantity int
	Rate     decimal.Decimal
}

// CreateBill persists the cart as one bill. The bill header, every line and
// the optional credit link are written in a single all-or-nothing unit; a
// credit bill must never exist without its link (it would silently read back
// as a cash sale).
func (s *BillingService) CreateBill(ctx context.Context, lines []CartLineInput, creditCustomerID *uint) (*entity.Bill, error) {
	if err := validateCart(lines); err != nil {
		return nil, err
	}
	if err := s.checkCartItems(ctx, lines); err != nil {
		return nil, err
	}

	if creditCustomerID != nil {
		customer, err := s.creditRepo.GetCustomerByID(ctx, *creditCustomerID)
		if err != nil {
			return nil, apperror.NewStorageError(err)
		}
		if customer == nil {
			return nil, apperror.NewReferenceError("Credit customer")
		}
	}

	billLines := make([]entity.BillLine, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		bl := entity.BillLine{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Rate:     line.Rate,
		}
		total = total.Add(bl.Amount())
		billLines = append(billLines, bl)
	}

	bill := &entity.Bill{
		// Local wall clock, second precision. The restaurant's day is the
		// local calendar date, so this must not be UTC.
		CreatedAt:   time.Now().Format(entity.BillTimeLayout),
		TotalAmount: total,
		Lines:       billLines,
	}

	if err := s.billRepo.Create(ctx, bill, creditCustomerID); err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewStorageError(err)
	}

	return bill, nil
}

// UpdateBill replaces an existing bill's lines (edit-and-reprint). The bill
// keeps its id and created_at; the total is recomputed from the new lines.
// The credit link, fixed at creation time, is not touched.
func (s *BillingService) UpdateBill(ctx context.Context, billID uint, lines []CartLineInput) (*entity.Bill, error) {
	if err := validateCart(lines); err != nil {
		return nil, err
	}
	if err := s.checkCartItems(ctx, lines); err != nil {
		return nil, err
	}

	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if bill == nil {
		return nil, apperror.NewReferenceError("Bill")
	}

	billLines := make([]entity.BillLine, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		bl := entity.BillLine{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Rate:     line.Rate,
		}
		total = total.Add(bl.Amount())
		billLines = append(billLines, bl)
	}

	if err := s.billRepo.ReplaceLines(ctx, billID, billLines, total); err != nil {
		return nil, apperror.NewStorageError(err)
	}

	return s.billRepo.GetByID(ctx, billID)
}

// GetBill returns one bill with its lines and optional credit link.
func (s *BillingService) GetBill(ctx context.Context, billID uint) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if bill == nil {
		return nil, apperror.NewReferenceError("Bill")
	}
	return bill, nil
}

// GetBillHistory returns bill headers newest first.
func (s *BillingService) GetBillHistory(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// GetBillItems returns a bill's lines joined with item names for display and
// reprinting.
func (s *BillingService) GetBillItems(ctx context.Context, billID uint) ([]repository.BillLineDetail, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if bill == nil {
		return nil, apperror.NewReferenceError("Bill")
	}

	details, err := s.billRepo.GetLines(ctx, billID)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return details, nil
}

// checkCartItems verifies every line references an existing menu item.
// Inactive items are still billable; deactivation only hides them from the
// menu, it does not void a cart already holding them.
func (s *BillingService) checkCartItems(ctx context.Context, lines []CartLineInput) error {
	for _, line := range lines {
		item, err := s.itemRepo.GetByID(ctx, line.ItemID)
		if err != nil {
			return apperror.NewStorageError(err)
		}
		if item == nil {
			return apperror.NewReferenceError("Item")
		}
	}
	return nil
}

func validateCart(lines []CartLineInput) error {
	if len(lines) == 0 {
		return apperror.NewValidationError("Cart must contain at least one line")
	}
	for i, line := range lines {
		if line.Quantity < 1 {
			return apperror.NewValidationError(fmt.Sprintf("Line %d: quantity must be at least 1", i+1))
		}
		if line.Rate.IsNegative() {
			return apperror.NewValidationError(fmt.Sprintf("Line %d: rate must not be negative", i+1))
		}
	}
	return nil
}
