package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	"github.com/sridharvel/annapoorna-pos/pkg/pagination"
)

// BillLineDetail is a bill line joined with its item's names, for the bill
// detail and reprint screens.
type BillLineDetail struct {
	ItemID     uint            `json:"item_id"`
	NameLocal  string          `json:"name_local"`
	NameCommon string          `json:"name_common"`
	Quantity   int             `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	Amount     decimal.Decimal `json:"amount"`
}

// BillRepository defines the interface for bill data operations.
//
// Create and ReplaceLines are the only write paths and both run as a single
// transaction: a bill must never be visible with only some of its lines, and
// a credit bill must never be visible without its customer link.
type BillRepository interface {
	// Create persists bill + bill.Lines + (when creditCustomerID is non-nil)
	// one credit_bills link, all or nothing. The assigned id is set on bill.
	Create(ctx context.Context, bill *entity.Bill, creditCustomerID *uint) error
	// ReplaceLines swaps a bill's lines and total under one transaction,
	// preserving the bill's id and created_at.
	ReplaceLines(ctx context.Context, billID uint, lines []entity.BillLine, total decimal.Decimal) error
	GetByID(ctx context.Context, id uint) (*entity.Bill, error)
	// List returns bill headers newest first.
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error)
	// GetLines returns a bill's lines joined with item names.
	GetLines(ctx context.Context, billID uint) ([]BillLineDetail, error)
}
