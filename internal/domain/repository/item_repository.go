package repository

import (
	"context"

	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
)

// ItemRepository defines the interface for menu item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uint) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	// Delete hard-deletes an item. Callers must check BillReferenceCount
	// first; the bill_items foreign key rejects the delete otherwise.
	Delete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) error
	// ListActive returns active items ordered by common name, for the billing screen.
	ListActive(ctx context.Context) ([]entity.Item, error)
	// ListAll returns every item including inactive ones, for the admin screen.
	ListAll(ctx context.Context) ([]entity.Item, error)
	// BillReferenceCount returns how many bill lines reference the item.
	BillReferenceCount(ctx context.Context, id uint) (int64, error)
}
