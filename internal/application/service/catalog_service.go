package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	"github.com/sridharvel/annapoorna-pos/internal/domain/repository"
	"github.com/sridharvel/annapoorna-pos/pkg/apperror"
)

// CatalogService handles menu item administration.
type CatalogService struct {
	itemRepo repository.ItemRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(itemRepo repository.ItemRepository) *CatalogService {
	return &CatalogService{itemRepo: itemRepo}
}

// ItemInput carries the fields for creating or updating a menu item.
type ItemInput struct {
	NameLocal  string
	NameCommon string
	Price      decimal.Decimal
	Category   string
	ImageRef   *string
}

func (in *ItemInput) validate() error {
	if in.NameLocal == "" || in.NameCommon == "" {
		return apperror.NewValidationError("Item name is required in both languages")
	}
	if in.Price.IsNegative() {
		return apperror.NewValidationError("Price must not be negative")
	}
	return nil
}

// AddItem creates a new active menu item.
func (s *CatalogService) AddItem(ctx context.Context, input *ItemInput) (*entity.Item, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = "Others"
	}

	item := &entity.Item{
		NameLocal:  input.NameLocal,
		NameCommon: input.NameCommon,
		Price:      input.Price,
		Category:   category,
		ImageRef:   input.ImageRef,
		IsActive:   true,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return item, nil
}

// UpdateItem edits a menu item. The price change applies to future bills
// only; historical bill lines keep their sale-time rate.
func (s *CatalogService) UpdateItem(ctx context.Context, id uint, input *ItemInput) (*entity.Item, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if item == nil {
		return nil, apperror.NewReferenceError("Item")
	}

	item.NameLocal = input.NameLocal
	item.NameCommon = input.NameCommon
	item.Price = input.Price
	if input.Category != "" {
		item.Category = input.Category
	}
	item.ImageRef = input.ImageRef

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return item, nil
}

// ToggleItemStatus hides or shows an item on the billing screen. This is the
// soft-delete path for items that have been sold before.
func (s *CatalogService) ToggleItemStatus(ctx context.Context, id uint, active bool) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NewStorageError(err)
	}
	if item == nil {
		return apperror.NewReferenceError("Item")
	}
	if err := s.itemRepo.SetActive(ctx, id, active); err != nil {
		return apperror.NewStorageError(err)
	}
	return nil
}

// DeleteItem hard-deletes a menu item. Refused while any bill line still
// references it; deactivate instead to keep history intact.
func (s *CatalogService) DeleteItem(ctx context.Context, id uint) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NewStorageError(err)
	}
	if item == nil {
		return apperror.NewReferenceError("Item")
	}

	refs, err := s.itemRepo.BillReferenceCount(ctx, id)
	if err != nil {
		return apperror.NewStorageError(err)
	}
	if refs > 0 {
		return apperror.NewConflictError("Item is referenced by existing bills; deactivate it instead")
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return apperror.NewStorageError(err)
	}
	return nil
}

// ListActiveItems returns the billing-screen menu.
func (s *CatalogService) ListActiveItems(ctx context.Context) ([]entity.Item, error) {
	items, err := s.itemRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return items, nil
}

// ListAllItems returns every item, including hidden ones, for the admin screen.
func (s *CatalogService) ListAllItems(ctx context.Context) ([]entity.Item, error) {
	items, err := s.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	return items, nil
}
