package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	domainRepo "github.com/sridharvel/annapoorna-pos/internal/domain/repository"
	"github.com/sridharvel/annapoorna-pos/pkg/pagination"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// Create writes the bill header, its lines and the optional credit link as a
// single transaction. A failure at any step rolls back every row, so no
// partial bill is ever visible to readers.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill, creditCustomerID *uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines := bill.Lines
		bill.Lines = nil

		if err := tx.Create(bill).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].BillID = bill.ID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		bill.Lines = lines

		if creditCustomerID != nil {
			// Re-check the customer inside the transaction; the foreign key
			// is the backstop, this gives the caller a clean error.
			var exists int64
			if err := tx.Model(&entity.CreditCustomer{}).
				Where("id = ?", *creditCustomerID).
				Count(&exists).Error; err != nil {
				return err
			}
			if exists == 0 {
				return gorm.ErrRecordNotFound
			}
			link := entity.CreditBill{BillID: bill.ID, CustomerID: *creditCustomerID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
			bill.CreditBill = &link
		}

		return nil
	})
}

// ReplaceLines swaps a bill's lines and total in one transaction. The bill id
// and created_at are untouched: an edited-and-reprinted bill keeps its place
// in the daily ledger.
func (r *billRepository) ReplaceLines(ctx context.Context, billID uint, lines []entity.BillLine, total decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", billID).Delete(&entity.BillLine{}).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].ID = 0
			lines[i].BillID = billID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}

		return tx.Model(&entity.Bill{}).
			Where("id = ?", billID).
			Update("total_amount", total).Error
	})
}

func (r *billRepository) GetByID(ctx context.Context, id uint) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Lines.Item").
		Preload("CreditBill").
		Preload("CreditBill.Customer").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC, id DESC").
		Find(&bills).Error

	return bills, total, err
}

func (r *billRepository) GetLines(ctx context.Context, billID uint) ([]domainRepo.BillLineDetail, error) {
	var details []domainRepo.BillLineDetail

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			bi.item_id,
			i.name_local,
			i.name_common,
			bi.quantity,
			bi.rate,
			bi.rate * bi.quantity AS amount
		FROM bill_items bi
		JOIN items i ON i.id = bi.item_id
		WHERE bi.bill_id = ?
		ORDER BY bi.id ASC
	`, billID).Scan(&details).Error

	return details, err
}
