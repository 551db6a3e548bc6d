package repository

import (
	"context"
	"errors"

	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	domainRepo "github.com/sridharvel/annapoorna-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type creditRepository struct {
	db *gorm.DB
}

// NewCreditRepository creates a new credit customer/payment repository
func NewCreditRepository(db *gorm.DB) domainRepo.CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) CreateCustomer(ctx context.Context, customer *entity.CreditCustomer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *creditRepository) GetCustomerByID(ctx context.Context, id uint) (*entity.CreditCustomer, error) {
	var customer entity.CreditCustomer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

// DeleteCustomer hard-deletes the customer along with their payments and
// credit_bills links. The bills stay; with the links gone they read back as
// cash sales on later aggregation.
func (r *creditRepository) DeleteCustomer(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&entity.CreditPayment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&entity.CreditBill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.CreditCustomer{}, "id = ?", id).Error
	})
}

func (r *creditRepository) CreatePayment(ctx context.Context, payment *entity.CreditPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}
