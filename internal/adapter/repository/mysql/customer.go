package mysql

import (
	"context"

	customerDomain "bark-backend/internal/domain/customer"

	"gorm.io/gorm"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) Save(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, notFound(err, customerDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	err := r.db.WithContext(ctx).
		Where("phone_number = ?", phone).
		Order("id ASC").
		First(&out).Error
	if err != nil {
		return nil, notFound(err, customerDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *CustomerRepository) ListUnsynced(ctx context.Context) ([]customerDomain.Customer, error) {
	var out []customerDomain.Customer
	err := r.db.WithContext(ctx).
		Where("synced_to_modu = ?", false).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}
