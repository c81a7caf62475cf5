package mysql

import (
	"context"
	"errors"

	insuranceDomain "bark-backend/internal/domain/insurance"

	"gorm.io/gorm"
)

type InsuranceRepository struct{ db *gorm.DB }

func NewInsuranceRepository(db *gorm.DB) *InsuranceRepository { return &InsuranceRepository{db: db} }

func (r *InsuranceRepository) Create(ctx context.Context, c *insuranceDomain.Company) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return insuranceDomain.ErrDuplicateName
	}
	return err
}

func (r *InsuranceRepository) GetByID(ctx context.Context, id uint) (*insuranceDomain.Company, error) {
	var out insuranceDomain.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, notFound(err, insuranceDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *InsuranceRepository) GetByName(ctx context.Context, name string) (*insuranceDomain.Company, error) {
	var out insuranceDomain.Company
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error; err != nil {
		return nil, notFound(err, insuranceDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *InsuranceRepository) List(ctx context.Context) ([]insuranceDomain.Company, error) {
	var out []insuranceDomain.Company
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}
