package mysql

import (
	"context"

	vehicleDomain "bark-backend/internal/domain/vehicle"

	"gorm.io/gorm"
)

type VehicleRepository struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) *VehicleRepository { return &VehicleRepository{db: db} }

func (r *VehicleRepository) Create(ctx context.Context, v *vehicleDomain.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uint) (*vehicleDomain.Vehicle, error) {
	var out vehicleDomain.Vehicle
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, notFound(err, vehicleDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *VehicleRepository) Find(ctx context.Context, ownerID uint, model, plate string) (*vehicleDomain.Vehicle, error) {
	var out vehicleDomain.Vehicle
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND model = ? AND plate_number = ?", ownerID, model, plate).
		Order("id ASC").
		First(&out).Error
	if err != nil {
		return nil, notFound(err, vehicleDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *VehicleRepository) ListByOwner(ctx context.Context, ownerID uint) ([]vehicleDomain.Vehicle, error) {
	var out []vehicleDomain.Vehicle
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&out).Error
	return out, err
}
