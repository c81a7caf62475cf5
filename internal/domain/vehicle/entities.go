package vehicle

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("vehicle not found")

type Vehicle struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	OwnerID     uint      `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Model       string    `gorm:"column:model;size:255;not null" json:"model"`
	PlateNumber string    `gorm:"column:plate_number;size:20;not null;default:''" json:"plate_number"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string { return "vehicles" }

func (v *Vehicle) String() string {
	if v.PlateNumber == "" {
		return v.Model
	}
	return v.Model + " (" + v.PlateNumber + ")"
}

type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	GetByID(ctx context.Context, id uint) (*Vehicle, error)
	// Find matches an owner's vehicle on model and plate.
	Find(ctx context.Context, ownerID uint, model, plate string) (*Vehicle, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]Vehicle, error)
}
