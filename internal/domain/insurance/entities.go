package insurance

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("insurance company not found")
	ErrDuplicateName = errors.New("insurance company already exists")
)

type Company struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null;uniqueIndex:ux_insurance_companies_name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Company) TableName() string { return "insurance_companies" }

type Repository interface {
	Create(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id uint) (*Company, error)
	GetByName(ctx context.Context, name string) (*Company, error)
	List(ctx context.Context) ([]Company, error)
}
