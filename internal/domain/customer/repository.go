package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Save(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uint) (*Customer, error)
	// GetByPhone returns the oldest customer with that exact (normalised) phone number.
	GetByPhone(ctx context.Context, phone string) (*Customer, error)
	ListUnsynced(ctx context.Context) ([]Customer, error)
}
