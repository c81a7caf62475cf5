package status

import "context"

type Repository interface {
	Create(ctx context.Context, s *Status) error
	Save(ctx context.Context, s *Status) error
	// Delete fails with ErrInUse while any job, repair job or ledger row points at the status.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Status, error)
	// List orders by category then order.
	List(ctx context.Context) ([]Status, error)
}
