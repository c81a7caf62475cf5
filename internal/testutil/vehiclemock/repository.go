package vehiclemock

import (
	"context"
	"errors"

	domain "bark-backend/internal/domain/vehicle"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("vehiclemock: method not implemented")

type Repo struct {
	CreateFn      func(ctx context.Context, v *domain.Vehicle) error
	GetByIDFn     func(ctx context.Context, id uint) (*domain.Vehicle, error)
	FindFn        func(ctx context.Context, ownerID uint, model, plate string) (*domain.Vehicle, error)
	ListByOwnerFn func(ctx context.Context, ownerID uint) ([]domain.Vehicle, error)
}

func (m *Repo) Create(ctx context.Context, v *domain.Vehicle) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.Vehicle, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

// Find defaults to not found so get-or-create paths create.
func (m *Repo) Find(ctx context.Context, ownerID uint, model, plate string) (*domain.Vehicle, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, ownerID, model, plate)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Vehicle, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}
	return nil, errUnimplemented
}
