package customermock

import (
	"context"
	"errors"

	domain "bark-backend/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("customermock: method not implemented")

type Repo struct {
	CreateFn       func(ctx context.Context, c *domain.Customer) error
	SaveFn         func(ctx context.Context, c *domain.Customer) error
	GetByIDFn      func(ctx context.Context, id uint) (*domain.Customer, error)
	GetByPhoneFn   func(ctx context.Context, phone string) (*domain.Customer, error)
	ListUnsyncedFn func(ctx context.Context) ([]domain.Customer, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, c *domain.Customer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

// GetByPhone defaults to "no such customer" so upserts create.
func (m *Repo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	if m.GetByPhoneFn != nil {
		return m.GetByPhoneFn(ctx, phone)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) ListUnsynced(ctx context.Context) ([]domain.Customer, error) {
	if m.ListUnsyncedFn != nil {
		return m.ListUnsyncedFn(ctx)
	}
	return nil, errUnimplemented
}
