package insurancemock

import (
	"context"
	"errors"

	domain "bark-backend/internal/domain/insurance"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("insurancemock: method not implemented")

type Repo struct {
	CreateFn    func(ctx context.Context, c *domain.Company) error
	GetByIDFn   func(ctx context.Context, id uint) (*domain.Company, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Company, error)
	ListFn      func(ctx context.Context) ([]domain.Company, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Company) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.Company, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, domain.ErrNotFound
}
func (m *Repo) List(ctx context.Context) ([]domain.Company, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}
