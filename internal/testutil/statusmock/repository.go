package statusmock

import (
	"context"
	"errors"

	domain "bark-backend/internal/domain/status"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("statusmock: method not implemented")

// Repo is a function-backed mock that satisfies status.Repository.
// Writes default to success, reads to errUnimplemented.
type Repo struct {
	CreateFn  func(ctx context.Context, s *domain.Status) error
	SaveFn    func(ctx context.Context, s *domain.Status) error
	DeleteFn  func(ctx context.Context, id uint) error
	GetByIDFn func(ctx context.Context, id uint) (*domain.Status, error)
	ListFn    func(ctx context.Context) ([]domain.Status, error)
}

// Catalogue returns a Repo whose GetByID and List serve the given statuses.
func Catalogue(rows ...domain.Status) *Repo {
	byID := make(map[uint]domain.Status, len(rows))
	for _, s := range rows {
		byID[s.ID] = s
	}
	return &Repo{
		GetByIDFn: func(_ context.Context, id uint) (*domain.Status, error) {
			s, ok := byID[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			return &s, nil
		},
		ListFn: func(context.Context) ([]domain.Status, error) { return rows, nil },
	}
}

func (m *Repo) Create(ctx context.Context, s *domain.Status) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, s *domain.Status) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
func (m *Repo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.Status, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *Repo) List(ctx context.Context) ([]domain.Status, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}
