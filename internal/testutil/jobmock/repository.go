package jobmock

import (
	"context"
	"errors"
	"time"

	domain "bark-backend/internal/domain/job"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("jobmock: method not implemented")

type Repo struct {
	CreateFn           func(ctx context.Context, j *domain.Job) error
	SaveFn             func(ctx context.Context, j *domain.Job) error
	GetByIDFn          func(ctx context.Context, id uint) (*domain.Job, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint) (*domain.Job, error)
	ListFn             func(ctx context.Context) ([]domain.Job, error)
	AppendHistoryFn    func(ctx context.Context, h *domain.History) error
	ReachedStatusesFn  func(ctx context.Context, jobID uint) ([]uint, error)
	HistoryFn          func(ctx context.Context, jobID uint) ([]domain.History, error)
	LastEntryAtFn      func(ctx context.Context, jobID, statusID uint) (*time.Time, error)
}

func (m *Repo) Create(ctx context.Context, j *domain.Job) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, j)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, j *domain.Job) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, j)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.Job, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint) (*domain.Job, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *Repo) List(ctx context.Context) ([]domain.Job, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}
func (m *Repo) AppendHistory(ctx context.Context, h *domain.History) error {
	if m.AppendHistoryFn != nil {
		return m.AppendHistoryFn(ctx, h)
	}
	return nil
}

// ReachedStatuses defaults to an empty ledger.
func (m *Repo) ReachedStatuses(ctx context.Context, jobID uint) ([]uint, error) {
	if m.ReachedStatusesFn != nil {
		return m.ReachedStatusesFn(ctx, jobID)
	}
	return nil, nil
}
func (m *Repo) History(ctx context.Context, jobID uint) ([]domain.History, error) {
	if m.HistoryFn != nil {
		return m.HistoryFn(ctx, jobID)
	}
	return nil, errUnimplemented
}
func (m *Repo) LastEntryAt(ctx context.Context, jobID, statusID uint) (*time.Time, error) {
	if m.LastEntryAtFn != nil {
		return m.LastEntryAtFn(ctx, jobID, statusID)
	}
	return nil, nil
}
