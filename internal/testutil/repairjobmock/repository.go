package repairjobmock

import (
	"context"
	"errors"
	"time"

	domain "bark-backend/internal/domain/repairjob"
)

var (
	_ domain.Repository     = (*Repo)(nil)
	_ domain.NumberSequencer = (*Sequence)(nil)
)

var errUnimplemented = errors.New("repairjobmock: method not implemented")

type Repo struct {
	CreateFn            func(ctx context.Context, r *domain.RepairJob) error
	SaveFn              func(ctx context.Context, r *domain.RepairJob) error
	GetByUIDFn          func(ctx context.Context, uid string) (*domain.RepairJob, error)
	GetByUIDForUpdateFn func(ctx context.Context, uid string) (*domain.RepairJob, error)
	ListFn              func(ctx context.Context, f domain.Filter) ([]domain.RepairJob, error)
	ReplaceItemsFn      func(ctx context.Context, uid string, items []domain.EstimateItem) error
	AppendLogFn         func(ctx context.Context, l *domain.StatusLog) error
	ReachedStatusesFn   func(ctx context.Context, uid string) ([]uint, error)
	LogsFn              func(ctx context.Context, uid string) ([]domain.StatusLog, error)
	LastEntryAtFn       func(ctx context.Context, uid string, statusID uint) (*time.Time, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.RepairJob) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, r *domain.RepairJob) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
func (m *Repo) GetByUID(ctx context.Context, uid string) (*domain.RepairJob, error) {
	if m.GetByUIDFn != nil {
		return m.GetByUIDFn(ctx, uid)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetByUIDForUpdate(ctx context.Context, uid string) (*domain.RepairJob, error) {
	if m.GetByUIDForUpdateFn != nil {
		return m.GetByUIDForUpdateFn(ctx, uid)
	}
	return nil, errUnimplemented
}
func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.RepairJob, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, errUnimplemented
}
func (m *Repo) ReplaceItems(ctx context.Context, uid string, items []domain.EstimateItem) error {
	if m.ReplaceItemsFn != nil {
		return m.ReplaceItemsFn(ctx, uid, items)
	}
	return nil
}
func (m *Repo) AppendLog(ctx context.Context, l *domain.StatusLog) error {
	if m.AppendLogFn != nil {
		return m.AppendLogFn(ctx, l)
	}
	return nil
}
func (m *Repo) ReachedStatuses(ctx context.Context, uid string) ([]uint, error) {
	if m.ReachedStatusesFn != nil {
		return m.ReachedStatusesFn(ctx, uid)
	}
	return nil, nil
}
func (m *Repo) Logs(ctx context.Context, uid string) ([]domain.StatusLog, error) {
	if m.LogsFn != nil {
		return m.LogsFn(ctx, uid)
	}
	return nil, errUnimplemented
}
func (m *Repo) LastEntryAt(ctx context.Context, uid string, statusID uint) (*time.Time, error) {
	if m.LastEntryAtFn != nil {
		return m.LastEntryAtFn(ctx, uid, statusID)
	}
	return nil, nil
}

// Sequence is a NumberSequencer mock. Without NextFn it counts up from 1 per year.
type Sequence struct {
	NextFn func(ctx context.Context, year int) (int, error)
	last   map[int]int
}

func (m *Sequence) Next(ctx context.Context, year int) (int, error) {
	if m.NextFn != nil {
		return m.NextFn(ctx, year)
	}
	if m.last == nil {
		m.last = map[int]int{}
	}
	m.last[year]++
	return m.last[year], nil
}
