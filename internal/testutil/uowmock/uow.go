package uowmock

import (
	"context"
	"errors"

	"bark-backend/internal/domain/job"
	"bark-backend/internal/domain/repairjob"
	"bark-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn          func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinJobTxFn       func(ctx context.Context, jobID uint, fn func(r uow.Repos, j *job.Job) error) error
	WithinRepairJobTxFn func(ctx context.Context, uid string, fn func(r uow.Repos, rj *repairjob.RepairJob) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough runs every callback directly against repos, loading the locked
// row through the repos' ForUpdate getters the way the real UoW does.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error { return fn(repos) },
		WithinJobTxFn: func(ctx context.Context, jobID uint, fn func(uow.Repos, *job.Job) error) error {
			j, err := repos.Jobs.GetByIDForUpdate(ctx, jobID)
			if err != nil {
				return err
			}
			return fn(repos, j)
		},
		WithinRepairJobTxFn: func(ctx context.Context, uid string, fn func(uow.Repos, *repairjob.RepairJob) error) error {
			rj, err := repos.RepairJobs.GetByUIDForUpdate(ctx, uid)
			if err != nil {
				return err
			}
			return fn(repos, rj)
		},
	}
}

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinJobTx(ctx context.Context, jobID uint, fn func(r uow.Repos, j *job.Job) error) error {
	if m.WithinJobTxFn != nil {
		return m.WithinJobTxFn(ctx, jobID, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinRepairJobTx(ctx context.Context, uid string, fn func(r uow.Repos, rj *repairjob.RepairJob) error) error {
	if m.WithinRepairJobTxFn != nil {
		return m.WithinRepairJobTxFn(ctx, uid, fn)
	}
	return errUnimplemented
}
