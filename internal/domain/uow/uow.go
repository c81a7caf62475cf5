package uow

import (
	"context"

	"bark-backend/internal/domain/customer"
	"bark-backend/internal/domain/insurance"
	"bark-backend/internal/domain/job"
	"bark-backend/internal/domain/repairjob"
	"bark-backend/internal/domain/status"
	"bark-backend/internal/domain/vehicle"
)

// Repos are bound to one transaction.
type Repos struct {
	Statuses   status.Repository
	Customers  customer.Repository
	Vehicles   vehicle.Repository
	Insurers   insurance.Repository
	Jobs       job.Repository
	RepairJobs repairjob.Repository
	JobNumbers repairjob.NumberSequencer
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the tracker job row first, then pass it in
	WithinJobTx(ctx context.Context, jobID uint, fn func(r Repos, j *job.Job) error) error
	// lock the repair job row first, then pass it in
	WithinRepairJobTx(ctx context.Context, uid string, fn func(r Repos, rj *repairjob.RepairJob) error) error
}
