package mysql

import (
	"context"

	"bark-backend/internal/domain/job"
	"bark-backend/internal/domain/repairjob"
	"bark-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Statuses:   &StatusRepository{db: tx},
		Customers:  &CustomerRepository{db: tx},
		Vehicles:   &VehicleRepository{db: tx},
		Insurers:   &InsuranceRepository{db: tx},
		Jobs:       &JobRepository{db: tx},
		RepairJobs: &RepairJobRepository{db: tx},
		JobNumbers: &JobNumberRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinJobTx(ctx context.Context, jobID uint, fn func(r uow.Repos, j *job.Job) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the job row up-front so concurrent transitions serialize
		j, err := r.Jobs.GetByIDForUpdate(ctx, jobID)
		if err != nil {
			return err
		}
		return fn(r, j)
	})
}

func (u *GormUoW) WithinRepairJobTx(ctx context.Context, uid string, fn func(r uow.Repos, rj *repairjob.RepairJob) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		rj, err := r.RepairJobs.GetByUIDForUpdate(ctx, uid)
		if err != nil {
			return err
		}
		return fn(r, rj)
	})
}
