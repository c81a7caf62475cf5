package mysql

import (
	"context"
	"errors"
	"strings"
	"time"

	rjDomain "bark-backend/internal/domain/repairjob"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RepairJobRepository struct{ db *gorm.DB }

func NewRepairJobRepository(db *gorm.DB) *RepairJobRepository { return &RepairJobRepository{db: db} }

func (r *RepairJobRepository) Create(ctx context.Context, rj *rjDomain.RepairJob) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(rj).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return rjDomain.ErrDuplicateJobNumber
	}
	return err
}

func (r *RepairJobRepository) Save(ctx context.Context, rj *rjDomain.RepairJob) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(rj).Error
}

func (r *RepairJobRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Insurance").
		Preload("CurrentStatus").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
}

func (r *RepairJobRepository) GetByUID(ctx context.Context, uid string) (*rjDomain.RepairJob, error) {
	var out rjDomain.RepairJob
	if err := r.withDetails(ctx).Where("repairjob_uid = ?", uid).First(&out).Error; err != nil {
		return nil, notFound(err, rjDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *RepairJobRepository) GetByUIDForUpdate(ctx context.Context, uid string) (*rjDomain.RepairJob, error) {
	var out rjDomain.RepairJob
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("repairjob_uid = ?", uid).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, rjDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *RepairJobRepository) List(ctx context.Context, f rjDomain.Filter) ([]rjDomain.RepairJob, error) {
	q := r.withDetails(ctx).Model(&rjDomain.RepairJob{})
	if f.Priority != "" {
		q = q.Where("repair_jobs.priority = ?", f.Priority)
	}
	if f.StatusID != nil {
		q = q.Where("repair_jobs.current_status_id = ?", *f.StatusID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + s + "%"
		q = q.Joins("LEFT JOIN vehicles ON vehicles.id = repair_jobs.vehicle_id").
			Where("repair_jobs.job_number LIKE ? OR vehicles.plate_number LIKE ?", like, like)
	}
	var out []rjDomain.RepairJob
	err := q.Order("repair_jobs.created_at DESC, repair_jobs.job_number DESC").Find(&out).Error
	return out, err
}

func (r *RepairJobRepository) ReplaceItems(ctx context.Context, uid string, items []rjDomain.EstimateItem) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("repair_job_uid = ?", uid).Delete(&rjDomain.EstimateItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ID = 0
		items[i].RepairJobUID = uid
	}
	return db.Create(&items).Error
}

func (r *RepairJobRepository) AppendLog(ctx context.Context, l *rjDomain.StatusLog) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *RepairJobRepository) ReachedStatuses(ctx context.Context, uid string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&rjDomain.StatusLog{}).
		Where("repair_job_uid = ?", uid).
		Distinct().
		Pluck("status_id", &ids).Error
	return ids, err
}

func (r *RepairJobRepository) Logs(ctx context.Context, uid string) ([]rjDomain.StatusLog, error) {
	var out []rjDomain.StatusLog
	err := r.db.WithContext(ctx).
		Preload("Status").
		Where("repair_job_uid = ?", uid).
		Order("changed_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *RepairJobRepository) LastEntryAt(ctx context.Context, uid string, statusID uint) (*time.Time, error) {
	var rows []rjDomain.StatusLog
	err := r.db.WithContext(ctx).
		Where("repair_job_uid = ? AND status_id = ?", uid, statusID).
		Order("changed_at DESC, id DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	ts := rows[0].ChangedAt
	return &ts, nil
}
