package mysql

import (
	"context"
	"time"

	jobDomain "bark-backend/internal/domain/job"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobRepository struct{ db *gorm.DB }

func NewJobRepository(db *gorm.DB) *JobRepository { return &JobRepository{db: db} }

func (r *JobRepository) Create(ctx context.Context, j *jobDomain.Job) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(j).Error
}

func (r *JobRepository) Save(ctx context.Context, j *jobDomain.Job) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(j).Error
}

func (r *JobRepository) GetByID(ctx context.Context, id uint) (*jobDomain.Job, error) {
	var out jobDomain.Job
	err := r.db.WithContext(ctx).Preload("CurrentStatus").Where("id = ?", id).First(&out).Error
	if err != nil {
		return nil, notFound(err, jobDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *JobRepository) GetByIDForUpdate(ctx context.Context, id uint) (*jobDomain.Job, error) {
	var out jobDomain.Job
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, jobDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *JobRepository) List(ctx context.Context) ([]jobDomain.Job, error) {
	var out []jobDomain.Job
	err := r.db.WithContext(ctx).
		Preload("CurrentStatus").
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *JobRepository) AppendHistory(ctx context.Context, h *jobDomain.History) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(h).Error
}

func (r *JobRepository) ReachedStatuses(ctx context.Context, jobID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&jobDomain.History{}).
		Where("job_id = ?", jobID).
		Distinct().
		Pluck("status_id", &ids).Error
	return ids, err
}

func (r *JobRepository) History(ctx context.Context, jobID uint) ([]jobDomain.History, error) {
	var out []jobDomain.History
	err := r.db.WithContext(ctx).
		Preload("Status").
		Where("job_id = ?", jobID).
		Order("timestamp ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *JobRepository) LastEntryAt(ctx context.Context, jobID, statusID uint) (*time.Time, error) {
	var rows []jobDomain.History
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND status_id = ?", jobID, statusID).
		Order("timestamp DESC, id DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	ts := rows[0].Timestamp
	return &ts, nil
}
