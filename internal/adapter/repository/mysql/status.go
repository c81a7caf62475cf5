package mysql

import (
	"context"
	"errors"
	"sort"

	statusDomain "bark-backend/internal/domain/status"

	"gorm.io/gorm"
)

type StatusRepository struct{ db *gorm.DB }

func NewStatusRepository(db *gorm.DB) *StatusRepository { return &StatusRepository{db: db} }

func (r *StatusRepository) Create(ctx context.Context, s *statusDomain.Status) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StatusRepository) Save(ctx context.Context, s *statusDomain.Status) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// tables holding a status reference, column per table
var statusReferences = [][2]string{
	{"jobs", "current_status_id"},
	{"repair_jobs", "current_status_id"},
	{"job_histories", "status_id"},
	{"status_logs", "status_id"},
}

func (r *StatusRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ref := range statusReferences {
			var n int64
			if err := tx.Table(ref[0]).Where(ref[1]+" = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return statusDomain.ErrInUse
			}
		}
		res := tx.Delete(&statusDomain.Status{}, id)
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return statusDomain.ErrInUse
		}
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return statusDomain.ErrNotFound
		}
		return nil
	})
}

func (r *StatusRepository) GetByID(ctx context.Context, id uint) (*statusDomain.Status, error) {
	var out statusDomain.Status
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if err != nil {
		return nil, notFound(err, statusDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *StatusRepository) List(ctx context.Context) ([]statusDomain.Status, error) {
	var out []statusDomain.Status
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	// workflow order; the DB would sort an enum and a plain string column differently
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := out[i].Category.Order(), out[j].Category.Order()
		if ci != cj {
			return ci < cj
		}
		return out[i].Order < out[j].Order
	})
	return out, nil
}
