package mysql

import (
	"context"

	rjDomain "bark-backend/internal/domain/repairjob"
	"bark-backend/pkg/id"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobNumberRepository keeps one counter row per year in job_number_sequences.
type JobNumberRepository struct{ db *gorm.DB }

func NewJobNumberRepository(db *gorm.DB) *JobNumberRepository { return &JobNumberRepository{db: db} }

// Next bumps the year's counter under a row lock and returns the new value.
// Run it inside the transaction that inserts the repair job.
func (r *JobNumberRepository) Next(ctx context.Context, year int) (int, error) {
	db := r.db.WithContext(ctx)

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rjDomain.NumberSequence{Year: year})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 1 {
		// first counter for this year: continue after numbers issued before the counter existed
		floor, err := r.highestIssued(ctx, year)
		if err != nil {
			return 0, err
		}
		if floor > 0 {
			if err := db.Model(&rjDomain.NumberSequence{}).Where("year = ?", year).
				Update("last_value", floor).Error; err != nil {
				return 0, err
			}
		}
	}

	var seq rjDomain.NumberSequence
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("year = ?", year).First(&seq).Error; err != nil {
		return 0, err
	}
	seq.LastValue++
	if err := db.Model(&rjDomain.NumberSequence{}).Where("year = ?", year).
		Update("last_value", seq.LastValue).Error; err != nil {
		return 0, err
	}
	return seq.LastValue, nil
}

func (r *JobNumberRepository) highestIssued(ctx context.Context, year int) (int, error) {
	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&rjDomain.RepairJob{}).
		Where("job_number LIKE ?", id.JobNumberPrefix(year)+"%").
		Pluck("job_number", &numbers).Error
	if err != nil {
		return 0, err
	}
	highest := 0
	for _, n := range numbers {
		if y, seq, err := id.ParseJobNumber(n); err == nil && y == year && seq > highest {
			highest = seq
		}
	}
	return highest, nil
}
