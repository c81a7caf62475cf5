package db

import (
	"context"

	"bark-backend/internal/domain/status"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedStatuses inserts the default status catalogue. Rows that already exist
// are left untouched, so edited names and colours survive a restart.
func SeedStatuses(ctx context.Context, gdb *gorm.DB) (int64, error) {
	rows := status.DefaultCatalogue()
	res := gdb.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	return res.RowsAffected, res.Error
}
