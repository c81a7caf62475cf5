package repairjob

import (
	"context"
	"time"
)

type Filter struct {
	Priority Priority
	StatusID *uint
	// Search matches job number or plate number.
	Search string
}

type Repository interface {
	Create(ctx context.Context, r *RepairJob) error
	Save(ctx context.Context, r *RepairJob) error
	// GetByUID preloads customer, vehicle, insurer, status and items.
	GetByUID(ctx context.Context, uid string) (*RepairJob, error)
	GetByUIDForUpdate(ctx context.Context, uid string) (*RepairJob, error)
	// List returns newest first.
	List(ctx context.Context, f Filter) ([]RepairJob, error)

	// ReplaceItems deletes the job's items and inserts items in their place.
	ReplaceItems(ctx context.Context, uid string, items []EstimateItem) error

	AppendLog(ctx context.Context, l *StatusLog) error
	ReachedStatuses(ctx context.Context, uid string) ([]uint, error)
	Logs(ctx context.Context, uid string) ([]StatusLog, error)
	LastEntryAt(ctx context.Context, uid string, statusID uint) (*time.Time, error)
}

// NumberSequencer hands out per-year job numbers. Next must run inside the
// creating transaction so concurrent creations never see the same value.
type NumberSequencer interface {
	Next(ctx context.Context, year int) (int, error)
}
