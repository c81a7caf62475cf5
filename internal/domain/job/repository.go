package job

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, j *Job) error
	Save(ctx context.Context, j *Job) error
	// GetByID preloads the current status.
	GetByID(ctx context.Context, id uint) (*Job, error)
	// GetByIDForUpdate locks the row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Job, error)
	// List returns newest first.
	List(ctx context.Context) ([]Job, error)

	AppendHistory(ctx context.Context, h *History) error
	// ReachedStatuses returns the distinct status ids present in the job's ledger.
	ReachedStatuses(ctx context.Context, jobID uint) ([]uint, error)
	// History returns the ledger ordered by timestamp.
	History(ctx context.Context, jobID uint) ([]History, error)
	// LastEntryAt is the latest ledger timestamp for the status, nil when never reached.
	LastEntryAt(ctx context.Context, jobID, statusID uint) (*time.Time, error)
}
