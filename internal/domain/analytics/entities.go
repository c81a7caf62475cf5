package analytics

import (
	"context"
	"time"

	"bark-backend/internal/domain/status"

	"github.com/shopspring/decimal"
)

// Ledger selects which history table a report reads.
type Ledger string

const (
	LedgerRepairJobs  Ledger = "status_logs"
	LedgerTrackerJobs Ledger = "job_histories"
)

// Entry is one ledger row flattened for aggregation.
type Entry struct {
	JobKey   string          `gorm:"column:job_key"`
	StatusID uint            `gorm:"column:status_id"`
	Category status.Category `gorm:"column:category"`
	At       time.Time       `gorm:"column:at"`
}

type RevenueFilter int

const (
	RevenueAll RevenueFilter = iota
	// RevenuePaidMilestone keeps repair jobs whose ledger ever reached the paid status.
	RevenuePaidMilestone
	// RevenuePaidCurrent keeps repair jobs currently in the paid status.
	RevenuePaidCurrent
)

type InsurerRevenue struct {
	InsuranceProvider string          `gorm:"column:insurance_provider" json:"insurance_provider"`
	ApprovedCostTotal decimal.Decimal `gorm:"column:approved_cost_total" json:"approved_cost_total"`
	JobCount          int64           `gorm:"column:job_count" json:"job_count"`
}

type PhaseDuration struct {
	Category    status.Category `json:"category"`
	AverageDays *float64        `json:"average_days"`
	Samples     int             `json:"-"`
}

type PartsEfficiency struct {
	PartialPartsPercentage  float64 `json:"partial_parts_percentage"`
	PartsCompletePercentage float64 `json:"parts_complete_percentage"`
}

type Reader interface {
	// LedgerEntries returns every row of the ledger ordered by job then time.
	LedgerEntries(ctx context.Context, l Ledger) ([]Entry, error)
	// CountJobsReaching counts distinct jobs whose ledger contains statusID.
	CountJobsReaching(ctx context.Context, l Ledger, statusID uint) (int64, error)
	RevenueByInsurer(ctx context.Context, f RevenueFilter, paidStatusID uint) ([]InsurerRevenue, error)
}
