package analytics

import (
	domain "bark-backend/internal/domain/analytics"

	"github.com/shopspring/decimal"
)

type Report string

const (
	ReportDashboard Report = "dashboard"
	ReportJobs      Report = "jobs"
	ReportShop      Report = "shop"
)

func (r Report) Valid() bool {
	switch r {
	case ReportDashboard, ReportJobs, ReportShop:
		return true
	}
	return false
}

type Dashboard struct {
	AverageCycleTime   *float64                `json:"average_cycle_time"`
	RevenueByInsurance []domain.InsurerRevenue `json:"revenue_by_insurance"`
	PartsDelayRate     float64                 `json:"parts_delay_rate"`
}

// LedgerReport is the shape of both the repair-job and the shop reports.
type LedgerReport struct {
	AverageCycleTimeDays  *float64                `json:"average_cycle_time_days"`
	PhaseBottlenecks      []domain.PhaseDuration  `json:"phase_bottlenecks"`
	PartsEfficiency       domain.PartsEfficiency  `json:"parts_efficiency"`
	TotalApprovedCostPaid decimal.Decimal         `json:"total_approved_cost_paid"`
	RevenueByInsurance    []domain.InsurerRevenue `json:"revenue_by_insurance"`
}
