package repairjob

import (
	"errors"
	"time"

	"bark-backend/internal/domain/customer"
	"bark-backend/internal/domain/insurance"
	"bark-backend/internal/domain/status"
	"bark-backend/internal/domain/vehicle"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound           = errors.New("repair job not found")
	ErrDuplicateJobNumber = errors.New("job number already taken")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type RepairJob struct {
	UID       string   `gorm:"primaryKey;column:repairjob_uid;type:char(36)" json:"id"`
	JobNumber string   `gorm:"column:job_number;size:20;not null;uniqueIndex:ux_repair_jobs_job_number" json:"job_number"`
	Priority  Priority `gorm:"column:priority;size:10;not null;default:'medium'" json:"priority"`

	CustomerID  uint               `gorm:"column:customer_id;not null;index" json:"-"`
	Customer    *customer.Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	VehicleID   uint               `gorm:"column:vehicle_id;not null;index" json:"-"`
	Vehicle     *vehicle.Vehicle   `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	InsuranceID *uint              `gorm:"column:insurance_id;index" json:"-"`
	Insurance   *insurance.Company `gorm:"foreignKey:InsuranceID" json:"insurance,omitempty"`

	PromisedDate        *time.Time     `gorm:"column:promised_date" json:"promised_date"`
	CurrentStatusID     *uint          `gorm:"column:current_status_id;index" json:"current_status_id"`
	CurrentStatus       *status.Status `gorm:"foreignKey:CurrentStatusID" json:"-"`
	ScheduledRepairDate *time.Time     `gorm:"column:scheduled_repair_date" json:"scheduled_repair_date"`

	// estimate phase
	EstimatePrice decimal.Decimal `gorm:"column:estimate_price;type:decimal(12,2);not null" json:"estimate_price"`
	EstimateDate  time.Time       `gorm:"column:estimate_date;not null" json:"estimate_date"`
	RepairOrder   string          `gorm:"column:repair_order;type:text;not null" json:"repair_order"`
	LaborCost     decimal.Decimal `gorm:"column:labor_cost;type:decimal(12,2);not null" json:"labor_cost"`
	JobOrder      string          `gorm:"column:job_order;type:text;not null" json:"job_order"`
	TotalLabor    decimal.Decimal `gorm:"column:total_labor;type:decimal(12,2);not null;default:0" json:"total_labor"`
	TotalParts    decimal.Decimal `gorm:"column:total_parts;type:decimal(12,2);not null;default:0" json:"total_parts"`
	ServiceTax    decimal.Decimal `gorm:"column:service_tax;type:decimal(12,2);not null;default:0" json:"service_tax"`
	GrandTotal    decimal.Decimal `gorm:"column:grand_total;type:decimal(12,2);not null;default:0" json:"grand_total"`

	// approval phase
	ApprovedEstimate    decimal.NullDecimal `gorm:"column:approved_estimate;type:decimal(12,2)" json:"approved_estimate"`
	ApprovedRepairOrder *string             `gorm:"column:approved_repair_order;type:text" json:"approved_repair_order"`
	ApprovedJobOrder    *string             `gorm:"column:approved_job_order;type:text" json:"approved_job_order"`
	LOADate             *time.Time          `gorm:"column:loa_date" json:"loa_date"`

	Items []EstimateItem `gorm:"foreignKey:RepairJobUID;references:UID" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RepairJob) TableName() string { return "repair_jobs" }

// PriceVariance is approved − estimate once approved, zero before.
func (r *RepairJob) PriceVariance() decimal.Decimal {
	if !r.ApprovedEstimate.Valid {
		return decimal.Zero
	}
	return r.ApprovedEstimate.Decimal.Sub(r.EstimatePrice)
}

// ApplyTotals stores t and the estimate fields derived from it.
func (r *RepairJob) ApplyTotals(t Totals) {
	r.TotalParts = t.Parts
	r.TotalLabor = t.Labor
	r.ServiceTax = t.ServiceTax
	r.GrandTotal = t.GrandTotal
	r.EstimatePrice = t.EstimatePrice()
	r.LaborCost = t.Labor
}

type EstimateItem struct {
	ID           uint            `gorm:"primaryKey;column:id" json:"id"`
	RepairJobUID string          `gorm:"column:repair_job_uid;type:char(36);not null;index" json:"-"`
	Description  string          `gorm:"column:description;size:255;not null" json:"description"`
	PartCost     decimal.Decimal `gorm:"column:part_cost;type:decimal(12,2);not null;default:0" json:"part_cost"`
	LaborCost    decimal.Decimal `gorm:"column:labor_cost;type:decimal(12,2);not null;default:0" json:"labor_cost"`
}

func (EstimateItem) TableName() string { return "estimate_items" }

// StatusLog is the repair-job ledger row.
type StatusLog struct {
	ID           uint           `gorm:"primaryKey;column:id" json:"id"`
	RepairJobUID string         `gorm:"column:repair_job_uid;type:char(36);not null;index:idx_status_logs_job_status" json:"-"`
	StatusID     uint           `gorm:"column:status_id;not null;index:idx_status_logs_job_status" json:"status_id"`
	Status       *status.Status `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	ChangedAt    time.Time      `gorm:"column:changed_at;not null;index" json:"changed_at"`
	Notes        string         `gorm:"column:notes;type:text;not null" json:"notes"`
}

func (StatusLog) TableName() string { return "status_logs" }

// NumberSequence is the per-year job-number counter row.
type NumberSequence struct {
	Year      int `gorm:"primaryKey;column:year;autoIncrement:false"`
	LastValue int `gorm:"column:last_value;not null;default:0"`
}

func (NumberSequence) TableName() string { return "job_number_sequences" }
