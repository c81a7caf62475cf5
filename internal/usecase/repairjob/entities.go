package repairjob

import (
	"time"

	domain "bark-backend/internal/domain/repairjob"
	"bark-backend/internal/domain/status"
	"bark-backend/internal/usecase/customer"

	"github.com/shopspring/decimal"
)

type ItemInput struct {
	Description string          `json:"description" validate:"required,max=255"`
	PartCost    decimal.Decimal `json:"part_cost" validate:"gte=0,dec2"`
	LaborCost   decimal.Decimal `json:"labor_cost" validate:"gte=0,dec2"`
}

type CreateInput struct {
	Customer      customer.UpsertInput  `json:"customer"`
	Vehicle       customer.VehicleInput `json:"vehicle"`
	InsuranceName string                `json:"insurance_name" validate:"omitempty,max=255"`
	Priority      string                `json:"priority" validate:"omitempty,oneof=low medium high"`
	PromisedDate  *time.Time            `json:"promised_date"`
	EstimateDate  *time.Time            `json:"estimate_date"`
	RepairOrder   string                `json:"repair_order" validate:"required"`
	JobOrder      string                `json:"job_order" validate:"required"`

	// Totals are taken from Items when any are given.
	TotalParts *decimal.Decimal `json:"total_parts" validate:"omitempty,gte=0,dec2"`
	TotalLabor *decimal.Decimal `json:"total_labor" validate:"omitempty,gte=0,dec2"`
	Items      []ItemInput      `json:"estimate_items" validate:"dive"`

	StatusID            *uint      `json:"current_status"`
	ScheduledRepairDate *time.Time `json:"scheduled_repair_date"`
	Notes               string     `json:"notes"`
}

// UpdateEstimateInput edits only the fields that are present. A non-nil Items
// (even empty) replaces the stored items and recomputes totals from them.
type UpdateEstimateInput struct {
	Priority     *string          `json:"priority" validate:"omitempty,oneof=low medium high"`
	PromisedDate *time.Time       `json:"promised_date"`
	EstimateDate *time.Time       `json:"estimate_date"`
	RepairOrder  *string          `json:"repair_order"`
	JobOrder     *string          `json:"job_order"`
	TotalParts   *decimal.Decimal `json:"total_parts" validate:"omitempty,gte=0,dec2"`
	TotalLabor   *decimal.Decimal `json:"total_labor" validate:"omitempty,gte=0,dec2"`
	Items        []ItemInput      `json:"estimate_items" validate:"omitempty,dive"`
}

type ApproveInput struct {
	ApprovedEstimate    decimal.Decimal `json:"approved_estimate" validate:"gte=0,dec2"`
	ApprovedRepairOrder *string         `json:"approved_repair_order"`
	ApprovedJobOrder    *string         `json:"approved_job_order"`
	LOADate             *time.Time      `json:"loa_date"`
}

type TransitionInput struct {
	TargetStatusID      uint       `json:"target_status_id" validate:"required"`
	ScheduledRepairDate *time.Time `json:"scheduled_repair_date"`
	Notes               string     `json:"notes"`
}

type ListInput struct {
	Priority string
	StatusID *uint
	Search   string
}

type RepairJobDTO struct {
	*domain.RepairJob
	CurrentStatusDetail    *status.Status        `json:"current_status_detail"`
	EstimateItems          []domain.EstimateItem `json:"estimate_items_detail"`
	PriceVariance          decimal.Decimal       `json:"price_variance"`
	StatusColor            *string               `json:"status_color"`
	IsOverdue              bool                  `json:"is_overdue"`
	WaitingForParts        bool                  `json:"waiting_for_parts"`
	CanProceedToScheduling bool                  `json:"can_proceed_to_scheduling"`
	AvailableTransitions   []uint                `json:"available_transitions"`
}

type LogDTO struct {
	ID         uint      `json:"id"`
	StatusID   uint      `json:"status_id"`
	StatusName string    `json:"status_name"`
	Category   string    `json:"category"`
	ChangedAt  time.Time `json:"changed_at"`
	Notes      string    `json:"notes"`
}
