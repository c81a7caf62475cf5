package job

import (
	"time"

	"bark-backend/internal/domain/status"
	"bark-backend/internal/usecase/customer"
)

type CreateInput struct {
	// CustomerID picks an existing customer; otherwise Customer is upserted by phone.
	CustomerID          *uint                 `json:"customer_id"`
	Customer            *customer.UpsertInput `json:"customer" validate:"omitempty"`
	VehicleDetails      string                `json:"vehicle_details" validate:"required"`
	StatusID            *uint                 `json:"status_id"`
	ScheduledRepairDate *time.Time            `json:"scheduled_repair_date"`
}

type UpdateDetailsInput struct {
	VehicleDetails string `json:"vehicle_details" validate:"required"`
}

type TransitionInput struct {
	TargetStatusID      uint       `json:"target_status_id" validate:"required"`
	ScheduledRepairDate *time.Time `json:"scheduled_repair_date"`
}

type JobDTO struct {
	ID                     uint           `json:"id"`
	CustomerID             uint           `json:"customer"`
	VehicleDetails         string         `json:"vehicle_details"`
	CurrentStatusID        *uint          `json:"current_status"`
	CurrentStatus          *status.Status `json:"current_status_detail"`
	StatusColor            *string        `json:"status_color"`
	ScheduledRepairDate    *time.Time     `json:"scheduled_repair_date"`
	WaitingForParts        bool           `json:"waiting_for_parts"`
	IsOverdue              bool           `json:"is_overdue"`
	CanProceedToScheduling bool           `json:"can_proceed_to_scheduling"`
	AvailableTransitions   []uint         `json:"available_transitions"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

type HistoryDTO struct {
	ID         uint      `json:"id"`
	StatusID   uint      `json:"status_id"`
	StatusName string    `json:"status_name"`
	Category   string    `json:"category"`
	Timestamp  time.Time `json:"timestamp"`
}
