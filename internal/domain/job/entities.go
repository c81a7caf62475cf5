package job

import (
	"errors"
	"time"

	"bark-backend/internal/domain/status"
)

var ErrNotFound = errors.New("job not found")

// Job is a lightweight tracker job: a customer, free-text vehicle details and a status.
type Job struct {
	ID                  uint           `gorm:"primaryKey;column:id" json:"id"`
	CustomerID          uint           `gorm:"column:customer_id;not null;index" json:"customer_id"`
	VehicleDetails      string         `gorm:"column:vehicle_details;type:text;not null" json:"vehicle_details"`
	CurrentStatusID     *uint          `gorm:"column:current_status_id;index" json:"current_status_id"`
	CurrentStatus       *status.Status `gorm:"foreignKey:CurrentStatusID" json:"-"`
	ScheduledRepairDate *time.Time     `gorm:"column:scheduled_repair_date" json:"scheduled_repair_date"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Job) TableName() string { return "jobs" }

// History is one append-only ledger row. Rows are never updated or deleted.
type History struct {
	ID        uint           `gorm:"primaryKey;column:id" json:"id"`
	JobID     uint           `gorm:"column:job_id;not null;index:idx_job_histories_job_status" json:"job_id"`
	StatusID  uint           `gorm:"column:status_id;not null;index:idx_job_histories_job_status" json:"status_id"`
	Status    *status.Status `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Timestamp time.Time      `gorm:"column:timestamp;not null;index" json:"timestamp"`
}

func (History) TableName() string { return "job_histories" }
