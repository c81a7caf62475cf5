package job

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bark-backend/internal/domain/customer"
	domain "bark-backend/internal/domain/job"
	"bark-backend/internal/domain/status"
	"bark-backend/internal/domain/uow"
	"bark-backend/internal/domain/workflow"
	customeruc "bark-backend/internal/usecase/customer"

	"go.uber.org/zap"
)

type Usecase struct {
	jobs     domain.Repository
	statuses status.Repository
	uow      uow.UnitOfWork
	policy   workflow.Policy
	region   string
	now      func() time.Time
	log      *zap.Logger
}

func NewUsecase(jobs domain.Repository, statuses status.Repository, tx uow.UnitOfWork, policy workflow.Policy, region string, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{
		jobs:     jobs,
		statuses: statuses,
		uow:      tx,
		policy:   policy,
		region:   region,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log,
	}
}

// WithClock replaces the time source used for ledger timestamps and overdue checks.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*JobDTO, error) {
	details := strings.TrimSpace(in.VehicleDetails)
	if details == "" {
		return nil, fmt.Errorf("%w: vehicle_details is required", customeruc.ErrInvalidInput)
	}
	if in.CustomerID == nil && in.Customer == nil {
		return nil, fmt.Errorf("%w: customer_id or customer is required", customeruc.ErrInvalidInput)
	}

	var out *JobDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var c *customer.Customer
		var err error
		if in.CustomerID != nil {
			c, err = r.Customers.GetByID(ctx, *in.CustomerID)
		} else {
			c, _, err = customeruc.Upsert(ctx, r.Customers, u.region, *in.Customer)
		}
		if err != nil {
			return err
		}

		j := &domain.Job{CustomerID: c.ID, VehicleDetails: details, ScheduledRepairDate: in.ScheduledRepairDate}

		var initial *status.Status
		if in.StatusID != nil {
			initial, err = lookupStatus(ctx, r.Statuses, "status_id", *in.StatusID)
			if err != nil {
				return err
			}
			t := workflow.Transition{Target: initial, TargetID: *in.StatusID, ScheduledRepairDate: in.ScheduledRepairDate}
			if err := u.policy.Evaluate(t, workflow.NewMilestones()); err != nil {
				return err
			}
			j.CurrentStatusID = &initial.ID
			j.CurrentStatus = initial
		}

		if err := r.Jobs.Create(ctx, j); err != nil {
			return fmt.Errorf("create job: %w", err)
		}
		if initial != nil {
			if err := r.Jobs.AppendHistory(ctx, &domain.History{JobID: j.ID, StatusID: initial.ID, Timestamp: u.now()}); err != nil {
				return fmt.Errorf("record initial status: %w", err)
			}
		}
		out, err = u.toDTO(ctx, r.Jobs, j)
		return err
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("job created", zap.Uint("job_id", out.ID), zap.Uint("customer_id", out.CustomerID))
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint) (*JobDTO, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := attachStatus(ctx, u.statuses, j); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, u.jobs, j)
}

func (u *Usecase) List(ctx context.Context) ([]JobDTO, error) {
	rows, err := u.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]JobDTO, 0, len(rows))
	for i := range rows {
		if err := attachStatus(ctx, u.statuses, &rows[i]); err != nil {
			return nil, err
		}
		dto, err := u.toDTO(ctx, u.jobs, &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

// UpdateDetails edits the free-text vehicle details. The customer never changes.
func (u *Usecase) UpdateDetails(ctx context.Context, id uint, in UpdateDetailsInput) (*JobDTO, error) {
	details := strings.TrimSpace(in.VehicleDetails)
	if details == "" {
		return nil, fmt.Errorf("%w: vehicle_details is required", customeruc.ErrInvalidInput)
	}
	var out *JobDTO
	err := u.uow.WithinJobTx(ctx, id, func(r uow.Repos, j *domain.Job) error {
		j.VehicleDetails = details
		if err := r.Jobs.Save(ctx, j); err != nil {
			return fmt.Errorf("save job %d: %w", id, err)
		}
		if err := attachStatus(ctx, r.Statuses, j); err != nil {
			return err
		}
		var err error
		out, err = u.toDTO(ctx, r.Jobs, j)
		return err
	})
	return out, err
}

// Transition moves the job to the target status. The row stays locked from the
// guard's read until the status update and its ledger row are committed.
func (u *Usecase) Transition(ctx context.Context, id uint, in TransitionInput) (*JobDTO, error) {
	var out *JobDTO
	err := u.uow.WithinJobTx(ctx, id, func(r uow.Repos, j *domain.Job) error {
		if err := attachStatus(ctx, r.Statuses, j); err != nil {
			return err
		}
		target, err := r.Statuses.GetByID(ctx, in.TargetStatusID)
		if err != nil && !errors.Is(err, status.ErrNotFound) {
			return err
		}
		t := workflow.Transition{
			Current:             j.CurrentStatus,
			Target:              target,
			TargetID:            in.TargetStatusID,
			ScheduledRepairDate: in.ScheduledRepairDate,
		}

		if u.policy.IsNoop(t) {
			if in.ScheduledRepairDate != nil {
				j.ScheduledRepairDate = in.ScheduledRepairDate
				if err := r.Jobs.Save(ctx, j); err != nil {
					return fmt.Errorf("save job %d: %w", id, err)
				}
			}
			out, err = u.toDTO(ctx, r.Jobs, j)
			return err
		}

		reached, err := r.Jobs.ReachedStatuses(ctx, j.ID)
		if err != nil {
			return fmt.Errorf("load ledger for job %d: %w", id, err)
		}
		if err := u.policy.Evaluate(t, workflow.NewMilestones(reached...)); err != nil {
			return err
		}

		from := j.CurrentStatusID
		j.CurrentStatusID = &target.ID
		j.CurrentStatus = target
		if in.ScheduledRepairDate != nil {
			j.ScheduledRepairDate = in.ScheduledRepairDate
		}
		if err := r.Jobs.Save(ctx, j); err != nil {
			return fmt.Errorf("save job %d: %w", id, err)
		}
		if err := r.Jobs.AppendHistory(ctx, &domain.History{JobID: j.ID, StatusID: target.ID, Timestamp: u.now()}); err != nil {
			return fmt.Errorf("record transition of job %d: %w", id, err)
		}
		u.log.Info("job transitioned",
			zap.Uint("job_id", j.ID),
			zap.Uintp("from_status_id", from),
			zap.Uint("to_status_id", target.ID))

		out, err = u.toDTO(ctx, r.Jobs, j)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) History(ctx context.Context, id uint) ([]HistoryDTO, error) {
	if _, err := u.jobs.GetByID(ctx, id); err != nil {
		return nil, err
	}
	rows, err := u.jobs.History(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryDTO, 0, len(rows))
	for _, h := range rows {
		dto := HistoryDTO{ID: h.ID, StatusID: h.StatusID, Timestamp: h.Timestamp}
		if h.Status != nil {
			dto.StatusName = h.Status.Name
			dto.Category = string(h.Status.Category)
		}
		out = append(out, dto)
	}
	return out, nil
}

func (u *Usecase) toDTO(ctx context.Context, jobs domain.Repository, j *domain.Job) (*JobDTO, error) {
	cur := j.CurrentStatus
	dto := &JobDTO{
		ID:                     j.ID,
		CustomerID:             j.CustomerID,
		VehicleDetails:         j.VehicleDetails,
		CurrentStatusID:        j.CurrentStatusID,
		CurrentStatus:          cur,
		ScheduledRepairDate:    j.ScheduledRepairDate,
		WaitingForParts:        u.policy.WaitingForParts(cur),
		CanProceedToScheduling: u.policy.CanProceedToScheduling(cur),
		AvailableTransitions:   u.policy.AvailableTransitions(cur),
		CreatedAt:              j.CreatedAt,
		UpdatedAt:              j.UpdatedAt,
	}
	if cur != nil {
		color := cur.ColorCode
		dto.StatusColor = &color
	}
	if u.policy.IsPendingBilling(cur) {
		last, err := jobs.LastEntryAt(ctx, j.ID, cur.ID)
		if err != nil {
			return nil, err
		}
		dto.IsOverdue = u.policy.IsOverdue(cur, last, u.now())
	}
	return dto, nil
}

// attachStatus loads the current status when the row was read without it.
func attachStatus(ctx context.Context, statuses status.Repository, j *domain.Job) error {
	if j.CurrentStatusID == nil || (j.CurrentStatus != nil && j.CurrentStatus.ID == *j.CurrentStatusID) {
		return nil
	}
	s, err := statuses.GetByID(ctx, *j.CurrentStatusID)
	if err != nil {
		return err
	}
	j.CurrentStatus = s
	return nil
}

// lookupStatus maps a missing status onto the guard's UnknownStatus rejection.
func lookupStatus(ctx context.Context, statuses status.Repository, field string, id uint) (*status.Status, error) {
	s, err := statuses.GetByID(ctx, id)
	if errors.Is(err, status.ErrNotFound) {
		return nil, workflow.UnknownStatus(field, id)
	}
	return s, err
}
