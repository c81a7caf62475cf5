package repairjob

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "bark-backend/internal/domain/repairjob"
	"bark-backend/internal/domain/status"
	"bark-backend/internal/domain/uow"
	"bark-backend/internal/domain/workflow"
	customeruc "bark-backend/internal/usecase/customer"
	"bark-backend/pkg/id"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxNumberAttempts bounds retries when a job number collides on insert.
const maxNumberAttempts = 3

var ErrInvalidInput = customeruc.ErrInvalidInput

type Usecase struct {
	repairJobs domain.Repository
	statuses   status.Repository
	uow        uow.UnitOfWork
	policy     workflow.Policy
	region     string
	now        func() time.Time
	log        *zap.Logger
}

func NewUsecase(repairJobs domain.Repository, statuses status.Repository, tx uow.UnitOfWork, policy workflow.Policy, region string, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{
		repairJobs: repairJobs,
		statuses:   statuses,
		uow:        tx,
		policy:     policy,
		region:     region,
		now:        func() time.Time { return time.Now().UTC() },
		log:        log,
	}
}

func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Create registers the customer, insurer and vehicle as needed and opens a
// repair job under the next job number of the current year.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RepairJobDTO, error) {
	priority := domain.PriorityMedium
	if in.Priority != "" {
		priority = domain.Priority(strings.ToLower(in.Priority))
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: priority %q", ErrInvalidInput, in.Priority)
	}
	items := toItems(in.Items)
	totals, err := totalsFor(items, len(items) > 0, in.TotalParts, in.TotalLabor, domain.Totals{})
	if err != nil {
		return nil, err
	}

	now := u.now()
	estimateDate := now
	if in.EstimateDate != nil {
		estimateDate = in.EstimateDate.UTC()
	}

	var uid string
	for attempt := 1; ; attempt++ {
		uid, err = u.create(ctx, in, priority, items, totals, estimateDate, now)
		if !errors.Is(err, domain.ErrDuplicateJobNumber) || attempt == maxNumberAttempts {
			break
		}
		u.log.Warn("job number collision, retrying", zap.Int("attempt", attempt))
	}
	if err != nil {
		return nil, err
	}
	return u.Get(ctx, uid)
}

func (u *Usecase) create(ctx context.Context, in CreateInput, priority domain.Priority, items []domain.EstimateItem, totals domain.Totals, estimateDate, now time.Time) (string, error) {
	var uid, number string
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, _, err := customeruc.Upsert(ctx, r.Customers, u.region, in.Customer)
		if err != nil {
			return err
		}
		insurer, err := customeruc.GetOrCreateInsurer(ctx, r.Insurers, in.InsuranceName)
		if err != nil {
			return err
		}
		v, _, err := customeruc.GetOrCreateVehicle(ctx, r.Customers, r.Vehicles, c.ID, in.Vehicle)
		if err != nil {
			return err
		}

		var initial *status.Status
		if in.StatusID != nil {
			if initial, err = lookupStatus(ctx, r.Statuses, "current_status", *in.StatusID); err != nil {
				return err
			}
			t := workflow.Transition{Target: initial, TargetID: initial.ID, ScheduledRepairDate: in.ScheduledRepairDate}
			if err := u.policy.Evaluate(t, workflow.NewMilestones()); err != nil {
				return err
			}
		}

		seq, err := r.JobNumbers.Next(ctx, now.Year())
		if err != nil {
			return fmt.Errorf("reserve job number: %w", err)
		}

		rj := &domain.RepairJob{
			UID:                 id.NewUID(),
			JobNumber:           id.FormatJobNumber(now.Year(), seq),
			Priority:            priority,
			CustomerID:          c.ID,
			VehicleID:           v.ID,
			PromisedDate:        in.PromisedDate,
			ScheduledRepairDate: in.ScheduledRepairDate,
			EstimateDate:        estimateDate,
			RepairOrder:         strings.TrimSpace(in.RepairOrder),
			JobOrder:            strings.TrimSpace(in.JobOrder),
		}
		if insurer != nil {
			rj.InsuranceID = &insurer.ID
		}
		if initial != nil {
			rj.CurrentStatusID = &initial.ID
		}
		rj.ApplyTotals(totals)

		if err := r.RepairJobs.Create(ctx, rj); err != nil {
			return err
		}
		if len(items) > 0 {
			if err := r.RepairJobs.ReplaceItems(ctx, rj.UID, items); err != nil {
				return fmt.Errorf("store estimate items: %w", err)
			}
		}
		if initial != nil {
			l := &domain.StatusLog{RepairJobUID: rj.UID, StatusID: initial.ID, ChangedAt: now, Notes: in.Notes}
			if err := r.RepairJobs.AppendLog(ctx, l); err != nil {
				return fmt.Errorf("record initial status: %w", err)
			}
		}
		uid, number = rj.UID, rj.JobNumber
		return nil
	})
	if err != nil {
		return "", err
	}
	u.log.Info("repair job created", zap.String("uid", uid), zap.String("job_number", number))
	return uid, nil
}

func (u *Usecase) UpdateEstimate(ctx context.Context, uid string, in UpdateEstimateInput) (*RepairJobDTO, error) {
	err := u.uow.WithinRepairJobTx(ctx, uid, func(r uow.Repos, rj *domain.RepairJob) error {
		if in.Priority != nil {
			p := domain.Priority(strings.ToLower(*in.Priority))
			if !p.Valid() {
				return fmt.Errorf("%w: priority %q", ErrInvalidInput, *in.Priority)
			}
			rj.Priority = p
		}
		if in.PromisedDate != nil {
			rj.PromisedDate = in.PromisedDate
		}
		if in.EstimateDate != nil {
			rj.EstimateDate = in.EstimateDate.UTC()
		}
		if in.RepairOrder != nil {
			rj.RepairOrder = strings.TrimSpace(*in.RepairOrder)
		}
		if in.JobOrder != nil {
			rj.JobOrder = strings.TrimSpace(*in.JobOrder)
		}

		items := toItems(in.Items)
		stored := domain.Totals{Parts: rj.TotalParts, Labor: rj.TotalLabor}
		totals, err := totalsFor(items, in.Items != nil, in.TotalParts, in.TotalLabor, stored)
		if err != nil {
			return err
		}
		rj.ApplyTotals(totals)

		if in.Items != nil {
			if err := r.RepairJobs.ReplaceItems(ctx, uid, items); err != nil {
				return fmt.Errorf("replace estimate items: %w", err)
			}
		}
		if err := r.RepairJobs.Save(ctx, rj); err != nil {
			return fmt.Errorf("save repair job %s: %w", uid, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.Get(ctx, uid)
}

// Approve records the insurer's letter of authority figures.
func (u *Usecase) Approve(ctx context.Context, uid string, in ApproveInput) (*RepairJobDTO, error) {
	if in.ApprovedEstimate.IsNegative() {
		return nil, fmt.Errorf("%w: approved_estimate must not be negative", ErrInvalidInput)
	}
	err := u.uow.WithinRepairJobTx(ctx, uid, func(r uow.Repos, rj *domain.RepairJob) error {
		rj.ApprovedEstimate = decimal.NewNullDecimal(in.ApprovedEstimate.Round(2))
		if in.ApprovedRepairOrder != nil {
			rj.ApprovedRepairOrder = in.ApprovedRepairOrder
		}
		if in.ApprovedJobOrder != nil {
			rj.ApprovedJobOrder = in.ApprovedJobOrder
		}
		loa := u.now()
		if in.LOADate != nil {
			loa = in.LOADate.UTC()
		}
		rj.LOADate = &loa
		return r.RepairJobs.Save(ctx, rj)
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("repair job approved", zap.String("uid", uid), zap.String("approved_estimate", in.ApprovedEstimate.StringFixed(2)))
	return u.Get(ctx, uid)
}

// Transition applies the workflow guard and, when allowed, moves the job and
// appends one status log row carrying the notes.
func (u *Usecase) Transition(ctx context.Context, uid string, in TransitionInput) (*RepairJobDTO, error) {
	err := u.uow.WithinRepairJobTx(ctx, uid, func(r uow.Repos, rj *domain.RepairJob) error {
		var current *status.Status
		if rj.CurrentStatusID != nil {
			s, err := r.Statuses.GetByID(ctx, *rj.CurrentStatusID)
			if err != nil {
				return err
			}
			current = s
		}
		target, err := r.Statuses.GetByID(ctx, in.TargetStatusID)
		if err != nil && !errors.Is(err, status.ErrNotFound) {
			return err
		}
		t := workflow.Transition{
			Current:             current,
			Target:              target,
			TargetID:            in.TargetStatusID,
			ScheduledRepairDate: in.ScheduledRepairDate,
		}

		if u.policy.IsNoop(t) {
			if in.ScheduledRepairDate == nil {
				return nil
			}
			rj.ScheduledRepairDate = in.ScheduledRepairDate
			return r.RepairJobs.Save(ctx, rj)
		}

		reached, err := r.RepairJobs.ReachedStatuses(ctx, uid)
		if err != nil {
			return fmt.Errorf("load ledger for %s: %w", uid, err)
		}
		if err := u.policy.Evaluate(t, workflow.NewMilestones(reached...)); err != nil {
			return err
		}

		rj.CurrentStatusID = &target.ID
		if in.ScheduledRepairDate != nil {
			rj.ScheduledRepairDate = in.ScheduledRepairDate
		}
		if err := r.RepairJobs.Save(ctx, rj); err != nil {
			return fmt.Errorf("save repair job %s: %w", uid, err)
		}
		l := &domain.StatusLog{RepairJobUID: uid, StatusID: target.ID, ChangedAt: u.now(), Notes: in.Notes}
		if err := r.RepairJobs.AppendLog(ctx, l); err != nil {
			return fmt.Errorf("record transition of %s: %w", uid, err)
		}
		u.log.Info("repair job transitioned",
			zap.String("uid", uid),
			zap.Stringer("from", current),
			zap.Stringer("to", target))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.Get(ctx, uid)
}

func (u *Usecase) Get(ctx context.Context, uid string) (*RepairJobDTO, error) {
	rj, err := u.repairJobs.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return u.toDTO(ctx, rj)
}

func (u *Usecase) List(ctx context.Context, in ListInput) ([]RepairJobDTO, error) {
	f := domain.Filter{Priority: domain.Priority(strings.ToLower(in.Priority)), StatusID: in.StatusID, Search: in.Search}
	if f.Priority != "" && !f.Priority.Valid() {
		return nil, fmt.Errorf("%w: priority %q", ErrInvalidInput, in.Priority)
	}
	rows, err := u.repairJobs.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]RepairJobDTO, 0, len(rows))
	for i := range rows {
		dto, err := u.toDTO(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

func (u *Usecase) History(ctx context.Context, uid string) ([]LogDTO, error) {
	if _, err := u.repairJobs.GetByUID(ctx, uid); err != nil {
		return nil, err
	}
	rows, err := u.repairJobs.Logs(ctx, uid)
	if err != nil {
		return nil, err
	}
	out := make([]LogDTO, 0, len(rows))
	for _, l := range rows {
		dto := LogDTO{ID: l.ID, StatusID: l.StatusID, ChangedAt: l.ChangedAt, Notes: l.Notes}
		if l.Status != nil {
			dto.StatusName = l.Status.Name
			dto.Category = string(l.Status.Category)
		}
		out = append(out, dto)
	}
	return out, nil
}

func (u *Usecase) toDTO(ctx context.Context, rj *domain.RepairJob) (*RepairJobDTO, error) {
	cur := rj.CurrentStatus
	if rj.CurrentStatusID == nil {
		cur = nil
	} else if cur == nil || cur.ID != *rj.CurrentStatusID {
		s, err := u.statuses.GetByID(ctx, *rj.CurrentStatusID)
		if err != nil {
			return nil, err
		}
		cur = s
	}

	items := rj.Items
	if items == nil {
		items = []domain.EstimateItem{}
	}
	dto := &RepairJobDTO{
		RepairJob:              rj,
		CurrentStatusDetail:    cur,
		EstimateItems:          items,
		PriceVariance:          rj.PriceVariance(),
		WaitingForParts:        u.policy.WaitingForParts(cur),
		CanProceedToScheduling: u.policy.CanProceedToScheduling(cur),
		AvailableTransitions:   u.policy.AvailableTransitions(cur),
	}
	if cur != nil {
		color := cur.ColorCode
		dto.StatusColor = &color
	}
	if u.policy.IsPendingBilling(cur) {
		last, err := u.repairJobs.LastEntryAt(ctx, rj.UID, cur.ID)
		if err != nil {
			return nil, err
		}
		dto.IsOverdue = u.policy.IsOverdue(cur, last, u.now())
	}
	return dto, nil
}

func toItems(in []ItemInput) []domain.EstimateItem {
	if in == nil {
		return nil
	}
	out := make([]domain.EstimateItem, 0, len(in))
	for _, it := range in {
		out = append(out, domain.EstimateItem{
			Description: strings.TrimSpace(it.Description),
			PartCost:    it.PartCost.Round(2),
			LaborCost:   it.LaborCost.Round(2),
		})
	}
	return out
}

// totalsFor picks the totals source: replaced items first (an empty
// replacement zeroes them), then explicit totals, then the stored ones.
func totalsFor(items []domain.EstimateItem, replaceItems bool, parts, labor *decimal.Decimal, stored domain.Totals) (domain.Totals, error) {
	if replaceItems {
		return domain.TotalsFromItems(items), nil
	}
	p, l := stored.Parts, stored.Labor
	if parts != nil {
		p = *parts
	}
	if labor != nil {
		l = *labor
	}
	if p.IsNegative() || l.IsNegative() {
		return domain.Totals{}, fmt.Errorf("%w: totals must not be negative", ErrInvalidInput)
	}
	return domain.ComputeTotals(p.Round(2), l.Round(2)), nil
}

func lookupStatus(ctx context.Context, statuses status.Repository, field string, id uint) (*status.Status, error) {
	s, err := statuses.GetByID(ctx, id)
	if errors.Is(err, status.ErrNotFound) {
		return nil, workflow.UnknownStatus(field, id)
	}
	return s, err
}
