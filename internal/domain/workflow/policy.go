// Package workflow holds the status transition guard shared by tracker jobs and repair jobs.
// Everything here is pure: callers load the current status, the target and the ledger
// milestones, then persist the outcome themselves.
package workflow

import (
	"fmt"
	"time"

	"bark-backend/internal/domain/status"
)

// Policy names the statuses the guard treats specially.
type Policy struct {
	EstimateDoneID       uint
	LOAApprovedID        uint
	PartialPartsID       uint
	PartsCompleteID      uint
	SchedulingID         uint
	ScheduledForRepairID uint
	ReleasedID           uint
	PaidID               uint

	// StepRequirements maps a target status to a status that must already be in the ledger.
	StepRequirements map[uint]uint
	// LOAGatedCategory can only be entered once LOAApprovedID is in the ledger.
	LOAGatedCategory status.Category

	PendingCategory status.Category
	PendingName     string
	OverdueAfter    time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		EstimateDoneID:       status.IDEstimateDone,
		LOAApprovedID:        status.IDLOAApproved,
		PartialPartsID:       status.IDPartialPartsReceived,
		PartsCompleteID:      status.IDPartsComplete,
		SchedulingID:         status.IDForScheduling,
		ScheduledForRepairID: status.IDScheduledForRepair,
		ReleasedID:           status.IDReleased,
		PaidID:               status.IDPaid,
		StepRequirements: map[uint]uint{
			status.IDOngoingBodyPaint: status.IDOngoingBodyWork,
		},
		LOAGatedCategory: status.CategoryRepair,
		PendingCategory:  status.CategoryBilling,
		PendingName:      "Pending",
		OverdueAfter:     30 * 24 * time.Hour,
	}
}

// History answers "has this job ever been in status X".
type History interface {
	HasReached(statusID uint) bool
}

// Milestones is a set of status ids seen in a job's ledger.
type Milestones map[uint]struct{}

func NewMilestones(ids ...uint) Milestones {
	m := make(Milestones, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

func (m Milestones) HasReached(statusID uint) bool {
	_, ok := m[statusID]
	return ok
}

// Transition is one requested status change.
type Transition struct {
	Current *status.Status // nil when the job has no status yet
	// Target is nil when TargetID does not resolve to a stored status.
	Target              *status.Status
	TargetID            uint
	ScheduledRepairDate *time.Time
}

// IsNoop reports a request that would leave the current status unchanged.
func (p Policy) IsNoop(t Transition) bool {
	return t.Current != nil && t.Current.ID == t.TargetID
}

// Evaluate applies the rules in order and returns the first rejection, nil when allowed.
func (p Policy) Evaluate(t Transition, h History) error {
	if t.Target == nil || t.Target.ID != t.TargetID {
		return UnknownStatus("target_status_id", t.TargetID)
	}
	if h == nil {
		h = Milestones(nil)
	}

	if t.Current != nil {
		cur, tgt := t.Current.Category.Order(), t.Target.Category.Order()
		if cur > 0 && tgt > 0 && tgt-cur > 1 {
			return reject(ErrPhaseSkipped, "target_status_id",
				fmt.Sprintf("cannot skip phases (%s to %s)", t.Current.Category, t.Target.Category))
		}
	}

	if t.TargetID == p.SchedulingID && !p.CanProceedToScheduling(t.Current) {
		return reject(ErrPrerequisiteNotMet, "target_status_id",
			"scheduling requires Partial Parts Received or Parts Complete")
	}

	if required, ok := p.StepRequirements[t.TargetID]; ok && !h.HasReached(required) {
		return reject(ErrPrerequisiteNotMet, "target_status_id",
			fmt.Sprintf("status %d must be reached before status %d", required, t.TargetID))
	}

	if p.LOAGatedCategory != "" && t.Target.Category == p.LOAGatedCategory && !h.HasReached(p.LOAApprovedID) {
		return reject(ErrPrerequisiteNotMet, "target_status_id",
			fmt.Sprintf("LOA Approved is required before moving into %s", p.LOAGatedCategory))
	}

	if t.TargetID == p.ScheduledForRepairID && (t.ScheduledRepairDate == nil || t.ScheduledRepairDate.IsZero()) {
		return reject(ErrMissingField, "scheduled_repair_date",
			"scheduled_repair_date is required for Scheduled for Repair")
	}
	return nil
}

func (p Policy) CanProceedToScheduling(current *status.Status) bool {
	if current == nil {
		return false
	}
	return current.ID == p.PartialPartsID || current.ID == p.PartsCompleteID
}

func (p Policy) WaitingForParts(current *status.Status) bool {
	return current != nil && current.ID == p.PartialPartsID
}

// AvailableTransitions lists the forward moves offered from a PARTS status.
func (p Policy) AvailableTransitions(current *status.Status) []uint {
	if current == nil || current.Category != status.CategoryParts {
		return []uint{}
	}
	if p.CanProceedToScheduling(current) {
		return []uint{p.SchedulingID}
	}
	return []uint{}
}

// IsPendingBilling reports whether s is the billing state that can go overdue.
func (p Policy) IsPendingBilling(s *status.Status) bool {
	return s != nil && s.Category == p.PendingCategory && s.Name == p.PendingName
}

// IsOverdue needs the timestamp of the latest ledger entry for the current status.
func (p Policy) IsOverdue(current *status.Status, lastEntryAt *time.Time, now time.Time) bool {
	if !p.IsPendingBilling(current) || lastEntryAt == nil {
		return false
	}
	return now.Sub(*lastEntryAt) >= p.OverdueAfter
}
