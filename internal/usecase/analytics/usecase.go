package analytics

import (
	"context"
	"fmt"

	domain "bark-backend/internal/domain/analytics"
	"bark-backend/internal/domain/workflow"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Usecase struct {
	reader domain.Reader
	policy workflow.Policy
	log    *zap.Logger
}

func NewUsecase(reader domain.Reader, policy workflow.Policy, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{reader: reader, policy: policy, log: log}
}

// ledgerReads is everything the reports load from one ledger.
type ledgerReads struct {
	entries  []domain.Entry
	partial  int64
	complete int64
	revenue  []domain.InsurerRevenue
}

func (u *Usecase) load(ctx context.Context, l domain.Ledger, f domain.RevenueFilter) (*ledgerReads, error) {
	var out ledgerReads
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := u.reader.LedgerEntries(ctx, l)
		if err != nil {
			return fmt.Errorf("load %s: %w", l, err)
		}
		out.entries = rows
		return nil
	})
	g.Go(func() error {
		n, err := u.reader.CountJobsReaching(ctx, l, u.policy.PartialPartsID)
		if err != nil {
			return fmt.Errorf("count partial parts: %w", err)
		}
		out.partial = n
		return nil
	})
	g.Go(func() error {
		n, err := u.reader.CountJobsReaching(ctx, l, u.policy.PartsCompleteID)
		if err != nil {
			return fmt.Errorf("count parts complete: %w", err)
		}
		out.complete = n
		return nil
	})
	g.Go(func() error {
		rows, err := u.reader.RevenueByInsurer(ctx, f, u.policy.PaidID)
		if err != nil {
			return fmt.Errorf("revenue by insurer: %w", err)
		}
		out.revenue = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		u.log.Error("analytics read failed", zap.String("ledger", string(l)), zap.Error(err))
		return nil, err
	}
	if out.revenue == nil {
		out.revenue = []domain.InsurerRevenue{}
	}
	return &out, nil
}

// Dashboard summarises repair jobs: cycle time, revenue over all jobs and the parts delay rate.
func (u *Usecase) Dashboard(ctx context.Context) (*Dashboard, error) {
	r, err := u.load(ctx, domain.LedgerRepairJobs, domain.RevenueAll)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		AverageCycleTime:   domain.AverageCycleTimeDays(r.entries, u.policy.EstimateDoneID, u.policy.ReleasedID),
		RevenueByInsurance: r.revenue,
		PartsDelayRate:     domain.PartsRate(r.partial, r.complete).PartialPartsPercentage,
	}, nil
}

// Jobs reports on repair jobs, counting revenue from jobs that were ever paid.
func (u *Usecase) Jobs(ctx context.Context) (*LedgerReport, error) {
	return u.ledgerReport(ctx, domain.LedgerRepairJobs, domain.RevenuePaidMilestone)
}

// Shop reports on tracker jobs with revenue from repair jobs currently paid.
func (u *Usecase) Shop(ctx context.Context) (*LedgerReport, error) {
	return u.ledgerReport(ctx, domain.LedgerTrackerJobs, domain.RevenuePaidCurrent)
}

func (u *Usecase) ledgerReport(ctx context.Context, l domain.Ledger, f domain.RevenueFilter) (*LedgerReport, error) {
	r, err := u.load(ctx, l, f)
	if err != nil {
		return nil, err
	}
	return &LedgerReport{
		AverageCycleTimeDays:  domain.AverageCycleTimeDays(r.entries, u.policy.EstimateDoneID, u.policy.ReleasedID),
		PhaseBottlenecks:      domain.PhaseBottlenecks(r.entries),
		PartsEfficiency:       domain.PartsRate(r.partial, r.complete),
		TotalApprovedCostPaid: domain.SumRevenue(r.revenue),
		RevenueByInsurance:    r.revenue,
	}, nil
}
