package mysql

import (
	"context"
	"fmt"

	"bark-backend/internal/domain/analytics"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// AnalyticsReader builds the report queries with squirrel and runs them through gorm.
type AnalyticsReader struct{ db *gorm.DB }

func NewAnalyticsReader(db *gorm.DB) *AnalyticsReader { return &AnalyticsReader{db: db} }

type ledgerShape struct {
	table, jobCol, atCol string
}

func shapeOf(l analytics.Ledger) (ledgerShape, error) {
	switch l {
	case analytics.LedgerRepairJobs:
		return ledgerShape{"status_logs", "repair_job_uid", "changed_at"}, nil
	case analytics.LedgerTrackerJobs:
		return ledgerShape{"job_histories", "job_id", "timestamp"}, nil
	}
	return ledgerShape{}, fmt.Errorf("unknown ledger %q", l)
}

func (r *AnalyticsReader) raw(ctx context.Context, b sq.Sqlizer, dest any) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error
}

func (r *AnalyticsReader) LedgerEntries(ctx context.Context, l analytics.Ledger) ([]analytics.Entry, error) {
	s, err := shapeOf(l)
	if err != nil {
		return nil, err
	}
	q := sq.Select(
		"CAST(l."+s.jobCol+" AS CHAR) AS job_key",
		"l.status_id AS status_id",
		"st.category AS category",
		"l."+s.atCol+" AS at",
	).From(s.table + " l").
		Join("statuses st ON st.id = l.status_id").
		OrderBy("job_key", "at", "l.id")

	var out []analytics.Entry
	if err := r.raw(ctx, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AnalyticsReader) CountJobsReaching(ctx context.Context, l analytics.Ledger, statusID uint) (int64, error) {
	s, err := shapeOf(l)
	if err != nil {
		return 0, err
	}
	q := sq.Select("COUNT(DISTINCT l." + s.jobCol + ")").
		From(s.table + " l").
		Where(sq.Eq{"l.status_id": statusID})

	var n int64
	if err := r.raw(ctx, q, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *AnalyticsReader) RevenueByInsurer(ctx context.Context, f analytics.RevenueFilter, paidStatusID uint) ([]analytics.InsurerRevenue, error) {
	q := sq.Select(
		"COALESCE(ic.name, '"+analytics.UnknownInsurer+"') AS insurance_provider",
		"COALESCE(SUM(rj.approved_estimate), 0) AS approved_cost_total",
		"COUNT(rj.repairjob_uid) AS job_count",
	).From("repair_jobs rj").
		LeftJoin("insurance_companies ic ON ic.id = rj.insurance_id").
		GroupBy("ic.name").
		OrderBy("insurance_provider")

	switch f {
	case analytics.RevenuePaidMilestone:
		q = q.Where(sq.Expr(
			"EXISTS (SELECT 1 FROM status_logs sl WHERE sl.repair_job_uid = rj.repairjob_uid AND sl.status_id = ?)",
			paidStatusID,
		))
	case analytics.RevenuePaidCurrent:
		q = q.Where(sq.Eq{"rj.current_status_id": paidStatusID})
	}

	var out []analytics.InsurerRevenue
	if err := r.raw(ctx, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
