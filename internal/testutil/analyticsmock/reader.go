package analyticsmock

import (
	"context"
	"errors"

	domain "bark-backend/internal/domain/analytics"
)

var _ domain.Reader = (*Reader)(nil)

var errUnimplemented = errors.New("analyticsmock: method not implemented")

// Reader is a function-backed mock of analytics.Reader. The functions may be
// called from several goroutines at once.
type Reader struct {
	LedgerEntriesFn     func(ctx context.Context, l domain.Ledger) ([]domain.Entry, error)
	CountJobsReachingFn func(ctx context.Context, l domain.Ledger, statusID uint) (int64, error)
	RevenueByInsurerFn  func(ctx context.Context, f domain.RevenueFilter, paidStatusID uint) ([]domain.InsurerRevenue, error)
}

func (m *Reader) LedgerEntries(ctx context.Context, l domain.Ledger) ([]domain.Entry, error) {
	if m.LedgerEntriesFn != nil {
		return m.LedgerEntriesFn(ctx, l)
	}
	return nil, errUnimplemented
}
func (m *Reader) CountJobsReaching(ctx context.Context, l domain.Ledger, statusID uint) (int64, error) {
	if m.CountJobsReachingFn != nil {
		return m.CountJobsReachingFn(ctx, l, statusID)
	}
	return 0, errUnimplemented
}
func (m *Reader) RevenueByInsurer(ctx context.Context, f domain.RevenueFilter, paidStatusID uint) ([]domain.InsurerRevenue, error) {
	if m.RevenueByInsurerFn != nil {
		return m.RevenueByInsurerFn(ctx, f, paidStatusID)
	}
	return nil, errUnimplemented
}
