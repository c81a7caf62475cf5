package analytics

import (
	"context"
	"errors"
	"fmt"

	domain "bark-backend/internal/domain/analytics"

	"github.com/xuri/excelize/v2"
)

var ErrUnknownReport = errors.New("unknown report")

const (
	sheetSummary     = "Summary"
	sheetRevenue     = "Revenue"
	sheetBottlenecks = "Bottlenecks"
)

// Export renders the named report as an XLSX workbook.
func (u *Usecase) Export(ctx context.Context, report Report) ([]byte, error) {
	if !report.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReport, report)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}

	var (
		summary     [][]any
		revenue     []domain.InsurerRevenue
		bottlenecks []domain.PhaseDuration
	)
	switch report {
	case ReportDashboard:
		d, err := u.Dashboard(ctx)
		if err != nil {
			return nil, err
		}
		summary = [][]any{
			{"average_cycle_time", optional(d.AverageCycleTime)},
			{"parts_delay_rate", d.PartsDelayRate},
		}
		revenue = d.RevenueByInsurance
	default:
		get := u.Jobs
		if report == ReportShop {
			get = u.Shop
		}
		r, err := get(ctx)
		if err != nil {
			return nil, err
		}
		summary = [][]any{
			{"average_cycle_time_days", optional(r.AverageCycleTimeDays)},
			{"partial_parts_percentage", r.PartsEfficiency.PartialPartsPercentage},
			{"parts_complete_percentage", r.PartsEfficiency.PartsCompletePercentage},
			{"total_approved_cost_paid", r.TotalApprovedCostPaid.StringFixed(2)},
		}
		revenue, bottlenecks = r.RevenueByInsurance, r.PhaseBottlenecks
	}

	rows := append([][]any{{"metric", "value"}}, summary...)
	if err := writeRows(f, sheetSummary, rows); err != nil {
		return nil, err
	}

	rows = [][]any{{"insurance_provider", "approved_cost_total", "job_count"}}
	for _, r := range revenue {
		rows = append(rows, []any{r.InsuranceProvider, r.ApprovedCostTotal.StringFixed(2), r.JobCount})
	}
	if err := addSheet(f, sheetRevenue, rows); err != nil {
		return nil, err
	}

	if report != ReportDashboard {
		rows = [][]any{{"category", "average_days"}}
		for _, b := range bottlenecks {
			rows = append(rows, []any{string(b.Category), optional(b.AverageDays)})
		}
		if err := addSheet(f, sheetBottlenecks, rows); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func addSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, style); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 28)
}

// optional renders a missing average as an empty cell.
func optional(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
