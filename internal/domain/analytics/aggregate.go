package analytics

import (
	"sort"
	"time"

	"bark-backend/internal/domain/status"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// UnknownInsurer buckets revenue from jobs without an insurer.
const UnknownInsurer = "Unknown"

func groupByJob(entries []Entry) map[string][]Entry {
	out := make(map[string][]Entry)
	for _, e := range entries {
		out[e.JobKey] = append(out[e.JobKey], e)
	}
	for k := range out {
		rows := out[k]
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].At.Before(rows[j].At) })
	}
	return out
}

// AverageCycleTimeDays is the mean, in days, between the earliest startID entry and the
// earliest endID entry of each job having both. Nil when no job qualifies.
func AverageCycleTimeDays(entries []Entry, startID, endID uint) *float64 {
	var total time.Duration
	n := 0
	for _, rows := range groupByJob(entries) {
		var start, end *time.Time
		for i := range rows {
			at := rows[i].At
			switch rows[i].StatusID {
			case startID:
				if start == nil {
					start = &at
				}
			case endID:
				if end == nil {
					end = &at
				}
			}
		}
		if start == nil || end == nil {
			continue
		}
		total += end.Sub(*start)
		n++
	}
	if n == 0 {
		return nil
	}
	avg := total.Hours() / 24 / float64(n)
	return &avg
}

// PhaseBottlenecks averages, per category, the time between an entry and the job's next
// entry. A job's last entry has no successor and adds no sample.
func PhaseBottlenecks(entries []Entry) []PhaseDuration {
	sums := map[status.Category]time.Duration{}
	counts := map[status.Category]int{}
	for _, rows := range groupByJob(entries) {
		for i := 0; i+1 < len(rows); i++ {
			c := rows[i].Category
			sums[c] += rows[i+1].At.Sub(rows[i].At)
			counts[c]++
		}
	}

	out := make([]PhaseDuration, 0, len(counts))
	for c, n := range counts {
		avg := sums[c].Hours() / 24 / float64(n)
		out = append(out, PhaseDuration{Category: c, AverageDays: &avg, Samples: n})
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := out[i].Category.Order(), out[j].Category.Order()
		if oi == 0 {
			oi = len(status.Categories) + 1
		}
		if oj == 0 {
			oj = len(status.Categories) + 1
		}
		if oi != oj {
			return oi < oj
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// PartsRate splits the jobs that reached partial vs complete parts into percentages.
func PartsRate(partial, complete int64) PartsEfficiency {
	total := partial + complete
	if total == 0 {
		return PartsEfficiency{}
	}
	return PartsEfficiency{
		PartialPartsPercentage:  float64(partial) / float64(total) * 100,
		PartsCompletePercentage: float64(complete) / float64(total) * 100,
	}
}

func SumRevenue(rows []InsurerRevenue) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.ApprovedCostTotal)
	}
	return total
}
