package mysql

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bark-backend/internal/domain/analytics"
	"bark-backend/internal/domain/job"
	"bark-backend/internal/domain/repairjob"
	"bark-backend/internal/domain/status"

	"github.com/shopspring/decimal"
)

func TestAnalyticsReader_LedgerEntries(t *testing.T) {
	db := openTestDB(t)
	seedCatalogue(t, db)
	reader := NewAnalyticsReader(db)
	ctx := context.Background()
	c := seedCustomer(t, db, "Ola", "")

	j := &job.Job{CustomerID: c.ID, VehicleDetails: "Raize"}
	if err := db.Create(j).Error; err != nil {
		t.Fatal(err)
	}
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, sid := range []uint{1, 13} {
		if err := db.Create(&job.History{JobID: j.ID, StatusID: sid, Timestamp: base.AddDate(0, 0, i)}).Error; err != nil {
			t.Fatal(err)
		}
	}

	entries, err := reader.LedgerEntries(ctx, analytics.LedgerTrackerJobs)
	if err != nil {
		t.Fatalf("LedgerEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %+v", entries)
	}
	if entries[0].JobKey != "1" || entries[0].Category != status.CategoryApproval || !entries[0].At.Equal(base) {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].StatusID != 13 || entries[1].Category != status.CategoryParts {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}

	empty, err := reader.LedgerEntries(ctx, analytics.LedgerRepairJobs)
	if err != nil || len(empty) != 0 {
		t.Fatalf("repair ledger should be empty: %+v, %v", empty, err)
	}
	if _, err := reader.LedgerEntries(ctx, analytics.Ledger("nope")); err == nil {
		t.Fatal("expected unknown ledger error")
	}
}

func TestAnalyticsReader_CountJobsReaching(t *testing.T) {
	db := openTestDB(t)
	seedCatalogue(t, db)
	reader := NewAnalyticsReader(db)
	ctx := context.Background()
	fx := seedRepairFixture(t, db, "", "C 1")

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		rj := makeRepairJob(fx, fmt.Sprintf("BARK-2024-%04d", i+1))
		if err := NewRepairJobRepository(db).Create(ctx, rj); err != nil {
			t.Fatal(err)
		}
		// each job reaches 13, one of them twice
		logs := []repairjob.StatusLog{{RepairJobUID: rj.UID, StatusID: 13, ChangedAt: now}}
		if i == 0 {
			logs = append(logs, repairjob.StatusLog{RepairJobUID: rj.UID, StatusID: 13, ChangedAt: now.Add(time.Hour)})
		} else if i == 1 {
			logs = append(logs, repairjob.StatusLog{RepairJobUID: rj.UID, StatusID: 14, ChangedAt: now.Add(time.Hour)})
		}
		if err := db.Create(&logs).Error; err != nil {
			t.Fatal(err)
		}
	}

	partial, err := reader.CountJobsReaching(ctx, analytics.LedgerRepairJobs, 13)
	if err != nil || partial != 3 {
		t.Fatalf("partial = %d, %v", partial, err)
	}
	complete, err := reader.CountJobsReaching(ctx, analytics.LedgerRepairJobs, 14)
	if err != nil || complete != 1 {
		t.Fatalf("complete = %d, %v", complete, err)
	}
	none, err := reader.CountJobsReaching(ctx, analytics.LedgerTrackerJobs, 13)
	if err != nil || none != 0 {
		t.Fatalf("tracker count = %d, %v", none, err)
	}
}

func TestAnalyticsReader_RevenueByInsurer(t *testing.T) {
	db := openTestDB(t)
	seedCatalogue(t, db)
	reader := NewAnalyticsReader(db)
	ctx := context.Background()

	acme := seedRepairFixture(t, db, "Acme", "R 1")
	bare := seedRepairFixture(t, db, "", "R 2")

	mk := func(fx repairFixture, number, approved string, current uint, paidLog bool) {
		rj := makeRepairJob(fx, number)
		if approved != "" {
			rj.ApprovedEstimate = decimal.NewNullDecimal(dec(approved))
		}
		rj.CurrentStatusID = uintPtr(current)
		if err := NewRepairJobRepository(db).Create(ctx, rj); err != nil {
			t.Fatal(err)
		}
		if paidLog {
			if err := db.Create(&repairjob.StatusLog{RepairJobUID: rj.UID, StatusID: status.IDPaid, ChangedAt: time.Now()}).Error; err != nil {
				t.Fatal(err)
			}
		}
	}
	mk(acme, "BARK-2024-0001", "100.50", status.IDPaid, true)
	mk(acme, "BARK-2024-0002", "200.00", status.IDBillingPending, true)
	mk(acme, "BARK-2024-0003", "", status.IDEstimateDone, false)
	mk(bare, "BARK-2024-0004", "50.25", status.IDPaid, false)

	all, err := reader.RevenueByInsurer(ctx, analytics.RevenueAll, status.IDPaid)
	if err != nil {
		t.Fatalf("RevenueByInsurer(all): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("want 2 buckets, got %+v", all)
	}
	if all[0].InsuranceProvider != "Acme" || !all[0].ApprovedCostTotal.Equal(dec("300.50")) || all[0].JobCount != 3 {
		t.Fatalf("acme bucket = %+v", all[0])
	}
	if all[1].InsuranceProvider != analytics.UnknownInsurer || !all[1].ApprovedCostTotal.Equal(dec("50.25")) || all[1].JobCount != 1 {
		t.Fatalf("unknown bucket = %+v", all[1])
	}

	milestone, err := reader.RevenueByInsurer(ctx, analytics.RevenuePaidMilestone, status.IDPaid)
	if err != nil || len(milestone) != 1 || !milestone[0].ApprovedCostTotal.Equal(dec("300.50")) {
		t.Fatalf("paid milestone = %+v, %v", milestone, err)
	}

	current, err := reader.RevenueByInsurer(ctx, analytics.RevenuePaidCurrent, status.IDPaid)
	if err != nil || len(current) != 2 {
		t.Fatalf("paid current = %+v, %v", current, err)
	}
	if total := analytics.SumRevenue(current); !total.Equal(dec("150.75")) {
		t.Fatalf("paid current total = %s", total)
	}
}
