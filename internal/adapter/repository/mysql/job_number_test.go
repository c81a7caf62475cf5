package mysql

import (
	"context"
	"sync"
	"testing"

	"bark-backend/internal/domain/uow"
	"bark-backend/pkg/id"
)

func TestJobNumberRepository_NextPerYear(t *testing.T) {
	db := openTestDB(t)
	repo := NewJobNumberRepository(db)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		got, err := repo.Next(ctx, 2024)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if got != want {
			t.Fatalf("Next(2024) = %d, want %d", got, want)
		}
	}
	// numbering restarts every year
	got, err := repo.Next(ctx, 2025)
	if err != nil || got != 1 {
		t.Fatalf("Next(2025) = %d, %v", got, err)
	}
}

func TestJobNumberRepository_ContinuesFromExistingNumbers(t *testing.T) {
	db := openTestDB(t)
	repo := NewJobNumberRepository(db)
	ctx := context.Background()
	fx := seedRepairFixture(t, db, "", "SEQ 1")

	// issued before the counter table existed
	if err := NewRepairJobRepository(db).Create(ctx, makeRepairJob(fx, "BARK-2024-0001")); err != nil {
		t.Fatal(err)
	}
	got, err := repo.Next(ctx, 2024)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if id.FormatJobNumber(2024, got) != "BARK-2024-0002" {
		t.Fatalf("got %s", id.FormatJobNumber(2024, got))
	}
}

// The single sqlite connection serializes these transactions; the row lock
// itself is asserted against the mysql dialect in locking_test.go.
func TestJobNumberRepository_ParallelTransactionsIssueGaplessNumbers(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	const workers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[int]bool{}
		errs []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := u.WithinTx(ctx, func(r uow.Repos) error {
				n, err := r.JobNumbers.Next(ctx, 2024)
				if err != nil {
					return err
				}
				mu.Lock()
				defer mu.Unlock()
				if seen[n] {
					t.Errorf("duplicate job number %d", n)
				}
				seen[n] = true
				return nil
			})
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(errs) > 0 {
		t.Fatalf("errors: %v", errs)
	}
	if len(seen) != workers {
		t.Fatalf("want %d distinct numbers, got %d", workers, len(seen))
	}
	for n := 1; n <= workers; n++ {
		if !seen[n] {
			t.Fatalf("sequence has a gap at %d: %v", n, seen)
		}
	}
}
