package mysql

import (
	"context"
	"errors"
	"testing"

	"bark-backend/internal/domain/job"
	"bark-backend/internal/domain/repairjob"
	"bark-backend/internal/domain/uow"

	"github.com/DATA-DOG/go-sqlmock"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// openMockDB wires gorm's mysql dialect to sqlmock so the exact SQL,
// including locking clauses sqlite would drop, can be asserted.
func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func TestGormUoW_WithinJobTx_LocksJobRow(t *testing.T) {
	db, mock := openMockDB(t)
	u := NewGormUoW(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `jobs` WHERE id = \\?.* FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "current_status_id"}).AddRow(7, 3, 13))
	mock.ExpectCommit()

	called := false
	err := u.WithinJobTx(context.Background(), 7, func(_ uow.Repos, j *job.Job) error {
		called = true
		if j.ID != 7 || j.CurrentStatusID == nil || *j.CurrentStatusID != 13 {
			t.Fatalf("locked job = %+v", j)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinJobTx: %v", err)
	}
	if !called {
		t.Fatal("callback not invoked")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGormUoW_WithinRepairJobTx_LocksRepairJobRow(t *testing.T) {
	db, mock := openMockDB(t)
	u := NewGormUoW(db)
	const uid = "3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `repair_jobs` WHERE repairjob_uid = \\?.* FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"repairjob_uid", "job_number"}).AddRow(uid, "BARK-2025-0001"))
	mock.ExpectCommit()

	err := u.WithinRepairJobTx(context.Background(), uid, func(_ uow.Repos, rj *repairjob.RepairJob) error {
		if rj.UID != uid || rj.JobNumber != "BARK-2025-0001" {
			t.Fatalf("locked repair job = %+v", rj)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinRepairJobTx: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGormUoW_WithinRepairJobTx_MissingRowRollsBack(t *testing.T) {
	db, mock := openMockDB(t)
	u := NewGormUoW(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `repair_jobs` WHERE repairjob_uid = \\?.* FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"repairjob_uid"}))
	mock.ExpectRollback()

	err := u.WithinRepairJobTx(context.Background(), "3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88",
		func(uow.Repos, *repairjob.RepairJob) error {
			t.Fatal("callback must not run without a row")
			return nil
		})
	if !errors.Is(err, repairjob.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestJobNumberRepository_Next_LocksCounterBeforeBump(t *testing.T) {
	db, mock := openMockDB(t)

	mock.ExpectBegin()
	// counter row already exists for the year
	mock.ExpectExec("INSERT INTO `job_number_sequences`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT \\* FROM `job_number_sequences` WHERE year = \\?.* FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"year", "last_value"}).AddRow(2025, 4))
	mock.ExpectExec("UPDATE `job_number_sequences` SET `last_value`=\\? WHERE year = \\?").
		WithArgs(5, 2025).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var got int
	err := NewGormUoW(db).WithinTx(context.Background(), func(r uow.Repos) error {
		n, err := r.JobNumbers.Next(context.Background(), 2025)
		got = n
		return err
	})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got != 5 {
		t.Fatalf("Next = %d, want 5", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
