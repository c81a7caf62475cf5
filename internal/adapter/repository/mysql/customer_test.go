package mysql

import (
	"context"
	"errors"
	"testing"

	"bark-backend/internal/domain/customer"
	"bark-backend/internal/domain/insurance"
	"bark-backend/internal/domain/vehicle"
)

func TestCustomerRepository_GetByPhoneAndUnsynced(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	a := &customer.Customer{Name: "Ivy", PhoneNumber: "+639171111111"}
	b := &customer.Customer{Name: "Jo", PhoneNumber: "+639172222222"}
	for _, c := range []*customer.Customer{a, b} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.GetByPhone(ctx, "+639172222222")
	if err != nil || got.ID != b.ID {
		t.Fatalf("GetByPhone = %+v, %v", got, err)
	}
	if _, err := repo.GetByPhone(ctx, "+639170000000"); !errors.Is(err, customer.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	moduID := "M-1"
	a.SyncedToModu = true
	a.ModuCustomerID = &moduID
	if err := repo.Save(ctx, a); err != nil {
		t.Fatal(err)
	}
	unsynced, err := repo.ListUnsynced(ctx)
	if err != nil || len(unsynced) != 1 || unsynced[0].ID != b.ID {
		t.Fatalf("ListUnsynced = %+v, %v", unsynced, err)
	}
}

func TestVehicleRepository_Find(t *testing.T) {
	db := openTestDB(t)
	repo := NewVehicleRepository(db)
	ctx := context.Background()
	c := seedCustomer(t, db, "Kai", "")

	v := &vehicle.Vehicle{OwnerID: c.ID, Model: "Innova", PlateNumber: "KAI 1"}
	if err := repo.Create(ctx, v); err != nil {
		t.Fatal(err)
	}
	got, err := repo.Find(ctx, c.ID, "Innova", "KAI 1")
	if err != nil || got.ID != v.ID {
		t.Fatalf("Find = %+v, %v", got, err)
	}
	if _, err := repo.Find(ctx, c.ID, "Innova", "OTHER"); !errors.Is(err, vehicle.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	list, err := repo.ListByOwner(ctx, c.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListByOwner = %+v, %v", list, err)
	}
}

func TestInsuranceRepository_UniqueName(t *testing.T) {
	db := openTestDB(t)
	repo := NewInsuranceRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &insurance.Company{Name: "Pioneer"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, &insurance.Company{Name: "Pioneer"}); !errors.Is(err, insurance.ErrDuplicateName) {
		t.Fatalf("want ErrDuplicateName, got %v", err)
	}
	if err := repo.Create(ctx, &insurance.Company{Name: "AXA"}); err != nil {
		t.Fatal(err)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 2 || list[0].Name != "AXA" {
		t.Fatalf("List = %+v, %v", list, err)
	}
	got, err := repo.GetByName(ctx, "Pioneer")
	if err != nil || got.Name != "Pioneer" {
		t.Fatalf("GetByName = %+v, %v", got, err)
	}
	if _, err := repo.GetByName(ctx, "nope"); !errors.Is(err, insurance.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
