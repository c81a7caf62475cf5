package customer

import (
	"context"
	"errors"
	"testing"

	domain "bark-backend/internal/domain/customer"
	"bark-backend/internal/domain/insurance"
	"bark-backend/internal/domain/vehicle"
	"bark-backend/internal/testutil/customermock"
	"bark-backend/internal/testutil/insurancemock"
	"bark-backend/internal/testutil/vehiclemock"
)

func TestUpsert(t *testing.T) {
	existing := func() *domain.Customer {
		return &domain.Customer{ID: 3, Name: "Ana Cruz", PhoneNumber: "+639171234567", Email: "ana@x.ph"}
	}

	tests := []struct {
		name        string
		in          UpsertInput
		found       bool
		wantCreated bool
		wantSaved   bool
		wantPhone   string
		wantErr     error
	}{
		{name: "new customer normalises phone", in: UpsertInput{Name: "Ben", Phone: "0917 765 4321"}, wantCreated: true, wantPhone: "+639177654321"},
		{name: "match unchanged", in: UpsertInput{Name: "Ana Cruz", Phone: "09171234567"}, found: true},
		{name: "match renames", in: UpsertInput{Name: "Ana C.", Phone: "+63 917 123 4567"}, found: true, wantSaved: true},
		{name: "blank email keeps stored email", in: UpsertInput{Name: "Ana Cruz", Phone: "09171234567", Email: " "}, found: true},
		{name: "no phone always creates", in: UpsertInput{Name: "Walk-in"}, wantCreated: true},
		{name: "blank name", in: UpsertInput{Name: "  ", Phone: "09171234567"}, wantErr: ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var created, saved *domain.Customer
			repo := &customermock.Repo{
				GetByPhoneFn: func(_ context.Context, p string) (*domain.Customer, error) {
					if tc.found && p == "+639171234567" {
						return existing(), nil
					}
					return nil, domain.ErrNotFound
				},
				CreateFn: func(_ context.Context, c *domain.Customer) error { c.ID = 10; created = c; return nil },
				SaveFn:   func(_ context.Context, c *domain.Customer) error { saved = c; return nil },
			}

			got, isNew, err := Upsert(context.Background(), repo, "PH", tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Upsert: %v", err)
			}
			if isNew != tc.wantCreated || (created != nil) != tc.wantCreated {
				t.Fatalf("created=%v, want %v", isNew, tc.wantCreated)
			}
			if (saved != nil) != tc.wantSaved {
				t.Fatalf("saved=%v, want %v", saved != nil, tc.wantSaved)
			}
			if tc.wantPhone != "" && got.PhoneNumber != tc.wantPhone {
				t.Fatalf("phone = %q, want %q", got.PhoneNumber, tc.wantPhone)
			}
			if tc.found && got.Email != "ana@x.ph" {
				t.Fatalf("email overwritten: %q", got.Email)
			}
		})
	}
}

func TestUsecase_MarkSynced(t *testing.T) {
	var saved *domain.Customer
	repo := &customermock.Repo{
		GetByIDFn: func(_ context.Context, id uint) (*domain.Customer, error) {
			return &domain.Customer{ID: id, Name: "Ana"}, nil
		},
		SaveFn: func(_ context.Context, c *domain.Customer) error { saved = c; return nil },
	}
	uc := NewUsecase(repo, nil, nil, "PH", nil)

	got, err := uc.MarkSynced(context.Background(), 4, SyncInput{ModuCustomerID: " M-77 "})
	if err != nil {
		t.Fatalf("MarkSynced: %v", err)
	}
	if saved == nil || !got.SyncedToModu || got.ModuCustomerID == nil || *got.ModuCustomerID != "M-77" {
		t.Fatalf("unexpected: %+v", got)
	}
	if _, err := uc.MarkSynced(context.Background(), 4, SyncInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestGetOrCreateVehicle(t *testing.T) {
	ctx := context.Background()
	customers := &customermock.Repo{GetByIDFn: func(_ context.Context, id uint) (*domain.Customer, error) {
		if id != 1 {
			return nil, domain.ErrNotFound
		}
		return &domain.Customer{ID: 1}, nil
	}}

	t.Run("creates with upper-cased plate", func(t *testing.T) {
		var made *vehicle.Vehicle
		vehicles := &vehiclemock.Repo{CreateFn: func(_ context.Context, v *vehicle.Vehicle) error { made = v; return nil }}
		v, created, err := GetOrCreateVehicle(ctx, customers, vehicles, 1, VehicleInput{Model: "Vios", PlateNumber: " abc 123"})
		if err != nil || !created || made == nil || v.PlateNumber != "ABC 123" {
			t.Fatalf("v=%+v created=%v err=%v", v, created, err)
		}
	})

	t.Run("reuses existing", func(t *testing.T) {
		vehicles := &vehiclemock.Repo{
			FindFn: func(context.Context, uint, string, string) (*vehicle.Vehicle, error) {
				return &vehicle.Vehicle{ID: 8, OwnerID: 1}, nil
			},
			CreateFn: func(context.Context, *vehicle.Vehicle) error { t.Fatal("should not create"); return nil },
		}
		v, created, err := GetOrCreateVehicle(ctx, customers, vehicles, 1, VehicleInput{Model: "Vios"})
		if err != nil || created || v.ID != 8 {
			t.Fatalf("v=%+v created=%v err=%v", v, created, err)
		}
	})

	t.Run("owner must exist", func(t *testing.T) {
		_, _, err := GetOrCreateVehicle(ctx, customers, &vehiclemock.Repo{}, 2, VehicleInput{Model: "Vios"})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("want customer.ErrNotFound, got %v", err)
		}
	})
}

func TestGetOrCreateInsurer(t *testing.T) {
	ctx := context.Background()

	if c, err := GetOrCreateInsurer(ctx, &insurancemock.Repo{}, "   "); c != nil || err != nil {
		t.Fatalf("blank name: c=%v err=%v", c, err)
	}

	calls := 0
	raced := &insurancemock.Repo{
		GetByNameFn: func(_ context.Context, name string) (*insurance.Company, error) {
			calls++
			if calls == 1 {
				return nil, insurance.ErrNotFound
			}
			return &insurance.Company{ID: 5, Name: name}, nil
		},
		CreateFn: func(context.Context, *insurance.Company) error { return insurance.ErrDuplicateName },
	}
	c, err := GetOrCreateInsurer(ctx, raced, "Acme")
	if err != nil || c.ID != 5 {
		t.Fatalf("lost race should re-read: c=%+v err=%v", c, err)
	}
}

func TestUsecase_CreateInsurerDuplicate(t *testing.T) {
	repo := &insurancemock.Repo{CreateFn: func(context.Context, *insurance.Company) error { return insurance.ErrDuplicateName }}
	_, err := NewUsecase(nil, nil, repo, "PH", nil).CreateInsurer(context.Background(), InsurerInput{Name: "Acme"})
	if !errors.Is(err, insurance.ErrDuplicateName) {
		t.Fatalf("want ErrDuplicateName, got %v", err)
	}
}
