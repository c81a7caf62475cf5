package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "bark-backend/internal/domain/customer"
	"bark-backend/internal/domain/insurance"
	"bark-backend/internal/domain/vehicle"
	"bark-backend/pkg/phone"

	"go.uber.org/zap"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	customers domain.Repository
	vehicles  vehicle.Repository
	insurers  insurance.Repository
	region    string
	log       *zap.Logger
}

func NewUsecase(c domain.Repository, v vehicle.Repository, i insurance.Repository, region string, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{customers: c, vehicles: v, insurers: i, region: region, log: log}
}

// Upsert matches on the normalised phone number. A match gets a changed name or
// email written back; no match (or no phone) creates an unsynced customer.
func Upsert(ctx context.Context, repo domain.Repository, region string, in UpsertInput) (*domain.Customer, bool, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, false, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(in.Email)
	number := phone.NormalizeE164(in.Phone, region)

	if number != "" {
		existing, err := repo.GetByPhone(ctx, number)
		switch {
		case err == nil:
			changed := false
			if existing.Name != name {
				existing.Name = name
				changed = true
			}
			if email != "" && existing.Email != email {
				existing.Email = email
				changed = true
			}
			if changed {
				if err := repo.Save(ctx, existing); err != nil {
					return nil, false, fmt.Errorf("update customer %d: %w", existing.ID, err)
				}
			}
			return existing, false, nil
		case !errors.Is(err, domain.ErrNotFound):
			return nil, false, err
		}
	}

	c := &domain.Customer{Name: name, PhoneNumber: number, Email: email}
	if err := repo.Create(ctx, c); err != nil {
		return nil, false, fmt.Errorf("create customer: %w", err)
	}
	return c, true, nil
}

func (u *Usecase) Upsert(ctx context.Context, in UpsertInput) (*domain.Customer, bool, error) {
	c, created, err := Upsert(ctx, u.customers, u.region, in)
	if err != nil {
		return nil, false, err
	}
	u.log.Info("customer upserted", zap.Uint("customer_id", c.ID), zap.Bool("created", created))
	return c, created, nil
}

func (u *Usecase) ListUnsynced(ctx context.Context) ([]domain.Customer, error) {
	return u.customers.ListUnsynced(ctx)
}

// MarkSynced records the external CRM id once the customer has been pushed there.
func (u *Usecase) MarkSynced(ctx context.Context, id uint, in SyncInput) (*domain.Customer, error) {
	moduID := strings.TrimSpace(in.ModuCustomerID)
	if moduID == "" {
		return nil, fmt.Errorf("%w: modu_customer_id is required", ErrInvalidInput)
	}
	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.ModuCustomerID = &moduID
	c.SyncedToModu = true
	if err := u.customers.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("mark customer %d synced: %w", id, err)
	}
	return c, nil
}

// GetOrCreateVehicle finds the owner's vehicle by model and plate or registers it.
func GetOrCreateVehicle(ctx context.Context, customers domain.Repository, vehicles vehicle.Repository, ownerID uint, in VehicleInput) (*vehicle.Vehicle, bool, error) {
	model := strings.TrimSpace(in.Model)
	if model == "" {
		return nil, false, fmt.Errorf("%w: vehicle model is required", ErrInvalidInput)
	}
	plate := strings.ToUpper(strings.TrimSpace(in.PlateNumber))

	if _, err := customers.GetByID(ctx, ownerID); err != nil {
		return nil, false, err
	}
	v, err := vehicles.Find(ctx, ownerID, model, plate)
	if err == nil {
		return v, false, nil
	}
	if !errors.Is(err, vehicle.ErrNotFound) {
		return nil, false, err
	}
	v = &vehicle.Vehicle{OwnerID: ownerID, Model: model, PlateNumber: plate}
	if err := vehicles.Create(ctx, v); err != nil {
		return nil, false, fmt.Errorf("create vehicle: %w", err)
	}
	return v, true, nil
}

func (u *Usecase) AddVehicle(ctx context.Context, ownerID uint, in VehicleInput) (*vehicle.Vehicle, bool, error) {
	return GetOrCreateVehicle(ctx, u.customers, u.vehicles, ownerID, in)
}

// GetOrCreateInsurer resolves an insurer by name. A blank name means no insurer.
func GetOrCreateInsurer(ctx context.Context, repo insurance.Repository, name string) (*insurance.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	c, err := repo.GetByName(ctx, name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, insurance.ErrNotFound) {
		return nil, err
	}
	c = &insurance.Company{Name: name}
	err = repo.Create(ctx, c)
	if errors.Is(err, insurance.ErrDuplicateName) {
		// created concurrently
		return repo.GetByName(ctx, name)
	}
	if err != nil {
		return nil, fmt.Errorf("create insurer: %w", err)
	}
	return c, nil
}

func (u *Usecase) ListInsurers(ctx context.Context) ([]insurance.Company, error) {
	return u.insurers.List(ctx)
}

func (u *Usecase) CreateInsurer(ctx context.Context, in InsurerInput) (*insurance.Company, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: insurer name is required", ErrInvalidInput)
	}
	c := &insurance.Company{Name: name}
	if err := u.insurers.Create(ctx, c); err != nil {
		return nil, err
	}
	u.log.Info("insurer created", zap.Uint("insurer_id", c.ID), zap.String("name", name))
	return c, nil
}
