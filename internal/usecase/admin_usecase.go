package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// AddBuildingInput defines a new building.
type AddBuildingInput struct {
	Name    string
	Address string
}

// AdminUsecase backs the admin views.
type AdminUsecase interface {
	Counts(ctx context.Context) (*entity.Counts, error)

	// ListTenants returns tenants with their building, ordered by email.
	ListTenants(ctx context.Context) ([]*entity.User, error)
	ListBuildings(ctx context.Context) ([]*entity.Building, error)

	// AssignBuilding sets, or with a nil buildingID clears, a tenant's building.
	// It is a no-op when the user does not exist or is not a tenant.
	AssignBuilding(ctx context.Context, userID uint, buildingID *uint) error

	// AddBuilding fails with ErrBuildingNameRequired for a blank name and ErrBuildingAlreadyExists for a taken one.
	AddBuilding(ctx context.Context, input AddBuildingInput) (*entity.Building, error)
}
