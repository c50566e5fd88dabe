package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"
)

// ErrBuildingNotFound is returned when a building does not exist.
var ErrBuildingNotFound = errors.New("building not found")

// BuildingRepository persists buildings.
type BuildingRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Building, error)

	// FindByName matches the exact (already trimmed) name.
	FindByName(ctx context.Context, name string) (*entity.Building, error)

	// Create returns ErrBuildingAlreadyExists when the name is taken.
	Create(ctx context.Context, building *entity.Building) error

	// List returns all buildings ordered by name.
	List(ctx context.Context) ([]*entity.Building, error)

	Count(ctx context.Context) (int64, error)
}
