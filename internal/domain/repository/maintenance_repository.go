package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"
)

// ErrMaintenanceNotFound is returned when a maintenance request does not exist.
var ErrMaintenanceNotFound = errors.New("maintenance request not found")

// MaintenanceRepository persists maintenance requests.
type MaintenanceRepository interface {
	Create(ctx context.Context, request *entity.MaintenanceRequest) error

	FindByID(ctx context.Context, id uint) (*entity.MaintenanceRequest, error)

	// ListByUser returns the user's requests, newest first.
	ListByUser(ctx context.Context, userID uint) ([]*entity.MaintenanceRequest, error)

	Count(ctx context.Context) (int64, error)
}
