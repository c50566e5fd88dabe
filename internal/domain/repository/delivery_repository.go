package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"
)

// ErrDeliveryNotFound is returned when a delivery does not exist.
var ErrDeliveryNotFound = errors.New("delivery not found")

// DeliveryRepository persists deliveries.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.Delivery) error

	FindByID(ctx context.Context, id uint) (*entity.Delivery, error)

	// ListByUser returns the user's deliveries, newest first.
	ListByUser(ctx context.Context, userID uint) ([]*entity.Delivery, error)

	// Update saves the status, received time and COD-paid flag.
	Update(ctx context.Context, delivery *entity.Delivery) error

	Count(ctx context.Context) (int64, error)
}
