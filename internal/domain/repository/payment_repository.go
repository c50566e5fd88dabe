package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"
)

// ErrPaymentNotFound is returned when a payment does not exist.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository persists payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error

	FindByID(ctx context.Context, id uint) (*entity.Payment, error)

	// ListByUser returns the user's payments, newest first.
	ListByUser(ctx context.Context, userID uint) ([]*entity.Payment, error)

	// Update saves the status and paid time.
	Update(ctx context.Context, payment *entity.Payment) error

	Count(ctx context.Context) (int64, error)
}
