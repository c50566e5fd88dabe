package usecase

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"portal/internal/domain/entity"
	"portal/internal/domain/service"
)

// Upload is a file submitted with a form.
type Upload struct {
	Filename string
	Content  io.Reader
}

// CreateMaintenanceInput defines a new maintenance request.
type CreateMaintenanceInput struct {
	Note  string
	Photo *Upload
}

// MaintenanceUsecase manages the caller's maintenance requests.
type MaintenanceUsecase interface {
	Create(ctx context.Context, owner *entity.User, input CreateMaintenanceInput) (*entity.MaintenanceRequest, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*entity.MaintenanceRequest, error)

	// Get fails with ErrNotFound when the request is missing or belongs to someone else.
	Get(ctx context.Context, ownerID, id uint) (*entity.MaintenanceRequest, error)

	// Photo opens the photo attached to one of the caller's requests.
	Photo(ctx context.Context, ownerID, id uint) (*service.StoredPhoto, error)
}

// CreatePaymentInput defines a new payment.
type CreatePaymentInput struct {
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
}

// PaymentUsecase manages the caller's payments.
type PaymentUsecase interface {
	Create(ctx context.Context, owner *entity.User, input CreatePaymentInput) (*entity.Payment, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Payment, error)
	Get(ctx context.Context, ownerID, id uint) (*entity.Payment, error)

	// MarkPaid sets the status to Paid and stamps the paid time. Repeating it re-stamps.
	MarkPaid(ctx context.Context, owner *entity.User, id uint) (*entity.Payment, error)
}

// CreateDeliveryInput defines a new delivery. CODAmount is required when IsCOD is set and ignored otherwise.
type CreateDeliveryInput struct {
	Courier   string
	Tracking  string
	IsCOD     bool
	CODAmount *decimal.Decimal
}

// DeliveryUsecase manages the caller's deliveries.
type DeliveryUsecase interface {
	Create(ctx context.Context, owner *entity.User, input CreateDeliveryInput) (*entity.Delivery, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Delivery, error)
	Get(ctx context.Context, ownerID, id uint) (*entity.Delivery, error)
	MarkReceived(ctx context.Context, ownerID, id uint) (*entity.Delivery, error)

	// MarkCODPaid fails with ErrNotCOD on a prepaid delivery.
	MarkCODPaid(ctx context.Context, ownerID, id uint) (*entity.Delivery, error)
}
