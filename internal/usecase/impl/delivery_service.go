package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/usecase"
)

type deliveryService struct {
	txManager repository.TransactionManager
	repo      repository.DeliveryRepository
	notifier  usecase.ReceiptNotifier
	logger    *slog.Logger
	now       func() time.Time
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repo      repository.DeliveryRepository
	Notifier  usecase.ReceiptNotifier
	Logger    *slog.Logger
}

// NewDeliveryService creates the delivery record store.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		txManager: params.TxManager,
		repo:      params.Repo,
		notifier:  params.Notifier,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Create logs a delivery. The COD amount is kept only for COD deliveries.
func (srv *deliveryService) Create(ctx context.Context, owner *entity.User, input usecase.CreateDeliveryInput) (*entity.Delivery, error) {
	courier := strings.TrimSpace(input.Courier)
	tracking := strings.TrimSpace(input.Tracking)
	if courier == "" || tracking == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("courier and tracking code are required")
	}

	delivery := &entity.Delivery{
		UserID:       owner.ID,
		Courier:      courier,
		TrackingCode: tracking,
		IsCOD:        input.IsCOD,
		Status:       entity.DeliveryLogged,
	}

	if input.IsCOD {
		if input.CODAmount == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("COD amount is required for COD deliveries")
		}
		if input.CODAmount.IsNegative() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("COD amount must not be negative")
		}
		amount := input.CODAmount.Round(2)
		delivery.CODAmount = &amount
	}

	if err := srv.repo.Create(ctx, delivery); err != nil {
		return nil, errors.Wrap(err, "failed to create delivery")
	}

	srv.log(ctx).Info("Delivery logged", slog.Uint64("id", uint64(delivery.ID)), slog.Bool("cod", delivery.IsCOD))

	srv.notifier.Notify(ctx, deliveryLoggedEvent(owner, delivery))

	return delivery, nil
}

func (srv *deliveryService) ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Delivery, error) {
	deliveries, err := srv.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	return deliveries, nil
}

func (srv *deliveryService) Get(ctx context.Context, ownerID, id uint) (*entity.Delivery, error) {
	return findOwnedDelivery(ctx, srv.repo, ownerID, id)
}

// MarkReceived sets the status to Received and stamps the time. Repeating it re-stamps.
func (srv *deliveryService) MarkReceived(ctx context.Context, ownerID, id uint) (*entity.Delivery, error) {
	return srv.update(ctx, ownerID, id, func(delivery *entity.Delivery) error {
		delivery.MarkReceived(srv.now().UTC())

		return nil
	})
}

// MarkCODPaid sets the COD-paid flag. It is idempotent and independent of the delivery status.
func (srv *deliveryService) MarkCODPaid(ctx context.Context, ownerID, id uint) (*entity.Delivery, error) {
	return srv.update(ctx, ownerID, id, func(delivery *entity.Delivery) error {
		if !delivery.IsCOD {
			return domainerrors.ErrNotCOD
		}
		delivery.CODPaid = true

		return nil
	})
}

func (srv *deliveryService) update(ctx context.Context, ownerID, id uint, apply func(*entity.Delivery) error) (*entity.Delivery, error) {
	var delivery *entity.Delivery

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewDeliveryRepository()

		found, err := findOwnedDelivery(ctx, repo, ownerID, id)
		if err != nil {
			return err
		}

		if err := apply(found); err != nil {
			return err
		}

		if err := repo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update delivery")
		}
		delivery = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Delivery updated", slog.Uint64("id", uint64(id)), slog.String("status", delivery.Status.String()), slog.Bool("codPaid", delivery.CODPaid))

	return delivery, nil
}

func findOwnedDelivery(ctx context.Context, repo repository.DeliveryRepository, ownerID, id uint) (*entity.Delivery, error) {
	delivery, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("delivery")
		}

		return nil, errors.Wrap(err, "failed to find delivery")
	}

	if err := ensureOwner(ownerID, delivery.UserID, "delivery"); err != nil {
		return nil, err
	}

	return delivery, nil
}
