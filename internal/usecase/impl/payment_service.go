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

type paymentService struct {
	txManager repository.TransactionManager
	repo      repository.PaymentRepository
	notifier  usecase.ReceiptNotifier
	logger    *slog.Logger
	now       func() time.Time
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repo      repository.PaymentRepository
	Notifier  usecase.ReceiptNotifier
	Logger    *slog.Logger
}

// NewPaymentService creates the payment record store.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager: params.TxManager,
		repo:      params.Repo,
		notifier:  params.Notifier,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Create inserts an Unpaid payment and mails the invoice.
func (srv *paymentService) Create(ctx context.Context, owner *entity.User, input usecase.CreatePaymentInput) (*entity.Payment, error) {
	description := strings.TrimSpace(input.Description)
	switch {
	case description == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("description is required")
	case input.Amount.IsNegative():
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must not be negative")
	case input.DueDate.IsZero():
		return nil, domainerrors.ErrValidationFailed.WithDetails("due date is required")
	}

	payment := &entity.Payment{
		UserID:      owner.ID,
		Description: description,
		Amount:      input.Amount.Round(2),
		DueDate:     input.DueDate,
		Status:      entity.PaymentUnpaid,
	}

	if err := srv.repo.Create(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to create payment")
	}

	srv.log(ctx).Info("Payment created", slog.Uint64("id", uint64(payment.ID)), slog.Uint64("userID", uint64(owner.ID)))

	srv.notifier.Notify(ctx, paymentCreatedEvent(owner, payment))

	return payment, nil
}

func (srv *paymentService) ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Payment, error) {
	payments, err := srv.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

func (srv *paymentService) Get(ctx context.Context, ownerID, id uint) (*entity.Payment, error) {
	payment, err := findOwnedPayment(ctx, srv.repo, ownerID, id)
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// MarkPaid moves the payment to Paid inside a transaction, then mails the receipt.
// An already paid payment is re-stamped.
func (srv *paymentService) MarkPaid(ctx context.Context, owner *entity.User, id uint) (*entity.Payment, error) {
	var payment *entity.Payment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPaymentRepository()

		found, err := findOwnedPayment(ctx, repo, owner.ID, id)
		if err != nil {
			return err
		}

		if found.Status == entity.PaymentPaid {
			srv.log(ctx).Info("Payment already paid, re-stamping", slog.Uint64("id", uint64(id)))
		}
		found.MarkPaid(srv.now().UTC())

		if err := repo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update payment")
		}
		payment = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifier.Notify(ctx, paymentPaidEvent(owner, payment))

	return payment, nil
}

func findOwnedPayment(ctx context.Context, repo repository.PaymentRepository, ownerID, id uint) (*entity.Payment, error) {
	payment, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("payment")
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	if err := ensureOwner(ownerID, payment.UserID, "payment"); err != nil {
		return nil, err
	}

	return payment, nil
}
