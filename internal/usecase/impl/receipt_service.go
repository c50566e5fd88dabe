package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"portal/config"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"
)

type receiptService struct {
	userRepo        repository.UserRepository
	maintenanceRepo repository.MaintenanceRepository
	paymentRepo     repository.PaymentRepository
	deliveryRepo    repository.DeliveryRepository
	renderer        service.ReceiptRenderer
	baseURL         string
	logger          *slog.Logger
}

// ReceiptServiceParams holds dependencies for ReceiptService, injected by Fx.
type ReceiptServiceParams struct {
	fx.In

	Config          *config.Config
	UserRepo        repository.UserRepository
	MaintenanceRepo repository.MaintenanceRepository
	PaymentRepo     repository.PaymentRepository
	DeliveryRepo    repository.DeliveryRepository
	Renderer        service.ReceiptRenderer
	Logger          *slog.Logger
}

// NewReceiptService creates the receipt download service.
func NewReceiptService(params ReceiptServiceParams) usecase.ReceiptUsecase {
	return &receiptService{
		userRepo:        params.UserRepo,
		maintenanceRepo: params.MaintenanceRepo,
		paymentRepo:     params.PaymentRepo,
		deliveryRepo:    params.DeliveryRepo,
		renderer:        params.Renderer,
		baseURL:         params.Config.HTTP.BaseURL,
		logger:          params.Logger,
	}
}

func (srv *receiptService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *receiptService) MaintenanceReceipt(ctx context.Context, ownerID, id uint) (*usecase.ReceiptFile, error) {
	request, err := srv.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMaintenanceNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("maintenance request")
		}

		return nil, errors.Wrap(err, "failed to find maintenance request")
	}
	if err := ensureOwner(ownerID, request.UserID, "maintenance request"); err != nil {
		return nil, err
	}

	tenant, err := srv.tenantEmail(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return srv.render(ctx, titleMaintenanceReceipt, maintenanceReceiptFields(tenant, request), "maintenance", id, maintenanceAttachmentName(id))
}

func (srv *receiptService) PaymentReceipt(ctx context.Context, ownerID, id uint) (*usecase.ReceiptFile, error) {
	payment, err := findOwnedPayment(ctx, srv.paymentRepo, ownerID, id)
	if err != nil {
		return nil, err
	}

	tenant, err := srv.tenantEmail(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return srv.render(ctx, titlePaymentReceipt, paymentReceiptFields(tenant, payment), "payment", id, paymentAttachmentName(id))
}

func (srv *receiptService) DeliveryReceipt(ctx context.Context, ownerID, id uint) (*usecase.ReceiptFile, error) {
	delivery, err := findOwnedDelivery(ctx, srv.deliveryRepo, ownerID, id)
	if err != nil {
		return nil, err
	}

	tenant, err := srv.tenantEmail(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return srv.render(ctx, titleDeliveryReceipt, deliveryReceiptFields(tenant, delivery), "delivery", id, deliveryAttachmentName(id))
}

func (srv *receiptService) tenantEmail(ctx context.Context, ownerID uint) (string, error) {
	owner, err := srv.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUnauthenticated
		}

		return "", errors.Wrap(err, "failed to find receipt owner")
	}

	return owner.Email, nil
}

func (srv *receiptService) render(ctx context.Context, title string, fields []entity.ReceiptField, kind string, id uint, filename string) (*usecase.ReceiptFile, error) {
	link := fmt.Sprintf("%s/receipt/%s/%d.pdf", srv.baseURL, kind, id)

	data, err := srv.renderer.RenderWithLink(title, fields, link)
	if err != nil {
		srv.log(ctx).Error("Failed to render receipt", slog.String("title", title), slog.Uint64("id", uint64(id)), slog.Any("error", err))

		return nil, domainerrors.ErrReceiptRenderFailed.WithDetails(err.Error())
	}

	return &usecase.ReceiptFile{Filename: filename, Data: data}, nil
}
