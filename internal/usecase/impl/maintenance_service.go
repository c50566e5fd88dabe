package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"
)

type maintenanceService struct {
	repo     repository.MaintenanceRepository
	storage  service.PhotoStorage
	notifier usecase.ReceiptNotifier
	logger   *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	Repo     repository.MaintenanceRepository
	Storage  service.PhotoStorage
	Notifier usecase.ReceiptNotifier
	Logger   *slog.Logger
}

// NewMaintenanceService creates the maintenance record store.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		repo:     params.Repo,
		storage:  params.Storage,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

func (srv *maintenanceService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Create stores the optional photo, inserts the request as Pending and then mails a receipt.
func (srv *maintenanceService) Create(ctx context.Context, owner *entity.User, input usecase.CreateMaintenanceInput) (*entity.MaintenanceRequest, error) {
	note := strings.TrimSpace(input.Note)
	if note == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("note is required")
	}

	request := &entity.MaintenanceRequest{
		UserID: owner.ID,
		Note:   note,
		Status: entity.MaintenancePending,
	}

	if input.Photo != nil && input.Photo.Filename != "" {
		key, err := srv.storage.Save(ctx, input.Photo.Filename, input.Photo.Content)
		if err != nil {
			srv.log(ctx).Warn("Failed to store maintenance photo", slog.String("filename", input.Photo.Filename), slog.Any("error", err))

			return nil, err
		}
		request.PhotoKey = key
	}

	if err := srv.repo.Create(ctx, request); err != nil {
		if request.HasPhoto() {
			srv.log(ctx).Warn("Maintenance insert failed, stored photo left orphaned", slog.String("photo", request.PhotoKey))
		}

		return nil, errors.Wrap(err, "failed to create maintenance request")
	}

	srv.log(ctx).Info("Maintenance request created", slog.Uint64("id", uint64(request.ID)), slog.Uint64("userID", uint64(owner.ID)))

	srv.notifier.Notify(ctx, maintenanceCreatedEvent(owner, request))

	return request, nil
}

// ListByOwner returns the owner's requests, newest first.
func (srv *maintenanceService) ListByOwner(ctx context.Context, ownerID uint) ([]*entity.MaintenanceRequest, error) {
	requests, err := srv.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list maintenance requests")
	}

	return requests, nil
}

// Get returns one of the owner's requests.
func (srv *maintenanceService) Get(ctx context.Context, ownerID, id uint) (*entity.MaintenanceRequest, error) {
	request, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMaintenanceNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("maintenance request")
		}

		return nil, errors.Wrap(err, "failed to find maintenance request")
	}

	if err := ensureOwner(ownerID, request.UserID, "maintenance request"); err != nil {
		return nil, err
	}

	return request, nil
}

// Photo opens the photo of one of the owner's requests.
func (srv *maintenanceService) Photo(ctx context.Context, ownerID, id uint) (*service.StoredPhoto, error) {
	request, err := srv.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if !request.HasPhoto() {
		return nil, domainerrors.ErrNotFound.WithDetails("photo")
	}

	photo, err := srv.storage.Open(ctx, request.PhotoKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open maintenance photo")
	}

	return photo, nil
}
