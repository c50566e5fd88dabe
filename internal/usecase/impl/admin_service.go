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
	"portal/internal/usecase"
)

type adminService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	buildingRepo    repository.BuildingRepository
	maintenanceRepo repository.MaintenanceRepository
	paymentRepo     repository.PaymentRepository
	deliveryRepo    repository.DeliveryRepository
	logger          *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	UserRepo        repository.UserRepository
	BuildingRepo    repository.BuildingRepository
	MaintenanceRepo repository.MaintenanceRepository
	PaymentRepo     repository.PaymentRepository
	DeliveryRepo    repository.DeliveryRepository
	Logger          *slog.Logger
}

// NewAdminService creates the service behind the admin views.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		buildingRepo:    params.BuildingRepo,
		maintenanceRepo: params.MaintenanceRepo,
		paymentRepo:     params.PaymentRepo,
		deliveryRepo:    params.DeliveryRepo,
		logger:          params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *adminService) Counts(ctx context.Context) (*entity.Counts, error) {
	var (
		counts = &entity.Counts{}
		err    error
	)

	if counts.Tenants, err = srv.userRepo.CountByRole(ctx, entity.RoleTenant); err != nil {
		return nil, errors.Wrap(err, "failed to count tenants")
	}
	if counts.Buildings, err = srv.buildingRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count buildings")
	}
	if counts.Maintenance, err = srv.maintenanceRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count maintenance requests")
	}
	if counts.Payments, err = srv.paymentRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count payments")
	}
	if counts.Deliveries, err = srv.deliveryRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count deliveries")
	}

	return counts, nil
}

func (srv *adminService) ListTenants(ctx context.Context) ([]*entity.User, error) {
	tenants, err := srv.userRepo.ListByRole(ctx, entity.RoleTenant)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	return tenants, nil
}

func (srv *adminService) ListBuildings(ctx context.Context) ([]*entity.Building, error) {
	buildings, err := srv.buildingRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buildings")
	}

	return buildings, nil
}

// AssignBuilding ignores unknown users and non-tenants. An unknown building is a bad request.
func (srv *adminService) AssignBuilding(ctx context.Context, userID uint, buildingID *uint) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				srv.log(ctx).Info("Assign building skipped, user not found", slog.Uint64("userID", uint64(userID)))

				return nil
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !user.IsTenant() {
			srv.log(ctx).Info("Assign building skipped, user is not a tenant", slog.Uint64("userID", uint64(userID)), slog.String("role", user.Role.String()))

			return nil
		}

		if buildingID != nil {
			if _, err := repoFactory.NewBuildingRepository().FindByID(ctx, *buildingID); err != nil {
				if errors.Is(err, repository.ErrBuildingNotFound) {
					return domainerrors.ErrBadRequest.WithDetails("unknown building")
				}

				return errors.Wrap(err, "failed to find building")
			}
		}

		if err := userRepo.SetBuilding(ctx, userID, buildingID); err != nil {
			if errors.Is(err, repository.ErrBuildingNotFound) {
				return domainerrors.ErrBadRequest.WithDetails("unknown building")
			}

			return errors.Wrap(err, "failed to set building")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to assign building", slog.Uint64("userID", uint64(userID)), slog.Any("error", err))

		return err
	}

	return nil
}

// AddBuilding trims the name before the emptiness and uniqueness checks.
func (srv *adminService) AddBuilding(ctx context.Context, input usecase.AddBuildingInput) (*entity.Building, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrBuildingNameRequired
	}

	building := &entity.Building{
		Name:    name,
		Address: strings.TrimSpace(input.Address),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewBuildingRepository()

		_, err := repo.FindByName(ctx, name)
		if err == nil {
			return domainerrors.ErrBuildingAlreadyExists
		}
		if !errors.Is(err, repository.ErrBuildingNotFound) {
			return errors.Wrap(err, "failed to look up building")
		}

		return repo.Create(ctx, building)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrBuildingAlreadyExists) {
			srv.log(ctx).Info("Building already exists", slog.String("name", name))
		}

		return nil, err
	}

	srv.log(ctx).Info("Building added", slog.Uint64("id", uint64(building.ID)), slog.String("name", name))

	return building, nil
}
