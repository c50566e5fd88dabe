package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"
)

// newestFirst orders records by creation time with the id as tie-breaker.
const newestFirst = "created_at DESC, id DESC"

type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository returns a GORM-backed repository.MaintenanceRepository.
func NewMaintenanceRepository(db *gorm.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (repo *maintenanceRepository) Create(ctx context.Context, request *entity.MaintenanceRequest) error {
	requestM := fromMaintenanceDomain(request)

	if err := repo.db.WithContext(ctx).Omit("User").Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create maintenance request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt

	return nil
}

func (repo *maintenanceRepository) FindByID(ctx context.Context, id uint) (*entity.MaintenanceRequest, error) {
	var requestM model.MaintenanceModel
	if err := repo.db.WithContext(ctx).First(&requestM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMaintenanceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find maintenance request")
	}

	return toMaintenanceDomain(&requestM), nil
}

func (repo *maintenanceRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.MaintenanceRequest, error) {
	var requestMs []*model.MaintenanceModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(newestFirst).
		Find(&requestMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list maintenance requests")
	}

	requests := make([]*entity.MaintenanceRequest, 0, len(requestMs))
	for _, requestM := range requestMs {
		requests = append(requests, toMaintenanceDomain(requestM))
	}

	return requests, nil
}

func (repo *maintenanceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.MaintenanceModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count maintenance requests")
	}

	return count, nil
}

func toMaintenanceDomain(data *model.MaintenanceModel) *entity.MaintenanceRequest {
	request := &entity.MaintenanceRequest{
		ID:        data.ID,
		UserID:    data.UserID,
		Note:      data.Note,
		Status:    entity.MaintenanceStatus(data.Status),
		CreatedAt: data.CreatedAt,
	}
	if data.Photo != nil {
		request.PhotoKey = *data.Photo
	}

	return request
}

func fromMaintenanceDomain(data *entity.MaintenanceRequest) *model.MaintenanceModel {
	requestM := &model.MaintenanceModel{
		ID:     data.ID,
		UserID: data.UserID,
		Note:   data.Note,
		Status: data.Status.String(),
	}
	if data.PhotoKey != "" {
		photo := data.PhotoKey
		requestM.Photo = &photo
	}

	return requestM
}
