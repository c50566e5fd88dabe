package postgres

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"
)

type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository returns a GORM-backed repository.DeliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (repo *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Omit("User").Create(deliveryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	delivery.ID = deliveryM.ID
	delivery.CreatedAt = deliveryM.CreatedAt

	return nil
}

func (repo *deliveryRepository) FindByID(ctx context.Context, id uint) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel
	if err := repo.db.WithContext(ctx).First(&deliveryM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find delivery")
	}

	return toDeliveryDomain(&deliveryM), nil
}

func (repo *deliveryRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.Delivery, error) {
	var deliveryMs []*model.DeliveryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(newestFirst).
		Find(&deliveryMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list deliveries")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryMs))
	for _, deliveryM := range deliveryMs {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries, nil
}

func (repo *deliveryRepository) Update(ctx context.Context, delivery *entity.Delivery) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", delivery.ID).
		Updates(map[string]any{
			"status":      delivery.Status.String(),
			"received_at": delivery.ReceivedAt,
			"cod_paid":    delivery.CODPaid,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

func (repo *deliveryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.DeliveryModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count deliveries")
	}

	return count, nil
}

func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	delivery := &entity.Delivery{
		ID:           data.ID,
		UserID:       data.UserID,
		Courier:      data.Courier,
		TrackingCode: data.Tracking,
		IsCOD:        data.IsCOD,
		CODPaid:      data.CODPaid,
		Status:       entity.DeliveryStatus(data.Status),
		ReceivedAt:   data.ReceivedAt,
		CreatedAt:    data.CreatedAt,
	}
	if data.CODAmount.Valid {
		amount := data.CODAmount.Decimal
		delivery.CODAmount = &amount
	}

	return delivery
}

func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	deliveryM := &model.DeliveryModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Courier:    data.Courier,
		Tracking:   data.TrackingCode,
		IsCOD:      data.IsCOD,
		CODPaid:    data.CODPaid,
		Status:     data.Status.String(),
		ReceivedAt: data.ReceivedAt,
	}
	if data.CODAmount != nil {
		deliveryM.CODAmount = decimal.NewNullDecimal(*data.CODAmount)
	}

	return deliveryM
}
