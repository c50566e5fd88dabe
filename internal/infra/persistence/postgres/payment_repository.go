package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository returns a GORM-backed repository.PaymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Omit("User").Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

func (repo *paymentRepository) FindByID(ctx context.Context, id uint) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).First(&paymentM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find payment")
	}

	return toPaymentDomain(&paymentM), nil
}

func (repo *paymentRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.Payment, error) {
	var paymentMs []*model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(newestFirst).
		Find(&paymentMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentMs))
	for _, paymentM := range paymentMs {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", payment.ID).
		Updates(map[string]any{
			"status":  payment.Status.String(),
			"paid_at": payment.PaidAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

func (repo *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PaymentModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count payments")
	}

	return count, nil
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:          data.ID,
		UserID:      data.UserID,
		Description: data.Description,
		Amount:      data.Amount,
		DueDate:     time.Time(data.DueDate),
		Status:      entity.PaymentStatus(data.Status),
		PaidAt:      data.PaidAt,
		CreatedAt:   data.CreatedAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	return &model.PaymentModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Description: data.Description,
		Amount:      data.Amount,
		DueDate:     datatypes.Date(data.DueDate),
		Status:      data.Status.String(),
		PaidAt:      data.PaidAt,
	}
}
