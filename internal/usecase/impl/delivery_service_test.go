package impl

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	mockRepo "portal/internal/mocks/repository"
	mockUsecase "portal/internal/mocks/usecase"
	"portal/internal/usecase"
)

func createTestDeliveryService(t *testing.T) (
	*deliveryService,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockDeliveryRepository,
	*mockUsecase.MockReceiptNotifier,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repo := mockRepo.NewMockDeliveryRepository(t)
	notifier := mockUsecase.NewMockReceiptNotifier(t)

	srv := NewDeliveryService(DeliveryServiceParams{
		TxManager: txManager,
		Repo:      repo,
		Notifier:  notifier,
		Logger:    newDiscardLogger(),
	}).(*deliveryService)
	srv.now = func() time.Time { return fixedNow }

	return srv, txManager, repo, notifier
}

func TestDeliveryService_Create_COD(t *testing.T) {
	srv, _, repo, notifier := createTestDeliveryService(t)
	ctx := context.Background()
	amount := decimal.RequireFromString("25.5")

	repo.EXPECT().Create(ctx, mock.MatchedBy(func(d *entity.Delivery) bool {
		return d.IsCOD && d.CODAmount != nil && d.CODAmount.Equal(amount) && d.Status == entity.DeliveryLogged && !d.CODPaid
	})).Return(nil)
	notifier.EXPECT().Notify(ctx, mock.MatchedBy(func(event entity.ReceiptEvent) bool {
		return event.Title == "Delivery Logged"
	})).Return()

	got, err := srv.Create(ctx, &entity.User{ID: 1, Email: "a@x.com"}, usecase.CreateDeliveryInput{
		Courier:   "DHL",
		Tracking:  "TRK1",
		IsCOD:     true,
		CODAmount: &amount,
	})

	require.NoError(t, err)
	assert.Equal(t, "25.50", got.CODAmount.StringFixed(2))
}

func TestDeliveryService_Create_PrepaidDropsAmount(t *testing.T) {
	srv, _, repo, notifier := createTestDeliveryService(t)
	ctx := context.Background()
	amount := decimal.NewFromInt(10)

	repo.EXPECT().Create(ctx, mock.MatchedBy(func(d *entity.Delivery) bool {
		return !d.IsCOD && d.CODAmount == nil
	})).Return(nil)
	notifier.EXPECT().Notify(ctx, mock.Anything).Return()

	got, err := srv.Create(ctx, &entity.User{ID: 1}, usecase.CreateDeliveryInput{
		Courier:   "UPS",
		Tracking:  "TRK2",
		CODAmount: &amount,
	})

	require.NoError(t, err)
	assert.Nil(t, got.CODAmount)
}

func TestDeliveryService_Create_Validation(t *testing.T) {
	srv, _, _, _ := createTestDeliveryService(t)
	ctx := context.Background()
	negative := decimal.NewFromInt(-5)

	_, err := srv.Create(ctx, &entity.User{ID: 1}, usecase.CreateDeliveryInput{Courier: "DHL"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Create(ctx, &entity.User{ID: 1}, usecase.CreateDeliveryInput{Courier: "DHL", Tracking: "T", IsCOD: true})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Create(ctx, &entity.User{ID: 1}, usecase.CreateDeliveryInput{Courier: "DHL", Tracking: "T", IsCOD: true, CODAmount: &negative})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeliveryService_MarkReceived(t *testing.T) {
	srv, txManager, _, _ := createTestDeliveryService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockDeliveryRepository(t)

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewDeliveryRepository().Return(txRepo)
	})
	txRepo.EXPECT().FindByID(ctx, uint(3)).Return(&entity.Delivery{ID: 3, UserID: 1, Status: entity.DeliveryLogged, IsCOD: true}, nil)
	txRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	got, err := srv.MarkReceived(ctx, 1, 3)

	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryReceived, got.Status)
	assert.True(t, got.ReceivedAt.Equal(fixedNow))
	assert.False(t, got.CODPaid, "COD flag advances independently")
}

func TestDeliveryService_MarkCODPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("COD delivery is idempotent", func(t *testing.T) {
		srv, txManager, _, _ := createTestDeliveryService(t)
		txRepo := mockRepo.NewMockDeliveryRepository(t)

		for _, paid := range []bool{false, true} {
			expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
				factory.EXPECT().NewDeliveryRepository().Return(txRepo)
			})
			txRepo.EXPECT().FindByID(ctx, uint(3)).Return(&entity.Delivery{ID: 3, UserID: 1, IsCOD: true, CODPaid: paid}, nil).Once()
		}
		txRepo.EXPECT().Update(ctx, mock.MatchedBy(func(d *entity.Delivery) bool { return d.CODPaid })).Return(nil).Times(2)

		for range 2 {
			got, err := srv.MarkCODPaid(ctx, 1, 3)
			require.NoError(t, err)
			assert.True(t, got.CODPaid)
			assert.Equal(t, entity.DeliveryStatus(""), got.Status)
		}
	})

	t.Run("prepaid delivery", func(t *testing.T) {
		srv, txManager, _, _ := createTestDeliveryService(t)
		txRepo := mockRepo.NewMockDeliveryRepository(t)

		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewDeliveryRepository().Return(txRepo)
		})
		txRepo.EXPECT().FindByID(ctx, uint(3)).Return(&entity.Delivery{ID: 3, UserID: 1}, nil)

		_, err := srv.MarkCODPaid(ctx, 1, 3)
		assert.ErrorIs(t, err, domainerrors.ErrNotCOD)
	})

	t.Run("other tenant", func(t *testing.T) {
		srv, txManager, _, _ := createTestDeliveryService(t)
		txRepo := mockRepo.NewMockDeliveryRepository(t)

		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewDeliveryRepository().Return(txRepo)
		})
		txRepo.EXPECT().FindByID(ctx, uint(3)).Return(&entity.Delivery{ID: 3, UserID: 1, IsCOD: true}, nil)

		_, err := srv.MarkCODPaid(ctx, 2, 3)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
