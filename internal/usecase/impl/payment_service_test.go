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
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockUsecase "portal/internal/mocks/usecase"
	"portal/internal/usecase"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func createTestPaymentService(t *testing.T) (
	*paymentService,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockPaymentRepository,
	*mockUsecase.MockReceiptNotifier,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repo := mockRepo.NewMockPaymentRepository(t)
	notifier := mockUsecase.NewMockReceiptNotifier(t)

	srv := NewPaymentService(PaymentServiceParams{
		TxManager: txManager,
		Repo:      repo,
		Notifier:  notifier,
		Logger:    newDiscardLogger(),
	}).(*paymentService)
	srv.now = func() time.Time { return fixedNow }

	return srv, txManager, repo, notifier
}

func TestPaymentService_Create(t *testing.T) {
	srv, _, repo, notifier := createTestPaymentService(t)
	ctx := context.Background()
	owner := &entity.User{ID: 1, Email: "a@x.com"}
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.Status == entity.PaymentUnpaid && p.Amount.Equal(decimal.RequireFromString("1200.50")) && p.PaidAt == nil
	})).RunAndReturn(func(_ context.Context, p *entity.Payment) error {
		p.ID = 4

		return nil
	})
	notifier.EXPECT().Notify(ctx, mock.MatchedBy(func(event entity.ReceiptEvent) bool {
		return event.Title == "Invoice Created" && event.AttachmentName == "payment_4.pdf"
	})).Return()

	got, err := srv.Create(ctx, owner, usecase.CreatePaymentInput{
		Description: "April rent",
		Amount:      decimal.RequireFromString("1200.50"),
		DueDate:     due,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(4), got.ID)
}

func TestPaymentService_Create_Validation(t *testing.T) {
	srv, _, _, _ := createTestPaymentService(t)
	ctx := context.Background()
	owner := &entity.User{ID: 1}
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input usecase.CreatePaymentInput
	}{
		{"empty description", usecase.CreatePaymentInput{Amount: decimal.NewFromInt(1), DueDate: due}},
		{"negative amount", usecase.CreatePaymentInput{Description: "rent", Amount: decimal.NewFromInt(-1), DueDate: due}},
		{"missing due date", usecase.CreatePaymentInput{Description: "rent", Amount: decimal.NewFromInt(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.Create(ctx, owner, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPaymentService_MarkPaid(t *testing.T) {
	srv, txManager, _, notifier := createTestPaymentService(t)
	ctx := context.Background()
	owner := &entity.User{ID: 1, Email: "a@x.com"}
	txRepo := mockRepo.NewMockPaymentRepository(t)

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewPaymentRepository().Return(txRepo)
	})
	txRepo.EXPECT().FindByID(ctx, uint(4)).Return(&entity.Payment{ID: 4, UserID: 1, Status: entity.PaymentUnpaid}, nil)
	txRepo.EXPECT().Update(ctx, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.Status == entity.PaymentPaid && p.PaidAt != nil && p.PaidAt.Equal(fixedNow)
	})).Return(nil)
	notifier.EXPECT().Notify(ctx, mock.MatchedBy(func(event entity.ReceiptEvent) bool {
		return event.Title == "Payment Receipt"
	})).Return()

	got, err := srv.MarkPaid(ctx, owner, 4)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, got.Status)
}

func TestPaymentService_MarkPaid_RepeatReStamps(t *testing.T) {
	srv, txManager, _, notifier := createTestPaymentService(t)
	ctx := context.Background()
	owner := &entity.User{ID: 1, Email: "a@x.com"}
	txRepo := mockRepo.NewMockPaymentRepository(t)
	earlier := fixedNow.Add(-24 * time.Hour)

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewPaymentRepository().Return(txRepo)
	})
	txRepo.EXPECT().FindByID(ctx, uint(4)).Return(&entity.Payment{ID: 4, UserID: 1, Status: entity.PaymentPaid, PaidAt: &earlier}, nil)
	txRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().Notify(ctx, mock.Anything).Return()

	got, err := srv.MarkPaid(ctx, owner, 4)

	require.NoError(t, err)
	assert.True(t, got.PaidAt.Equal(fixedNow))
}

func TestPaymentService_MarkPaid_OtherTenant(t *testing.T) {
	srv, txManager, _, _ := createTestPaymentService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockPaymentRepository(t)

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewPaymentRepository().Return(txRepo)
	})
	txRepo.EXPECT().FindByID(ctx, uint(4)).Return(&entity.Payment{ID: 4, UserID: 1}, nil)

	_, err := srv.MarkPaid(ctx, &entity.User{ID: 2}, 4)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPaymentService_Get_Missing(t *testing.T) {
	srv, _, repo, _ := createTestPaymentService(t)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, uint(9)).Return(nil, repository.ErrPaymentNotFound)

	_, err := srv.Get(ctx, 1, 9)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
