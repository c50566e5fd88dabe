package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	mockRepo "portal/internal/mocks/repository"
	mockSvc "portal/internal/mocks/service"
	mockUsecase "portal/internal/mocks/usecase"
	"portal/internal/usecase"
)

func createTestMaintenanceService(t *testing.T) (
	usecase.MaintenanceUsecase,
	*mockRepo.MockMaintenanceRepository,
	*mockSvc.MockPhotoStorage,
	*mockUsecase.MockReceiptNotifier,
) {
	repo := mockRepo.NewMockMaintenanceRepository(t)
	storage := mockSvc.NewMockPhotoStorage(t)
	notifier := mockUsecase.NewMockReceiptNotifier(t)

	srv := NewMaintenanceService(MaintenanceServiceParams{
		Repo:     repo,
		Storage:  storage,
		Notifier: notifier,
		Logger:   newDiscardLogger(),
	})

	return srv, repo, storage, notifier
}

func TestMaintenanceService_Create_NotifiesAfterInsert(t *testing.T) {
	srv, repo, _, notifier := createTestMaintenanceService(t)
	ctx := context.Background()
	owner := &entity.User{ID: 1, Email: "a@x.com", Role: entity.RoleTenant}

	var inserted bool
	repo.EXPECT().Create(ctx, mock.MatchedBy(func(m *entity.MaintenanceRequest) bool {
		return m.UserID == 1 && m.Note == "leaky faucet" && m.Status == entity.MaintenancePending && m.PhotoKey == ""
	})).RunAndReturn(func(_ context.Context, m *entity.MaintenanceRequest) error {
		m.ID = 1
		inserted = true

		return nil
	})
	notifier.EXPECT().Notify(ctx, mock.AnythingOfType("entity.ReceiptEvent")).Run(func(_ context.Context, event entity.ReceiptEvent) {
		assert.True(t, inserted, "notify must follow the insert")
		assert.Equal(t, "a@x.com", event.To)
		assert.Equal(t, "Maintenance Receipt", event.Title)
		assert.Equal(t, "maintenance_1.pdf", event.AttachmentName)
		assert.Equal(t, entity.ReceiptField{Label: "Note", Value: "leaky faucet"}, event.Fields[3])
	})

	got, err := srv.Create(ctx, owner, usecase.CreateMaintenanceInput{Note: "  leaky faucet "})

	require.NoError(t, err)
	assert.Equal(t, uint(1), got.ID)
	assert.Equal(t, entity.MaintenancePending, got.Status)
}

func TestMaintenanceService_Create_WithPhoto(t *testing.T) {
	srv, repo, storage, notifier := createTestMaintenanceService(t)
	ctx := context.Background()
	owner := &entity.User{ID: 1, Email: "a@x.com"}
	content := strings.NewReader("png bytes")

	storage.EXPECT().Save(ctx, "sink.png", content).Return("1700000000_sink.png", nil)
	repo.EXPECT().Create(ctx, mock.MatchedBy(func(m *entity.MaintenanceRequest) bool {
		return m.PhotoKey == "1700000000_sink.png"
	})).Return(nil)
	notifier.EXPECT().Notify(ctx, mock.Anything).Return()

	got, err := srv.Create(ctx, owner, usecase.CreateMaintenanceInput{
		Note:  "sink",
		Photo: &usecase.Upload{Filename: "sink.png", Content: content},
	})

	require.NoError(t, err)
	assert.True(t, got.HasPhoto())
}

func TestMaintenanceService_Create_UploadFailureSkipsInsert(t *testing.T) {
	srv, _, storage, _ := createTestMaintenanceService(t)
	ctx := context.Background()
	content := strings.NewReader("not an image")

	storage.EXPECT().Save(ctx, "doc.txt", content).Return("", domainerrors.ErrInvalidUpload)

	_, err := srv.Create(ctx, &entity.User{ID: 1}, usecase.CreateMaintenanceInput{
		Note:  "sink",
		Photo: &usecase.Upload{Filename: "doc.txt", Content: content},
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidUpload)
}

func TestMaintenanceService_Create_InsertFailureDoesNotNotify(t *testing.T) {
	srv, repo, _, _ := createTestMaintenanceService(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db down"))

	_, err := srv.Create(ctx, &entity.User{ID: 1}, usecase.CreateMaintenanceInput{Note: "x"})

	assert.ErrorContains(t, err, "db down")
}

func TestMaintenanceService_Create_EmptyNote(t *testing.T) {
	srv, _, _, _ := createTestMaintenanceService(t)

	_, err := srv.Create(context.Background(), &entity.User{ID: 1}, usecase.CreateMaintenanceInput{Note: "  "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMaintenanceService_Get_OwnershipHidden(t *testing.T) {
	srv, repo, _, _ := createTestMaintenanceService(t)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, uint(5)).Return(&entity.MaintenanceRequest{ID: 5, UserID: 1}, nil)
	repo.EXPECT().FindByID(ctx, uint(6)).Return(nil, repository.ErrMaintenanceNotFound)

	got, err := srv.Get(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)

	_, err = srv.Get(ctx, 2, 5)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = srv.Get(ctx, 1, 6)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMaintenanceService_Photo(t *testing.T) {
	ctx := context.Background()

	t.Run("opens stored photo", func(t *testing.T) {
		srv, repo, storage, _ := createTestMaintenanceService(t)
		stored := &service.StoredPhoto{Body: io.NopCloser(strings.NewReader("img")), ContentType: "image/png", Size: 3}

		repo.EXPECT().FindByID(ctx, uint(5)).Return(&entity.MaintenanceRequest{ID: 5, UserID: 1, PhotoKey: "k.png"}, nil)
		storage.EXPECT().Open(ctx, "k.png").Return(stored, nil)

		got, err := srv.Photo(ctx, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, "image/png", got.ContentType)
	})

	t.Run("request without photo", func(t *testing.T) {
		srv, repo, _, _ := createTestMaintenanceService(t)

		repo.EXPECT().FindByID(ctx, uint(5)).Return(&entity.MaintenanceRequest{ID: 5, UserID: 1}, nil)

		_, err := srv.Photo(ctx, 1, 5)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("other tenant", func(t *testing.T) {
		srv, repo, _, _ := createTestMaintenanceService(t)

		repo.EXPECT().FindByID(ctx, uint(5)).Return(&entity.MaintenanceRequest{ID: 5, UserID: 1, PhotoKey: "k.png"}, nil)

		_, err := srv.Photo(ctx, 2, 5)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
