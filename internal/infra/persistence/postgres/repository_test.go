package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(":memory:", slog.New(slog.NewTextHandler(io.Discard, nil)), false)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "hash", Role: role}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "a@x.com", entity.RoleTenant)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
	assert.Equal(t, entity.RoleTenant, byID.Role)
	assert.Nil(t, byID.BuildingID)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "a@x.com", entity.RoleTenant)

	err := NewUserRepository(db).Create(context.Background(), &entity.User{Email: "a@x.com", PasswordHash: "h", Role: entity.RoleTenant})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserRepository_SetBuildingAndList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	buildings := NewBuildingRepository(db)

	tenant := createTestUser(t, db, "b@x.com", entity.RoleTenant)
	createTestUser(t, db, "a@x.com", entity.RoleTenant)
	createTestUser(t, db, "admin@x.com", entity.RoleAdmin)

	maple := &entity.Building{Name: "Maple Court", Address: "1 Maple St"}
	require.NoError(t, buildings.Create(ctx, maple))

	require.NoError(t, users.SetBuilding(ctx, tenant.ID, &maple.ID))

	found, err := users.FindByID(ctx, tenant.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Building)
	assert.Equal(t, "Maple Court", found.Building.Name)

	tenants, err := users.ListByRole(ctx, entity.RoleTenant)
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, "a@x.com", tenants[0].Email)
	assert.Equal(t, "b@x.com", tenants[1].Email)
	require.NotNil(t, tenants[1].Building)

	count, err := users.CountByRole(ctx, entity.RoleTenant)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, users.SetBuilding(ctx, tenant.ID, nil))
	found, err = users.FindByID(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Nil(t, found.BuildingID)
	assert.Nil(t, found.Building)

	missing := uint(404)
	assert.ErrorIs(t, users.SetBuilding(ctx, tenant.ID, &missing), repository.ErrBuildingNotFound)
	assert.ErrorIs(t, users.SetBuilding(ctx, 999, nil), repository.ErrUserNotFound)
}

func TestBuildingRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewBuildingRepository(db)

	require.NoError(t, repo.Create(ctx, &entity.Building{Name: "Oak House"}))
	require.NoError(t, repo.Create(ctx, &entity.Building{Name: "Maple Court", Address: "1 Maple St"}))

	err := repo.Create(ctx, &entity.Building{Name: "Maple Court"})
	assert.ErrorIs(t, err, domainerrors.ErrBuildingAlreadyExists)

	found, err := repo.FindByName(ctx, "Maple Court")
	require.NoError(t, err)
	assert.Equal(t, "1 Maple St", found.Address)

	_, err = repo.FindByName(ctx, "Elm")
	assert.ErrorIs(t, err, repository.ErrBuildingNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Maple Court", list[0].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMaintenanceRepository_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewMaintenanceRepository(db)
	owner := createTestUser(t, db, "a@x.com", entity.RoleTenant)
	other := createTestUser(t, db, "b@x.com", entity.RoleTenant)

	first := &entity.MaintenanceRequest{UserID: owner.ID, Note: "leaky faucet", Status: entity.MaintenancePending}
	second := &entity.MaintenanceRequest{UserID: owner.ID, Note: "broken window", PhotoKey: "20240101000000_window.jpg", Status: entity.MaintenancePending}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, &entity.MaintenanceRequest{UserID: other.ID, Note: "noise", Status: entity.MaintenancePending}))

	list, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, "20240101000000_window.jpg", list[0].PhotoKey)
	assert.False(t, list[1].HasPhoto())

	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MaintenancePending, found.Status)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrMaintenanceNotFound)

	err = repo.Create(ctx, &entity.MaintenanceRequest{UserID: 999, Note: "orphan", Status: entity.MaintenancePending})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestPaymentRepository_MarkPaid(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPaymentRepository(db)
	owner := createTestUser(t, db, "a@x.com", entity.RoleTenant)

	payment := &entity.Payment{
		UserID:      owner.ID,
		Description: "March rent",
		Amount:      decimal.RequireFromString("1250.50"),
		DueDate:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:      entity.PaymentUnpaid,
	}
	require.NoError(t, repo.Create(ctx, payment))

	paidAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	payment.MarkPaid(paidAt)
	require.NoError(t, repo.Update(ctx, payment))

	found, err := repo.FindByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, found.Status)
	require.NotNil(t, found.PaidAt)
	assert.True(t, paidAt.Equal(*found.PaidAt))
	assert.True(t, decimal.RequireFromString("1250.50").Equal(found.Amount))
	assert.Equal(t, "2024-03-31", found.DueDate.Format("2006-01-02"))

	missing := &entity.Payment{ID: 999, Status: entity.PaymentPaid}
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrPaymentNotFound)
}

func TestDeliveryRepository_CODRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDeliveryRepository(db)
	owner := createTestUser(t, db, "a@x.com", entity.RoleTenant)

	amount := decimal.RequireFromString("19.99")
	cod := &entity.Delivery{UserID: owner.ID, Courier: "DHL", TrackingCode: "TRK1", IsCOD: true, CODAmount: &amount, Status: entity.DeliveryLogged}
	prepaid := &entity.Delivery{UserID: owner.ID, Courier: "UPS", TrackingCode: "TRK2", Status: entity.DeliveryLogged}
	require.NoError(t, repo.Create(ctx, cod))
	require.NoError(t, repo.Create(ctx, prepaid))

	found, err := repo.FindByID(ctx, cod.ID)
	require.NoError(t, err)
	require.NotNil(t, found.CODAmount)
	assert.True(t, amount.Equal(*found.CODAmount))

	found, err = repo.FindByID(ctx, prepaid.ID)
	require.NoError(t, err)
	assert.Nil(t, found.CODAmount)
	assert.False(t, found.IsCOD)

	cod.CODPaid = true
	require.NoError(t, repo.Update(ctx, cod))
	found, err = repo.FindByID(ctx, cod.ID)
	require.NoError(t, err)
	assert.True(t, found.CODPaid)
	assert.Equal(t, entity.DeliveryLogged, found.Status)
	assert.Nil(t, found.ReceivedAt)

	list, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, prepaid.ID, list[0].ID)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewBuildingRepository().Create(ctx, &entity.Building{Name: "Rolled Back"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewBuildingRepository(db).FindByName(ctx, "Rolled Back")
	assert.ErrorIs(t, err, repository.ErrBuildingNotFound)

	err = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewBuildingRepository().Create(ctx, &entity.Building{Name: "Committed"})
	})
	require.NoError(t, err)

	_, err = NewBuildingRepository(db).FindByName(ctx, "Committed")
	assert.NoError(t, err)
}
