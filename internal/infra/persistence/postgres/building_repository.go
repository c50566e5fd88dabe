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

type buildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository returns a GORM-backed repository.BuildingRepository.
func NewBuildingRepository(db *gorm.DB) repository.BuildingRepository {
	return &buildingRepository{db: db}
}

func (repo *buildingRepository) FindByID(ctx context.Context, id uint) (*entity.Building, error) {
	var buildingM model.BuildingModel
	if err := repo.db.WithContext(ctx).First(&buildingM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuildingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find building by id")
	}

	return toBuildingDomain(&buildingM), nil
}

func (repo *buildingRepository) FindByName(ctx context.Context, name string) (*entity.Building, error) {
	var buildingM model.BuildingModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&buildingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuildingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find building by name")
	}

	return toBuildingDomain(&buildingM), nil
}

func (repo *buildingRepository) Create(ctx context.Context, building *entity.Building) error {
	buildingM := &model.BuildingModel{
		Name:    building.Name,
		Address: building.Address,
	}

	if err := repo.db.WithContext(ctx).Create(buildingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBuildingAlreadyExists.WrapMessage("building name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create building")
	}

	building.ID = buildingM.ID
	building.CreatedAt = buildingM.CreatedAt

	return nil
}

func (repo *buildingRepository) List(ctx context.Context) ([]*entity.Building, error) {
	var buildingMs []*model.BuildingModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&buildingMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list buildings")
	}

	buildings := make([]*entity.Building, 0, len(buildingMs))
	for _, buildingM := range buildingMs {
		buildings = append(buildings, toBuildingDomain(buildingM))
	}

	return buildings, nil
}

func (repo *buildingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.BuildingModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count buildings")
	}

	return count, nil
}

func toBuildingDomain(data *model.BuildingModel) *entity.Building {
	if data == nil {
		return nil
	}

	return &entity.Building{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
	}
}
