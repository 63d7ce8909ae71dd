package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"tm30/infras/otel"
	"tm30/infras/postgres"
	"tm30/internal/domains/admin/model"
	"tm30/shared"
	"tm30/shared/constant"
	"tm30/shared/dto"
	gRepo "tm30/shared/repository"
)

type AdminRepository interface {
	Insert(ctx context.Context, admin model.HotelAdmin) error
	GetByHotelCode(ctx context.Context, hotelCode string) (model.HotelAdmin, error)
	GetAll(ctx context.Context) ([]model.HotelAdmin, error)
	ExistsByHotelCode(ctx context.Context, hotelCode string) (bool, error)
	UpdatePassword(ctx context.Context, hotelCode, passwordHash string, updatedAt time.Time) error
	DeleteByHotelCode(ctx context.Context, hotelCode string) error
	BumpLastLogin(ctx context.Context, id string, at time.Time) error
}

type adminRepositoryImpl struct {
	gRepo.Repository[model.HotelAdmin]
	otel otel.Otel
}

func NewAdminRepository(db *postgres.Connection, ot otel.Otel) AdminRepository {
	return &adminRepositoryImpl{
		Repository: gRepo.NewRepository[model.HotelAdmin](model.EntityName, model.TableName, model.FieldID, db, ot),
		otel:       ot,
	}
}

func (repo *adminRepositoryImpl) GetByHotelCode(ctx context.Context, hotelCode string) (model.HotelAdmin, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByHotelCode", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.Get(ctx, shared.FilterByField(hotelCode, model.FieldHotelCode, model.TableName)) //nolint:wrapcheck
}

func (repo *adminRepositoryImpl) GetAll(ctx context.Context) ([]model.HotelAdmin, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	params := dto.QueryParams{SortBy: model.FieldHotelCode, SortDir: "ASC"}

	return repo.Repository.GetAll(ctx, params, dto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *adminRepositoryImpl) ExistsByHotelCode(ctx context.Context, hotelCode string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ExistsByHotelCode", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.Exist(ctx, shared.FilterByField(hotelCode, model.FieldHotelCode, model.TableName)) //nolint:wrapcheck
}

func (repo *adminRepositoryImpl) UpdatePassword(ctx context.Context, hotelCode, passwordHash string, updatedAt time.Time) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.UpdatePassword", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	mod := map[string]any{
		model.FieldPasswordHash: passwordHash,
		constant.FieldUpdatedAt: updatedAt,
	}

	return repo.Update(ctx, mod, shared.FilterByField(hotelCode, model.FieldHotelCode, model.TableName)) //nolint:wrapcheck
}

func (repo *adminRepositoryImpl) DeleteByHotelCode(ctx context.Context, hotelCode string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.DeleteByHotelCode", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.Delete(ctx, shared.FilterByField(hotelCode, model.FieldHotelCode, model.TableName)) //nolint:wrapcheck
}

func (repo *adminRepositoryImpl) BumpLastLogin(ctx context.Context, id string, at time.Time) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.BumpLastLogin", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.Update(ctx, map[string]any{model.FieldLastLogin: at}, shared.FilterByField(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

type SuperAdminRepository interface {
	GetByUsername(ctx context.Context, username string) (model.SuperAdmin, error)
	BumpLastLogin(ctx context.Context, id string, at time.Time) error
}

type superAdminRepositoryImpl struct {
	gRepo.Repository[model.SuperAdmin]
	otel otel.Otel
}

func NewSuperAdminRepository(db *postgres.Connection, ot otel.Otel) SuperAdminRepository {
	return &superAdminRepositoryImpl{
		Repository: gRepo.NewRepository[model.SuperAdmin](model.SuperAdminEntityName, model.SuperAdminTableName, model.FieldID, db, ot),
		otel:       ot,
	}
}

func (repo *superAdminRepositoryImpl) GetByUsername(ctx context.Context, username string) (model.SuperAdmin, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByUsername", constant.OtelRepositoryScopeName, model.SuperAdminEntityName))
	defer scope.End()

	return repo.Get(ctx, shared.FilterByField(username, model.FieldUsername, model.SuperAdminTableName)) //nolint:wrapcheck
}

func (repo *superAdminRepositoryImpl) BumpLastLogin(ctx context.Context, id string, at time.Time) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.BumpLastLogin", constant.OtelRepositoryScopeName, model.SuperAdminEntityName))
	defer scope.End()

	return repo.Update(ctx, map[string]any{model.FieldLastLogin: at}, shared.FilterByField(id, model.FieldID, model.SuperAdminTableName)) //nolint:wrapcheck
}
