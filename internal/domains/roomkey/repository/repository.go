package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tm30/infras/otel"
	"tm30/infras/postgres"
	"tm30/internal/domains/roomkey/model"
	"tm30/shared"
	"tm30/shared/constant"
	"tm30/shared/dto"
	gRepo "tm30/shared/repository"
)

type RoomKeyRepository interface {
	GetEnabledKey(ctx context.Context, hotelID, roomNumber string) (model.RoomKey, error)
	GetAllEnabled(ctx context.Context) ([]model.RoomKey, error)
	ResolveHotelID(ctx context.Context, hotelName string) (string, error)
	DisableIfEnabled(ctx context.Context, hotelID, roomNumber string) (bool, error)
	Enable(ctx context.Context, hotelID, roomNumber string) error
	HotelExists(ctx context.Context, hotelID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomKey]
	otel otel.Otel
}

func New(db *postgres.Connection, ot otel.Otel) RoomKeyRepository {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomKey](model.EntityName, model.TableName, model.FieldHotelID, db, ot),
		otel:       ot,
	}
}

// GetEnabledKey returns the room only while it is still available. A zero
// value means no enabled row matched.
func (repo *repositoryImpl) GetEnabledKey(ctx context.Context, hotelID, roomNumber string) (model.RoomKey, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetEnabledKey", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	filter := shared.FilterByRoom(hotelID, roomNumber, model.FieldHotelID, model.FieldRoomNumber, model.TableName)
	filter.Filters = append(filter.Filters, dto.Filter{
		Field:    model.FieldEnabled,
		Value:    true,
		Operator: dto.FilterOperatorEq,
		Table:    model.TableName,
	})

	return repo.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllEnabled(ctx context.Context) ([]model.RoomKey, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAllEnabled", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	params := dto.QueryParams{SortBy: model.FieldHotelID + ", " + model.FieldRoomNumber, SortDir: "ASC"}

	return repo.GetAll(ctx, params, shared.FilterByField(true, model.FieldEnabled, model.TableName)) //nolint:wrapcheck
}

// ResolveHotelID looks up the hotel code by display name among rooms that
// are still registered. Returns empty when the name is unknown.
func (repo *repositoryImpl) ResolveHotelID(ctx context.Context, hotelName string) (string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ResolveHotelID", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    model.FieldHotelName,
				Value:    hotelName,
				Operator: dto.FilterOperatorEq,
				Table:    model.TableName,
			},
			dto.Filter{
				Field:    model.FieldEnabled,
				Value:    true,
				Operator: dto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	row, err := repo.Get(ctx, filter, model.FieldHotelID)
	if err != nil {
		scope.TraceError(err)

		return "", err //nolint:wrapcheck
	}

	return row.HotelID, nil
}

// DisableIfEnabled flips enabled to false only while it is still true, so
// two concurrent registrations for the same room cannot both win.
func (repo *repositoryImpl) DisableIfEnabled(ctx context.Context, hotelID, roomNumber string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.DisableIfEnabled", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	filter := shared.FilterByRoom(hotelID, roomNumber, model.FieldHotelID, model.FieldRoomNumber, model.TableName)
	filter.Filters = append(filter.Filters, dto.Filter{
		Field:    model.FieldEnabled,
		Value:    true,
		Operator: dto.FilterOperatorEq,
		Table:    model.TableName,
	})

	affected, err := repo.UpdateCount(ctx, map[string]any{model.FieldEnabled: false}, filter)
	if err != nil {
		scope.TraceError(err)

		return false, err //nolint:wrapcheck
	}

	return affected > 0, nil
}

func (repo *repositoryImpl) Enable(ctx context.Context, hotelID, roomNumber string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Enable", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	filter := shared.FilterByRoom(hotelID, roomNumber, model.FieldHotelID, model.FieldRoomNumber, model.TableName)

	return repo.Update(ctx, map[string]any{model.FieldEnabled: true}, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) HotelExists(ctx context.Context, hotelID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.HotelExists", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.Exist(ctx, shared.FilterByField(hotelID, model.FieldHotelID, model.TableName)) //nolint:wrapcheck
}
