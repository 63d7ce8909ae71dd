package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tm30/infras/otel"
	"tm30/infras/postgres"
	"tm30/internal/domains/schedule/model"
	"tm30/shared"
	"tm30/shared/constant"
	"tm30/shared/logger"
	gRepo "tm30/shared/repository"
)

type ScheduleRepository interface {
	Upsert(ctx context.Context, schedule model.Schedule) error
	GetDueUnprocessed(ctx context.Context) ([]model.Schedule, error)
	MarkProcessed(ctx context.Context, hotelID, roomNumber string) error
	DeleteProcessed(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Schedule]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, ot otel.Otel) ScheduleRepository {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Schedule](model.EntityName, model.TableName, model.FieldHotelID, db, ot),
		db:         db,
		otel:       ot,
	}
}

// Upsert stores the re-enable date for a room. A second registration for
// the same room replaces the previous schedule.
func (repo *repositoryImpl) Upsert(ctx context.Context, schedule model.Schedule) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Upsert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(`INSERT INTO %s (hotel_id, room_number, re_enable_date, processed, created_at)
		VALUES (:hotel_id, :room_number, :re_enable_date, :processed, :created_at)
		ON CONFLICT (hotel_id, room_number)
		DO UPDATE SET re_enable_date = EXCLUDED.re_enable_date, processed = FALSE, created_at = EXCLUDED.created_at`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, schedule)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}

// GetDueUnprocessed returns schedules whose re-enable date has arrived,
// compared at day granularity.
func (repo *repositoryImpl) GetDueUnprocessed(ctx context.Context) ([]model.Schedule, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetDueUnprocessed", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(`SELECT hotel_id, room_number, re_enable_date, processed, created_at
		FROM %s
		WHERE re_enable_date::date <= NOW()::date AND processed = FALSE`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var schedules []model.Schedule

	err := repo.db.Read.SelectContext(ctx, &schedules, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get due schedules (%s): %w", model.EntityName, err)
	}

	return schedules, nil
}

func (repo *repositoryImpl) MarkProcessed(ctx context.Context, hotelID, roomNumber string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.MarkProcessed", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	filter := shared.FilterByRoom(hotelID, roomNumber, model.FieldHotelID, model.FieldRoomNumber, model.TableName)

	return repo.Update(ctx, map[string]any{model.FieldProcessed: true}, filter) //nolint:wrapcheck
}

// DeleteProcessed removes schedules that already ran and reports how many
// rows went away.
func (repo *repositoryImpl) DeleteProcessed(ctx context.Context) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.DeleteProcessed", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE processed = TRUE", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete processed schedules (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected, nil
}
