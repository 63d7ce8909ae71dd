package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"tm30/infras/otel"
	"tm30/infras/postgres"
	"tm30/internal/domains/submission/model"
	"tm30/shared"
	"tm30/shared/constant"
	"tm30/shared/dto"
	"tm30/shared/logger"
	gRepo "tm30/shared/repository"
)

type SubmissionRepository interface {
	Insert(ctx context.Context, submission model.Submission) error
	GetByID(ctx context.Context, id string) (model.Submission, error)
	GetAllFiltered(ctx context.Context, hotelName, search, checkinDate string) ([]model.Submission, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) (int64, error)
	CountOlderThan(ctx context.Context, cutoff time.Time, hotelName string) (int, error)
	GetOlderThan(ctx context.Context, cutoff time.Time, hotelName string, limit int, oldestFirst bool) ([]model.Submission, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time, hotelName string) ([]model.Submission, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Submission]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, ot otel.Otel) SubmissionRepository {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Submission](model.EntityName, model.TableName, model.FieldID, db, ot),
		db:         db,
		otel:       ot,
	}
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Submission, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByID", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.Get(ctx, shared.FilterByField(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

// GetAllFiltered returns a hotel's submissions, newest first. The search
// term matches case-insensitively across name, passport, nationality,
// email and room number; checkinDate matches the stored text exactly.
func (repo *repositoryImpl) GetAllFiltered(ctx context.Context, hotelName, search, checkinDate string) ([]model.Submission, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAllFiltered", constant.OtelRepositoryScopeName, model.EntityName))
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
		},
	}

	if search != constant.Empty {
		searchGroup := dto.FilterGroup{Operator: dto.FilterGroupOperatorOr}

		for _, field := range []string{
			model.FieldFirstName,
			model.FieldLastName,
			model.FieldPassportNumber,
			model.FieldNationality,
			model.FieldEmail,
			model.FieldRoomNumber,
		} {
			searchGroup.Filters = append(searchGroup.Filters, dto.Filter{
				ArgName:  "search_" + field,
				Field:    field,
				Value:    search,
				Operator: dto.FilterOperatorLike,
				Table:    model.TableName,
			})
		}

		filter.Filters = append(filter.Filters, searchGroup)
	}

	if checkinDate != constant.Empty {
		filter.Filters = append(filter.Filters, dto.Filter{
			Field:    model.FieldCheckinDate,
			Value:    checkinDate,
			Operator: dto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	params := dto.QueryParams{SortBy: model.FieldSubmittedAt, SortDir: "DESC"}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// UpdateStatus transitions a submission and reports whether the row
// existed through the affected count.
func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.UpdateStatus", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	mod := map[string]any{
		model.FieldStatus:    status,
		model.FieldUpdatedAt: updatedAt,
	}

	return repo.UpdateCount(ctx, mod, shared.FilterByField(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountOlderThan(ctx context.Context, cutoff time.Time, hotelName string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.CountOlderThan", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return repo.Count(ctx, retentionFilter(cutoff, hotelName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetOlderThan(ctx context.Context, cutoff time.Time, hotelName string, limit int, oldestFirst bool) ([]model.Submission, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetOlderThan", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	sortDir := "DESC"
	if oldestFirst {
		sortDir = "ASC"
	}

	params := dto.QueryParams{Limit: limit, SortBy: model.FieldSubmittedAt, SortDir: sortDir}

	return repo.GetAll(ctx, params, retentionFilter(cutoff, hotelName), //nolint:wrapcheck
		model.FieldID, model.FieldFirstName, model.FieldLastName, model.FieldSubmittedAt)
}

// DeleteOlderThan removes stale submissions and returns identifying fields
// of the deleted rows for the audit response.
func (repo *repositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time, hotelName string) ([]model.Submission, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.DeleteOlderThan", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	filter := retentionFilter(cutoff, hotelName)

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("DELETE FROM %s %s RETURNING id, first_name, last_name, submitted_at", model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := repo.db.Write.NamedQueryContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to delete stale data (%s): %w", model.EntityName, err)
	}
	defer rows.Close()

	var deleted []model.Submission

	for rows.Next() {
		var row model.Submission
		if err := rows.StructScan(&row); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return nil, fmt.Errorf("failed to scan deleted row (%s): %w", model.EntityName, err)
		}

		deleted = append(deleted, row)
	}

	if err := rows.Err(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to read deleted rows (%s): %w", model.EntityName, err)
	}

	return deleted, nil
}

func retentionFilter(cutoff time.Time, hotelName string) dto.FilterGroup {
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				ArgName:  "cutoff",
				Field:    model.FieldSubmittedAt,
				Value:    cutoff,
				Operator: dto.FilterOperatorLess,
				Table:    model.TableName,
			},
		},
	}

	if hotelName != constant.Empty {
		filter.Filters = append(filter.Filters, dto.Filter{
			Field:    model.FieldHotelName,
			Value:    hotelName,
			Operator: dto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return filter
}
