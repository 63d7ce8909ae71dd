package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tm30/infras/otel"
	roomkeyRepository "tm30/internal/domains/roomkey/repository"
	"tm30/internal/domains/schedule/model/dto"
	"tm30/internal/domains/schedule/repository"
	"tm30/shared"
	"tm30/shared/cache"
	"tm30/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheHotelPrefix = "hotel:"
)

type ScheduleService interface {
	ProcessDue(ctx context.Context) (dto.ProcessResult, error)
	CleanupProcessed(ctx context.Context) (dto.CleanupResult, error)
}

type serviceImpl struct {
	repo     repository.ScheduleRepository
	roomRepo roomkeyRepository.RoomKeyRepository
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.ScheduleRepository, roomRepo roomkeyRepository.RoomKeyRepository, redisCache cache.RedisCache, ot otel.Otel) ScheduleService {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cache:    redisCache,
		otel:     ot,
	}
}

// ProcessDue re-enables every room whose re-enable date has arrived. A
// failure on one room is logged and does not stop the rest.
func (service *serviceImpl) ProcessDue(ctx context.Context) (dto.ProcessResult, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.schedule.ProcessDue", constant.OtelServiceScopeName))
	defer scope.End()

	due, err := service.repo.GetDueUnprocessed(ctx)
	if err != nil {
		scope.TraceError(err)

		return dto.ProcessResult{}, fmt.Errorf("failed to process due schedules: %w", err)
	}

	processed := 0

	for _, schedule := range due {
		if err := service.roomRepo.Enable(ctx, schedule.HotelID, schedule.RoomNumber); err != nil {
			log.Error().Err(err).
				Str("hotel_id", schedule.HotelID).
				Str("room_number", schedule.RoomNumber).
				Msg("failed to re-enable room")

			continue
		}

		if err := service.repo.MarkProcessed(ctx, schedule.HotelID, schedule.RoomNumber); err != nil {
			log.Error().Err(err).
				Str("hotel_id", schedule.HotelID).
				Str("room_number", schedule.RoomNumber).
				Msg("failed to mark schedule processed")

			continue
		}

		processed++
	}

	if processed > 0 {
		go shared.InvalidateCaches(context.WithoutCancel(ctx), service.cache, cacheHotelPrefix)
	}

	scope.SetAttribute("rooms_processed", processed)

	return dto.ProcessResult{
		Message:        fmt.Sprintf("Processed %d rooms for re-enabling", processed),
		RoomsProcessed: processed,
	}, nil
}

// CleanupProcessed deletes schedule rows that already ran.
func (service *serviceImpl) CleanupProcessed(ctx context.Context) (dto.CleanupResult, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.schedule.CleanupProcessed", constant.OtelServiceScopeName))
	defer scope.End()

	deleted, err := service.repo.DeleteProcessed(ctx)
	if err != nil {
		scope.TraceError(err)

		return dto.CleanupResult{}, fmt.Errorf("failed to clean up schedules: %w", err)
	}

	return dto.CleanupResult{
		Message:      fmt.Sprintf("Deleted %d processed schedule(s)", deleted),
		DeletedCount: deleted,
	}, nil
}
