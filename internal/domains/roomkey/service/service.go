package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"tm30/config"
	"tm30/infras/otel"
	"tm30/internal/domains/roomkey/model/dto"
	"tm30/internal/domains/roomkey/repository"
	"tm30/shared/cache"
	"tm30/shared/constant"
	"tm30/shared/logger"
)

const (
	cacheListHotels = "hotel:list"
)

type RoomKeyService interface {
	ListHotels(ctx context.Context) (dto.HotelList, error)
}

type serviceImpl struct {
	repo  repository.RoomKeyRepository
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.RoomKeyRepository, cfg *config.Config, redisCache cache.RedisCache, ot otel.Otel) RoomKeyService {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: redisCache,
		otel:  ot,
	}
}

// ListHotels returns every hotel that still has at least one enabled room,
// with its room number to key number mapping.
func (service *serviceImpl) ListHotels(ctx context.Context) (dto.HotelList, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.roomkey.ListHotels", constant.OtelServiceScopeName))
	defer scope.End()

	var cached dto.HotelList

	err := service.cache.Get(ctx, cacheListHotels, &cached)
	if err == nil {
		return cached, nil
	}

	if !errors.Is(err, cache.Nil) {
		logger.ErrorWithStack(err)
	}

	rows, err := service.repo.GetAllEnabled(ctx)
	if err != nil {
		scope.TraceError(err)

		return dto.HotelList{}, fmt.Errorf("failed to list hotels: %w", err)
	}

	list := dto.NewHotelList(rows)

	go func(ctx context.Context) {
		if err := service.cache.Save(ctx, cacheListHotels, list, service.cfg.Cache.TTL); err != nil {
			logger.ErrorWithStack(err)
		}
	}(context.WithoutCancel(ctx))

	return list, nil
}
