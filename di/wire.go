//go:build wireinject
// +build wireinject

package di

import (
	"tm30/config"
	"tm30/infras/jwt"
	"tm30/infras/kafka"
	"tm30/infras/otel"
	"tm30/infras/postgres"
	"tm30/infras/redis"
	"tm30/infras/s3"
	"tm30/infras/smtp"
	"tm30/internal/notification"
	"tm30/shared/cache"
	"tm30/transport/http"
	"tm30/transport/http/middleware"
	"tm30/transport/http/router"

	adminRepository "tm30/internal/domains/admin/repository"
	adminService "tm30/internal/domains/admin/service"
	roomkeyRepository "tm30/internal/domains/roomkey/repository"
	roomkeyService "tm30/internal/domains/roomkey/service"
	scheduleRepository "tm30/internal/domains/schedule/repository"
	scheduleService "tm30/internal/domains/schedule/service"
	submissionRepository "tm30/internal/domains/submission/repository"
	submissionService "tm30/internal/domains/submission/service"

	adminHandler "tm30/internal/handlers/admin"
	hotelHandler "tm30/internal/handlers/hotel"
	maintenanceHandler "tm30/internal/handlers/maintenance"
	submissionHandler "tm30/internal/handlers/submission"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	smtp.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomkeyDomain = wire.NewSet(
	roomkeyRepository.New,
	roomkeyService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var submissionDomain = wire.NewSet(
	submissionRepository.New,
	submissionService.New,
	notification.NewDispatcher,
)

var adminDomain = wire.NewSet(
	adminRepository.NewAdminRepository,
	adminRepository.NewSuperAdminRepository,
	adminService.New,
)

var domains = wire.NewSet(
	roomkeyDomain,
	scheduleDomain,
	submissionDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	submissionHandler.New,
	hotelHandler.New,
	adminHandler.New,
	maintenanceHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *notification.Worker {
	wire.Build(
		configurations,
		wire.NewSet(
			kafka.New,
			smtp.New,
		),
		notification.NewWorker,
	)

	return &notification.Worker{}
}
