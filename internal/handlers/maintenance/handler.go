package maintenance

import (
	"net/http"
	"tm30/infras/otel"
	scheduleService "tm30/internal/domains/schedule/service"
	submissionService "tm30/internal/domains/submission/service"
	"tm30/shared/constant"
	"tm30/transport/http/middleware"
	"tm30/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const requestParamDryRun = "dry-run"

type Handler struct {
	submissions submissionService.SubmissionService
	schedules   scheduleService.ScheduleService
	auth        middleware.Auth
	otel        otel.Otel
}

func New(
	submissions submissionService.SubmissionService,
	schedules scheduleService.ScheduleService,
	auth middleware.Auth,
	otel otel.Otel,
) Handler {
	return Handler{
		submissions: submissions,
		schedules:   schedules,
		auth:        auth,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/cleanup", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)
		routerGroup.Get("/", handler.PreviewCleanup)
		routerGroup.Post("/", handler.RunCleanup)
	})

	router.Route("/cleanup-old-submissions", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GlobalCleanup)
		routerGroup.Post("/", handler.GlobalCleanup)
	})

	router.Route("/room-schedule", func(routerGroup chi.Router) {
		routerGroup.Get("/process", handler.ProcessSchedules)
		routerGroup.Get("/cleanup", handler.CleanupSchedules)
	})
}

// PreviewCleanup reports which of the hotel's submissions would be purged.
// @Summary Preview retention cleanup
// @Description List the authenticated hotel's submissions past the retention window, without deleting.
// @Tags Maintenance
// @Produce json
// @Success 200 {object} dto.PurgePreviewResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/cleanup [get]
// @Security BearerAuth
func (handler *Handler) PreviewCleanup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreviewCleanup")
	defer scope.End()

	hotelName, _ := ctx.Value(constant.ContextKeyHotelName).(string)

	result, err := handler.submissions.Preview(ctx, hotelName)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to preview retention cleanup")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Retention cleanup previewed")

	response.WithJSON(writer, http.StatusOK, result)
}

// RunCleanup purges the hotel's submissions past the retention window.
// @Summary Run retention cleanup
// @Description Delete the authenticated hotel's submissions past the retention window.
// @Tags Maintenance
// @Produce json
// @Success 200 {object} dto.PurgeResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/cleanup [post]
// @Security BearerAuth
func (handler *Handler) RunCleanup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunCleanup")
	defer scope.End()

	hotelName, _ := ctx.Value(constant.ContextKeyHotelName).(string)

	result, err := handler.submissions.Purge(ctx, hotelName)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run retention cleanup")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Retention cleanup completed")

	response.WithJSON(writer, http.StatusOK, result)
}

// GlobalCleanup purges expired submissions across all hotels.
// Passing dry-run=true previews the deletion instead of executing it.
// @Summary Run global retention cleanup
// @Description Delete submissions past the retention window across every hotel. dry-run=true previews instead.
// @Tags Maintenance
// @Produce json
// @Param dry-run query string false "Set to true to preview without deleting"
// @Success 200 {object} dto.GlobalPurgeResponse
// @Failure 500 {object} response.Error
// @Router /cleanup-old-submissions [get]
func (handler *Handler) GlobalCleanup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GlobalCleanup")
	defer scope.End()

	if request.URL.Query().Get(requestParamDryRun) == "true" {
		result, err := handler.submissions.GlobalPreview(ctx)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to preview global cleanup")

			response.WithError(writer, err)

			return
		}

		scope.AddEvent("Global cleanup previewed")

		response.WithJSON(writer, http.StatusOK, result)

		return
	}

	result, err := handler.submissions.GlobalPurge(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run global cleanup")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Global cleanup completed")

	response.WithJSON(writer, http.StatusOK, result)
}

// ProcessSchedules re-enables rooms whose disable window has elapsed.
// @Summary Process due room schedules
// @Description Re-enable every room whose re-enable date has arrived and mark its schedule processed.
// @Tags Maintenance
// @Produce json
// @Success 200 {object} dto.ProcessResult
// @Failure 500 {object} response.Error
// @Router /room-schedule/process [get]
func (handler *Handler) ProcessSchedules(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessSchedules")
	defer scope.End()

	result, err := handler.schedules.ProcessDue(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process room schedules")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room schedules processed")

	response.WithJSON(writer, http.StatusOK, result)
}

// CleanupSchedules deletes schedule rows that have already been processed.
// @Summary Clean up processed room schedules
// @Tags Maintenance
// @Produce json
// @Success 200 {object} dto.CleanupResult
// @Failure 500 {object} response.Error
// @Router /room-schedule/cleanup [get]
func (handler *Handler) CleanupSchedules(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CleanupSchedules")
	defer scope.End()

	result, err := handler.schedules.CleanupProcessed(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clean up room schedules")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room schedules cleaned up")

	response.WithJSON(writer, http.StatusOK, result)
}
