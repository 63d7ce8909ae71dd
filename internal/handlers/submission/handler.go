package submission

import (
	"encoding/json"
	"net/http"
	"tm30/infras/otel"
	"tm30/internal/domains/submission/model/dto"
	"tm30/internal/domains/submission/service"
	"tm30/shared/constant"
	"tm30/shared/failure"
	"tm30/shared/validator"
	"tm30/transport/http/middleware"
	"tm30/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.SubmissionService
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.SubmissionService, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/submissions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSubmission)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.auth.Auth)
			protected.Get("/", handler.GetSubmissions)
			protected.Get("/export", handler.ExportSubmissions)
			protected.Patch("/{id}/status", handler.UpdateStatus)
		})
	})

	router.With(handler.auth.Auth).Get("/admin/photo-url", handler.GetSignedPhotoURL)
}

// CreateSubmission handles a guest registration form submission.
// @Summary Submit a TM30 guest registration
// @Description Register one or two guests for a room, claim the room key and schedule its re-enabling.
// @Tags Submission
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.CreateSubmissionResponse "Registration stored"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /submissions [post]
func (handler *Handler) CreateSubmission(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSubmission")
	defer scope.End()

	req, err := dto.NewCreateSubmissionRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate submission form")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create submission")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Submission created for room " + req.RoomNumber)

	response.WithJSON(writer, http.StatusCreated, result)
}

// GetSubmissions lists the submissions of the authenticated hotel.
// @Summary List submissions
// @Description Retrieve the authenticated hotel's submissions with optional search and check-in date filters.
// @Tags Submission
// @Produce json
// @Param search query string false "Free-text search across guest fields"
// @Param checkinDate query string false "Exact check-in date (dd/mm/yyyy)"
// @Success 200 {object} dto.ListSubmissionsResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /submissions [get]
// @Security BearerAuth
func (handler *Handler) GetSubmissions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubmissions")
	defer scope.End()

	hotelName, _ := ctx.Value(constant.ContextKeyHotelName).(string)
	search := request.URL.Query().Get(constant.RequestParamSearch)
	checkinDate := request.URL.Query().Get(constant.RequestParamCheckinDate)

	result, err := handler.service.List(ctx, hotelName, search, checkinDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list submissions")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Submissions retrieved successfully")

	response.WithJSON(writer, http.StatusOK, result)
}

// ExportSubmissions downloads the authenticated hotel's submissions as an Excel workbook.
// @Summary Export submissions
// @Description Render the filtered submissions into an .xlsx attachment.
// @Tags Submission
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param search query string false "Free-text search across guest fields"
// @Param checkinDate query string false "Exact check-in date (dd/mm/yyyy)"
// @Success 200 {file} binary
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /submissions/export [get]
// @Security BearerAuth
func (handler *Handler) ExportSubmissions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportSubmissions")
	defer scope.End()

	hotelCode, _ := ctx.Value(constant.ContextKeyHotelCode).(string)
	hotelName, _ := ctx.Value(constant.ContextKeyHotelName).(string)
	search := request.URL.Query().Get(constant.RequestParamSearch)
	checkinDate := request.URL.Query().Get(constant.RequestParamCheckinDate)

	file, err := handler.service.Export(ctx, hotelCode, hotelName, search, checkinDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export submissions")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Submissions exported successfully")

	response.WithAttachment(writer, constant.ContentTypeXLSX, file.FileName, file.Content)
}

// UpdateStatus changes the reporting status of a submission.
// @Summary Update submission status
// @Description Set a submission's status to PENDING, REPORTED or CANCELED.
// @Tags Submission
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.UpdateStatusResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /submissions/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}

	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		err = failure.BadRequestFromString("invalid request body")

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode status update request")

		response.WithError(writer, err)

		return
	}

	req.ID = chi.URLParam(request, constant.RequestParamID)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate status update request")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.UpdateStatus(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update submission status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Submission status updated")

	response.WithJSON(writer, http.StatusOK, result)
}

// GetSignedPhotoURL issues a short-lived signed URL for a stored passport photo.
// @Summary Sign a passport photo URL
// @Description Return a 15-minute presigned URL for a photo belonging to the authenticated hotel.
// @Tags Submission
// @Produce json
// @Param photoUrl query string true "Stored photo URL"
// @Success 200 {object} dto.SignedPhotoURLResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/photo-url [get]
// @Security BearerAuth
func (handler *Handler) GetSignedPhotoURL(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSignedPhotoURL")
	defer scope.End()

	hotelCode, _ := ctx.Value(constant.ContextKeyHotelCode).(string)
	photoURL := request.URL.Query().Get(constant.RequestParamPhotoURL)

	result, err := handler.service.SignedPhotoURL(ctx, hotelCode, photoURL)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign photo url")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Photo URL signed successfully")

	response.WithJSON(writer, http.StatusOK, result)
}
