package admin

import (
	"net/http"
	"tm30/infras/otel"
	"tm30/internal/domains/admin/model/dto"
	"tm30/internal/domains/admin/service"
	"tm30/shared/constant"
	"tm30/shared/failure"
	"tm30/shared/validator"
	"tm30/transport/http/middleware"
	"tm30/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.AdminService
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.AdminService, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/admin/login", handler.Login)
	router.Post("/super-admin/login", handler.SuperAdminLogin)

	router.Route("/admin/accounts", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)
		routerGroup.Use(handler.auth.SuperAdmin)
		routerGroup.Get("/", handler.GetAccounts)
		routerGroup.Post("/", handler.CreateAccount)
		routerGroup.Put("/", handler.UpdatePassword)
		routerGroup.Delete("/", handler.DeleteAccount)
	})
}

// Login authenticates a hotel admin.
// @Summary Hotel admin login
// @Description Authenticate with hotel code and password, returning a 24h bearer token.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate login request")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("login rejected")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Admin logged in for hotel " + result.Admin.HotelCode)

	response.WithJSON(writer, http.StatusOK, result)
}

// SuperAdminLogin authenticates a super admin.
// @Summary Super admin login
// @Description Authenticate with username and password, returning a super-admin bearer token.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.SuperAdminLoginRequest true "Super Admin Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /super-admin/login [post]
func (handler *Handler) SuperAdminLogin(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SuperAdminLogin")
	defer scope.End()

	req := dto.SuperAdminLoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate super admin login request")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.SuperAdminLogin(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("super admin login rejected")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Super admin logged in")

	response.WithJSON(writer, http.StatusOK, result)
}

// GetAccounts lists every hotel admin account.
// @Summary List admin accounts
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.AccountListResponse
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/accounts [get]
// @Security BearerAuth
func (handler *Handler) GetAccounts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccounts")
	defer scope.End()

	result, err := handler.service.ListAccounts(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list admin accounts")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Admin accounts retrieved successfully")

	response.WithJSON(writer, http.StatusOK, result)
}

// CreateAccount creates a hotel admin account.
// @Summary Create an admin account
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Create Account Request"
// @Success 201 {object} dto.CreateAccountResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/accounts [post]
// @Security BearerAuth
func (handler *Handler) CreateAccount(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAccount")
	defer scope.End()

	req := dto.CreateAccountRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate create account request")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.CreateAccount(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create admin account")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Admin account created for hotel " + req.HotelCode)

	response.WithJSON(writer, http.StatusCreated, result)
}

// UpdatePassword changes a hotel admin account's password.
// @Summary Update an admin account password
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.UpdatePasswordRequest true "Update Password Request"
// @Success 200 {object} dto.UpdatePasswordResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/accounts [put]
// @Security BearerAuth
func (handler *Handler) UpdatePassword(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePassword")
	defer scope.End()

	req := dto.UpdatePasswordRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate update password request")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.UpdatePassword(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update admin password")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Password updated for hotel " + req.HotelCode)

	response.WithJSON(writer, http.StatusOK, result)
}

// DeleteAccount deletes a hotel admin account.
// @Summary Delete an admin account
// @Tags Admin
// @Produce json
// @Param hotel_code query string true "Hotel code of the account to delete"
// @Success 200 {object} dto.DeleteAccountResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/accounts [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAccount(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAccount")
	defer scope.End()

	hotelCode := request.URL.Query().Get(constant.RequestParamHotelCode)
	if hotelCode == "" {
		err := failure.BadRequestFromString("Missing required parameter: hotel_code")

		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	result, err := handler.service.DeleteAccount(ctx, hotelCode)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete admin account")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Admin account deleted for hotel " + hotelCode)

	response.WithJSON(writer, http.StatusOK, result)
}
