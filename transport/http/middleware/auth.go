package middleware

import (
	"context"
	"errors"
	"net/http"
	"tm30/infras/jwt"
	"tm30/infras/otel"
	"tm30/shared/constant"
	"tm30/shared/failure"
	"tm30/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	SuperAdmin(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

// NewAuthMiddleware creates a new middleware instance
func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

// Auth validates JWT tokens and injects the admin identity into the request context
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.Validate(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			default:
				message = "Token validation failed"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if claims.AdminID == "" || claims.HotelCode == "" {
			log.Error().Msg("JWT claims: admin identity is empty")

			response.WithError(writer, failure.Unauthorized("Invalid token claims"))

			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyAdminID, claims.AdminID)
		ctx = context.WithValue(ctx, constant.ContextKeyHotelCode, claims.HotelCode)
		ctx = context.WithValue(ctx, constant.ContextKeyHotelName, claims.HotelName)
		ctx = context.WithValue(ctx, constant.ContextKeyRole, claims.Role)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// SuperAdmin restricts a route to super-admin tokens.
// Requires prior authentication via Auth middleware.
func (m *authImpl) SuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "superadmin.middleware")

		role, _ := ctx.Value(constant.ContextKeyRole).(string)
		hotelCode, _ := ctx.Value(constant.ContextKeyHotelCode).(string)

		if role != constant.RoleSuperAdmin && hotelCode != constant.SuperAdminHotelCode {
			err := failure.Forbidden("Super admin access required")

			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role": role,
				"reason":    "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
