package http

import (
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"tm30/config"
	"tm30/shared/constant"
	"tm30/transport/http/middleware"
	"tm30/transport/http/response"
	"tm30/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/rs/zerolog/log"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	State      ServerState
	mux        *chi.Mux
}

func New(cfg *config.Config, r router.Router, appMiddleware middleware.AppMiddleware) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: appMiddleware,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	addr := net.JoinHostPort("0.0.0.0", h.Config.Server.Port)
	if err := http.ListenAndServe(addr, h.mux); err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func (h *HTTP) Adaptor() http.HandlerFunc {
	h.setup()

	return h.mux.ServeHTTP
}

func (h *HTTP) setup() {
	h.setupRoutes()
	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	h.mux.Use(h.Middleware.Tracing)
	h.mux.Use(h.Middleware.RateLimit())

	h.mux.Get("/health", h.HealthCheck)

	h.Router.SetupRoutes(h.mux)
}

// HealthCheck reports server liveness and shutdown state.
// @Summary Health check
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *HTTP) HealthCheck(writer http.ResponseWriter, request *http.Request) {
	switch h.State {
	case ServerStateReady:
		response.WithMessage(writer, http.StatusOK, "OK")
	case ServerStateInGracePeriod:
		response.WithPreparingShutdown(writer)
	default:
		response.WithUnhealthy(writer)
	}
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
