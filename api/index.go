package handler

import (
	"net/http"
	"tm30/config"
	"tm30/di"
	"tm30/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.Adaptor()(w, r)
}
