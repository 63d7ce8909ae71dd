package response

import (
	"encoding/json"
	"net/http"
	"strconv"
	"tm30/shared/constant"
	"tm30/shared/failure"
	"tm30/shared/logger"
)

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing the payload serialized as-is
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	write(writer, code, jsonPayload)
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	write(writer, code, Error{Error: &errMsg})
}

// WithAttachment sends a response containing a downloadable file
func WithAttachment(writer http.ResponseWriter, contentType, fileName string, content []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.Header().Set(constant.RequestHeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	writer.Header().Set(constant.RequestHeaderContentLength, strconv.Itoa(len(content)))
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(content); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
