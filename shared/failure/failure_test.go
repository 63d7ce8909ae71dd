package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tm30/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		result  error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			result:  failure.BadRequest(errors.New("validation failed")),
			code:    http.StatusBadRequest,
			message: "validation failed",
		},
		{
			name:    "BadRequestFromString",
			result:  failure.BadRequestFromString("custom bad request"),
			code:    http.StatusBadRequest,
			message: "custom bad request",
		},
		{
			name:    "Unauthorized",
			result:  failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "Forbidden",
			result:  failure.Forbidden("Access denied"),
			code:    http.StatusForbidden,
			message: "Access denied",
		},
		{
			name:    "NotFound",
			result:  failure.NotFound("submission"),
			code:    http.StatusNotFound,
			message: "submission",
		},
		{
			name:    "Conflict",
			result:  failure.Conflict("Room already claimed"),
			code:    http.StatusConflict,
			message: "Room already claimed",
		},
		{
			name:    "InternalError",
			result:  failure.InternalError(errors.New("database connection failed")),
			code:    http.StatusInternalServerError,
			message: "database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.result)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestNilErrorConstructors(t *testing.T) {
	if result := failure.BadRequest(nil); result != nil {
		t.Errorf("expected nil, got %v", result)
	}
	if result := failure.InternalError(nil); result != nil {
		t.Errorf("expected nil, got %v", result)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("outer: %w", failure.NotFound("submission")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
