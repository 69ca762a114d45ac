package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"campusbook/shared/failure"
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

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestBadRequestFromString(t *testing.T) {
	result := failure.BadRequestFromString("custom bad request")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}

	if f.Message != "custom bad request" {
		t.Errorf("expected message to be 'custom bad request', got %s", f.Message)
	}
}

func TestSlotTaken(t *testing.T) {
	result := failure.SlotTaken("2025-03-01", "10AM-12PM")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}

	if f.Message != "resource is already booked for 2025-03-01 (10AM-12PM)" {
		t.Errorf("unexpected message: %s", f.Message)
	}
}

func TestStatusFailures(t *testing.T) {
	tests := []struct {
		name  string
		input error
		code  int
	}{
		{
			name:  "Unauthorized",
			input: failure.Unauthorized("authentication required"),
			code:  http.StatusUnauthorized,
		},
		{
			name:  "Forbidden",
			input: failure.Forbidden("staff only"),
			code:  http.StatusForbidden,
		},
		{
			name:  "NotFound",
			input: failure.NotFound("booking not found"),
			code:  http.StatusNotFound,
		},
		{
			name:  "Conflict",
			input: failure.Conflict("already exists"),
			code:  http.StatusConflict,
		},
		{
			name:  "InternalError",
			input: failure.InternalError(errors.New("boom")),
			code:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.input); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "plain failure",
			input:    failure.BadRequestFromString("nope"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure",
			input:    fmt.Errorf("outer: %w", failure.NotFound("gone")),
			expected: http.StatusNotFound,
		},
		{
			name:     "non-failure error",
			input:    errors.New("plain error"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.input); got != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, got)
			}
		})
	}
}
