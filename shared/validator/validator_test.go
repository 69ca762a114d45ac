package validator_test

import (
	"strings"
	"testing"

	"campusbook/shared/failure"
	"campusbook/shared/validator"
)

type bookingRequest struct {
	Resource    string `validate:"required,uuid"                     json:"resource"`
	BookingDate string `validate:"required,datetime=2006-01-02"      json:"booking_date"`
	TimeSlot    string `validate:"required,max=50"                   json:"time_slot"`
	Status      string `validate:"omitempty,oneof=APPROVED REJECTED" json:"status"`
}

func validBookingRequest() bookingRequest {
	return bookingRequest{
		Resource:    "7b68b4f1-55a4-4b39-ae37-0f4a7a3c3a11",
		BookingDate: "2025-03-01",
		TimeSlot:    "10AM-12PM",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*bookingRequest)
		expectError bool
	}{
		{
			name:        "valid struct",
			mutate:      func(*bookingRequest) {},
			expectError: false,
		},
		{
			name:        "missing required field",
			mutate:      func(r *bookingRequest) { r.TimeSlot = "" },
			expectError: true,
		},
		{
			name:        "invalid uuid",
			mutate:      func(r *bookingRequest) { r.Resource = "not-a-uuid" },
			expectError: true,
		},
		{
			name:        "invalid date format",
			mutate:      func(r *bookingRequest) { r.BookingDate = "01-03-2025" },
			expectError: true,
		},
		{
			name:        "invalid enum value",
			mutate:      func(r *bookingRequest) { r.Status = "PENDING" },
			expectError: true,
		},
		{
			name:        "too long time slot",
			mutate:      func(r *bookingRequest) { r.TimeSlot = strings.Repeat("a", 51) },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.expectError {
				if err == nil {
					t.Error("expected a validation error, got nil")
				} else if failure.GetCode(err) != 400 {
					t.Errorf("expected a 400 failure, got %d", failure.GetCode(err))
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid body decodes and validates", func(t *testing.T) {
		body := strings.NewReader(`{
			"resource": "7b68b4f1-55a4-4b39-ae37-0f4a7a3c3a11",
			"booking_date": "2025-03-01",
			"time_slot": "10AM-12PM"
		}`)

		var req bookingRequest
		if err := validator.Validate(body, &req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if req.TimeSlot != "10AM-12PM" {
			t.Errorf("expected time slot to be decoded, got %s", req.TimeSlot)
		}
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		body := strings.NewReader(`{"resource": `)

		var req bookingRequest
		err := validator.Validate(body, &req)

		if err == nil {
			t.Fatal("expected an error for malformed json")
		}

		if failure.GetCode(err) != 400 {
			t.Errorf("expected a 400 failure, got %d", failure.GetCode(err))
		}
	})

	t.Run("invalid payload is a bad request", func(t *testing.T) {
		body := strings.NewReader(`{"resource": "not-a-uuid"}`)

		var req bookingRequest
		err := validator.Validate(body, &req)

		if err == nil {
			t.Fatal("expected a validation error")
		}

		if failure.GetCode(err) != 400 {
			t.Errorf("expected a 400 failure, got %d", failure.GetCode(err))
		}
	})
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("staff@campus.edu", "required,email"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("not-an-email", "required,email"); err == nil {
		t.Error("expected a validation error, got nil")
	}
}
