package shared_test

import (
	"reflect"
	"testing"
	"time"

	"campusbook/shared"
	"campusbook/shared/constant"
	"campusbook/shared/dto"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name    string  `db:"name"`
		Status  *string `db:"status"`
		Ignored string
	}

	status := "INACTIVE"

	result := shared.TransformFields(updateRequest{
		Name:   "New Name",
		Status: &status,
	}, "staff@campus.edu")

	if result["name"] != "New Name" {
		t.Errorf("expected name to be transformed, got %v", result["name"])
	}

	if result["status"] != &status {
		t.Errorf("expected status pointer to be carried, got %v", result["status"])
	}

	if _, ok := result["Ignored"]; ok {
		t.Error("expected field without db tag to be skipped")
	}

	if result[constant.FieldModifiedBy] != "staff@campus.edu" {
		t.Errorf("expected modified_by to be set, got %v", result[constant.FieldModifiedBy])
	}

	if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
}

func TestTransformFields_SkipsZeroValues(t *testing.T) {
	type updateRequest struct {
		Name  string  `db:"name"`
		Phone *string `db:"phone"`
	}

	result := shared.TransformFields(updateRequest{}, "someone")

	if _, ok := result["name"]; ok {
		t.Error("expected zero-value name to be skipped")
	}

	if _, ok := result["phone"]; ok {
		t.Error("expected nil phone to be skipped")
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("some-id", "id", "bookings")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "some-id",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}

	if !reflect.DeepEqual(filter, expected) {
		t.Errorf("expected %+v, got %+v", expected, filter)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "booking:get",
			parts:    nil,
			expected: "booking:get",
		},
		{
			name:     "prefix with one part",
			prefix:   "booking:get",
			parts:    []string{"abc"},
			expected: "booking:get:abc",
		},
		{
			name:     "prefix with multiple parts",
			prefix:   "limiter",
			parts:    []string{"1.2.3.4", "agent"},
			expected: "limiter:1.2.3.4:agent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := shared.FilterByID("some-id", "id", "bookings")

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if first != second {
		t.Errorf("expected identical inputs to produce the same key, got %s and %s", first, second)
	}

	params.Page = 2

	third := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	if first == third {
		t.Error("expected different pagination to produce a different key")
	}
}
