package repository

import (
	"testing"

	"campusbook/shared/dto"
)

type orderedEntity struct {
	ID          string `db:"id"`
	BookingDate string `db:"booking_date"`
	UserName    string `db:"user_name" table:"users" column:"name"`
}

func TestRepository_OrderClause(t *testing.T) {
	repo := NewRepository[orderedEntity]("OrderedEntity", "bookings", "id", nil, nil)

	tests := []struct {
		name     string
		params   dto.QueryParams
		expected string
	}{
		{
			name:     "mapped column is table qualified",
			params:   dto.QueryParams{SortBy: "booking_date", SortDir: dto.SortDirDesc},
			expected: "ORDER BY bookings.booking_date DESC",
		},
		{
			name:     "joined column resolves through its alias",
			params:   dto.QueryParams{SortBy: "user_name", SortDir: dto.SortDirAsc},
			expected: "ORDER BY users.name ASC",
		},
		{
			name:     "unmapped column is ignored",
			params:   dto.QueryParams{SortBy: "password", SortDir: dto.SortDirAsc},
			expected: "",
		},
		{
			name:     "sql in sort_by never reaches the query",
			params:   dto.QueryParams{SortBy: "booking_date; DROP TABLE bookings", SortDir: dto.SortDirDesc},
			expected: "",
		},
		{
			name:     "sql in sort_dir never reaches the query",
			params:   dto.QueryParams{SortBy: "booking_date", SortDir: "DESC; --"},
			expected: "",
		},
		{
			name:     "no sort requested",
			params:   dto.QueryParams{},
			expected: "",
		},
		{
			name:     "sort without a direction",
			params:   dto.QueryParams{SortBy: "booking_date"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repo.orderClause(tt.params); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
