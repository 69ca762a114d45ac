package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campusbook/shared/constant"
)

func TestActiveSlotFilter(t *testing.T) {
	bookingDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("rejected bookings never occupy a slot", func(t *testing.T) {
		filter := activeSlotFilter("resource-1", bookingDate, "10AM-12PM", "")

		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "bookings.resource_id = :resource_id")
		assert.Contains(t, where, "bookings.booking_date = :booking_date")
		assert.Contains(t, where, "bookings.time_slot = :time_slot")
		assert.Contains(t, where, "bookings.status != :status")

		assert.Equal(t, "resource-1", args["resource_id"])
		assert.Equal(t, bookingDate, args["booking_date"])
		assert.Equal(t, "10AM-12PM", args["time_slot"])
		assert.Equal(t, constant.BookingStatusRejected, args["status"])
	})

	t.Run("no self exclusion without an exclude id", func(t *testing.T) {
		filter := activeSlotFilter("resource-1", bookingDate, "10AM-12PM", "")

		where, args := filter.GetWhereClause()

		assert.NotContains(t, where, ":exclude_id")
		assert.NotContains(t, args, "exclude_id")
	})

	t.Run("exclude id skips the booking's own row", func(t *testing.T) {
		filter := activeSlotFilter("resource-1", bookingDate, "10AM-12PM", "booking-1")

		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "bookings.id != :exclude_id")
		assert.Equal(t, "booking-1", args["exclude_id"])
	})
}
