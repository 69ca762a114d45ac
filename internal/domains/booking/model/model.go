package model

import (
	"time"

	"campusbook/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldResourceID  = "resource_id"
	FieldBookingDate = "booking_date"
	FieldTimeSlot    = "time_slot"
	FieldStatus      = "status"
)

type Booking struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	ResourceID  string    `db:"resource_id"`
	BookingDate time.Time `db:"booking_date"`
	TimeSlot    string    `db:"time_slot"`
	Status      string    `db:"status"`
	model.Metadata
}
