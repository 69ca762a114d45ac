package dto

import (
	"time"

	"campusbook/internal/domains/booking/model"
	"campusbook/shared"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ResourceID  string `json:"resource"     validate:"required,uuid"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	TimeSlot    string `json:"time_slot"    validate:"required,max=50"`
}

// ParseDate returns the booking date as a time in the application timezone.
// The validator has already checked the format.
func (c *CreateBookingRequest) ParseDate() (time.Time, error) {
	return timezone.Parse(constant.BookingDateFormat, c.BookingDate) //nolint:wrapcheck
}

// ToModel builds the booking owned by the caller. Status always starts
// PENDING, whatever the client sent.
func (c *CreateBookingRequest) ToModel(ownerID, username string, bookingDate time.Time) model.Booking {
	return model.Booking{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		ResourceID:  c.ResourceID,
		BookingDate: bookingDate,
		TimeSlot:    c.TimeSlot,
		Status:      constant.BookingStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateBookingStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	ResourceID  string `json:"resource"`
	BookingDate string `json:"booking_date"`
	TimeSlot    string `json:"time_slot"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.ResourceID = model.ResourceID
	r.BookingDate = timezone.Format(model.BookingDate, constant.BookingDateFormat)
	r.TimeSlot = model.TimeSlot
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
