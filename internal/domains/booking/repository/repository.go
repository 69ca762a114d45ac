package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"campusbook/infras/otel"
	"campusbook/infras/postgres"
	"campusbook/internal/domains/booking/model"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	gRepo "campusbook/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	IsSlotTaken(ctx context.Context, resourceID string, bookingDate time.Time, timeSlot, excludeID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// IsSlotTaken reports whether an active booking already occupies the exact
// (resource, date, time slot) triple. Rejected bookings never count, so a
// rejected slot can be requested again. excludeID skips a booking's own row
// during re-validation.
func (repo *repositoryImpl) IsSlotTaken(ctx context.Context, resourceID string, bookingDate time.Time, timeSlot, excludeID string) (bool, error) {
	return repo.Exist(ctx, activeSlotFilter(resourceID, bookingDate, timeSlot, excludeID)) //nolint:wrapcheck
}

// activeSlotFilter matches every booking on the (resource, date, slot)
// triple except rejected ones, which free the slot for a new request.
func activeSlotFilter(resourceID string, bookingDate time.Time, timeSlot, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldResourceID,
			Operator: gDto.FilterOperatorEq,
			Value:    resourceID,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldBookingDate,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingDate,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldTimeSlot,
			Operator: gDto.FilterOperatorEq,
			Value:    timeSlot,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorNotEq,
			Value:    constant.BookingStatusRejected,
			Table:    model.TableName,
		},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}
