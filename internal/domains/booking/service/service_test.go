package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campusbook/config"
	"campusbook/infras/otel/mocks"
	bookingMocks "campusbook/internal/domains/booking/mocks"
	"campusbook/internal/domains/booking/model"
	"campusbook/internal/domains/booking/model/dto"
	"campusbook/internal/domains/booking/service"
	resourceMocks "campusbook/internal/domains/resource/mocks"
	"campusbook/policy"
	cacheMocks "campusbook/shared/cache/mocks"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

func staffActor() policy.Actor {
	return policy.Actor{ID: "staff-1", Email: "staff@campus.edu", Role: constant.RoleStaff, Authenticated: true}
}

func studentActor() policy.Actor {
	return policy.Actor{ID: "student-1", Email: "student@campus.edu", Role: constant.RoleStudent, Authenticated: true}
}

func pendingBooking() model.Booking {
	return model.Booking{
		ID:          "booking-1",
		UserID:      "student-1",
		ResourceID:  "resource-1",
		BookingDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:    "10AM-12PM",
		Status:      constant.BookingStatusPending,
	}
}

func newBookingService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *resourceMocks.MockResource, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockResourceRepo := resourceMocks.NewMockResource(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockResourceRepo, &config.Config{}, mockCache, mockOtel)

	return svc, mockRepo, mockResourceRepo, mockCache
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		ResourceID:  "resource-1",
		BookingDate: "2025-06-01",
		TimeSlot:    "10AM-12PM",
	}

	t.Run("free slot yields a pending booking owned by the caller", func(t *testing.T) {
		svc, mockRepo, mockResourceRepo, _ := newBookingService(t)

		mockResourceRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			IsSlotTaken(gomock.Any(), "resource-1", gomock.Any(), "10AM-12PM", "").
			Return(false, nil)

		var inserted model.Booking
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking
				return nil
			})

		res, err := svc.Create(context.Background(), studentActor(), req)

		assert.NoError(t, err)
		assert.Equal(t, "student-1", inserted.UserID)
		assert.Equal(t, constant.BookingStatusPending, inserted.Status)
		assert.Equal(t, "2025-06-01", res.BookingDate)
	})

	t.Run("occupied slot is rejected by the pre-check", func(t *testing.T) {
		svc, mockRepo, mockResourceRepo, _ := newBookingService(t)

		mockResourceRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			IsSlotTaken(gomock.Any(), "resource-1", gomock.Any(), "10AM-12PM", "").
			Return(true, nil)

		_, err := svc.Create(context.Background(), studentActor(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Contains(t, err.Error(), "10AM-12PM")
	})

	t.Run("losing the insert race surfaces the same conflict", func(t *testing.T) {
		svc, mockRepo, mockResourceRepo, _ := newBookingService(t)

		mockResourceRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			IsSlotTaken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert data (booking): %w", &pq.Error{Code: "23505"}))

		_, err := svc.Create(context.Background(), studentActor(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Contains(t, err.Error(), "already booked")
	})

	t.Run("unknown resource is a validation error", func(t *testing.T) {
		svc, _, mockResourceRepo, _ := newBookingService(t)

		mockResourceRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(context.Background(), studentActor(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("anonymous caller cannot book", func(t *testing.T) {
		svc, _, _, _ := newBookingService(t)

		_, err := svc.Create(context.Background(), policy.Anonymous(), req)

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("any authenticated user sees all bookings", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newBookingService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Booking{pendingBooking()}, nil)

		res, err := svc.GetAll(context.Background(), studentActor(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("anonymous caller is refused", func(t *testing.T) {
		svc, _, _, _ := newBookingService(t)

		_, err := svc.GetAll(context.Background(), policy.Anonymous(), params, gDto.FilterGroup{})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestBookingService_SetStatus(t *testing.T) {
	t.Run("staff can approve a pending booking", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)

		var updated map[string]any
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				updated = fields
				return nil
			})

		res, err := svc.SetStatus(context.Background(), staffActor(), dto.UpdateBookingStatusRequest{Status: constant.BookingStatusApproved}, "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusApproved, updated[model.FieldStatus])
		assert.Equal(t, constant.BookingStatusApproved, res.Status)
	})

	t.Run("staff can flip an approved booking back to rejected", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		approved := pendingBooking()
		approved.Status = constant.BookingStatusApproved

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approved, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.SetStatus(context.Background(), staffActor(), dto.UpdateBookingStatusRequest{Status: constant.BookingStatusRejected}, "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusRejected, res.Status)
	})

	t.Run("owner without staff role is forbidden", func(t *testing.T) {
		svc, _, _, _ := newBookingService(t)

		_, err := svc.SetStatus(context.Background(), studentActor(), dto.UpdateBookingStatusRequest{Status: constant.BookingStatusApproved}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("unknown booking returns not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.SetStatus(context.Background(), staffActor(), dto.UpdateBookingStatusRequest{Status: constant.BookingStatusApproved}, "ghost")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("owner can withdraw own booking", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), studentActor(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("another student cannot withdraw it", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		other := policy.Actor{ID: "student-2", Role: constant.RoleStudent, Authenticated: true}

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)

		err := svc.Delete(context.Background(), other, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("staff can remove any booking", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), staffActor(), "booking-1")

		assert.NoError(t, err)
	})
}
