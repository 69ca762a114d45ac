package service

import (
	"context"
	"errors"
	"fmt"

	"campusbook/config"
	"campusbook/infras/otel"
	"campusbook/internal/domains/booking/model"
	"campusbook/internal/domains/booking/model/dto"
	"campusbook/internal/domains/booking/repository"
	resourceModel "campusbook/internal/domains/resource/model"
	resourceRepo "campusbook/internal/domains/resource/repository"
	"campusbook/policy"
	"campusbook/shared"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, actor policy.Actor, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, actor policy.Actor, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, actor policy.Actor, id string) (dto.BookingResponse, error)
	SetStatus(ctx context.Context, actor policy.Actor, req dto.UpdateBookingStatusRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, actor policy.Actor, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	resourceRepo resourceRepo.Resource
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Booking, resourceRepo resourceRepo.Resource, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		resourceRepo: resourceRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create books a slot for the caller. The conflict pre-check gives a fast
// rejection, the partial unique index on the table is the final arbiter
// under concurrent submissions. Either path surfaces the same slot-taken
// failure.
func (s *serviceImpl) Create(ctx context.Context, actor policy.Actor, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = policy.Check(actor, policy.ActionBookingCreate, policy.Target{}); err != nil {
		return res, err
	}

	bookingDate, err := req.ParseDate()
	if err != nil {
		return res, failure.BadRequestFromString("booking_date must be a valid date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	resourceExists, err := s.resourceRepo.Exist(ctx, shared.FilterByID(req.ResourceID, resourceModel.FieldID, resourceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check resource existence")

		return res, fmt.Errorf("failed to check resource existence: %w", err)
	}

	if !resourceExists {
		return res, failure.BadRequestFromString("resource does not exist") //nolint:wrapcheck
	}

	taken, err := s.repo.IsSlotTaken(ctx, req.ResourceID, bookingDate, req.TimeSlot, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot availability")

		return res, fmt.Errorf("failed to check slot availability: %w", err)
	}

	if taken {
		return res, failure.SlotTaken(req.BookingDate, req.TimeSlot) //nolint:wrapcheck
	}

	booking := req.ToModel(actor.ID, actor.Email, bookingDate)

	if err = s.repo.Insert(ctx, booking); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			// Lost the race, another creation committed first.
			return res, failure.SlotTaken(req.BookingDate, req.TimeSlot) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

// GetAll returns every booking regardless of owner. Any authenticated user
// needs to see occupancy before requesting a slot, so visibility is not
// restricted, only mutation is.
func (s *serviceImpl) GetAll(ctx context.Context, actor policy.Actor, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = policy.Check(actor, policy.ActionBookingList, policy.Target{}); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, actor policy.Actor, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = policy.Check(actor, policy.ActionBookingRead, policy.Target{ID: id}); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// SetStatus moves a booking to APPROVED or REJECTED. Staff only, ownership
// is irrelevant. No restriction is imposed on the source state, so staff can
// flip an approved booking back to rejected and the slot opens up again.
func (s *serviceImpl) SetStatus(ctx context.Context, actor policy.Actor, req dto.UpdateBookingStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = policy.Check(actor, policy.ActionBookingSetStatus, policy.Target{ID: id}); err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, actor.Email)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			// Re-activating a rejected booking whose slot has been taken
			// since would break the uniqueness guarantee.
			return res, failure.SlotTaken(booking.BookingDate.Format(constant.BookingDateFormat), booking.TimeSlot) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status
	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

// Delete withdraws a booking. The owner can withdraw their own request,
// staff can remove any.
func (s *serviceImpl) Delete(ctx context.Context, actor policy.Actor, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err = policy.Check(actor, policy.ActionBookingDelete, policy.Target{ID: id, OwnerID: booking.UserID}); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}
