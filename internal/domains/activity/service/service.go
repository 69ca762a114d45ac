package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"campusbook/config"
	"campusbook/infras/otel"
	"campusbook/internal/domains/activity/model"
	"campusbook/internal/domains/activity/model/dto"
	"campusbook/internal/domains/activity/repository"
	"campusbook/policy"
	"campusbook/shared"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllActivity = "activity:gets"
	cacheCountActivity  = "activity:count"
)

type Activity interface {
	RecordLogin(ctx context.Context, userID string) error
	RecordLogout(ctx context.Context, userID string) error
	GetAll(ctx context.Context, actor policy.Actor, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetActivitiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo  repository.Activity
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Activity, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Activity {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// RecordLogin opens a new session row for the user.
func (s *serviceImpl) RecordLogin(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordLogin")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Insert(ctx, dto.NewLoginActivity(userID, userID)); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("failed to record login activity")

		return fmt.Errorf("failed to record login activity: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllActivity)
		shared.InvalidateCaches(c, s.cache, cacheCountActivity)
	}()

	return nil
}

// RecordLogout closes the most recent open session. Logging out without an
// open session is tolerated silently, an earlier open session stays open.
func (s *serviceImpl) RecordLogout(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordLogout")
	defer scope.End()
	defer scope.TraceIfError(err)

	open, err := s.repo.LatestOpen(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("failed to look up open session")

		return fmt.Errorf("failed to look up open session: %w", err)
	}

	if open.ID == constant.Empty {
		log.Info().Str("userID", userID).Msg("logout without an open session, nothing to close")

		return nil
	}

	closeReq := dto.CloseActivityRequest{LogoutTime: timezone.Now()}
	updatedFields := shared.TransformFields(closeReq, userID)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(open.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("failed to close session")

		return fmt.Errorf("failed to close session: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllActivity)
		shared.InvalidateCaches(c, s.cache, cacheCountActivity)
	}()

	return nil
}

// GetAll lists sessions, newest login first unless the caller picks
// another order.
func (s *serviceImpl) GetAll(ctx context.Context, actor policy.Actor, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetActivitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = policy.Check(actor, policy.ActionActivityList, policy.Target{}); err != nil {
		return res, err
	}

	if req.SortBy == "" {
		req.SortBy = model.FieldLoginTime
		req.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllActivity, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for activities")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count activities")

		return res, fmt.Errorf("failed to count activities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activities")

		return res, fmt.Errorf("failed to get activities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save activities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountActivity, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for activity count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count activities")

		return res, fmt.Errorf("failed to count activities: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save activity count to cache")
		}
	}()

	return res, nil
}
