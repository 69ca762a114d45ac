package service

import (
	"context"
	"fmt"

	"campusbook/config"
	"campusbook/infras/otel"
	"campusbook/internal/domains/resource/model"
	"campusbook/internal/domains/resource/model/dto"
	"campusbook/internal/domains/resource/repository"
	"campusbook/policy"
	"campusbook/shared"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetResource    = "resource:get"
	cacheGetAllResource = "resource:gets"
	cacheCountResource  = "resource:count"
)

type Resource interface {
	Create(ctx context.Context, actor policy.Actor, req dto.CreateResourceRequest) (dto.ResourceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetResourcesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ResourceResponse, error)
	Update(ctx context.Context, actor policy.Actor, req dto.UpdateResourceRequest, id string) error
	Delete(ctx context.Context, actor policy.Actor, id string) error
}

type serviceImpl struct {
	repo  repository.Resource
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Resource, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Resource {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, actor policy.Actor, req dto.CreateResourceRequest) (res dto.ResourceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = policy.Check(actor, policy.ActionResourceCreate, policy.Target{}); err != nil {
		return res, err
	}

	resource := req.ToModel(actor.Email)

	if err = s.repo.Insert(ctx, resource); err != nil {
		log.Error().Err(err).Msg("failed to create resource")

		return res, fmt.Errorf("failed to create resource: %w", err)
	}

	res.FromModel(resource)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllResource)
		shared.InvalidateCaches(c, s.cache, cacheCountResource)
	}()

	return res, nil
}

// GetAll lists resources. Listing is open to everyone, including
// unauthenticated callers, so no actor is taken here.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetResourcesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllResource, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for resources")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count resources")

		return res, fmt.Errorf("failed to count resources: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get resources")

		return res, fmt.Errorf("failed to get resources: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save resources to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountResource, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for resource count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count resources")

		return res, fmt.Errorf("failed to count resources: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save resource count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ResourceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetResource, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for resource")

		return res, nil
	}

	resource, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource")

		return res, fmt.Errorf("failed to get resource: %w", err)
	}

	if resource.ID == constant.Empty {
		return res, failure.NotFound("resource not found") //nolint:wrapcheck
	}

	res.FromModel(resource)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save resource to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, actor policy.Actor, req dto.UpdateResourceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = policy.Check(actor, policy.ActionResourceUpdate, policy.Target{ID: id}); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check resource existence")

		return fmt.Errorf("failed to check resource existence: %w", err)
	}

	if !exist {
		log.Error().Msg("resource not found")

		return failure.NotFound("resource not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, actor.Email)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update resource")

		return fmt.Errorf("failed to update resource: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetResource, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete resource cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllResource)
		shared.InvalidateCaches(c, s.cache, cacheCountResource)
	}()

	return nil
}

// Delete removes a resource. Dependent bookings go with it via the
// cascade on the foreign key.
func (s *serviceImpl) Delete(ctx context.Context, actor policy.Actor, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = policy.Check(actor, policy.ActionResourceDelete, policy.Target{ID: id}); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if resource exists")

		return fmt.Errorf("failed to check if resource exists: %w", err)
	}

	if !exist {
		log.Error().Msg("resource not found")

		return failure.NotFound("resource not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete resource")

		return fmt.Errorf("failed to delete resource: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetResource, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete resource from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllResource)
		shared.InvalidateCaches(c, s.cache, cacheCountResource)
	}()

	return nil
}
