package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campusbook/config"
	"campusbook/infras/otel/mocks"
	resourceMocks "campusbook/internal/domains/resource/mocks"
	"campusbook/internal/domains/resource/model"
	"campusbook/internal/domains/resource/model/dto"
	"campusbook/internal/domains/resource/service"
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

func labResource() model.Resource {
	return model.Resource{
		ID:       "resource-1",
		Name:     "Lab A",
		Type:     "LAB",
		Capacity: 30,
		Status:   constant.ResourceStatusAvailable,
	}
}

func TestResourceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	t.Run("staff can create a resource", func(t *testing.T) {
		var inserted model.Resource
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, resource model.Resource) error {
				inserted = resource
				return nil
			})

		res, err := svc.Create(context.Background(), staffActor(), dto.CreateResourceRequest{
			Name:     "Lab A",
			Type:     "LAB",
			Capacity: 30,
		})

		assert.NoError(t, err)
		assert.Equal(t, constant.ResourceStatusAvailable, inserted.Status)
		assert.Equal(t, "Lab A", res.Name)
	})

	t.Run("student cannot create a resource", func(t *testing.T) {
		_, err := svc.Create(context.Background(), studentActor(), dto.CreateResourceRequest{
			Name:     "Lab A",
			Type:     "LAB",
			Capacity: 30,
		})

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("anonymous gets unauthorized", func(t *testing.T) {
		_, err := svc.Create(context.Background(), policy.Anonymous(), dto.CreateResourceRequest{
			Name:     "Lab A",
			Type:     "LAB",
			Capacity: 30,
		})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestResourceService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("listing needs no actor at all", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Resource{labResource()}, nil)

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Resources, 1)
	})
}

func TestResourceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	t.Run("existing resource is returned", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(labResource(), nil)

		res, err := svc.Get(context.Background(), "resource-1")

		assert.NoError(t, err)
		assert.Equal(t, "Lab A", res.Name)
	})

	t.Run("unknown resource returns not found", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Resource{}, nil)

		_, err := svc.Get(context.Background(), "ghost")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestResourceService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	t.Run("staff can update", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(context.Background(), staffActor(), dto.UpdateResourceRequest{Name: "Lab B"}, "resource-1")

		assert.NoError(t, err)
	})

	t.Run("student cannot update", func(t *testing.T) {
		err := svc.Update(context.Background(), studentActor(), dto.UpdateResourceRequest{Name: "Lab B"}, "resource-1")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("unknown resource returns not found", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), staffActor(), dto.UpdateResourceRequest{Name: "Lab B"}, "ghost")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestResourceService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resourceMocks.NewMockResource(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	t.Run("staff can delete", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), staffActor(), "resource-1")

		assert.NoError(t, err)
	})

	t.Run("student cannot delete and no row is touched", func(t *testing.T) {
		err := svc.Delete(context.Background(), studentActor(), "resource-1")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}
