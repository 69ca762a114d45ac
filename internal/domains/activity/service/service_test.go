package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campusbook/config"
	"campusbook/infras/otel/mocks"
	activityMocks "campusbook/internal/domains/activity/mocks"
	"campusbook/internal/domains/activity/model"
	"campusbook/internal/domains/activity/service"
	"campusbook/policy"
	cacheMocks "campusbook/shared/cache/mocks"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

func newActivityService(t *testing.T) (service.Activity, *activityMocks.MockActivity, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := activityMocks.NewMockActivity(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestActivityService_RecordLogin(t *testing.T) {
	svc, mockRepo, _ := newActivityService(t)

	var inserted model.UserActivity
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, activity model.UserActivity) error {
			inserted = activity
			return nil
		})

	err := svc.RecordLogin(context.Background(), "student-1")

	assert.NoError(t, err)
	assert.Equal(t, "student-1", inserted.UserID)
	assert.False(t, inserted.LoginTime.IsZero())
	assert.Nil(t, inserted.LogoutTime)
}

func TestActivityService_RecordLogout(t *testing.T) {
	t.Run("closes the most recent open session", func(t *testing.T) {
		svc, mockRepo, _ := newActivityService(t)

		open := model.UserActivity{
			ID:        "activity-2",
			UserID:    "student-1",
			LoginTime: time.Now(),
		}

		mockRepo.EXPECT().LatestOpen(gomock.Any(), "student-1").Return(open, nil)

		var updated map[string]any
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				updated = fields
				return nil
			})

		err := svc.RecordLogout(context.Background(), "student-1")

		assert.NoError(t, err)
		assert.Contains(t, updated, model.FieldLogoutTime)
	})

	t.Run("logout without an open session is a silent no-op", func(t *testing.T) {
		svc, mockRepo, _ := newActivityService(t)

		mockRepo.EXPECT().LatestOpen(gomock.Any(), "student-1").Return(model.UserActivity{}, nil)

		err := svc.RecordLogout(context.Background(), "student-1")

		assert.NoError(t, err)
	})
}

func TestActivityService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: model.FieldLoginTime, SortDir: gDto.SortDirDesc}

	t.Run("staff sees activity newest first", func(t *testing.T) {
		svc, mockRepo, mockCache := newActivityService(t)

		staff := policy.Actor{ID: "staff-1", Role: constant.RoleStaff, Authenticated: true}

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.UserActivity{
			{ID: "activity-2", UserID: "student-1", LoginTime: time.Now()},
			{ID: "activity-1", UserID: "student-1", LoginTime: time.Now().Add(-time.Hour)},
		}, nil)

		res, err := svc.GetAll(context.Background(), staff, params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Activities, 2)
		assert.Equal(t, "activity-2", res.Activities[0].ID)
	})

	t.Run("defaults to newest login first when no sort is given", func(t *testing.T) {
		svc, mockRepo, mockCache := newActivityService(t)

		staff := policy.Actor{ID: "staff-1", Role: constant.RoleStaff, Authenticated: true}

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

		var forwarded gDto.QueryParams
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.UserActivity, error) {
				forwarded = p
				return nil, nil
			})

		_, err := svc.GetAll(context.Background(), staff, gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, model.FieldLoginTime, forwarded.SortBy)
		assert.Equal(t, gDto.SortDirDesc, forwarded.SortDir)
	})

	t.Run("student is forbidden", func(t *testing.T) {
		svc, _, _ := newActivityService(t)

		student := policy.Actor{ID: "student-1", Role: constant.RoleStudent, Authenticated: true}

		_, err := svc.GetAll(context.Background(), student, params, gDto.FilterGroup{})

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}
