package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campusbook/config"
	"campusbook/infras/jwt"
	jwtMocks "campusbook/infras/jwt/mocks"
	"campusbook/infras/otel/mocks"
	activityMocks "campusbook/internal/domains/activity/service/mocks"
	"campusbook/internal/domains/auth/model/dto"
	"campusbook/internal/domains/auth/service"
	userMocks "campusbook/internal/domains/user/mocks"
	userModel "campusbook/internal/domains/user/model"
	"campusbook/policy"
	"campusbook/shared/constant"
	"campusbook/shared/failure"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"
)

func validUser() userModel.User {
	return userModel.User{
		ID:       "user-id-123",
		Name:     "Test Student",
		Email:    "test@campus.edu",
		Password: "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
		Role:     constant.RoleStudent,
		Status:   constant.UserStatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func newAuthService(t *testing.T) (service.Auth, *userMocks.MockUser, *activityMocks.MockActivity, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockActivity := activityMocks.NewMockActivity(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockActivity, &config.Config{}, mockOtel, mockJWT)

	return svc, mockUserRepo, mockActivity, mockJWT
}

func TestAuthService_Register(t *testing.T) {
	t.Run("signup forces an active student account", func(t *testing.T) {
		svc, mockUserRepo, _, _ := newAuthService(t)

		mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		var inserted userModel.User
		mockUserRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				inserted = user
				return nil
			})

		err := svc.Register(context.Background(), dto.RegisterRequest{
			Name:     "New Student",
			Email:    "New.Student@Campus.EDU",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, constant.RoleStudent, inserted.Role)
		assert.Equal(t, constant.UserStatusActive, inserted.Status)
		assert.Equal(t, "new.student@campus.edu", inserted.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc, mockUserRepo, _, _ := newAuthService(t)

		mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Register(context.Background(), dto.RegisterRequest{
			Name:     "New Student",
			Email:    "test@campus.edu",
			Password: "password123",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(mockUserRepo *userMocks.MockUser, mockActivity *activityMocks.MockActivity, mockJWT *jwtMocks.MockJWT)
		wantErr   bool
	}{
		{
			name: "successful login records a session",
			req: dto.LoginRequest{
				Email:    "test@campus.edu",
				Password: "password",
			},
			setupMock: func(mockUserRepo *userMocks.MockUser, mockActivity *activityMocks.MockActivity, mockJWT *jwtMocks.MockJWT) {
				user := validUser()

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				mockActivity.EXPECT().
					RecordLogin(gomock.Any(), user.ID).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "user not found",
			req: dto.LoginRequest{
				Email:    "nonexistent@campus.edu",
				Password: "password",
			},
			setupMock: func(mockUserRepo *userMocks.MockUser, _ *activityMocks.MockActivity, _ *jwtMocks.MockJWT) {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("user not found"))
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "test@campus.edu",
				Password: "wrongpassword",
			},
			setupMock: func(mockUserRepo *userMocks.MockUser, _ *activityMocks.MockActivity, _ *jwtMocks.MockJWT) {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser(), nil)
			},
			wantErr: true,
		},
		{
			name: "inactive account is refused",
			req: dto.LoginRequest{
				Email:    "test@campus.edu",
				Password: "password",
			},
			setupMock: func(mockUserRepo *userMocks.MockUser, _ *activityMocks.MockActivity, _ *jwtMocks.MockJWT) {
				inactiveUser := validUser()
				inactiveUser.Status = constant.UserStatusInactive

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactiveUser, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockUserRepo, mockActivity, mockJWT := newAuthService(t)

			tt.setupMock(mockUserRepo, mockActivity, mockJWT)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", res.AccessToken)
				assert.Equal(t, "refresh-token", res.RefreshToken)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("logout delegates to the activity tracker", func(t *testing.T) {
		svc, _, mockActivity, _ := newAuthService(t)

		mockActivity.EXPECT().RecordLogout(gomock.Any(), "user-id-123").Return(nil)

		actor := policy.Actor{ID: "user-id-123", Role: constant.RoleStudent, Authenticated: true}

		err := svc.Logout(context.Background(), actor)

		assert.NoError(t, err)
	})

	t.Run("anonymous logout is refused", func(t *testing.T) {
		svc, _, _, _ := newAuthService(t)

		err := svc.Logout(context.Background(), policy.Anonymous())

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("valid refresh token yields a new pair", func(t *testing.T) {
		svc, _, _, mockJWT := newAuthService(t)

		mockJWT.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token is unauthorized", func(t *testing.T) {
		svc, _, _, mockJWT := newAuthService(t)

		mockJWT.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, errors.New("invalid token"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	actor := policy.Actor{ID: "user-id-123", Email: "test@campus.edu", Role: constant.RoleStudent, Authenticated: true}

	t.Run("correct current password updates the hash", func(t *testing.T) {
		svc, mockUserRepo, _, _ := newAuthService(t)

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
		mockUserRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.ChangePassword(context.Background(), actor, dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "newpassword123",
		})

		assert.NoError(t, err)
	})

	t.Run("wrong current password is rejected", func(t *testing.T) {
		svc, mockUserRepo, _, _ := newAuthService(t)

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)

		err := svc.ChangePassword(context.Background(), actor, dto.ChangePasswordRequest{
			CurrentPassword: "wrongpassword",
			NewPassword:     "newpassword123",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
