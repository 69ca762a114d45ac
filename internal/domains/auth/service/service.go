package service

import (
	"context"
	"errors"
	"fmt"

	"campusbook/config"
	"campusbook/infras/jwt"
	"campusbook/infras/otel"
	activityService "campusbook/internal/domains/activity/service"
	"campusbook/internal/domains/auth/model/dto"
	userModel "campusbook/internal/domains/user/model"
	userDto "campusbook/internal/domains/user/model/dto"
	userRepo "campusbook/internal/domains/user/repository"
	"campusbook/policy"
	"campusbook/shared"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
	"campusbook/shared/password"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, actor policy.Actor) error
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, actor policy.Actor, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	activity   activityService.Activity
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, activity activityService.Activity, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		activity:   activity,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := userDto.NormalizeEmail(req.Email)

	exists, err := s.userRepo.Exist(ctx, emailFilter(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email is already registered") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(constant.ContextGuest, hashedPassword)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			return failure.BadRequestFromString("email is already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login exchanges credentials for a token pair and opens a session row in
// the activity log.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := userDto.NormalizeEmail(req.Email)

	user, err := s.userRepo.Get(ctx, emailFilter(email))
	if err != nil || user.ID == constant.Empty {
		log.Warn().Str("email", email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password") //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password") //nolint:wrapcheck
	}

	if user.Status != constant.UserStatusActive {
		return res, failure.BadRequestFromString("user account is deactivated") //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err = s.activity.RecordLogin(ctx, user.ID); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to record login")

		return res, fmt.Errorf("failed to record login: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Logout closes the caller's most recent open session. Calling it twice or
// without a session is fine, the tracker treats that as a no-op.
func (s *serviceImpl) Logout(ctx context.Context, actor policy.Actor) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !actor.Authenticated {
		return failure.Unauthorized("authentication required") //nolint:wrapcheck
	}

	return s.activity.RecordLogout(ctx, actor.ID) //nolint:wrapcheck
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, actor policy.Actor, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !actor.Authenticated {
		return failure.Unauthorized("authentication required") //nolint:wrapcheck
	}

	filter := shared.FilterByID(actor.ID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, actor.Email)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}
}
