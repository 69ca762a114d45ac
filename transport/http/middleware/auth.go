package middleware

import (
	"context"
	"errors"
	"net/http"

	"campusbook/infras/jwt"
	"campusbook/infras/otel"
	"campusbook/shared/constant"
	"campusbook/shared/failure"
	"campusbook/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Require(http.Handler) http.Handler
	Optional(http.Handler) http.Handler
}

// authImpl implements the Auth interface
type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

// NewAuthMiddleware creates a new middleware instance
func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

// Require validates the bearer token and rejects the request when it is
// missing or invalid. Claims are stored on the request context for the
// handlers to resolve the caller identity.
func (m *authImpl) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Token validation failed"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Error().Msg("JWT claims: required claim is empty")

			err := failure.Unauthorized("Invalid token claims")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = withClaims(ctx, claims)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// Optional resolves the caller identity when a valid bearer token is
// present but never rejects the request. Public routes use it so that an
// authenticated caller is still visible to the handlers.
func (m *authImpl) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.optional.middleware")

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil || claims.UserID == "" {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		ctx = withClaims(ctx, claims)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func withClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
	ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

	return ctx
}
