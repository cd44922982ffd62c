package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "user_role"
)

const defaultRole = "user"

// IdentityMiddleware resolves the calling user. Requests arriving through
// the API gateway carry a pre-resolved X-User-Id header; direct callers may
// instead present a bearer token signed by the identity service. Either way
// the handler sees a user id and role in the request context.
func IdentityMiddleware(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if headerID := r.Header.Get("X-User-Id"); headerID != "" {
				userID, err := uuid.Parse(headerID)
				if err != nil {
					logger.Debug("Malformed X-User-Id header", zap.Error(err))
					RespondWithError(w, http.StatusUnauthorized, "invalid user identity")
					return
				}

				role := r.Header.Get("X-User-Role")
				if role == "" {
					role = defaultRole
				}

				next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), userID.String(), role)))
				return
			}

			userID, role, ok := identityFromToken(r, jwtSecret, logger)
			if !ok {
				RespondWithError(w, http.StatusUnauthorized, "missing or invalid credentials")
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), userID, role)))
		})
	}
}

// ResolveIdentity populates the request context with the caller's identity
// when valid credentials are present, and passes anonymous or malformed
// requests through unauthenticated. It runs ahead of the rate limiter so
// authenticated traffic is keyed by user id on every route; access control
// stays with IdentityMiddleware on the protected route groups.
func ResolveIdentity(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if headerID := r.Header.Get("X-User-Id"); headerID != "" {
				if userID, err := uuid.Parse(headerID); err == nil {
					role := r.Header.Get("X-User-Role")
					if role == "" {
						role = defaultRole
					}
					next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), userID.String(), role)))
					return
				}
			}

			if userID, role, ok := identityFromToken(r, jwtSecret, logger); ok {
				next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), userID, role)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func withIdentity(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, UserRoleKey, role)
}

func identityFromToken(r *http.Request, jwtSecret string, logger *zap.Logger) (userID, role string, ok bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		logger.Debug("Missing authorization header")
		return "", "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		logger.Debug("Invalid authorization header format")
		return "", "", false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		logger.Debug("Token validation failed", zap.Error(err))
		return "", "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		logger.Debug("Failed to extract claims from token")
		return "", "", false
	}

	userID, ok = claims["user_id"].(string)
	if !ok {
		logger.Debug("Missing user_id in token claims")
		return "", "", false
	}
	if _, err := uuid.Parse(userID); err != nil {
		logger.Debug("Malformed user_id in token claims", zap.Error(err))
		return "", "", false
	}

	role, ok = claims["role"].(string)
	if !ok {
		role = defaultRole
	}

	return userID, role, true
}

// GetUserID extracts the calling user's id from the request context
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	raw, ok := ctx.Value(UserIDKey).(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// GetUserRole extracts the calling user's role from the request context
func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(UserRoleKey).(string)
	return role, ok
}
