package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/todoapi/todoapi/internal/api/shared"
	"github.com/todoapi/todoapi/internal/platform/logger"
	"github.com/todoapi/todoapi/internal/service/auth"
	"github.com/todoapi/todoapi/internal/store"
)

// unauthenticatedMessage is the single message returned for every
// authentication failure. Callers never learn which sub-check failed.
const unauthenticatedMessage = "Could not validate credentials"

// AuthMiddleware resolves the identity behind a bearer token for
// protected routes. A token only authenticates if its signature and
// expiry check out and its subject still resolves to a live user record,
// so an unexpired token for a deleted user is rejected like any other
// bad credential.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates the bearer token from the Authorization header,
// resolves it to a user, and adds the user ID to the request context.
// Every failure mode responds identically: 401 with a Bearer challenge.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		token, err := extractBearerToken(r)
		if err != nil {
			log.Debug("authentication failed: no usable bearer token", "error", err)
			respondUnauthenticated(w, r)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			log.Debug("authentication failed: token rejected", "error", err)
			respondUnauthenticated(w, r)
			return
		}

		// The token claim is only a hint; the live record is authoritative.
		user, err := m.userStore.GetByUsername(r.Context(), claims.Subject)
		if err != nil {
			if store.IsNotFoundError(err) {
				log.Debug("authentication failed: subject no longer exists",
					"subject", claims.Subject)
			} else {
				log.Error("authentication failed: user lookup error", "error", err)
			}
			respondUnauthenticated(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken pulls the token out of the Authorization header.
func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", auth.ErrInvalidToken
	}

	return parts[1], nil
}

// respondUnauthenticated writes the uniform 401 response with the Bearer
// challenge hint for client retry guidance.
func respondUnauthenticated(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	shared.RespondWithError(w, r, http.StatusUnauthorized, unauthenticatedMessage)
}

// GetUserID extracts the authenticated user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
