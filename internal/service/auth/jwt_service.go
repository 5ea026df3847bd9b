package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the user using
	// the service's configured lifetime.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, username string) (string, error)

	// GenerateTokenWithTTL creates a signed JWT access token whose expiry
	// is now+ttl. A ttl of zero or less mints an already-expired token;
	// this is intentional so callers can exercise expiry behavior.
	GenerateTokenWithTTL(ctx context.Context, userID uuid.UUID, username string, ttl time.Duration) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns the claims if the token is valid, or an error if
	// validation fails (expired, invalid signature, malformed, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of a JWT access token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Subject is the username encoded in the token's sub claim. The
	// identity resolver re-checks it against the live user record, so a
	// token for a since-deleted user never authenticates.
	Subject string `json:"sub,omitempty"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
