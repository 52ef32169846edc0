package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dkroell/splitpot/internal/auth"
	"github.com/dkroell/splitpot/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// IdentityKey is the context key for the authenticated participant
const IdentityKey ContextKey = "identity"

// Identity is the authenticated participant attached to the request context
type Identity struct {
	ParticipantID int64
	EventID       int64
	IsAdmin       bool
}

// RequireAuth validates the Bearer token and attaches the participant
// identity to the request context
func RequireAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Authorization header required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Unauthorized(w, "Invalid authorization header format")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			identity := &Identity{
				ParticipantID: claims.ParticipantID,
				EventID:       claims.EventID,
				IsAdmin:       claims.IsAdmin,
			}
			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the authenticated participant from the request context
func GetIdentity(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*Identity)
	return identity, ok
}
