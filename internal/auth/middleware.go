package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sachinbijalwan2892/Social-media-app/internal/models"
)

type contextKey string

// UserClaimsKey is the context key under which Authenticator stores the
// verified claims.
const UserClaimsKey = contextKey("userClaims")

// ClaimsFromContext retrieves the claims Authenticator attached to a
// request context.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(*Claims)
	return claims, ok
}

// Authenticator verifies the session token in the Authorization header and
// attaches its claims to the request context. A missing, malformed or
// expired token ends the request with 403.
func Authenticator(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if tokenStr == "" {
				deny(w, "Missing or invalid token")
				return
			}

			claims, err := ValidateJWT(secret, tokenStr)
			if err != nil {
				log.Warn().Err(err).Msg("Rejected session token")
				deny(w, "Missing or invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles allows the request through only when the authenticated
// role is in roles. It must run after Authenticator.
func RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				deny(w, "Missing or invalid token")
				return
			}
			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			deny(w, "Access Denied")
		})
	}
}

func deny(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
