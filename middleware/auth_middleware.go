package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/studyplanner/planner-api/auth"
	"github.com/studyplanner/planner-api/config"
)

type contextKey string

const claimsKey = contextKey("claims")

// Authenticate guards a handler with bearer-token verification: 401 when no
// token is present, 403 when the token fails signature or expiry checks. On
// success the decoded claims are attached to the request context.
func Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := auth.VerifyToken(token, []byte(config.Env.JWTSecret))
		if err != nil {
			log.Printf("Authenticate: token rejected: %v", err)
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// ClaimsFromContext returns the identity attached by Authenticate.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
