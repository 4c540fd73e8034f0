package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/anikets/paisaledger/pkg/ledger"
)

// Claims is the token payload. The subject carries the owner id.
type Claims struct {
	jwt.RegisteredClaims
}

// Authenticator verifies bearer tokens and injects the owner identity into
// the request context. Token issuance lives outside this service.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator creates an Authenticator over an HS256 signing secret.
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Middleware rejects requests without a valid bearer token and stores the
// verified owner on the context for the handlers.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, "authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(w, "invalid authorization header format")
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			unauthorized(w, "invalid or expired token")
			return
		}

		ctx := ledger.WithOwner(r.Context(), ledger.Owner(claims.Subject))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
