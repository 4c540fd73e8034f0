package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/anikets/paisaledger/pkg/ledger"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	auth := NewAuthenticator(testSecret)

	var gotOwner ledger.Owner
	var ownerOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOwner, ownerOK = ledger.OwnerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := auth.Middleware(next)

	do := func(authHeader string) *httptest.ResponseRecorder {
		gotOwner, ownerOK = "", false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Valid Token Injects Owner", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.RegisteredClaims{
			Subject:   "user1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		rec := do("Bearer " + token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, ownerOK)
		assert.Equal(t, ledger.Owner("user1"), gotOwner)
	})

	t.Run("Missing Header", func(t *testing.T) {
		rec := do("")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, ownerOK)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		rec := do("Token abc")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.RegisteredClaims{
			Subject:   "user1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		rec := do("Bearer " + token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.RegisteredClaims{
			Subject:   "user1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})

		rec := do("Bearer " + token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Missing Subject", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		rec := do("Bearer " + token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
