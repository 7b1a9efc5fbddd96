package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID string, role domain.UserRole) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func contextProbe(gotID *string, gotRole *domain.UserRole) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotID = UserIDFromContext(r.Context())
		*gotRole = UserRoleFromContext(r.Context())
	})
}

func TestOptionalJWTAuth_ValidTokenPopulatesContext(t *testing.T) {
	var gotID string
	var gotRole domain.UserRole
	handler := OptionalJWTAuth(testSecret)(contextProbe(&gotID, &gotRole))

	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin-1", domain.RoleAdmin))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin-1", gotID)
	assert.Equal(t, domain.RoleAdmin, gotRole)
}

func TestOptionalJWTAuth_MissingTokenPassesAnonymously(t *testing.T) {
	var gotID string
	var gotRole domain.UserRole
	handler := OptionalJWTAuth(testSecret)(contextProbe(&gotID, &gotRole))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/listings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, gotID)
	assert.Empty(t, gotRole)
}

func TestOptionalJWTAuth_InvalidTokenPassesAnonymously(t *testing.T) {
	var gotID string
	var gotRole domain.UserRole
	handler := OptionalJWTAuth(testSecret)(contextProbe(&gotID, &gotRole))

	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, gotID)
	assert.Empty(t, gotRole)
}

func TestJWTAuth_MissingTokenRejected(t *testing.T) {
	handler := JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/listings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
