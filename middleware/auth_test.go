package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footylab/league-system/models"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(userID int, role models.UserRole) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"name":    "Test User",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
}

func TestAuthenticate(t *testing.T) {
	mw := NewAuthMiddleware(testSecret)

	var gotUserID int
	var gotRole models.UserRole
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		gotUserID, err = GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		gotRole, err = GetUserRoleFromContext(r.Context())
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.Authenticate(next)

	t.Run("valid token reaches the handler with claims", func(t *testing.T) {
		token := signToken(t, testSecret, validClaims(42, models.RoleReferee))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 42, gotUserID)
		assert.Equal(t, models.RoleReferee, gotRole)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		// The same JSON error envelope the handlers use.
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), `"error"`)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token := signToken(t, "someone-elses-secret", validClaims(42, models.RoleReferee))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := validClaims(42, models.RoleReferee)
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		token := signToken(t, testSecret, claims)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthorize(t *testing.T) {
	mw := NewAuthMiddleware(testSecret)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.Authenticate(mw.Authorize(models.RoleLeagueAdmin, models.RoleTeamManager)(next))

	serve := func(role models.UserRole) *httptest.ResponseRecorder {
		token := signToken(t, testSecret, validClaims(7, role))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, serve(models.RoleLeagueAdmin).Code)
	assert.Equal(t, http.StatusOK, serve(models.RoleTeamManager).Code)
	assert.Equal(t, http.StatusForbidden, serve(models.RolePlayer).Code)

	refereeRec := serve(models.RoleReferee)
	assert.Equal(t, http.StatusForbidden, refereeRec.Code)
	assert.Equal(t, "application/json", refereeRec.Header().Get("Content-Type"))
	assert.Contains(t, refereeRec.Body.String(), `"error"`)
}

func TestGetUserIDFromContextRejectsBadClaims(t *testing.T) {
	t.Run("missing claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := GetUserIDFromContext(req.Context())
		assert.Error(t, err)
	})

	t.Run("non-positive user id", func(t *testing.T) {
		mw := NewAuthMiddleware(testSecret)
		token := signToken(t, testSecret, validClaims(0, models.RolePlayer))

		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := GetUserIDFromContext(r.Context())
			assert.Error(t, err)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	})
}
