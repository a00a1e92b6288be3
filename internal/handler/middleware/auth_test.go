//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-orders/internal/domain/auth"
	"marketplace-orders/internal/handler/middleware"
	"marketplace-orders/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	identities map[string]auth.Identity
	seen       []string
}

func (v *stubValidator) ValidateToken(token string) (auth.Identity, error) {
	v.seen = append(v.seen, token)
	id, ok := v.identities[token]
	if !ok {
		return auth.Identity{}, errors.New("token is expired")
	}
	return id, nil
}

func newAuthRouter(v *stubValidator, mw func(*middleware.AuthMiddleware) gin.HandlerFunc) (*gin.Engine, *auth.Caller) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var got auth.Caller
	r.GET("/", mw(middleware.NewAuthMiddleware(v)), func(c *gin.Context) {
		got = middleware.GetCaller(c, "ada@example.com")
		c.Status(http.StatusNoContent)
	})
	return r, &got
}

func TestRequireAuth(t *testing.T) {
	identity := auth.Identity{UserID: uuid.New(), Email: "provider@example.com"}
	requireAuth := func(m *middleware.AuthMiddleware) gin.HandlerFunc { return m.RequireAuth() }

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
		wantToken  string
	}{
		{name: "bearer header", header: "Bearer good", wantStatus: http.StatusNoContent, wantToken: "good"},
		{name: "cookie wins over header", header: "Bearer bad", cookie: "good", wantStatus: http.StatusNoContent, wantToken: "good"},
		{name: "missing token", wantStatus: http.StatusUnauthorized},
		{name: "non bearer scheme", header: "Basic good", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized, wantToken: "bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &stubValidator{identities: map[string]auth.Identity{"good": identity}}
			r, got := newAuthRouter(v, requireAuth)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantToken != "" {
				assert.Equal(t, []string{tt.wantToken}, v.seen)
			} else {
				assert.Empty(t, v.seen)
			}
			if tt.wantStatus == http.StatusNoContent {
				assert.True(t, got.Is(identity.UserID))
				assert.Equal(t, "provider@example.com", got.Identity.Email)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	identity := auth.Identity{UserID: uuid.New(), Email: "client@example.com"}
	optional := func(m *middleware.AuthMiddleware) gin.HandlerFunc { return m.OptionalAuth() }

	t.Run("valid token resolves the identity", func(t *testing.T) {
		v := &stubValidator{identities: map[string]auth.Identity{"good": identity}}
		r, got := newAuthRouter(v, optional)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.True(t, got.Is(identity.UserID))
		assert.Equal(t, "ada@example.com", got.ClaimedEmail)
	})

	t.Run("invalid token falls back to anonymous", func(t *testing.T) {
		v := &stubValidator{}
		r, got := newAuthRouter(v, optional)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.False(t, got.IsAuthenticated())
		assert.Equal(t, "ada@example.com", got.ClaimedEmail)
	})

	t.Run("no token skips validation", func(t *testing.T) {
		v := &stubValidator{}
		r, got := newAuthRouter(v, optional)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, v.seen)
		assert.False(t, got.IsAuthenticated())
	})
}

func TestGetCaller_UserIDOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	userID := uuid.New()
	c.Set("user_id", userID)

	caller := middleware.GetCaller(c, "")

	assert.True(t, caller.Is(userID))
	assert.Empty(t, caller.Identity.Email)
}
