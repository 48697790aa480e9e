package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth struct {
	tokens *utils.TokenManager
	err    error
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*utils.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tokens.ValidateJWT(token)
}

func newRouter(auth Authenticator, page models.Page) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestTracker(), RequestLogger())
	r.GET("/protected", AuthMiddleware(auth), RequirePage(page), func(c *gin.Context) {
		id, _ := GetIdentity(c)
		claims, _ := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"username": id.Username, "jti": claims.ID})
	})
	return r
}

func tokenFor(t *testing.T, tm *utils.TokenManager, role models.Role) string {
	t.Helper()
	token, _, err := tm.GenerateJWT(models.Identity{UserID: "u1", Username: "ana", Role: role})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	tm := utils.NewTokenManager("secret", time.Hour)

	tests := []struct {
		name   string
		header string
		err    error
		page   models.Page
		want   int
	}{
		{"no header", "", nil, models.PagePatients, http.StatusUnauthorized},
		{"not bearer", "Basic abc", nil, models.PagePatients, http.StatusUnauthorized},
		{"garbage token", "Bearer abc", nil, models.PagePatients, http.StatusUnauthorized},
		{"valid token", "Bearer " + tokenFor(t, tm, models.RoleReceptionist), nil, models.PagePatients, http.StatusOK},
		{"role without access", "Bearer " + tokenFor(t, tm, models.RoleReceptionist), nil, models.PageBilling, http.StatusForbidden},
		{"dentist cannot manage users", "Bearer " + tokenFor(t, tm, models.RoleDentist), nil, models.PageUsers, http.StatusForbidden},
		{"admin manages users", "Bearer " + tokenFor(t, tm, models.RoleAdmin), nil, models.PageUsers, http.StatusOK},
		{"revoked", "Bearer x", models.ErrTokenRevoked, models.PagePatients, http.StatusUnauthorized},
		{"revocation store down", "Bearer x", models.ErrAuthUnavailable, models.PagePatients, http.StatusServiceUnavailable},
		{"other failure", "Bearer x", errors.New("boom"), models.PagePatients, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&stubAuth{tokens: tm, err: tt.err}, tt.page)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want != http.StatusOK {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}

func TestRequirePage_WithoutIdentity(t *testing.T) {
	r := gin.New()
	r.GET("/x", RequirePage(models.PagePatients), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(requestIDKey)) })

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})
}

func TestRequestLogger_UnmatchedRoute(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
