package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinoverse/configs"
	"dinoverse/internal/domain"
)

func setup(t *testing.T) {
	t.Helper()
	Configure(configs.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour})
}

func invoke(mw echo.MiddlewareFunc, req *http.Request) (echo.Context, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(func(c echo.Context) error { return nil })(c)
	return c, err
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	setup(t)
	userID := uuid.New()
	token, err := GenerateJWT(userID, domain.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	c, err := invoke(AuthMiddleware, req)
	require.NoError(t, err)
	assert.Equal(t, userID, c.Get("user_id"))
	assert.Equal(t, domain.RoleAdmin, c.Get("role"))
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	setup(t)
	token, err := GenerateJWT(uuid.New(), domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	_, err = invoke(AuthMiddleware, req)
	assert.NoError(t, err)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	setup(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := invoke(AuthMiddleware, req)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	setup(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	_, err := invoke(AuthMiddleware, req)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAdminMiddleware_RejectsNonAdmin(t *testing.T) {
	setup(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("role", domain.RoleUser)

	err := AdminMiddleware(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestAdminMiddleware_AllowsAdmin(t *testing.T) {
	setup(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("role", domain.RoleAdmin)

	err := AdminMiddleware(func(c echo.Context) error { return nil })(c)
	assert.NoError(t, err)
}
