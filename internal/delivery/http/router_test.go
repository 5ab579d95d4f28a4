package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinoverse/configs"
)

func setupTestRouter(t *testing.T, app configs.AppConfig) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = NewRequestValidator()

	SetupRoutes(e, &RouterConfig{
		App:            app,
		AuthHandler:    NewAuthHandler(nil),
		ContentHandler: NewContentHandler(nil, nil, nil, nil, nil, nil, nil),
		FinanceHandler: NewFinanceHandler(nil),
		TradeHandler:   NewTradeHandler(nil, nil),
		HabitHandler:   NewHabitHandler(nil, nil, nil),
		LifeOSHandler:  NewLifeOSHandler(nil, nil, nil, nil),
	})
	return e
}

func TestConfigEndpointExposesAnimationAssetURL(t *testing.T) {
	e := setupTestRouter(t, configs.AppConfig{
		AnimationAssetURL: "https://cdn.example.com/dino-animations",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://cdn.example.com/dino-animations", resp.Data["animation_asset_url"])
}

func TestHealthEndpoint(t *testing.T) {
	e := setupTestRouter(t, configs.AppConfig{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutesRejectAnonymousRequests(t *testing.T) {
	e := setupTestRouter(t, configs.AppConfig{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/trades", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
