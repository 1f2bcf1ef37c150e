package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fueleu-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRoutesApp(t *testing.T) *fiber.App {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Route{}, &models.Baseline{}))

	store := &GormStore{DB: db}
	require.NoError(t, Seed(context.Background(), store))

	h := &Handlers{Service: &Service{Store: store}}

	app := fiber.New()
	app.Get("/api/v1/routes", h.GetAllRoutes)
	app.Post("/api/v1/routes/:routeId/baseline", h.SetBaseline)
	app.Get("/api/v1/routes/:routeId/comparison", h.GetComparison)
	app.Get("/api/v1/comparisons", h.GetAllComparisons)
	return app
}

func routesGet(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]interface{}) {
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp, body
}

func routesPost(t *testing.T, app *fiber.App, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}
	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp, body
}

func TestGetAllRoutes_HTTP(t *testing.T) {
	app := setupRoutesApp(t)
	resp, body := routesGet(t, app, "/api/v1/routes")
	assert.Equal(t, 200, resp.StatusCode)
	data := body["data"].([]interface{})
	assert.Len(t, data, 3)
}

func TestSetBaselineAndComparison_HTTP(t *testing.T) {
	app := setupRoutesApp(t)

	resp, body := routesPost(t, app, "/api/v1/routes/route-001/baseline", nil)
	assert.Equal(t, 200, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "route-001", data["routeId"])
	assert.Equal(t, 85.5, data["ghgIntensity"])

	resp, body = routesGet(t, app, "/api/v1/routes/route-001/comparison?year=2024")
	assert.Equal(t, 200, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.InDelta(t, 0.0, data["percentDifference"].(float64), 1e-9)
	assert.Equal(t, true, data["isCompliant"])
}

func TestSetBaseline_RouteNotFound_HTTP(t *testing.T) {
	app := setupRoutesApp(t)
	resp, body := routesPost(t, app, "/api/v1/routes/route-404/baseline", nil)
	assert.Equal(t, 404, resp.StatusCode)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "Route not found", errObj["message"])
}

func TestGetComparison_MissingYear(t *testing.T) {
	app := setupRoutesApp(t)
	resp, _ := routesGet(t, app, "/api/v1/routes/route-001/comparison")
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGetComparison_NoBaseline_HTTP(t *testing.T) {
	app := setupRoutesApp(t)
	resp, _ := routesGet(t, app, "/api/v1/routes/route-002/comparison?year=2024")
	assert.Equal(t, 404, resp.StatusCode)
}

func TestGetAllComparisons_HTTP(t *testing.T) {
	app := setupRoutesApp(t)

	resp, _ := routesGet(t, app, "/api/v1/comparisons")
	assert.Equal(t, 404, resp.StatusCode)

	routesPost(t, app, "/api/v1/routes/route-003/baseline", nil)

	resp, body := routesGet(t, app, "/api/v1/comparisons?year=2024")
	assert.Equal(t, 200, resp.StatusCode)
	data := body["data"].([]interface{})
	assert.Len(t, data, 3)
}
