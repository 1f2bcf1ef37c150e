package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fueleu-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	cfg := &config.Config{Env: "test", Port: "0"}
	fiberApp, db, rdb, err := CreateApp(cfg)
	require.NoError(t, err)
	require.Nil(t, db)
	require.Nil(t, rdb)
	return fiberApp
}

func appGet(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func appPost(t *testing.T, app *fiber.App, path string, payload interface{}) (*http.Response, []byte) {
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestCreateApp_HealthAndMetrics(t *testing.T) {
	app := setupApp(t)

	resp, raw := appGet(t, app, "/health/json")
	assert.Equal(t, 200, resp.StatusCode)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "fueleu-compliance-api", out["service"])

	resp, raw = appGet(t, app, "/metrics")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(raw), "go_goroutines")
}

func TestCreateApp_SeedsRoutesWithoutDB(t *testing.T) {
	app := setupApp(t)

	resp, raw := appGet(t, app, "/api/v1/routes")
	assert.Equal(t, 200, resp.StatusCode)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Len(t, out["data"].([]interface{}), 3)
}

// Full flow across modules: compute a ship CB from a seeded route, bank part
// of the ledger surplus, then pool two ships.
func TestCreateApp_EndToEndFlow(t *testing.T) {
	app := setupApp(t)

	resp, _ := appPost(t, app, "/api/v1/ship-compliance/compute", map[string]interface{}{
		"shipId": "ship-001", "year": 2024, "routeId": "route-001",
	})
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = appPost(t, app, "/api/v1/ship-compliance/compute", map[string]interface{}{
		"shipId": "ship-002", "year": 2024, "routeId": "route-003",
	})
	assert.Equal(t, 200, resp.StatusCode)

	resp, raw := appGet(t, app, "/api/v1/ship-compliance/year/2024")
	assert.Equal(t, 200, resp.StatusCode)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Len(t, out["data"].([]interface{}), 2)

	resp, _ = appPost(t, app, "/api/v1/banking/bank", map[string]interface{}{
		"year": 2024, "amount": 1000,
	})
	assert.Equal(t, 200, resp.StatusCode)
	resp, raw = appGet(t, app, "/api/v1/banking/banked/2024")
	assert.Equal(t, 200, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "1000", out["data"].(map[string]interface{})["bankedAmount"])

	resp, raw = appPost(t, app, "/api/v1/pools", map[string]interface{}{
		"year": 2024, "memberShipIds": []string{"ship-001", "ship-002"},
	})
	assert.Equal(t, 201, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &out))
	members := out["data"].(map[string]interface{})["members"].([]interface{})
	assert.Len(t, members, 2)
}
