package shipcompliance

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"fueleu-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupComplianceApp(t *testing.T, calc Calculator) (*fiber.App, *GormStore) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ShipCompliance{}))

	store := &GormStore{DB: db}
	h := &Handlers{Service: &Service{Store: store, Calculator: calc}}
	app := fiber.New()
	app.Post("/api/v1/ship-compliance/compute", h.Compute)
	app.Get("/api/v1/ship-compliance/year/:year", h.ListByYear)
	app.Get("/api/v1/ship-compliance/:shipId/:year", h.GetByShipAndYear)
	return app, store
}

func TestCompute_Success(t *testing.T) {
	app, _ := setupComplianceApp(t, &stubCalculator{cb: dec("424242.5")})

	body, _ := json.Marshal(map[string]interface{}{"shipId": " ship-001 ", "year": 2024, "routeId": "route-001"})
	req := httptest.NewRequest("POST", "/api/v1/ship-compliance/compute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	data := out["data"].(map[string]interface{})
	assert.Equal(t, "ship-001", data["shipId"])
	assert.Equal(t, "424242.5", data["cbGco2eq"])
}

func TestCompute_MissingShipID(t *testing.T) {
	app, _ := setupComplianceApp(t, &stubCalculator{})

	body, _ := json.Marshal(map[string]interface{}{"year": 2024})
	req := httptest.NewRequest("POST", "/api/v1/ship-compliance/compute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCompute_CalculatorFailure(t *testing.T) {
	app, _ := setupComplianceApp(t, &stubCalculator{err: assert.AnError})

	body, _ := json.Marshal(map[string]interface{}{"shipId": "ship-001", "year": 2024, "routeId": "route-404"})
	req := httptest.NewRequest("POST", "/api/v1/ship-compliance/compute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetByShipAndYear_NotFound(t *testing.T) {
	app, _ := setupComplianceApp(t, &stubCalculator{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/ship-compliance/ghost/2024", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListByYear(t *testing.T) {
	app, store := setupComplianceApp(t, &stubCalculator{})
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &models.ShipCompliance{ShipID: "s1", Year: 2024, CbGco2eq: dec("100")}))
	require.NoError(t, store.Save(ctx, &models.ShipCompliance{ShipID: "s2", Year: 2024, CbGco2eq: dec("-50")}))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/ship-compliance/year/2024", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	list := out["data"].([]interface{})
	assert.Len(t, list, 2)
}

func TestListByYear_Empty(t *testing.T) {
	app, _ := setupComplianceApp(t, &stubCalculator{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/ship-compliance/year/2031", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	list := out["data"].([]interface{})
	assert.Len(t, list, 0)
}
