package banking

import (
	"bytes"
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

func setupBankingApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ComplianceBalance{}, &models.BankedAmount{}))

	h := &Handlers{Service: &Service{Store: &GormStore{DB: db}}}
	app := fiber.New()
	app.Post("/api/v1/banking/bank", h.Bank)
	app.Post("/api/v1/banking/apply", h.Apply)
	app.Get("/api/v1/banking/balance/:year", h.GetBalance)
	app.Get("/api/v1/banking/banked/:year", h.GetBankedAmount)
	return app, db
}

func doPost(t *testing.T, app *fiber.App, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func doGet(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestBank_InvalidInput(t *testing.T) {
	app, _ := setupBankingApp(t)

	code, out := doPost(t, app, "/api/v1/banking/bank", map[string]interface{}{"year": 2024, "amount": -100})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "error", out["status"])

	code, _ = doPost(t, app, "/api/v1/banking/bank", map[string]interface{}{"year": 0, "amount": 100})
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = doPost(t, app, "/api/v1/banking/apply", map[string]interface{}{"year": 2024, "amount": 0})
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestBankAndApply_Flow(t *testing.T) {
	app, db := setupBankingApp(t)
	require.NoError(t, db.Create(&models.ComplianceBalance{Year: 2024, CB: dec("1500000")}).Error)

	code, out := doPost(t, app, "/api/v1/banking/bank", map[string]interface{}{"year": 2024, "amount": 100000})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "success", out["status"])
	data := out["data"].(map[string]interface{})
	assert.Equal(t, "100000", data["bankedAmount"])

	code, out = doGet(t, app, "/api/v1/banking/balance/2024")
	assert.Equal(t, fiber.StatusOK, code)
	bal := out["data"].(map[string]interface{})
	assert.Equal(t, "1400000", bal["cb"])

	code, _ = doPost(t, app, "/api/v1/banking/apply", map[string]interface{}{"year": 2024, "amount": 50000})
	assert.Equal(t, fiber.StatusOK, code)

	code, out = doGet(t, app, "/api/v1/banking/banked/2024")
	assert.Equal(t, fiber.StatusOK, code)
	banked := out["data"].(map[string]interface{})
	assert.Equal(t, "50000", banked["bankedAmount"])
}

func TestApply_Insufficient(t *testing.T) {
	app, db := setupBankingApp(t)
	require.NoError(t, db.Create(&models.BankedAmount{Year: 2024, Amount: dec("50000")}).Error)

	code, out := doPost(t, app, "/api/v1/banking/apply", map[string]interface{}{"year": 2024, "amount": 999999})
	assert.Equal(t, fiber.StatusBadRequest, code)
	errObj := out["error"].(map[string]interface{})
	assert.Equal(t, "Insufficient banked surplus", errObj["message"])

	// State unchanged
	code, out = doGet(t, app, "/api/v1/banking/banked/2024")
	assert.Equal(t, fiber.StatusOK, code)
	banked := out["data"].(map[string]interface{})
	assert.Equal(t, "50000", banked["bankedAmount"])
}

func TestGetBalance_UnseenYear(t *testing.T) {
	app, _ := setupBankingApp(t)

	code, out := doGet(t, app, "/api/v1/banking/balance/9999")
	assert.Equal(t, fiber.StatusOK, code)
	bal := out["data"].(map[string]interface{})
	assert.EqualValues(t, 9999, bal["year"])
	assert.Equal(t, "0", bal["cb"])

	code, out = doGet(t, app, "/api/v1/banking/banked/9999")
	assert.Equal(t, fiber.StatusOK, code)
	banked := out["data"].(map[string]interface{})
	assert.Equal(t, "0", banked["bankedAmount"])
}

func TestGetBalance_InvalidYear(t *testing.T) {
	app, _ := setupBankingApp(t)
	code, _ := doGet(t, app, "/api/v1/banking/balance/abc")
	assert.Equal(t, fiber.StatusBadRequest, code)
}
