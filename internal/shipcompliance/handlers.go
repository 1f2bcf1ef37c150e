package shipcompliance

import (
	"errors"
	"strconv"

	"fueleu-backend/internal/metrics"
	"fueleu-backend/internal/models"
	"fueleu-backend/internal/pkg/response"
	"fueleu-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
	Metrics *metrics.Metrics
}

// Compute POST /api/v1/ship-compliance/compute
// Body: { shipId, year, routeId? } — routeId defaults to shipId.
func (h *Handlers) Compute(c *fiber.Ctx) error {
	var body struct {
		ShipID  string `json:"shipId"`
		Year    int    `json:"year"`
		RouteID string `json:"routeId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "shipId, year and routeId are required", 400, nil)
	}
	shipID := validation.NormalizeShipID(body.ShipID)
	if !validation.IsValidShipID(shipID) {
		return response.Error(c, ErrShipIDRequired.Error(), 400, nil)
	}
	if !validation.IsValidYear(body.Year) {
		return response.Error(c, ErrYearMustBePositive.Error(), 400, nil)
	}
	routeID := validation.NormalizeShipID(body.RouteID)
	if routeID == "" {
		// Common case where a ship's reference route shares its ID.
		routeID = shipID
	}

	sc, err := h.Service.ComputeAndSave(c.Context(), shipID, body.Year, routeID)
	if err != nil {
		if errors.Is(err, ErrComplianceComputationFailed) {
			return response.Error(c, err.Error(), 422, nil)
		}
		return response.Error(c, "Failed to compute ship compliance", 500, nil)
	}
	h.Metrics.ObserveCBComputed()
	return response.Success(c, "Compliance balance computed", sc, nil)
}

// GetByShipAndYear GET /api/v1/ship-compliance/:shipId/:year
func (h *Handlers) GetByShipAndYear(c *fiber.Ctx) error {
	shipID := validation.NormalizeShipID(c.Params("shipId"))
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || !validation.IsValidYear(year) {
		return response.Error(c, ErrYearMustBePositive.Error(), 400, nil)
	}
	if !validation.IsValidShipID(shipID) {
		return response.Error(c, ErrShipIDRequired.Error(), 400, nil)
	}

	sc, err := h.Service.GetShipCompliance(c.Context(), shipID, year)
	if err != nil {
		return response.Error(c, "Failed to fetch ship compliance", 500, nil)
	}
	if sc == nil {
		return response.Error(c, ErrComplianceNotFound.Error(), 404, nil)
	}
	return response.Success(c, "Ship compliance fetched", sc, nil)
}

// ListByYear GET /api/v1/ship-compliance/year/:year
// Registered before /:shipId/:year to avoid route conflicts.
func (h *Handlers) ListByYear(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || !validation.IsValidYear(year) {
		return response.Error(c, ErrYearMustBePositive.Error(), 400, nil)
	}
	list, err := h.Service.ListShipCompliance(c.Context(), year)
	if err != nil {
		return response.Error(c, "Failed to fetch ship compliance list", 500, nil)
	}
	if list == nil {
		list = []models.ShipCompliance{}
	}
	return response.Success(c, "Ship compliance list fetched", list, nil)
}
