package routes

import (
	"errors"
	"strconv"

	"fueleu-backend/internal/models"
	"fueleu-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// GetAllRoutes GET /api/v1/routes
func (h *Handlers) GetAllRoutes(c *fiber.Ctx) error {
	list, err := h.Service.GetAllRoutes(c.Context())
	if err != nil {
		return response.Error(c, "Failed to fetch routes", 500, nil)
	}
	if list == nil {
		list = []models.Route{}
	}
	return response.Success(c, "Routes fetched", list, nil)
}

// SetBaseline POST /api/v1/routes/:routeId/baseline
func (h *Handlers) SetBaseline(c *fiber.Ctx) error {
	routeID := c.Params("routeId")
	var body BaselineInput
	if err := c.BodyParser(&body); err != nil {
		// Empty body is fine; baseline falls back to route data.
		body = BaselineInput{}
	}

	baseline, err := h.Service.SetBaseline(c.Context(), routeID, body)
	if err != nil {
		if errors.Is(err, ErrRouteNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Failed to set baseline", 500, nil)
	}
	return response.Success(c, "Baseline set successfully", baseline, nil)
}

// GetComparison GET /api/v1/routes/:routeId/comparison?year=
func (h *Handlers) GetComparison(c *fiber.Ctx) error {
	routeID := c.Params("routeId")
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		return response.Error(c, "year must be a valid positive number", 400, nil)
	}

	data, err := h.Service.GetComparison(c.Context(), routeID, year)
	if err != nil {
		switch {
		case errors.Is(err, ErrRouteNotFound), errors.Is(err, ErrBaselineNotFound):
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Failed to fetch comparison", 500, nil)
	}
	return response.Success(c, "Comparison fetched", data, nil)
}

// GetAllComparisons GET /api/v1/comparisons?year=
func (h *Handlers) GetAllComparisons(c *fiber.Ctx) error {
	var year *int
	if q := c.Query("year"); q != "" {
		y, err := strconv.Atoi(q)
		if err != nil || y <= 0 {
			return response.Error(c, "year must be a valid positive number", 400, nil)
		}
		year = &y
	}

	data, err := h.Service.GetAllComparisons(c.Context(), year)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoBaselineRoute), errors.Is(err, ErrBaselineNotFound):
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Failed to fetch comparisons", 500, nil)
	}
	if data == nil {
		data = []ComparisonData{}
	}
	return response.Success(c, "Comparisons fetched", data, nil)
}
