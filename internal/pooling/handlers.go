package pooling

import (
	"errors"

	"fueleu-backend/internal/metrics"
	"fueleu-backend/internal/models"
	"fueleu-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
	Metrics *metrics.Metrics
}

// CreatePool POST /api/v1/pools
// Body: { year, memberShipIds, name? }
func (h *Handlers) CreatePool(c *fiber.Ctx) error {
	var body struct {
		Year          int      `json:"year"`
		MemberShipIDs []string `json:"memberShipIds"`
		Name          string   `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, ErrMembersRequired.Error(), 400, nil)
	}

	pool, err := h.Service.CreatePool(c.Context(), body.Year, body.MemberShipIDs, body.Name)
	if err != nil {
		h.Metrics.ObservePoolCreation("error")
		var notFound *MemberComplianceNotFoundError
		switch {
		case errors.Is(err, ErrYearMustBePositive),
			errors.Is(err, ErrMembersRequired),
			errors.Is(err, ErrDuplicatePoolMember):
			return response.Error(c, err.Error(), 400, nil)
		case errors.As(err, &notFound):
			return response.Error(c, err.Error(), 404, nil)
		case errors.Is(err, ErrNegativePoolSum):
			return response.Error(c, err.Error(), 409, nil)
		}
		return response.Error(c, "Failed to create pool", 500, nil)
	}
	h.Metrics.ObservePoolCreation("ok")
	return response.SuccessCreated(c, "Pool created successfully", pool, nil)
}

// ListPools GET /api/v1/pools
func (h *Handlers) ListPools(c *fiber.Ctx) error {
	pools, err := h.Service.ListPools(c.Context())
	if err != nil {
		return response.Error(c, "Failed to fetch pools", 500, nil)
	}
	if pools == nil {
		pools = []models.Pool{}
	}
	return response.Success(c, "Pools fetched", pools, nil)
}

// GetPool GET /api/v1/pools/:poolId
func (h *Handlers) GetPool(c *fiber.Ctx) error {
	poolID, err := uuid.Parse(c.Params("poolId"))
	if err != nil {
		return response.Error(c, "Invalid UUID format for poolId", 400, nil)
	}
	pool, err := h.Service.GetPool(c.Context(), poolID)
	if err != nil {
		return response.Error(c, "Failed to fetch pool", 500, nil)
	}
	if pool == nil {
		return response.Error(c, ErrPoolNotFound.Error(), 404, nil)
	}
	return response.Success(c, "Pool fetched", pool, nil)
}
