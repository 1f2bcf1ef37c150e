package banking

import (
	"errors"
	"strconv"

	"fueleu-backend/internal/metrics"
	"fueleu-backend/internal/pkg/response"
	"fueleu-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type Handlers struct {
	Service *Service
	Metrics *metrics.Metrics
}

type bankRequest struct {
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
}

// Bank POST /api/v1/banking/bank
func (h *Handlers) Bank(c *fiber.Ctx) error {
	var body bankRequest
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "year and amount are required", 400, nil)
	}
	if !validation.IsValidYear(body.Year) {
		return response.Error(c, ErrYearMustBePositive.Error(), 400, nil)
	}
	amount := decimal.NewFromFloat(body.Amount)
	if !validation.IsPositiveAmount(amount) {
		return response.Error(c, ErrAmountMustBePositive.Error(), 400, nil)
	}

	if err := h.Service.BankSurplus(c.Context(), body.Year, amount); err != nil {
		h.Metrics.ObserveBankingOp("bank", "error")
		return response.Error(c, "Failed to bank surplus", 500, nil)
	}
	h.Metrics.ObserveBankingOp("bank", "ok")

	banked, err := h.Service.GetBankedAmount(c.Context(), body.Year)
	if err != nil {
		return response.Error(c, "Failed to bank surplus", 500, nil)
	}
	return response.Success(c, "Surplus banked successfully", fiber.Map{
		"year":         body.Year,
		"bankedAmount": banked,
	}, nil)
}

// Apply POST /api/v1/banking/apply
func (h *Handlers) Apply(c *fiber.Ctx) error {
	var body bankRequest
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "year and amount are required", 400, nil)
	}
	if !validation.IsValidYear(body.Year) {
		return response.Error(c, ErrYearMustBePositive.Error(), 400, nil)
	}
	amount := decimal.NewFromFloat(body.Amount)
	if !validation.IsPositiveAmount(amount) {
		return response.Error(c, ErrAmountMustBePositive.Error(), 400, nil)
	}

	if err := h.Service.ApplyBankedSurplus(c.Context(), body.Year, amount); err != nil {
		h.Metrics.ObserveBankingOp("apply", "error")
		if errors.Is(err, ErrInsufficientBankedSurplus) {
			return response.Error(c, err.Error(), 400, nil)
		}
		return response.Error(c, "Failed to apply banked surplus", 500, nil)
	}
	h.Metrics.ObserveBankingOp("apply", "ok")

	return response.Success(c, "Banked surplus applied successfully", fiber.Map{
		"year":          body.Year,
		"appliedAmount": amount,
	}, nil)
}

// GetBalance GET /api/v1/banking/balance/:year
func (h *Handlers) GetBalance(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || !validation.IsValidYear(year) {
		return response.Error(c, ErrYearMustBePositive.Error(), 400, nil)
	}
	bal, err := h.Service.GetBalance(c.Context(), year)
	if err != nil {
		return response.Error(c, "Failed to fetch compliance balance", 500, nil)
	}
	return response.Success(c, "Compliance balance fetched", bal, nil)
}

// GetBankedAmount GET /api/v1/banking/banked/:year
func (h *Handlers) GetBankedAmount(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || !validation.IsValidYear(year) {
		return response.Error(c, ErrYearMustBePositive.Error(), 400, nil)
	}
	banked, err := h.Service.GetBankedAmount(c.Context(), year)
	if err != nil {
		return response.Error(c, "Failed to fetch banked amount", 500, nil)
	}
	return response.Success(c, "Banked amount fetched", fiber.Map{
		"year":         year,
		"bankedAmount": banked,
	}, nil)
}
