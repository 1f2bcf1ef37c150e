package banking

import (
	"context"

	"fueleu-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Service implements the banking operations over a Store: banking a surplus
// debits the yearly CB and credits the banked ledger; applying moves value
// back. Apply is strict: it never applies less than requested.
type Service struct {
	Store Store
}

func (s *Service) GetBalance(ctx context.Context, year int) (models.ComplianceBalance, error) {
	if year <= 0 {
		return models.ComplianceBalance{}, ErrYearMustBePositive
	}
	return s.Store.GetBalance(ctx, year)
}

func (s *Service) GetBankedAmount(ctx context.Context, year int) (decimal.Decimal, error) {
	if year <= 0 {
		return decimal.Zero, ErrYearMustBePositive
	}
	return s.Store.GetBankedAmount(ctx, year)
}

// BankSurplus moves amount from the yearly CB into the banked ledger. The CB
// is allowed to go negative; only the amount itself must be positive.
func (s *Service) BankSurplus(ctx context.Context, year int, amount decimal.Decimal) error {
	if year <= 0 {
		return ErrYearMustBePositive
	}
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	return s.Store.BankSurplus(ctx, year, amount)
}

// ApplyBankedSurplus moves amount from the banked ledger back into the yearly
// CB. Fails with ErrInsufficientBankedSurplus when the ledger holds less than
// amount; no partial application.
func (s *Service) ApplyBankedSurplus(ctx context.Context, year int, amount decimal.Decimal) error {
	if year <= 0 {
		return ErrYearMustBePositive
	}
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	return s.Store.ApplyBankedSurplus(ctx, year, amount)
}
