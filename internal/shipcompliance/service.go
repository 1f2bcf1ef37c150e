package shipcompliance

import (
	"context"
	"fmt"

	"fueleu-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Calculator derives a ship's CB for a year from a reference route's
// emissions data. Implemented by the routes module.
type Calculator interface {
	ComputeCB(ctx context.Context, shipID string, year int, routeID string) (decimal.Decimal, error)
}

type Service struct {
	Store      Store
	Calculator Calculator
}

func (s *Service) GetShipCompliance(ctx context.Context, shipID string, year int) (*models.ShipCompliance, error) {
	if shipID == "" {
		return nil, ErrShipIDRequired
	}
	if year <= 0 {
		return nil, ErrYearMustBePositive
	}
	return s.Store.FindByShipAndYear(ctx, shipID, year)
}

func (s *Service) ListShipCompliance(ctx context.Context, year int) ([]models.ShipCompliance, error) {
	if year <= 0 {
		return nil, ErrYearMustBePositive
	}
	return s.Store.FindByYear(ctx, year)
}

// ComputeAndSave derives the CB for (shipID, year) from routeID and upserts
// the result. A computation failure propagates wrapped in
// ErrComplianceComputationFailed, never a silent default.
func (s *Service) ComputeAndSave(ctx context.Context, shipID string, year int, routeID string) (*models.ShipCompliance, error) {
	if shipID == "" {
		return nil, ErrShipIDRequired
	}
	if year <= 0 {
		return nil, ErrYearMustBePositive
	}

	cb, err := s.Calculator.ComputeCB(ctx, shipID, year, routeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrComplianceComputationFailed, err)
	}

	sc := &models.ShipCompliance{
		ShipID:   shipID,
		Year:     year,
		CbGco2eq: cb,
	}
	if err := s.Store.Save(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}
