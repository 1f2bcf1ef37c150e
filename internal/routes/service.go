package routes

import (
	"context"
	"fmt"

	"fueleu-backend/internal/models"

	"github.com/shopspring/decimal"
)

// ComplianceTarget is the FuelEU GHG intensity target, gCO2e/MJ.
const ComplianceTarget = 89.3368

// lcvMJPerGram converts fuel mass (g) to energy (MJ), indicative lower
// calorific value for residual marine fuels.
const lcvMJPerGram = 0.041

// ComparisonData is a route measured against a baseline.
type ComparisonData struct {
	Baseline          models.Baseline `json:"baseline"`
	Comparison        models.Route    `json:"comparison"`
	PercentDifference float64         `json:"percentDifference"`
	ComplianceTarget  float64         `json:"complianceTarget"`
	IsCompliant       bool            `json:"isCompliant"`
}

// BaselineInput carries optional overrides for SetBaseline; zero fields fall
// back to the route's own data.
type BaselineInput struct {
	Year            int     `json:"year"`
	GhgIntensity    float64 `json:"ghgIntensity"`
	FuelConsumption float64 `json:"fuelConsumption"`
	Distance        float64 `json:"distance"`
	TotalEmissions  float64 `json:"totalEmissions"`
}

type Service struct {
	Store Store
}

func (s *Service) GetAllRoutes(ctx context.Context) ([]models.Route, error) {
	return s.Store.FindAll(ctx)
}

// SetBaseline designates routeID as a baseline, using the route's own data
// with any overrides from in applied.
func (s *Service) SetBaseline(ctx context.Context, routeID string, in BaselineInput) (*models.Baseline, error) {
	route, err := s.Store.FindByRouteID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, ErrRouteNotFound
	}

	baseline := &models.Baseline{
		RouteID:         routeID,
		Year:            route.Year,
		GhgIntensity:    route.GhgIntensity,
		FuelConsumption: route.FuelConsumption,
		Distance:        route.Distance,
		TotalEmissions:  route.TotalEmissions,
	}
	if in.Year != 0 {
		baseline.Year = in.Year
	}
	if in.GhgIntensity != 0 {
		baseline.GhgIntensity = in.GhgIntensity
	}
	if in.FuelConsumption != 0 {
		baseline.FuelConsumption = in.FuelConsumption
	}
	if in.Distance != 0 {
		baseline.Distance = in.Distance
	}
	if in.TotalEmissions != 0 {
		baseline.TotalEmissions = in.TotalEmissions
	}

	if err := s.Store.SaveBaseline(ctx, baseline); err != nil {
		return nil, err
	}
	return baseline, nil
}

// resolveBaseline finds the baseline for a route: the baselines table for the
// requested year, then the route's own year, then the route itself when it is
// flagged as a baseline.
func (s *Service) resolveBaseline(ctx context.Context, route *models.Route, year int) (*models.Baseline, error) {
	baseline, err := s.Store.FindBaseline(ctx, route.RouteID, year)
	if err != nil {
		return nil, err
	}
	if baseline == nil && year != route.Year {
		baseline, err = s.Store.FindBaseline(ctx, route.RouteID, route.Year)
		if err != nil {
			return nil, err
		}
	}
	if baseline == nil && route.IsBaseline {
		baseline = &models.Baseline{
			RouteID:         route.RouteID,
			Year:            route.Year,
			GhgIntensity:    route.GhgIntensity,
			FuelConsumption: route.FuelConsumption,
			Distance:        route.Distance,
			TotalEmissions:  route.TotalEmissions,
		}
	}
	return baseline, nil
}

// GetComparison compares routeID's current data against its baseline.
func (s *Service) GetComparison(ctx context.Context, routeID string, year int) (*ComparisonData, error) {
	route, err := s.Store.FindByRouteID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, ErrRouteNotFound
	}

	baseline, err := s.resolveBaseline(ctx, route, year)
	if err != nil {
		return nil, err
	}
	if baseline == nil {
		return nil, ErrBaselineNotFound
	}

	return compare(*baseline, *route), nil
}

// GetAllComparisons compares all routes (optionally filtered by year) against
// the flagged baseline route.
func (s *Service) GetAllComparisons(ctx context.Context, year *int) ([]ComparisonData, error) {
	all, err := s.Store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var baselineRoute *models.Route
	for i := range all {
		if all[i].IsBaseline {
			baselineRoute = &all[i]
			break
		}
	}
	if baselineRoute == nil {
		return nil, ErrNoBaselineRoute
	}

	lookupYear := baselineRoute.Year
	if year != nil {
		lookupYear = *year
	}
	baseline, err := s.resolveBaseline(ctx, baselineRoute, lookupYear)
	if err != nil {
		return nil, err
	}
	if baseline == nil {
		return nil, ErrBaselineNotFound
	}

	var out []ComparisonData
	for _, route := range all {
		if year != nil && route.Year != *year {
			continue
		}
		out = append(out, *compare(*baseline, route))
	}
	return out, nil
}

func compare(baseline models.Baseline, route models.Route) *ComparisonData {
	return &ComparisonData{
		Baseline:          baseline,
		Comparison:        route,
		PercentDifference: (route.GhgIntensity/baseline.GhgIntensity - 1) * 100,
		ComplianceTarget:  ComplianceTarget,
		IsCompliant:       route.GhgIntensity <= ComplianceTarget,
	}
}

// ComputeCB derives a ship's compliance balance from its reference route:
// the intensity gap to the target times the route's energy use. Implements
// the ship compliance module's Calculator port.
func (s *Service) ComputeCB(ctx context.Context, shipID string, year int, routeID string) (decimal.Decimal, error) {
	route, err := s.Store.FindByRouteID(ctx, routeID)
	if err != nil {
		return decimal.Zero, err
	}
	if route == nil {
		return decimal.Zero, fmt.Errorf("route %s not found", routeID)
	}

	energyMJ := decimal.NewFromFloat(route.FuelConsumption).Mul(decimal.NewFromFloat(lcvMJPerGram))
	gap := decimal.NewFromFloat(ComplianceTarget).Sub(decimal.NewFromFloat(route.GhgIntensity))
	return gap.Mul(energyMJ), nil
}
