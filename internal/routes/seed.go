package routes

import (
	"context"

	"fueleu-backend/internal/models"

	"gorm.io/datatypes"
)

// SeedRoutes returns the development sample routes. Seed only populates an
// empty registry; it never overwrites existing data.
func SeedRoutes() []models.Route {
	return []models.Route{
		{
			RouteID:         "route-001",
			VesselType:      "Container Ship",
			FuelType:        "MGO",
			Year:            2024,
			GhgIntensity:    85.5,
			FuelConsumption: 5000000,
			Distance:        1200,
			TotalEmissions:  427500000,
			FuelMix:         datatypes.JSON([]byte(`{"MGO": 1.0}`)),
		},
		{
			RouteID:         "route-002",
			VesselType:      "Bulk Carrier",
			FuelType:        "HFO",
			Year:            2024,
			GhgIntensity:    92.3,
			FuelConsumption: 8000000,
			Distance:        2000,
			TotalEmissions:  738400000,
			FuelMix:         datatypes.JSON([]byte(`{"HFO": 1.0}`)),
		},
		{
			RouteID:         "route-003",
			VesselType:      "Tanker",
			FuelType:        "LNG",
			Year:            2024,
			GhgIntensity:    78.2,
			FuelConsumption: 6000000,
			Distance:        1500,
			TotalEmissions:  469200000,
			FuelMix:         datatypes.JSON([]byte(`{"LNG": 0.95, "MGO": 0.05}`)),
		},
	}
}

// Seed inserts the sample routes into an empty store.
func Seed(ctx context.Context, store Store) error {
	existing, err := store.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, r := range SeedRoutes() {
		route := r
		if err := store.SaveRoute(ctx, &route); err != nil {
			return err
		}
	}
	return nil
}
