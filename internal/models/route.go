package models

import (
	"time"

	"gorm.io/datatypes"
)

// Route is one vessel route's emissions record for a year.
// GhgIntensity is gCO2e/MJ; FuelConsumption is grams of fuel; Distance is nm;
// TotalEmissions is gCO2e.
type Route struct {
	RouteID         string         `gorm:"column:route_id;type:varchar(64);primaryKey" json:"routeId"`
	VesselType      string         `gorm:"column:vessel_type;type:varchar(64)" json:"vesselType"`
	FuelType        string         `gorm:"column:fuel_type;type:varchar(32)" json:"fuelType"`
	Year            int            `gorm:"column:year;not null" json:"year"`
	GhgIntensity    float64        `gorm:"column:ghg_intensity;type:decimal(10,4);not null" json:"ghgIntensity"`
	FuelConsumption float64        `gorm:"column:fuel_consumption;type:decimal(18,2);not null" json:"fuelConsumption"`
	Distance        float64        `gorm:"column:distance;type:decimal(12,2)" json:"distance"`
	TotalEmissions  float64        `gorm:"column:total_emissions;type:decimal(18,2)" json:"totalEmissions"`
	FuelMix         datatypes.JSON `gorm:"column:fuel_mix" json:"fuelMix,omitempty"`
	IsBaseline      bool           `gorm:"column:is_baseline;not null;default:false" json:"isBaseline"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (Route) TableName() string {
	return "routes"
}

// Baseline is a designated reference emissions record for a route and year.
type Baseline struct {
	RouteID         string    `gorm:"column:route_id;type:varchar(64);primaryKey" json:"routeId"`
	Year            int       `gorm:"column:year;primaryKey;autoIncrement:false" json:"year"`
	GhgIntensity    float64   `gorm:"column:ghg_intensity;type:decimal(10,4);not null" json:"ghgIntensity"`
	FuelConsumption float64   `gorm:"column:fuel_consumption;type:decimal(18,2);not null" json:"fuelConsumption"`
	Distance        float64   `gorm:"column:distance;type:decimal(12,2)" json:"distance"`
	TotalEmissions  float64   `gorm:"column:total_emissions;type:decimal(18,2)" json:"totalEmissions"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (Baseline) TableName() string {
	return "baselines"
}
