package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShipCompliance is the individually computed CB for one ship in one year.
// (ship_id, year) is unique; saves overwrite in place.
type ShipCompliance struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ShipID    string          `gorm:"column:ship_id;type:varchar(64);not null;uniqueIndex:idx_ship_year" json:"shipId"`
	Year      int             `gorm:"column:year;not null;uniqueIndex:idx_ship_year" json:"year"`
	CbGco2eq  decimal.Decimal `gorm:"column:cb_gco2eq;type:decimal(24,6);not null" json:"cbGco2eq"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (ShipCompliance) TableName() string {
	return "ship_compliance"
}

func (s *ShipCompliance) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
