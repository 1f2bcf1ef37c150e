package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComplianceBalance is the aggregate compliance balance for one reporting year.
// Positive CB = surplus, negative = deficit (gCO2e).
type ComplianceBalance struct {
	Year      int             `gorm:"column:year;primaryKey;autoIncrement:false" json:"year"`
	CB        decimal.Decimal `gorm:"column:cb;type:decimal(24,6);not null;default:0" json:"cb"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (ComplianceBalance) TableName() string {
	return "compliance_balances"
}

// BankedAmount is the banked-surplus ledger for one year. One row per year,
// never negative.
type BankedAmount struct {
	Year      int             `gorm:"column:year;primaryKey;autoIncrement:false" json:"year"`
	Amount    decimal.Decimal `gorm:"column:banked_amount;type:decimal(24,6);not null;default:0" json:"bankedAmount"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (BankedAmount) TableName() string {
	return "banking"
}
