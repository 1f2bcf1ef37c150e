package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pool is a group of ships sharing their compliance position for one year.
// Immutable after creation; PoolSum is always >= 0 for persisted pools.
type Pool struct {
	PoolID    uuid.UUID       `gorm:"column:pool_id;type:uuid;primaryKey" json:"poolId"`
	Name      string          `gorm:"column:name;type:varchar(255)" json:"name"`
	Year      int             `gorm:"column:year;not null" json:"year"`
	PoolSum   decimal.Decimal `gorm:"column:pool_sum;type:decimal(24,6);not null" json:"poolSum"`
	Members   []PoolMember    `gorm:"foreignKey:PoolID;references:PoolID" json:"members"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (Pool) TableName() string {
	return "pools"
}

func (p *Pool) BeforeCreate(tx *gorm.DB) error {
	if p.PoolID == uuid.Nil {
		p.PoolID = uuid.New()
	}
	return nil
}

// PoolMember is one ship's participation record within a pool. AdjustedCB and
// CbBefore hold the CB snapshot taken at pool creation; CbAfter holds the
// even split of the pool sum.
type PoolMember struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"-"`
	PoolID     uuid.UUID       `gorm:"column:pool_id;type:uuid;not null;index" json:"-"`
	ShipID     string          `gorm:"column:ship_id;type:varchar(64);not null" json:"shipId"`
	Position   int             `gorm:"column:position;not null" json:"-"`
	AdjustedCB decimal.Decimal `gorm:"column:adjusted_cb;type:decimal(24,6);not null" json:"adjustedCB"`
	CbBefore   decimal.Decimal `gorm:"column:cb_before;type:decimal(24,6);not null" json:"cbBefore"`
	CbAfter    decimal.Decimal `gorm:"column:cb_after;type:decimal(24,6);not null" json:"cbAfter"`
	CreatedAt  time.Time       `json:"-"`
}

func (PoolMember) TableName() string {
	return "pool_members"
}

func (m *PoolMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
