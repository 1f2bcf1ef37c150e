package shipcompliance

import (
	"context"
	"errors"
	"sync"
	"time"

	"fueleu-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the persistence port for per-(ship, year) compliance balances.
// FindByShipAndYear returns (nil, nil) when no record exists.
type Store interface {
	FindByShipAndYear(ctx context.Context, shipID string, year int) (*models.ShipCompliance, error)
	FindByYear(ctx context.Context, year int) ([]models.ShipCompliance, error)
	Save(ctx context.Context, sc *models.ShipCompliance) error
}

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) FindByShipAndYear(ctx context.Context, shipID string, year int) (*models.ShipCompliance, error) {
	var sc models.ShipCompliance
	err := s.DB.WithContext(ctx).Where("ship_id = ? AND year = ?", shipID, year).First(&sc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *GormStore) FindByYear(ctx context.Context, year int) ([]models.ShipCompliance, error) {
	var list []models.ShipCompliance
	if err := s.DB.WithContext(ctx).Where("year = ?", year).Order("created_at").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Save upserts by (ship_id, year). An existing row keeps its ID and creation
// timestamp; only the value is overwritten.
func (s *GormStore) Save(ctx context.Context, sc *models.ShipCompliance) error {
	var existing models.ShipCompliance
	err := s.DB.WithContext(ctx).Where("ship_id = ? AND year = ?", sc.ShipID, sc.Year).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.DB.WithContext(ctx).Create(sc).Error
	}
	if err != nil {
		return err
	}
	sc.ID = existing.ID
	sc.CreatedAt = existing.CreatedAt
	return s.DB.WithContext(ctx).Model(&existing).Update("cb_gco2eq", sc.CbGco2eq).Error
}

// MemoryStore keeps records in insertion order, like the relational store's
// created_at ordering.
type MemoryStore struct {
	mu      sync.Mutex
	records []models.ShipCompliance
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) FindByShipAndYear(ctx context.Context, shipID string, year int) (*models.ShipCompliance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ShipID == shipID && s.records[i].Year == year {
			sc := s.records[i]
			return &sc, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) FindByYear(ctx context.Context, year int) ([]models.ShipCompliance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []models.ShipCompliance
	for _, sc := range s.records {
		if sc.Year == year {
			list = append(list, sc)
		}
	}
	return list, nil
}

func (s *MemoryStore) Save(ctx context.Context, sc *models.ShipCompliance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ShipID == sc.ShipID && s.records[i].Year == sc.Year {
			sc.ID = s.records[i].ID
			sc.CreatedAt = s.records[i].CreatedAt
			s.records[i].CbGco2eq = sc.CbGco2eq
			return nil
		}
	}
	if sc.ID == uuid.Nil {
		sc.ID = uuid.New()
	}
	sc.CreatedAt = time.Now()
	sc.UpdatedAt = sc.CreatedAt
	s.records = append(s.records, *sc)
	return nil
}
