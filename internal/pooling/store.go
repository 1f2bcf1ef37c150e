package pooling

import (
	"context"
	"errors"
	"sync"

	"fueleu-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the persistence port for pools. Pools are append-only: created
// once, never updated or deleted.
type Store interface {
	Append(ctx context.Context, pool *models.Pool) error
	FindAll(ctx context.Context) ([]models.Pool, error)
	FindByID(ctx context.Context, poolID uuid.UUID) (*models.Pool, error)
}

type GormStore struct {
	DB *gorm.DB
}

// Append persists the pool and its members in one transaction (GORM creates
// the association rows with the parent).
func (s *GormStore) Append(ctx context.Context, pool *models.Pool) error {
	return s.DB.WithContext(ctx).Create(pool).Error
}

func (s *GormStore) FindAll(ctx context.Context) ([]models.Pool, error) {
	var pools []models.Pool
	err := s.DB.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("created_at").
		Find(&pools).Error
	if err != nil {
		return nil, err
	}
	return pools, nil
}

func (s *GormStore) FindByID(ctx context.Context, poolID uuid.UUID) (*models.Pool, error) {
	var pool models.Pool
	err := s.DB.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("pool_id = ?", poolID).
		First(&pool).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

// MemoryStore keeps pools in creation order.
type MemoryStore struct {
	mu    sync.Mutex
	pools []models.Pool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(ctx context.Context, pool *models.Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pool.PoolID == uuid.Nil {
		pool.PoolID = uuid.New()
	}
	s.pools = append(s.pools, *pool)
	return nil
}

func (s *MemoryStore) FindAll(ctx context.Context) ([]models.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Pool, len(s.pools))
	copy(out, s.pools)
	return out, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, poolID uuid.UUID) (*models.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pools {
		if s.pools[i].PoolID == poolID {
			p := s.pools[i]
			return &p, nil
		}
	}
	return nil, nil
}
