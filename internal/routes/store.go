package routes

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fueleu-backend/internal/models"

	"gorm.io/gorm"
)

// Store is the persistence port for routes and their designated baselines.
type Store interface {
	FindAll(ctx context.Context) ([]models.Route, error)
	FindByRouteID(ctx context.Context, routeID string) (*models.Route, error)
	SaveRoute(ctx context.Context, route *models.Route) error
	SaveBaseline(ctx context.Context, baseline *models.Baseline) error
	FindBaseline(ctx context.Context, routeID string, year int) (*models.Baseline, error)
}

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) FindAll(ctx context.Context) ([]models.Route, error) {
	var list []models.Route
	if err := s.DB.WithContext(ctx).Order("route_id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *GormStore) FindByRouteID(ctx context.Context, routeID string) (*models.Route, error) {
	var route models.Route
	err := s.DB.WithContext(ctx).Where("route_id = ?", routeID).First(&route).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (s *GormStore) SaveRoute(ctx context.Context, route *models.Route) error {
	return s.DB.WithContext(ctx).Save(route).Error
}

// SaveBaseline upserts the (route, year) baseline and flags the route.
func (s *GormStore) SaveBaseline(ctx context.Context, baseline *models.Baseline) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Baseline
		err := tx.Where("route_id = ? AND year = ?", baseline.RouteID, baseline.Year).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(baseline).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			if err := tx.Model(&models.Baseline{}).
				Where("route_id = ? AND year = ?", baseline.RouteID, baseline.Year).
				Updates(map[string]interface{}{
					"ghg_intensity":    baseline.GhgIntensity,
					"fuel_consumption": baseline.FuelConsumption,
					"distance":         baseline.Distance,
					"total_emissions":  baseline.TotalEmissions,
				}).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Route{}).Where("route_id = ?", baseline.RouteID).
			Update("is_baseline", true).Error
	})
}

func (s *GormStore) FindBaseline(ctx context.Context, routeID string, year int) (*models.Baseline, error) {
	var baseline models.Baseline
	err := s.DB.WithContext(ctx).Where("route_id = ? AND year = ?", routeID, year).First(&baseline).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &baseline, nil
}

// MemoryStore is the DB-less route registry used in development and tests.
type MemoryStore struct {
	mu        sync.Mutex
	routes    []models.Route
	baselines map[string]models.Baseline
}

func NewMemoryStore(seed []models.Route) *MemoryStore {
	return &MemoryStore{
		routes:    append([]models.Route(nil), seed...),
		baselines: map[string]models.Baseline{},
	}
}

func baselineKey(routeID string, year int) string {
	return fmt.Sprintf("%s-%d", routeID, year)
}

func (s *MemoryStore) FindAll(ctx context.Context) ([]models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Route, len(s.routes))
	copy(out, s.routes)
	return out, nil
}

func (s *MemoryStore) FindByRouteID(ctx context.Context, routeID string) (*models.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.routes {
		if s.routes[i].RouteID == routeID {
			r := s.routes[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) SaveRoute(ctx context.Context, route *models.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.routes {
		if s.routes[i].RouteID == route.RouteID {
			s.routes[i] = *route
			return nil
		}
	}
	s.routes = append(s.routes, *route)
	return nil
}

func (s *MemoryStore) SaveBaseline(ctx context.Context, baseline *models.Baseline) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baselines[baselineKey(baseline.RouteID, baseline.Year)] = *baseline
	for i := range s.routes {
		if s.routes[i].RouteID == baseline.RouteID {
			s.routes[i].IsBaseline = true
		}
	}
	return nil
}

func (s *MemoryStore) FindBaseline(ctx context.Context, routeID string, year int) (*models.Baseline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.baselines[baselineKey(routeID, year)]; ok {
		return &b, nil
	}
	return nil, nil
}
