package pooling

import (
	"context"
	"time"

	"fueleu-backend/internal/models"
	"fueleu-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ComplianceReader is the read-only port into the ship compliance registry.
// FindByShipAndYear returns (nil, nil) when no record exists.
type ComplianceReader interface {
	FindByShipAndYear(ctx context.Context, shipID string, year int) (*models.ShipCompliance, error)
}

type Service struct {
	Store      Store
	Compliance ComplianceReader
}

// CreatePool validates the member set and constructs a pool for the year.
// Member CBs are read once as point-in-time snapshots; nothing is written
// until every check has passed, so a failed creation leaves no partial
// state. The pool sum is redistributed evenly across members as cbAfter.
func (s *Service) CreatePool(ctx context.Context, year int, memberShipIDs []string, name string) (*models.Pool, error) {
	if year <= 0 {
		return nil, ErrYearMustBePositive
	}
	if len(memberShipIDs) == 0 {
		return nil, ErrMembersRequired
	}

	ids := make([]string, 0, len(memberShipIDs))
	for _, id := range memberShipIDs {
		id = validation.NormalizeShipID(id)
		if id == "" {
			return nil, ErrMembersRequired
		}
		ids = append(ids, id)
	}
	if validation.HasDuplicates(ids) {
		return nil, ErrDuplicatePoolMember
	}

	members := make([]models.PoolMember, 0, len(ids))
	poolSum := decimal.Zero
	for i, shipID := range ids {
		sc, err := s.Compliance.FindByShipAndYear(ctx, shipID, year)
		if err != nil {
			return nil, err
		}
		if sc == nil {
			return nil, &MemberComplianceNotFoundError{ShipID: shipID, Year: year}
		}
		members = append(members, models.PoolMember{
			ShipID:     shipID,
			Position:   i,
			AdjustedCB: sc.CbGco2eq,
			CbBefore:   sc.CbGco2eq,
			CbAfter:    decimal.Zero,
		})
		poolSum = poolSum.Add(sc.CbGco2eq)
	}

	if poolSum.IsNegative() {
		return nil, ErrNegativePoolSum
	}

	// Even split across members.
	share := poolSum.DivRound(decimal.NewFromInt(int64(len(members))), 2)
	for i := range members {
		members[i].CbAfter = share
	}

	pool := &models.Pool{
		PoolID:    uuid.New(),
		Name:      name,
		Year:      year,
		PoolSum:   poolSum,
		Members:   members,
		CreatedAt: time.Now(),
	}
	if err := s.Store.Append(ctx, pool); err != nil {
		return nil, err
	}
	return pool, nil
}

func (s *Service) ListPools(ctx context.Context) ([]models.Pool, error) {
	return s.Store.FindAll(ctx)
}

func (s *Service) GetPool(ctx context.Context, poolID uuid.UUID) (*models.Pool, error) {
	return s.Store.FindByID(ctx, poolID)
}
