package banking

import (
	"context"
	"errors"
	"sync"

	"fueleu-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persistence port for the yearly compliance balance and the
// banked-surplus ledger. Both rows for a year mutate together, so the two
// mutating operations are atomic per year: concurrent calls for the same
// year must not lose updates, calls for different years never block each
// other.
type Store interface {
	GetBalance(ctx context.Context, year int) (models.ComplianceBalance, error)
	GetBankedAmount(ctx context.Context, year int) (decimal.Decimal, error)
	BankSurplus(ctx context.Context, year int, amount decimal.Decimal) error
	ApplyBankedSurplus(ctx context.Context, year int, amount decimal.Decimal) error
}

// GormStore backs the ledger with compliance_balances and banking tables.
// Mutations run in one transaction with the year row locked.
type GormStore struct {
	DB *gorm.DB
}

// rowLock adds FOR UPDATE on Postgres. The sqlite test driver has a single
// writer per database, so the transaction alone serializes there.
func rowLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func (s *GormStore) GetBalance(ctx context.Context, year int) (models.ComplianceBalance, error) {
	var bal models.ComplianceBalance
	err := s.DB.WithContext(ctx).Where("year = ?", year).First(&bal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Materialize a zero row so later partial updates have something to increment.
		bal = models.ComplianceBalance{Year: year, CB: decimal.Zero}
		if err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&bal).Error; err != nil {
			return models.ComplianceBalance{}, err
		}
		return models.ComplianceBalance{Year: year, CB: decimal.Zero}, nil
	}
	if err != nil {
		return models.ComplianceBalance{}, err
	}
	return bal, nil
}

func (s *GormStore) GetBankedAmount(ctx context.Context, year int) (decimal.Decimal, error) {
	var banked models.BankedAmount
	err := s.DB.WithContext(ctx).Where("year = ?", year).First(&banked).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return banked.Amount, nil
}

func (s *GormStore) BankSurplus(ctx context.Context, year int, amount decimal.Decimal) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bal models.ComplianceBalance
		err := rowLock(tx).Where("year = ?", year).First(&bal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bal = models.ComplianceBalance{Year: year, CB: decimal.Zero}
			if err := tx.Create(&bal).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Model(&models.ComplianceBalance{}).Where("year = ?", year).
			Update("cb", bal.CB.Sub(amount)).Error; err != nil {
			return err
		}

		var banked models.BankedAmount
		err = rowLock(tx).Where("year = ?", year).First(&banked).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.BankedAmount{Year: year, Amount: amount}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&models.BankedAmount{}).Where("year = ?", year).
			Update("banked_amount", banked.Amount.Add(amount)).Error
	})
}

func (s *GormStore) ApplyBankedSurplus(ctx context.Context, year int, amount decimal.Decimal) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var banked models.BankedAmount
		err := rowLock(tx).Where("year = ?", year).First(&banked).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && banked.Amount.LessThan(amount)) {
			return ErrInsufficientBankedSurplus
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&models.BankedAmount{}).Where("year = ?", year).
			Update("banked_amount", banked.Amount.Sub(amount)).Error; err != nil {
			return err
		}

		var bal models.ComplianceBalance
		err = rowLock(tx).Where("year = ?", year).First(&bal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.ComplianceBalance{Year: year, CB: amount}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&models.ComplianceBalance{}).Where("year = ?", year).
			Update("cb", bal.CB.Add(amount)).Error
	})
}

// MemoryStore keeps the ledger in process memory, serialized with one lock
// per year. Used in tests and DB-less development.
type MemoryStore struct {
	mu    sync.Mutex
	years map[int]*yearLedger
}

type yearLedger struct {
	mu     sync.Mutex
	cb     decimal.Decimal
	banked decimal.Decimal
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{years: map[int]*yearLedger{}}
}

func (s *MemoryStore) ledger(year int) *yearLedger {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.years[year]
	if !ok {
		l = &yearLedger{cb: decimal.Zero, banked: decimal.Zero}
		s.years[year] = l
	}
	return l
}

// Seed sets the starting CB for a year.
func (s *MemoryStore) Seed(year int, cb decimal.Decimal) {
	l := s.ledger(year)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cb = cb
}

func (s *MemoryStore) GetBalance(ctx context.Context, year int) (models.ComplianceBalance, error) {
	l := s.ledger(year)
	l.mu.Lock()
	defer l.mu.Unlock()
	return models.ComplianceBalance{Year: year, CB: l.cb}, nil
}

func (s *MemoryStore) GetBankedAmount(ctx context.Context, year int) (decimal.Decimal, error) {
	l := s.ledger(year)
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.banked, nil
}

func (s *MemoryStore) BankSurplus(ctx context.Context, year int, amount decimal.Decimal) error {
	l := s.ledger(year)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cb = l.cb.Sub(amount)
	l.banked = l.banked.Add(amount)
	return nil
}

func (s *MemoryStore) ApplyBankedSurplus(ctx context.Context, year int, amount decimal.Decimal) error {
	l := s.ledger(year)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.banked.LessThan(amount) {
		return ErrInsufficientBankedSurplus
	}
	l.banked = l.banked.Sub(amount)
	l.cb = l.cb.Add(amount)
	return nil
}
