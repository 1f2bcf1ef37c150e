package pooling

import (
	"errors"
	"fmt"
)

var (
	ErrYearMustBePositive  = errors.New("Year must be a positive number")
	ErrMembersRequired     = errors.New("year and memberShipIds are required")
	ErrDuplicatePoolMember = errors.New("Duplicate ship IDs in memberShipIds")
	ErrNegativePoolSum     = errors.New("Cannot create pool: Sum of adjusted CBs is negative")
	ErrPoolNotFound        = errors.New("Pool not found")
)

// MemberComplianceNotFoundError is returned when a requested pool member has
// no recorded CB for the pool's year.
type MemberComplianceNotFoundError struct {
	ShipID string
	Year   int
}

func (e *MemberComplianceNotFoundError) Error() string {
	return fmt.Sprintf("Adjusted CB not found for ship %s in year %d", e.ShipID, e.Year)
}
