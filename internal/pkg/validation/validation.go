package validation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IsValidYear reports whether year is a plausible reporting year.
func IsValidYear(year int) bool {
	return year > 0
}

// IsPositiveAmount reports whether amount is strictly positive (gCO2e
// amounts for bank/apply must be > 0).
func IsPositiveAmount(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

// IsValidShipID reports whether shipID is a usable identifier.
func IsValidShipID(shipID string) bool {
	return strings.TrimSpace(shipID) != ""
}

// NormalizeShipID trims surrounding whitespace from a ship identifier.
func NormalizeShipID(shipID string) string {
	return strings.TrimSpace(shipID)
}

// HasDuplicates reports whether ids contains the same ship ID twice.
func HasDuplicates(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
