package shipcompliance

import "errors"

var (
	ErrShipIDRequired              = errors.New("shipId is required and must be a non-empty string")
	ErrYearMustBePositive          = errors.New("Year must be a positive number")
	ErrComplianceNotFound          = errors.New("Compliance balance not found")
	ErrComplianceComputationFailed = errors.New("Failed to compute compliance balance")
)
