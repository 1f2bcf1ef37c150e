package banking

import "errors"

var (
	ErrYearMustBePositive        = errors.New("Year must be a positive number")
	ErrAmountMustBePositive      = errors.New("Amount must be a positive number")
	ErrInsufficientBankedSurplus = errors.New("Insufficient banked surplus")
)
