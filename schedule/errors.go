package schedule

import "errors"

var (
	ErrInvalidRoster         = errors.New("roster must contain exactly 8 distinct players")
	ErrInvalidFixture        = errors.New("fixtures require exactly 4 distinct pairings")
	ErrInvalidSequenceNumber = errors.New("sequence number must be positive")
	ErrInvalidPeriod         = errors.New("invalid tournament period")
)
