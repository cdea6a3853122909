package schedule

import "fmt"

const (
	minYear = 1
	maxYear = 9999
)

// ValidatePeriod checks that year/month describe a real calendar month.
func ValidatePeriod(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidPeriod, month)
	}
	if year < minYear || year > maxYear {
		return fmt.Errorf("%w: year must be between %d and %d, got %d", ErrInvalidPeriod, minYear, maxYear, year)
	}
	return nil
}

// SequenceNumber returns the rotation sequence number of a tournament held in
// the given month: the month itself. January always plays round 1, and months
// seven apart (January and August, February and September...) share a round.
// The result does not depend on creation order or deleted tournaments.
func SequenceNumber(year, month int) (int, error) {
	if err := ValidatePeriod(year, month); err != nil {
		return 0, err
	}
	return month, nil
}
