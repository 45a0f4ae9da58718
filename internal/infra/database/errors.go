package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Custom errors
var ErrDateRowNotFound = fmt.Errorf("date row not found")
var ErrHolidayNotFound = fmt.Errorf("holiday override not found")
var ErrDuplicateHoliday = fmt.Errorf("holiday override for this date already exists")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "unique_violation"
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
