package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// PostgreSQL (error code 23505)
	if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
		return true
	}

	// SQLite (error code 2067)
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return true
	}

	return false
}

// IsSerializationErr reports whether a transaction failed because of a
// concurrent-write conflict and may be retried by the caller.
func IsSerializationErr(err error) bool {
	if err == nil {
		return false
	}

	// PostgreSQL (error codes 40001, 40P01)
	if strings.Contains(err.Error(), "could not serialize access") ||
		strings.Contains(err.Error(), "deadlock detected") {
		return true
	}

	// SQLite busy handler timeout
	if strings.Contains(err.Error(), "database is locked") {
		return true
	}

	return false
}
