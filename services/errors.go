package services

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a value that must be unique (email, room
	// number per hotel) already exists. Wrapped with a detail message.
	ErrConflict = errors.New("uniqueness conflict")

	// ErrNoFields is returned when a partial update carries no fields.
	ErrNoFields = errors.New("at least one field must be provided for update")
)

// isUniqueViolation reports whether a storage error is a uniqueness-constraint
// rejection. MySQL signals error 1062; the string fallback covers other
// drivers (sqlite in tests) the same way the duplicate checks elsewhere do.
func isUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint")
}
