package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrDuplicateKey is a constraint violation error.
	ErrDuplicateKey = errors.New("duplicate key value violates table constraint")

	// ErrRecordNotFound is returned when a record is not found.
	ErrRecordNotFound = sql.ErrNoRows

	// ErrPermissionDenied is returned when the database refuses an operation
	// for lack of privileges.
	ErrPermissionDenied = errors.New("database permission denied")
)

const (
	pqUniqueViolation       = "23505"
	pqInsufficientPrivilege = "42501"
)

// WrapError is a convenient function that unite various database driver
// errors to consistent errors.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		switch {
		case code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
			code == sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return ErrDuplicateKey
		case code&0xff == sqlite3.SQLITE_AUTH,
			code&0xff == sqlite3.SQLITE_PERM:
			return ErrPermissionDenied
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return ErrDuplicateKey
		case pqInsufficientPrivilege:
			return ErrPermissionDenied
		}
	}

	return err
}
