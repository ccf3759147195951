// file: internals/features/board/repository/errors.go
package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is only returned by Update when the identity has no row.
	// Lookups report absence through their found flag instead.
	ErrNotFound = errors.New("record not found")

	// ErrDataIntegrity marks a write rejected for a missing required field or
	// an unsatisfiable Answer -> Question reference.
	ErrDataIntegrity = errors.New("data integrity violation")

	// ErrDetachedAccess is returned when a relationship is loaded outside an
	// active unit of work.
	ErrDetachedAccess = errors.New("detached access: unit of work is not active")

	ErrQuestionHasAnswers = wrapIntegrity("question still has answers")
	ErrQuestionMissing    = wrapIntegrity("owning question does not exist")
)

type integrityError struct{ msg string }

func (e *integrityError) Error() string { return ErrDataIntegrity.Error() + ": " + e.msg }
func (e *integrityError) Unwrap() error { return ErrDataIntegrity }

func wrapIntegrity(msg string) error { return &integrityError{msg: msg} }

// SQLState returns the SQLSTATE carried by a pgx or lib/pq error, "" otherwise.
func SQLState(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// MySQL error numbers for integrity constraint violations.
var mysqlIntegrityCodes = map[uint16]bool{
	1048: true, // column cannot be null
	1062: true, // duplicate entry
	1216: true,
	1217: true,
	1451: true, // parent row still referenced
	1452: true, // child row without parent
}

// IsDataIntegrity reports whether err is a data-integrity failure, either one
// raised here before touching the store or a constraint error from the store
// itself (SQLSTATE class 23).
func IsDataIntegrity(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDataIntegrity) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if strings.HasPrefix(SQLState(err), "23") {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return mysqlIntegrityCodes[myErr.Number]
	}
	return false
}
