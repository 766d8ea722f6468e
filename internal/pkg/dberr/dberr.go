// Package dberr maps driver and validation failures onto a small set of sentinel errors.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDuplicate  = errors.New("duplicate value violates a unique constraint")
	ErrRequired   = errors.New("required value is missing")
	ErrForeignKey = errors.New("referenced row is missing or still referenced")
	ErrInvalid    = errors.New("value failed validation")
	ErrNotFound   = errors.New("record not found")
)

// MySQL server error numbers.
const (
	mysqlDupEntry        = 1062
	mysqlBadNull         = 1048
	mysqlNoDefault       = 1364
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Classify wraps err with the matching sentinel. The original error stays in the chain.
// Errors that match no sentinel are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if kind := kindOf(err); kind != nil && !errors.Is(err, kind) {
		return &classified{kind: kind, err: err}
	}
	return err
}

// Kind returns the sentinel err belongs to, or nil.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range []error{ErrDuplicate, ErrRequired, ErrForeignKey, ErrInvalid, ErrNotFound} {
		if errors.Is(err, k) {
			return k
		}
	}
	return kindOf(err)
}

func kindOf(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return ErrRequired
			}
		}
		return ErrInvalid
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDupEntry:
			return ErrDuplicate
		case mysqlBadNull, mysqlNoDefault:
			return ErrRequired
		case mysqlRowIsReferenced, mysqlNoReferencedRow:
			return ErrForeignKey
		}
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgNotNullViolation:
			return ErrRequired
		case pgForeignKeyViolation:
			return ErrForeignKey
		case pgCheckViolation:
			return ErrInvalid
		}
		return nil
	}

	// SQLite reports constraint failures only through the message text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicate
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return ErrRequired
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrForeignKey
	case strings.Contains(msg, "CHECK constraint failed"):
		return ErrInvalid
	}
	return nil
}

type classified struct {
	kind error
	err  error
}

func (c *classified) Error() string { return fmt.Sprintf("%v: %v", c.kind, c.err) }

func (c *classified) Unwrap() []error { return []error{c.kind, c.err} }

// IsDuplicate reports whether err is a uniqueness violation.
func IsDuplicate(err error) bool { return errors.Is(Classify(err), ErrDuplicate) }

// IsRequired reports whether err is a missing required value.
func IsRequired(err error) bool { return errors.Is(Classify(err), ErrRequired) }

// IsForeignKey reports whether err is a foreign key violation.
func IsForeignKey(err error) bool { return errors.Is(Classify(err), ErrForeignKey) }

// IsInvalid reports whether err failed validation.
func IsInvalid(err error) bool { return errors.Is(Classify(err), ErrInvalid) }
