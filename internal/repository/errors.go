package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/lshigami/examportal/internal/apperr"
)

// ErrDuplicateKey is returned when an insert hits a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")

const pgUniqueViolation = "23505"

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// sqlite drivers without error translation
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func storageFailure(op string, err error) error {
	return apperr.StorageFailure("Server error while "+op+".", err)
}
