package lib

import (
	"database/sql"
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// Domain errors
var (
	ErrInvalidStatus  = errors.New("invalid status value")
	ErrCategoryCycle  = errors.New("category parent cycle")
	ErrCustomerExists = errors.New("customer profile already exists")
)

// MapPgError translates driver-level errors into domain errors
func MapPgError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "23503": // foreign_key_violation
			return ErrNotFound
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
