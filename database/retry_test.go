package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.False(t, isRetryableError(context.Canceled))
	assert.False(t, isRetryableError(context.DeadlineExceeded))
	assert.False(t, isRetryableError(sql.ErrNoRows))

	// Transient SQLSTATE codes
	assert.True(t, isRetryableError(&pgconn.PgError{Code: "40001"}))
	assert.True(t, isRetryableError(&pgconn.PgError{Code: "40P01"}))
	assert.True(t, isRetryableError(&pgconn.PgError{Code: "57P03"}))
	assert.True(t, isRetryableError(&pgconn.PgError{Code: "08006"}))
	assert.True(t, isRetryableError(&pgconn.PgError{Code: "53300"}))

	// Logic errors never retry
	assert.False(t, isRetryableError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isRetryableError(&pgconn.PgError{Code: "42703"}))
	assert.False(t, isRetryableError(&pgconn.PgError{Code: "22001"}))

	// Network errors matched by message
	assert.True(t, isRetryableError(errors.New("dial tcp: connection refused")))
	assert.True(t, isRetryableError(errors.New("read tcp: i/o timeout")))
	assert.False(t, isRetryableError(errors.New("some application error")))
}

func TestRetryWithBackoffEventuallySucceeds(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
		EnableRetry:  true,
	}

	attempts := 0
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoffStopsOnPermanentError(t *testing.T) {
	cfg := DefaultRetryConfig()
	cfg.InitialDelay = time.Millisecond

	attempts := 0
	permanent := &pgconn.PgError{Code: "23505"}
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		attempts++
		return permanent
	})

	assert.ErrorAs(t, err, &permanent)
	assert.Equal(t, 1, attempts)
}

func TestRetryWithBackoffExhaustsAttempts(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2.0,
		EnableRetry:  true,
	}

	attempts := 0
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		attempts++
		return errors.New("connection reset")
	})

	assert.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryDisabled(t *testing.T) {
	cfg := DefaultRetryConfig()
	cfg.EnableRetry = false

	attempts := 0
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		attempts++
		return errors.New("connection refused")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}
