package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapStoreError(t *testing.T) {
	conflict := ErrServiceExisted

	assert.Nil(t, MapStoreError(nil, conflict))
	assert.ErrorIs(t, MapStoreError(&pgconn.PgError{Code: "23505"}, conflict), ErrServiceExisted)
	assert.ErrorIs(t, MapStoreError(&pq.Error{Code: "23505"}, conflict), ErrServiceExisted)
	assert.ErrorIs(t, MapStoreError(errors.New("UNIQUE constraint failed: services.name_key"), conflict), ErrServiceExisted)
	assert.ErrorIs(t, MapStoreError(&pgconn.PgError{Code: "23503"}, conflict), ErrInvalidKey)

	overflow := fmt.Errorf("save: %w", &pgconn.PgError{Code: "22003", Message: "numeric field overflow"})
	assert.ErrorIs(t, MapStoreError(overflow, conflict), ErrInvalidKey)
	assert.ErrorIs(t, MapStoreError(&pq.Error{Code: "22003"}, nil), ErrInvalidKey)

	other := errors.New("connection reset")
	assert.Equal(t, other, MapStoreError(other, conflict))
}
