package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDBError_Nil(t *testing.T) {
	assert.NoError(t, MapDBError(nil))
}

func TestMapDBError_NoRows(t *testing.T) {
	err := MapDBError(fmt.Errorf("get audit entry: %w", pgx.ErrNoRows))

	assert.True(t, IsNotFound(err))
}

func TestMapDBError_ContextErrors(t *testing.T) {
	assert.Equal(t, ErrCodeTimeout, GetCode(MapDBError(context.DeadlineExceeded)))
	assert.Equal(t, ErrCodeCanceled, GetCode(MapDBError(context.Canceled)))
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:   pgerrcode.UniqueViolation,
		Detail: "Key (actor)=(admin@example.com) already exists.",
	}

	err := MapDBError(pgErr)

	require.True(t, IsConflict(err))
	assert.Equal(t, "actor", GetField(err))
}

func TestMapDBError_UniqueViolation_ColumnNameWins(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       pgerrcode.UniqueViolation,
		ColumnName: "entity_id",
		Detail:     "Key (actor)=(x) already exists.",
	}

	err := MapDBError(pgErr)

	assert.Equal(t, "entity_id", GetField(err))
}

func TestMapDBError_NotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "action"}

	err := MapDBError(pgErr)

	require.True(t, IsValidation(err))
	assert.Equal(t, "action", GetField(err))
}

func TestMapDBError_CheckViolation(t *testing.T) {
	err := MapDBError(&pgconn.PgError{Code: pgerrcode.CheckViolation, ColumnName: "outcome"})

	assert.True(t, IsValidation(err))
}

func TestMapDBError_UnknownPgError(t *testing.T) {
	err := MapDBError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})

	assert.True(t, IsInternal(err))
}

func TestMapDBError_PlainError(t *testing.T) {
	err := MapDBError(errors.New("driver: bad connection"))

	require.True(t, IsInternal(err))
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "A database error occurred. Please try again.", appErr.Message)
}
