package sqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		sqlstate string
		want     Code
	}{
		{"23505", UniqueViolation},
		{"23503", ForeignKeyViolation},
		{"23502", NotNullViolation},
		{"23514", CheckViolation},
		{"42601", Other},
		{"", Other},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapCode(tt.sqlstate), "sqlstate %q", tt.sqlstate)
	}
}

func TestConvertPgError(t *testing.T) {
	src := &pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		Detail:         `Key (national_id)=(12345678900) already exists.`,
		SchemaName:     "public",
		TableName:      "athletes",
		ConstraintName: "athletes_national_id_key",
	}

	converted := ConvertPgError(src)

	assert.Equal(t, UniqueViolation, converted.Code)
	assert.Equal(t, "23505", converted.DatabaseCode)
	assert.Equal(t, "athletes", converted.TableName)
	assert.Equal(t, "athletes_national_id_key", converted.ConstraintName)
	assert.Equal(t, src.Message, converted.Error())

	// The original driver error stays reachable through the chain.
	var pgerr *pgconn.PgError
	require.True(t, errors.As(converted, &pgerr))
	assert.Same(t, src, pgerr)
}

func TestErrCode(t *testing.T) {
	uniqueErr := ConvertPgError(&pgconn.PgError{Code: "23505"})

	assert.Equal(t, UniqueViolation, ErrCode(uniqueErr))
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("insert athlete: %w", uniqueErr)))
	assert.Equal(t, Other, ErrCode(errors.New("not a database error")))
	assert.Equal(t, Other, ErrCode(nil))
}
