package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	appErr "github.com/naseer617/ta-member-service/pkg/errors"
)

func TestTranslateWriteErrorLoginConflict(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_members_login_active"}
	err := translateWriteError(fmt.Errorf("insert: %w", pgErr))

	assert.True(t, appErr.IsCode(err, appErr.CodeAlreadyExists))
	assert.Equal(t, "login", appErr.ConflictField(err))
}

func TestTranslateWriteErrorEmailConflict(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_members_email_active"}
	err := translateWriteError(pgErr)

	assert.True(t, appErr.IsCode(err, appErr.CodeAlreadyExists))
	assert.Equal(t, "email", appErr.ConflictField(err))
}

func TestTranslateWriteErrorUnknownConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "members_pkey"}
	err := translateWriteError(pgErr)

	assert.True(t, appErr.IsCode(err, appErr.CodeInternal))
	assert.Empty(t, appErr.ConflictField(err))
}

func TestTranslateWriteErrorGeneric(t *testing.T) {
	err := translateWriteError(errors.New("connection reset"))

	assert.True(t, appErr.IsCode(err, appErr.CodeInternal))
	assert.Empty(t, appErr.ConflictField(err))
}

func TestTranslateWriteErrorNonUniquePgError(t *testing.T) {
	// not-null violation: still 23xxx class, but not a uniqueness conflict
	pgErr := &pgconn.PgError{Code: "23502", ColumnName: "login"}
	err := translateWriteError(pgErr)

	assert.True(t, appErr.IsCode(err, appErr.CodeInternal))
}
