package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nfrund/hive/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestExactlyOne(t *testing.T) {
	_, err := ExactlyOne([]int{})
	assert.ErrorIs(t, err, ErrNotFound)

	v, err := ExactlyOne([]int{7})
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = ExactlyOne([]int{1, 2})
	assert.ErrorIs(t, err, ErrMultipleResults)
}

func TestDBError(t *testing.T) {
	err := NewDBError(ErrNotFound, "select one row").
		WithQuery("SELECT * FROM profiles").
		WithParams(map[string]any{"value": "a0001.hive"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "select one row")
	assert.Contains(t, err.Error(), "Query: SELECT * FROM profiles")
	assert.Contains(t, err.Error(), "a0001.hive")
	assert.Equal(t, "SELECT * FROM profiles", err.Query())
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "ignored"))

	inner := NewDBError(ErrMultipleResults, "select one row")
	wrapped := WrapError(fmt.Errorf("lookup: %w", inner), "profile by login id")

	var dbErr *DBError
	require.True(t, errors.As(wrapped, &dbErr))
	assert.Equal(t, "profile by login id: select one row", dbErr.context)
	assert.ErrorIs(t, wrapped, ErrMultipleResults)

	plain := WrapError(errors.New("boom"), "ping")
	assert.Contains(t, plain.Error(), "ping: boom")
}

func TestValidateRowQuery(t *testing.T) {
	valid := domain.RowQuery{Table: "profiles", Field: "user_id", Value: "x", Columns: []string{"email"}}
	assert.NoError(t, ValidateRowQuery(valid))

	bad := []domain.RowQuery{
		{Table: "profiles; DELETE profiles", Field: "user_id"},
		{Table: "profiles", Field: "user_id = 1 OR 1"},
		{Table: "profiles", Field: "user_id", Columns: []string{"*"}},
		{Table: "", Field: "user_id"},
	}
	for _, q := range bad {
		assert.ErrorIs(t, ValidateRowQuery(q), ErrInvalidInput, "query %+v", q)
	}
}

func TestNormalizeRow(t *testing.T) {
	id := models.NewRecordID("profiles", "p1")
	row := normalizeRow(map[string]any{
		"id":      id,
		"auth_id": &models.RecordID{Table: "user", ID: "8rfx9"},
		"email":   "a@x.com",
	})

	assert.Equal(t, "profiles:p1", row["id"])
	assert.Equal(t, "user:8rfx9", row["auth_id"])
	assert.Equal(t, "a@x.com", row["email"])
}
