package session

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepository_WithMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM metadata WHERE key = ?`)).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("v")))
	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM metadata WHERE key = ?`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	got, err = repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM metadata WHERE key = ?`)).
		WithArgs("broken").
		WillReturnError(errors.New("disk I/O error"))
	_, err = repo.Get(ctx, "broken")
	assert.ErrorContains(t, err, "metadata[broken]")

	mock.ExpectExec(`INSERT INTO metadata`).
		WithArgs("k", []byte("v2")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Set(ctx, "k", []byte("v2")))

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM metadata WHERE key = ?`)).
		WithArgs("k").
		WillReturnError(errors.New("locked"))
	assert.Error(t, repo.Delete(ctx, "k"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
