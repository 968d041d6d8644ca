package sqlkit

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	_ "github.com/mattn/go-sqlite3"
)

func TestDB_Transaction(t *testing.T) {
	db := openBookDB(t)
	ctx := context.Background()

	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO book (title, author, isbn) VALUES (?, ?, ?)`,
			"Witcher", "Andrzej Sapkowski", "428761")
		return err
	})
	assert.NoError(t, err)

	rows, err := db.SelectStrings(ctx, "book",
		[]string{"title"},
		Assignment{Column: "isbn", Value: "428761"})
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDB_TransactionRollback(t *testing.T) {
	db := openBookDB(t)
	ctx := context.Background()

	wantErr := assert.AnError

	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO book (title, author, isbn) VALUES (?, ?, ?)`,
			"Witcher", "Andrzej Sapkowski", "428761")
		assert.NoError(t, err)

		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	rows, err := db.Select(ctx, "book",
		[]string{"title"},
		Assignment{Column: "isbn", Value: "428761"})
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDB_InsertBatch(t *testing.T) {
	db := openBookDB(t)
	ctx := context.Background()

	rows := [][]string{
		{"Witcher", "Andrzej Sapkowski", "428761"},
		{"Dune", "Frank Herbert", "987123"},
		{"Neuromancer", "William Gibson", "135791"},
	}

	err := db.InsertBatch(ctx, "book", []string{"title", "author", "isbn"}, rows)
	assert.NoError(t, err)

	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM book`).Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDB_InsertBatchRollbackOnFailure(t *testing.T) {
	db := openBookDB(t)
	ctx := context.Background()

	// the third row violates the unique isbn constraint
	rows := [][]string{
		{"Witcher", "Andrzej Sapkowski", "428761"},
		{"Dune", "Frank Herbert", "987123"},
		{"Witcher Again", "Somebody Else", "428761"},
	}

	err := db.InsertBatch(ctx, "book", []string{"title", "author", "isbn"}, rows)
	assert.Error(t, err)

	// none of the earlier rows of the failed batch remain visible
	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM book`).Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestDB_InsertBatchEmpty(t *testing.T) {
	db := openBookDB(t)

	err := db.InsertBatch(context.Background(), "book", []string{"title", "author", "isbn"}, nil)
	assert.NoError(t, err)
}

func TestDB_InsertBatchFromFixtureFile(t *testing.T) {
	db := openBookDB(t)
	ctx := context.Background()

	header, rows, err := ReadDelimited("testdata/sample_books.txt", ';')
	assert.NoError(t, err)

	err = db.InsertBatch(ctx, "book", header, rows)
	assert.NoError(t, err)

	got, err := db.SelectStrings(ctx, "book",
		[]string{"title", "author", "isbn"},
		Assignment{Column: "isbn", Value: "987123"})
	assert.NoError(t, err)

	if assert.Len(t, got, 1) {
		assert.Equal(t, []string{"Dune", "Frank Herbert", "987123"}, got[0])
	}
}
