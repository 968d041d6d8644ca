package sqlkit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// openBookDB opens a file-backed sqlite database with the book table ready.
func openBookDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open("sqlite3", filepath.Join(t.TempDir(), "books.db"))
	assert.NoError(t, err)

	_, err = db.ExecContext(context.Background(),
		`CREATE TABLE book (title TEXT NOT NULL, author TEXT NOT NULL, isbn TEXT NOT NULL UNIQUE)`)
	assert.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	return db
}

func TestDB_InsertAndSelect(t *testing.T) {
	db := openBookDB(t)
	ctx := context.Background()

	err := db.Insert(ctx, "book",
		[]string{"title", "author", "isbn"},
		[]string{"Witcher", "Andrzej Sapkowski", "428761"})
	assert.NoError(t, err)

	rows, err := db.Select(ctx, "book",
		[]string{"title", "author", "isbn"},
		Assignment{Column: "isbn", Value: "428761"})
	assert.NoError(t, err)

	if assert.Len(t, rows, 1) {
		title, err := rows[0][0].Text()
		assert.NoError(t, err)
		assert.Equal(t, "Witcher", title)

		author, err := rows[0][1].Text()
		assert.NoError(t, err)
		assert.Equal(t, "Andrzej Sapkowski", author)
	}
}

func TestDB_InsertQuotedValue(t *testing.T) {
	// parameter binding keeps quote characters intact
	db := openBookDB(t)
	ctx := context.Background()

	err := db.Insert(ctx, "book",
		[]string{"title", "author", "isbn"},
		[]string{"Hitchhiker's Guide", "Douglas Adams", "979112"})
	assert.NoError(t, err)

	rows, err := db.SelectStrings(ctx, "book",
		[]string{"title"},
		Assignment{Column: "isbn", Value: "979112"})
	assert.NoError(t, err)

	if assert.Len(t, rows, 1) {
		assert.Equal(t, []string{"Hitchhiker's Guide"}, rows[0])
	}
}

func TestDB_InsertArityMismatch(t *testing.T) {
	db := openBookDB(t)

	err := db.Insert(context.Background(), "book",
		[]string{"title", "author", "isbn"},
		[]string{"Witcher"})
	assert.Error(t, err)
}

func TestDB_Update(t *testing.T) {
	db := openBookDB(t)
	ctx := context.Background()

	err := db.Insert(ctx, "book",
		[]string{"title", "author", "isbn"},
		[]string{"Witcher", "Andrzej Sapkowski", "123"})
	assert.NoError(t, err)

	err = db.Update(ctx, "book",
		[]Assignment{
			{Column: "title", Value: "The Last Wish"},
			{Column: "author", Value: "Andy"},
		},
		Assignment{Column: "isbn", Value: "123"})
	assert.NoError(t, err)

	rows, err := db.SelectStrings(ctx, "book",
		[]string{"title", "author"},
		Assignment{Column: "isbn", Value: "123"})
	assert.NoError(t, err)

	if assert.Len(t, rows, 1) {
		assert.Equal(t, []string{"The Last Wish", "Andy"}, rows[0])
	}
}

func TestDB_SelectNoMatch(t *testing.T) {
	db := openBookDB(t)

	rows, err := db.Select(context.Background(), "book",
		[]string{"title"},
		Assignment{Column: "isbn", Value: "does-not-exist"})
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDB_SelectMissingTable(t *testing.T) {
	db := openBookDB(t)

	_, err := db.Select(context.Background(), "no_such_table",
		[]string{"title"},
		Assignment{Column: "isbn", Value: "1"})
	assert.Error(t, err)
}

func TestDB_SelectStringsNonTextColumn(t *testing.T) {
	db := openBookDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `CREATE TABLE shelf (label TEXT NOT NULL, capacity INTEGER NOT NULL)`)
	assert.NoError(t, err)

	err = db.Insert(ctx, "shelf", []string{"label", "capacity"}, []string{"top", "12"})
	assert.NoError(t, err)

	// the integer column surfaces as a conversion error naming the field
	_, err = db.SelectStrings(ctx, "shelf",
		[]string{"label", "capacity"},
		Assignment{Column: "label", Value: "top"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "capacity")
	}
}

func TestDB_SelectFieldOrder(t *testing.T) {
	db := openBookDB(t)
	ctx := context.Background()

	err := db.Insert(ctx, "book",
		[]string{"title", "author", "isbn"},
		[]string{"Dune", "Frank Herbert", "987123"})
	assert.NoError(t, err)

	rows, err := db.SelectStrings(ctx, "book",
		[]string{"isbn", "title"},
		Assignment{Column: "author", Value: "Frank Herbert"})
	assert.NoError(t, err)

	if assert.Len(t, rows, 1) {
		assert.Equal(t, []string{"987123", "Dune"}, rows[0])
	}
}

func TestDB_Insert_Integration(t *testing.T) {
	testCases := []struct {
		Driver string
	}{
		{Driver: "mysql"},
		{Driver: "postgres"},
	}

	ctx := context.Background()
	for _, testCase := range testCases {
		t.Run(testCase.Driver, func(t *testing.T) {
			dsn := os.Getenv("TEST_" + strings.ToUpper(testCase.Driver) + "_DSN")
			if dsn == "" {
				t.Skip()
			}

			db, err := Open(testCase.Driver, dsn)
			assert.NoError(t, err)

			defer func() {
				assert.NoError(t, db.Close())
			}()

			_, err = db.ExecContext(ctx,
				`CREATE TABLE IF NOT EXISTS sqlkit_test_book (title VARCHAR(255), author VARCHAR(255), isbn VARCHAR(64))`)
			assert.NoError(t, err)

			defer func() {
				_, err := db.ExecContext(ctx, `DROP TABLE sqlkit_test_book`)
				assert.NoError(t, err)
			}()

			err = db.Insert(ctx, "sqlkit_test_book",
				[]string{"title", "author", "isbn"},
				[]string{"Witcher", "Andrzej Sapkowski", "428761"})
			assert.NoError(t, err)

			rows, err := db.SelectStrings(ctx, "sqlkit_test_book",
				[]string{"title", "author", "isbn"},
				Assignment{Column: "isbn", Value: "428761"})
			assert.NoError(t, err)
			assert.Len(t, rows, 1)
		})
	}
}
