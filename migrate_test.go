package sqlkit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	_ "modernc.org/sqlite"
)

func TestLoadMigrations(t *testing.T) {
	migrations, err := LoadMigrations("testdata/migrations")
	assert.NoError(t, err)

	if assert.Len(t, migrations, 2) {
		assert.Equal(t, int64(1), migrations[0].Version)
		assert.Equal(t, "create_books", migrations[0].Name)
		assert.Len(t, migrations[0].Statements, 1)
		assert.NotEmpty(t, migrations[0].Checksum)

		assert.Equal(t, int64(2), migrations[1].Version)
		assert.Equal(t, "create_authors", migrations[1].Name)
		assert.Len(t, migrations[1].Statements, 2)
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	_, err := LoadMigrations("testdata/no_such_dir")
	assert.Error(t, err)
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "1_first.sql"), []byte("SELECT 1;"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "001_second.sql"), []byte("SELECT 2;"), 0644))

	_, err := LoadMigrations(dir)
	assert.Error(t, err)
}

func TestMigrationVersion(t *testing.T) {
	v, err := migrationVersion("testdata/migrations/20240116231445_create_table.sql")
	assert.NoError(t, err)
	assert.Equal(t, int64(20240116231445), v)

	_, err = migrationVersion("no_version.txt")
	assert.Error(t, err)

	_, err = migrationVersion("0_zero.sql")
	assert.Error(t, err)
}

func TestSplitStatements(t *testing.T) {
	script := `-- leading comment
CREATE TABLE a (x INTEGER);

INSERT INTO a (x)
VALUES (1); -- trailing comment
`
	statements := splitStatements(script)
	if assert.Len(t, statements, 2) {
		assert.Equal(t, "CREATE TABLE a (x INTEGER);", statements[0])
		assert.Contains(t, statements[1], "VALUES (1);")
	}
}

func TestSplitStatements_MissingTrailingSemicolon(t *testing.T) {
	statements := splitStatements("SELECT 1")
	if assert.Len(t, statements, 1) {
		assert.Equal(t, "SELECT 1", statements[0])
	}
}

// openMigrationDB opens a file-backed database through the pure-Go sqlite
// driver.
func openMigrationDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	assert.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	return db
}

func TestRunner_Run(t *testing.T) {
	db := openMigrationDB(t)
	ctx := context.Background()

	runner := NewRunner(db)
	err := runner.Run(ctx, "testdata/migrations")
	assert.NoError(t, err)

	// both migrated tables exist and are usable
	err = db.Insert(ctx, "book",
		[]string{"title", "author", "isbn"},
		[]string{"Witcher", "Andrzej Sapkowski", "428761"})
	assert.NoError(t, err)

	err = db.Insert(ctx, "author", []string{"name", "country"}, []string{"Andrzej Sapkowski", "PL"})
	assert.NoError(t, err)

	records, err := runner.appliedMigrations(ctx)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRunner_RunTwiceIsNoOp(t *testing.T) {
	db := openMigrationDB(t)
	ctx := context.Background()

	runner := NewRunner(db)
	assert.NoError(t, runner.Run(ctx, "testdata/migrations"))
	assert.NoError(t, runner.Run(ctx, "testdata/migrations"))

	records, err := runner.appliedMigrations(ctx)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRunner_ChecksumDrift(t *testing.T) {
	db := openMigrationDB(t)
	ctx := context.Background()

	dir := t.TempDir()
	file := filepath.Join(dir, "001_create_things.sql")
	assert.NoError(t, os.WriteFile(file, []byte("CREATE TABLE things (x INTEGER);"), 0644))

	runner := NewRunner(db)
	assert.NoError(t, runner.Run(ctx, dir))

	// modify the applied script; the second run warns but does not re-apply
	assert.NoError(t, os.WriteFile(file, []byte("CREATE TABLE things (x INTEGER, y INTEGER);"), 0644))
	assert.NoError(t, runner.Run(ctx, dir))

	records, err := runner.appliedMigrations(ctx)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRunner_FailedMigrationRollsBack(t *testing.T) {
	db := openMigrationDB(t)
	ctx := context.Background()

	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "001_broken.sql"),
		[]byte("CREATE TABLE broken (x INTEGER);\nINSERT INTO no_such_table (x) VALUES (1);"), 0644))

	runner := NewRunner(db)
	err := runner.Run(ctx, dir)
	assert.Error(t, err)

	// the failed migration left no version record behind
	records, err := runner.appliedMigrations(ctx)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateMigration(dir, "Add Book Table")
	assert.NoError(t, err)
	assert.FileExists(t, path)

	migrations, err := LoadMigrations(dir)
	assert.NoError(t, err)

	if assert.Len(t, migrations, 1) {
		assert.Equal(t, "add_book_table", migrations[0].Name)
	}
}
