package sqlkit

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const VersionIdTimestampFormat = "20060102150405"

var sqlMigrationFilenamePattern = regexp.MustCompile(`(\d+)_(\w+)\.sql$`)

// Migration is one ordered .sql migration script. Statements are the
// semicolon-separated statements of the script in file order; Checksum is
// the content hash recorded in the version table when the script is applied.
type Migration struct {
	Version    int64
	Name       string
	Source     string
	Checksum   string
	Statements []string
}

// migrationVersion extracts the numeric version prefix from a migration
// filename in the form NNN_descriptive_name.sql
func migrationVersion(name string) (int64, error) {
	base := filepath.Base(name)

	if ext := filepath.Ext(base); ext != ".sql" {
		return 0, errors.New("not a recognized migration file type")
	}

	idx := strings.Index(base, "_")
	if idx < 0 {
		return 0, errors.New("no separator found")
	}

	n, err := strconv.ParseInt(base[:idx], 10, 64)
	if err != nil {
		return 0, err
	}

	if n <= 0 {
		return 0, errors.New("migration versions must be greater than zero")
	}

	return n, nil
}

// LoadMigrations returns all migration scripts found in dir, ordered by
// version. Duplicate versions are an error.
func LoadMigrations(dir string) ([]*Migration, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s directory does not exists", dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}

	var migrations []*Migration
	for _, file := range files {
		v, err := migrationVersion(file)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid migration filename %s", filepath.Base(file))
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read migration file %s", filepath.Base(file))
		}

		name := sqlMigrationFilenamePattern.ReplaceAllString(filepath.Base(file), "$2")
		migrations = append(migrations, &Migration{
			Version:    v,
			Name:       name,
			Source:     file,
			Checksum:   fmt.Sprintf("%016x", xxhash.Sum64(data)),
			Statements: splitStatements(string(data)),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d detected:\n%v\n%v",
				migrations[i].Version, migrations[i-1].Source, migrations[i].Source)
		}
	}

	return migrations, nil
}

// splitStatements splits a migration script into statements on
// statement-ending semicolons, skipping comment-only lines.
func splitStatements(script string) []string {
	var statements []string
	var buf strings.Builder

	scanner := bufio.NewScanner(strings.NewReader(script))
	for scanner.Scan() {
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")

		if endsWithSemicolon(line) {
			statements = append(statements, strings.TrimSpace(buf.String()))
			buf.Reset()
		}
	}

	if remaining := strings.TrimSpace(buf.String()); len(remaining) > 0 {
		// tolerate a missing trailing semicolon on the last statement
		statements = append(statements, remaining)
	}

	return statements
}

// endsWithSemicolon checks whether the line ends a statement, ignoring a
// trailing double-dash comment.
func endsWithSemicolon(line string) bool {
	prev := ""
	scanner := bufio.NewScanner(strings.NewReader(line))
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		word := scanner.Text()
		if strings.HasPrefix(word, "--") {
			break
		}
		prev = word
	}

	return strings.HasSuffix(prev, ";")
}

// migrationRecord is one row of the version table.
type migrationRecord struct {
	VersionID int64
	Name      string
	Checksum  string
}

// Runner applies pending migration scripts to a database. Each migration
// runs in its own transaction together with its version-table record, so a
// failing script leaves the database at the previous version.
type Runner struct {
	db        *DB
	tableName string
}

func NewRunner(db *DB) *Runner {
	return &Runner{db: db, tableName: VersionTableName}
}

// Run loads the migration scripts in dir and applies every one that is not
// yet recorded in the version table, in version order. Already-applied
// migrations whose file content changed since they ran produce a checksum
// drift warning and are not re-applied.
func (r *Runner) Run(ctx context.Context, dir string) error {
	migrations, err := LoadMigrations(dir)
	if err != nil {
		return err
	}

	if err := r.ensureVersionTable(ctx); err != nil {
		return err
	}

	applied, err := r.appliedMigrations(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if record, ok := applied[m.Version]; ok {
			if record.Checksum != m.Checksum {
				log.Warnf("migration %d (%s) was modified after being applied: checksum %s != %s",
					m.Version, m.Name, m.Checksum, record.Checksum)
			}
			continue
		}

		if err := r.apply(ctx, m); err != nil {
			return errors.Wrapf(err, "failed to apply migration %d (%s)", m.Version, m.Name)
		}
	}

	return nil
}

func (r *Runner) apply(ctx context.Context, m *Migration) error {
	if r.db.echo {
		descMigration(m)
	}

	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range m.Statements {
			if err := r.db.execStatement(ctx, tx, stmt); err != nil {
				return err
			}
		}

		return r.insertVersion(ctx, tx, m)
	})
}

func (r *Runner) ensureVersionTable(ctx context.Context) error {
	q := r.db.dialect.createVersionTableSQL(r.tableName)
	if _, err := r.db.ExecContext(ctx, q); err != nil {
		return errors.Wrap(err, "failed to create the version table")
	}

	return nil
}

func (r *Runner) insertVersion(ctx context.Context, tx SQLExecutor, m *Migration) error {
	q := r.db.dialect.insertVersionSQL(r.tableName)
	if _, err := tx.ExecContext(ctx, q, m.Version, m.Name, m.Checksum); err != nil {
		return errors.Wrap(err, "failed to insert new migration record")
	}

	return nil
}

func (r *Runner) appliedMigrations(ctx context.Context) (map[int64]migrationRecord, error) {
	rows, err := r.db.QueryContext(ctx, r.db.dialect.selectVersionsSQL(r.tableName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query the version table")
	}

	defer func() {
		if err := rows.Close(); err != nil {
			log.WithError(err).Error("row close error")
		}
	}()

	records := make(map[int64]migrationRecord)
	for rows.Next() {
		var record migrationRecord
		if err := rows.Scan(&record.VersionID, &record.Name, &record.Checksum); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}

		records[record.VersionID] = record
	}

	if err := rows.Err(); err != nil {
		return records, errors.Wrap(err, "failed to read the next row")
	}

	return records, nil
}

var sqlMigrationTemplate = template.Must(template.New("sqlkit.sql-migration").Parse(`-- {{ .Name }}
SELECT 'write your migration here';
`))

// CreateMigration scaffolds a new timestamped migration file in dir and
// returns its path.
func CreateMigration(dir, name string) (string, error) {
	version := time.Now().Format(VersionIdTimestampFormat)
	filename := fmt.Sprintf("%s_%s.sql", version, snakeCase(name))

	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return "", errors.Errorf("migration file %s already exists", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to create migration file")
	}
	defer f.Close()

	if err := sqlMigrationTemplate.Execute(f, struct {
		Version string
		Name    string
	}{
		Version: version,
		Name:    name,
	}); err != nil {
		return "", errors.Wrap(err, "failed to render migration template")
	}

	log.Infof("created new migration file: %s", f.Name())
	return path, nil
}
