package sqlkit

import (
	"strings"
)

// Assignment is a (column, value) pair. It is used both as an entry of an
// UPDATE set list and as the single equality predicate that scopes UPDATE
// and SELECT statements.
type Assignment struct {
	Column string
	Value  string
}

// FormatInsertQuery builds the literal statement
//
//	INSERT INTO <table> (<c1>,<c2>,...) VALUES ('<v1>','<v2>',...)
//
// Values are wrapped in single quotes with no escaping, and identifiers are
// inserted verbatim, so values containing quote characters corrupt the
// statement. Column and value counts are not validated; mismatched lengths
// produce malformed SQL. Use the Build* functions and the DB executors for
// anything that touches a real database.
func FormatInsertQuery(table string, columns, values []string) string {
	var sb strings.Builder

	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")

	for i, column := range columns {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(column)
	}

	sb.WriteString(") VALUES (")

	for i, value := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\'')
		sb.WriteString(value)
		sb.WriteByte('\'')
	}

	sb.WriteString(")")
	return sb.String()
}

// FormatUpdateQuery builds the literal statement
//
//	UPDATE <table> SET <c1> = '<v1>',<c2> = '<v2>' WHERE <key> = '<keyval>'
//
// preserving the update order. Same quoting caveats as FormatInsertQuery.
func FormatUpdateQuery(table string, updates []Assignment, key Assignment) string {
	var sb strings.Builder

	sb.WriteString("UPDATE ")
	sb.WriteString(table)
	sb.WriteString(" SET ")

	for i, update := range updates {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(update.Column)
		sb.WriteString(" = '")
		sb.WriteString(update.Value)
		sb.WriteByte('\'')
	}

	sb.WriteString(" WHERE ")
	sb.WriteString(key.Column)
	sb.WriteString(" = '")
	sb.WriteString(key.Value)
	sb.WriteByte('\'')

	return sb.String()
}

// FormatSelectQuery builds the literal statement
//
//	SELECT <f1>,<f2>,... FROM <table> WHERE <key> = '<keyval>'
//
// Same quoting caveats as FormatInsertQuery.
func FormatSelectQuery(table string, fields []string, key Assignment) string {
	var sb strings.Builder

	sb.WriteString("SELECT ")

	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(field)
	}

	sb.WriteString(" FROM ")
	sb.WriteString(table)
	sb.WriteString(" WHERE ")
	sb.WriteString(key.Column)
	sb.WriteString(" = '")
	sb.WriteString(key.Value)
	sb.WriteByte('\'')

	return sb.String()
}

// BuildInsertQuery builds an INSERT statement with dialect placeholders in
// place of the value literals. The returned statement binds len(columns)
// arguments in column order.
func BuildInsertQuery(d Dialect, table string, columns []string) string {
	var sb strings.Builder

	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")

	for i, column := range columns {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(column)
	}

	sb.WriteString(") VALUES (")

	for i := range columns {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(d.Placeholder(i + 1))
	}

	sb.WriteString(")")
	return sb.String()
}

// BuildUpdateQuery builds an UPDATE statement with dialect placeholders.
// The returned statement binds len(columns)+1 arguments: the new values in
// column order, then the key value.
func BuildUpdateQuery(d Dialect, table string, columns []string, keyColumn string) string {
	var sb strings.Builder

	sb.WriteString("UPDATE ")
	sb.WriteString(table)
	sb.WriteString(" SET ")

	for i, column := range columns {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(column)
		sb.WriteString(" = ")
		sb.WriteString(d.Placeholder(i + 1))
	}

	sb.WriteString(" WHERE ")
	sb.WriteString(keyColumn)
	sb.WriteString(" = ")
	sb.WriteString(d.Placeholder(len(columns) + 1))

	return sb.String()
}

// BuildSelectQuery builds a SELECT statement with a dialect placeholder for
// the key value. The returned statement binds exactly one argument.
func BuildSelectQuery(d Dialect, table string, fields []string, keyColumn string) string {
	var sb strings.Builder

	sb.WriteString("SELECT ")

	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(field)
	}

	sb.WriteString(" FROM ")
	sb.WriteString(table)
	sb.WriteString(" WHERE ")
	sb.WriteString(keyColumn)
	sb.WriteString(" = ")
	sb.WriteString(d.Placeholder(1))

	return sb.String()
}
