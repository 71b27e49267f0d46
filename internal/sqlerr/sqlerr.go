// Package sqlerr classifies database driver errors.
//
// It turns raw pgconn errors into a small set of codes so the global error
// handler can log what went wrong (constraint, table, SQLSTATE) while the
// client only ever sees a generic failure.
package sqlerr
