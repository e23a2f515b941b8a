package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
)

// compactQuery folds the whitespace of a multi-line store query onto a
// single line.
func compactQuery(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

// trace logs a query at debug level. Queries run inside a transaction are
// tagged so team bootstrap and lineup writes can be followed in the log.
func trace(l *log.Logger, tx bool, query string, args ...interface{}) {
	if l == nil || l.GetLevel() > log.DebugLevel {
		return
	}
	l.Debug("query", "sql", compactQuery(query), "args", args, "tx", tx)
}

// The DB and Tx wrappers below trace every query before handing it to sqlx.

func (d *DB) Select(dest interface{}, query string, args ...interface{}) error { // nolint: revive
	trace(d.logger, false, query, args...)
	return d.DB.Select(dest, query, args...)
}

func (d *DB) Get(dest interface{}, query string, args ...interface{}) error { // nolint: revive
	trace(d.logger, false, query, args...)
	return d.DB.Get(dest, query, args...)
}

func (d *DB) Queryx(query string, args ...interface{}) (*sqlx.Rows, error) { // nolint: revive
	trace(d.logger, false, query, args...)
	return d.DB.Queryx(query, args...)
}

func (d *DB) QueryRowx(query string, args ...interface{}) *sqlx.Row { // nolint: revive
	trace(d.logger, false, query, args...)
	return d.DB.QueryRowx(query, args...)
}

func (d *DB) Exec(query string, args ...interface{}) (sql.Result, error) { // nolint: revive
	trace(d.logger, false, query, args...)
	return d.DB.Exec(query, args...)
}

// SelectContext loads every row of query into dest.
func (d *DB) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	trace(d.logger, false, query, args...)
	return d.DB.SelectContext(ctx, dest, query, args...)
}

// GetContext loads a single row of query into dest.
func (d *DB) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	trace(d.logger, false, query, args...)
	return d.DB.GetContext(ctx, dest, query, args...)
}

func (d *DB) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) { // nolint: revive
	trace(d.logger, false, query, args...)
	return d.DB.QueryxContext(ctx, query, args...)
}

func (d *DB) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row { // nolint: revive
	trace(d.logger, false, query, args...)
	return d.DB.QueryRowxContext(ctx, query, args...)
}

// ExecContext runs a write outside of any transaction.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	trace(d.logger, false, query, args...)
	return d.DB.ExecContext(ctx, query, args...)
}

func (t *Tx) Select(dest interface{}, query string, args ...interface{}) error { // nolint: revive
	trace(t.logger, true, query, args...)
	return t.Tx.Select(dest, query, args...)
}

func (t *Tx) Get(dest interface{}, query string, args ...interface{}) error { // nolint: revive
	trace(t.logger, true, query, args...)
	return t.Tx.Get(dest, query, args...)
}

func (t *Tx) Queryx(query string, args ...interface{}) (*sqlx.Rows, error) { // nolint: revive
	trace(t.logger, true, query, args...)
	return t.Tx.Queryx(query, args...)
}

func (t *Tx) QueryRowx(query string, args ...interface{}) *sqlx.Row { // nolint: revive
	trace(t.logger, true, query, args...)
	return t.Tx.QueryRowx(query, args...)
}

func (t *Tx) Exec(query string, args ...interface{}) (sql.Result, error) { // nolint: revive
	trace(t.logger, true, query, args...)
	return t.Tx.Exec(query, args...)
}

// SelectContext loads every row of query into dest.
func (t *Tx) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	trace(t.logger, true, query, args...)
	return t.Tx.SelectContext(ctx, dest, query, args...)
}

// GetContext loads a single row of query into dest.
func (t *Tx) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	trace(t.logger, true, query, args...)
	return t.Tx.GetContext(ctx, dest, query, args...)
}

func (t *Tx) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) { // nolint: revive
	trace(t.logger, true, query, args...)
	return t.Tx.QueryxContext(ctx, query, args...)
}

func (t *Tx) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row { // nolint: revive
	trace(t.logger, true, query, args...)
	return t.Tx.QueryRowxContext(ctx, query, args...)
}

// ExecContext runs a write inside the transaction.
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	trace(t.logger, true, query, args...)
	return t.Tx.ExecContext(ctx, query, args...)
}
