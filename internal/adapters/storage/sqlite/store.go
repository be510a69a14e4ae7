// Package sqlite implements [ports.TodoStore] on top of the shared SQLite
// connection pool. Each method runs exactly one statement on one pooled
// connection.
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	modernc "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

const (
	listQuery  = `SELECT id, text FROM todo ORDER BY id ASC`
	insertStmt = `INSERT INTO todo (text) VALUES (?)`
	deleteStmt = `DELETE FROM todo WHERE id = ?`
)

// ConnRunner lends a pooled connection to fn for the duration of one call.
// *database.Pool satisfies it.
type ConnRunner interface {
	WithConn(ctx context.Context, op string, fn func(ctx context.Context, conn *sql.Conn) error) error
}

var _ ports.TodoStore = (*Store)(nil)

// Store is the SQLite-backed todo store.
type Store struct {
	pool ConnRunner
}

// NewStore returns a store that runs its statements through pool.
func NewStore(pool ConnRunner) *Store {
	return &Store{pool: pool}
}

// List returns every entry in ascending id order.
func (s *Store) List(ctx context.Context) ([]todo.Entry, error) {
	const op = "list"

	var entries []todo.Entry

	err := s.pool.WithConn(ctx, op, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, listQuery)
		if err != nil {
			return translateError(op, err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var e todo.Entry
			if err := rows.Scan(&e.ID, &e.Text); err != nil {
				return translateError(op, err)
			}
			entries = append(entries, e)
		}

		if err := rows.Err(); err != nil {
			return translateError(op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []todo.Entry{}
	}
	return entries, nil
}

// Insert stores a new entry and returns it with its assigned id.
func (s *Store) Insert(ctx context.Context, text string) (todo.Entry, error) {
	const op = "insert"

	var entry todo.Entry

	err := s.pool.WithConn(ctx, op, func(ctx context.Context, conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, insertStmt, text)
		if err != nil {
			return translateError(op, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return domain.QueryError(op, fmt.Errorf("reading inserted id: %w", err))
		}

		entry = todo.Entry{ID: id, Text: text}
		return nil
	})
	if err != nil {
		return todo.Entry{}, err
	}

	return entry, nil
}

// Delete removes the entry with the given id. A missing id is not an error.
func (s *Store) Delete(ctx context.Context, id int64) error {
	const op = "delete"

	return s.pool.WithConn(ctx, op, func(ctx context.Context, conn *sql.Conn) error {
		if _, err := conn.ExecContext(ctx, deleteStmt, id); err != nil {
			return translateError(op, err)
		}
		return nil
	})
}

// translateError classifies a statement failure. Failures to reach the
// database file become connection errors; everything else, lock contention
// included, is a query error.
func translateError(op string, err error) error {
	if isConnectionFailure(err) {
		return domain.ConnectionError(op, err)
	}
	return domain.QueryError(op, err)
}

func isConnectionFailure(err error) bool {
	if errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var sqliteErr *modernc.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	// Extended result codes carry the primary code in the low byte.
	switch sqliteErr.Code() & 0xff {
	case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR:
		return true
	default:
		return false
	}
}
