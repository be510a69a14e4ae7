package database

import (
	"context"
	"database/sql"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS todo (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL
)`

// Initialize creates the todo table if it does not already exist. It is safe
// to call on every startup.
func (p *Pool) Initialize(ctx context.Context) error {
	return p.WithConn(ctx, "initialize", func(ctx context.Context, conn *sql.Conn) error {
		if _, err := conn.ExecContext(ctx, schema); err != nil {
			return domain.QueryError("initialize", err)
		}
		return nil
	})
}
