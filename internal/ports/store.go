package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
)

// TodoStore defines the storage port for to-do entries.
// Implemented by the SQLite adapter; called by the HTTP handlers.
// Each method runs one statement on one pooled connection.
type TodoStore interface {
	// List returns every persisted entry ordered by ID ascending.
	// Returns domain.ErrConnection if no connection could be acquired and
	// domain.ErrQuery if the query fails.
	List(ctx context.Context) ([]todo.Entry, error)

	// Insert stores a new entry with the given text and returns it with its
	// storage-assigned ID.
	// Returns domain.ErrQuery if the statement fails (e.g. constraint violation).
	Insert(ctx context.Context, text string) (todo.Entry, error)

	// Delete removes the entry with the given ID. Deleting an ID that does
	// not exist is not an error.
	Delete(ctx context.Context, id int64) error
}
