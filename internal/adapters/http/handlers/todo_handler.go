package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

// Renderer turns the current entries into a complete HTML page.
type Renderer interface {
	Render(entries []todo.Entry) ([]byte, error)
}

// TodoHandler serves the to-do list page and its two form actions.
type TodoHandler struct {
	store    ports.TodoStore
	renderer Renderer
}

// NewTodoHandler creates a TodoHandler backed by store and renderer.
func NewTodoHandler(store ports.TodoStore, renderer Renderer) *TodoHandler {
	return &TodoHandler{store: store, renderer: renderer}
}

// List handles GET /.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.List(r.Context())
	if err != nil {
		respondError(w, r, "list", err)
		return
	}

	page, err := h.renderer.Render(entries)
	if err != nil {
		respondError(w, r, "render", err)
		return
	}

	writeHTML(w, r, page)
}

// Add handles POST /add.
func (h *TodoHandler) Add(w http.ResponseWriter, r *http.Request) {
	form, err := dto.ParseAddTodoForm(w, r)
	if err != nil {
		respondError(w, r, "add", err)
		return
	}

	if _, err := h.store.Insert(r.Context(), form.Text); err != nil {
		respondError(w, r, "add", err)
		return
	}

	redirectHome(w)
}

// Delete handles POST /delete.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	form, err := dto.ParseDeleteTodoForm(w, r)
	if err != nil {
		respondError(w, r, "delete", err)
		return
	}

	if err := h.store.Delete(r.Context(), form.ID); err != nil {
		respondError(w, r, "delete", err)
		return
	}

	redirectHome(w)
}
