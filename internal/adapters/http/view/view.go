// Package view renders the HTML pages served by the to-do handlers.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
)

//go:embed templates/*.html
var templatesFS embed.FS

const indexTemplate = "index.html"

// Renderer executes the embedded page templates. It is safe for concurrent
// use.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// NewFromTemplate wraps an already parsed template. The template must define
// "index.html".
func NewFromTemplate(tmpl *template.Template) *Renderer {
	return &Renderer{tmpl: tmpl}
}

type indexData struct {
	Entries []todo.Entry
}

// Render produces the list page for entries. The page is built in memory, so
// a failure yields no output at all.
func (r *Renderer) Render(entries []todo.Entry) ([]byte, error) {
	var buf bytes.Buffer

	if err := r.tmpl.ExecuteTemplate(&buf, indexTemplate, indexData{Entries: entries}); err != nil {
		return nil, domain.RenderError("render", err)
	}

	return buf.Bytes(), nil
}
