package dto

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
)

// MaxFormBytes caps the size of a url-encoded form body.
const MaxFormBytes = 1 << 20

// Form field names.
const (
	FieldText = "text"
	FieldID   = "id"
)

// AddTodoForm is the decoded body of POST /add.
type AddTodoForm struct {
	Text string
}

// DeleteTodoForm is the decoded body of POST /delete.
type DeleteTodoForm struct {
	ID int64
}

// ParseAddTodoForm decodes the add form. The text field must be present but
// may be empty.
func ParseAddTodoForm(w http.ResponseWriter, r *http.Request) (AddTodoForm, error) {
	if err := parseForm(w, r); err != nil {
		return AddTodoForm{}, err
	}

	if _, ok := r.PostForm[FieldText]; !ok {
		return AddTodoForm{}, &domain.ParseError{
			Fields: map[string]string{FieldText: domain.MsgRequired},
		}
	}

	return AddTodoForm{Text: r.PostForm.Get(FieldText)}, nil
}

// ParseDeleteTodoForm decodes the delete form. The id field must be a base-10
// 64-bit integer.
func ParseDeleteTodoForm(w http.ResponseWriter, r *http.Request) (DeleteTodoForm, error) {
	if err := parseForm(w, r); err != nil {
		return DeleteTodoForm{}, err
	}

	raw, ok := r.PostForm[FieldID]
	if !ok || len(raw) == 0 || raw[0] == "" {
		return DeleteTodoForm{}, &domain.ParseError{
			Fields: map[string]string{FieldID: domain.MsgRequired},
		}
	}

	id, err := strconv.ParseInt(raw[0], 10, 64)
	if err != nil {
		return DeleteTodoForm{}, &domain.ParseError{
			Fields: map[string]string{FieldID: domain.MsgInteger},
		}
	}

	return DeleteTodoForm{ID: id}, nil
}

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxFormBytes)

	if err := r.ParseForm(); err != nil {
		msg := "malformed form body"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "form body too large"
		}
		return &domain.ParseError{Fields: map[string]string{"body": msg}}
	}
	return nil
}
