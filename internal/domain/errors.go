package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind identifies one of the failure classes a request can end with.
type Kind int

// The closed set of error kinds. The zero value means the error carries no kind.
const (
	KindUnknown Kind = iota
	KindConnection
	KindQuery
	KindRender
	KindRequestParse
)

// Field-level messages used in ParseError.Fields.
const (
	MsgRequired = "is required"
	MsgInteger  = "must be a valid integer"
)

// Sentinel errors for errors.Is() checking, one per Kind.
var (
	ErrConnection   = errors.New("connection error")
	ErrQuery        = errors.New("query error")
	ErrRender       = errors.New("render error")
	ErrRequestParse = errors.New("request parse error")
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindQuery:
		return "query"
	case KindRender:
		return "render"
	case KindRequestParse:
		return "request_parse"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindConnection:
		return ErrConnection
	case KindQuery:
		return ErrQuery
	case KindRender:
		return ErrRender
	case KindRequestParse:
		return ErrRequestParse
	default:
		return nil
	}
}

// Error is a kinded failure raised by an operation. Op names the operation
// (e.g. "list", "insert"); Err is the underlying cause and may be nil.
//
// errors.Is(err, ErrQuery) and friends match through Error, as does any
// sentinel wrapped in Err.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if s := e.Kind.sentinel(); s != nil {
		b.WriteString(s.Error())
	} else {
		b.WriteString("error")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// ConnectionError reports that no storage connection could be obtained.
func ConnectionError(op string, err error) error {
	return &Error{Kind: KindConnection, Op: op, Err: err}
}

// QueryError reports that a statement or query failed to execute.
func QueryError(op string, err error) error {
	return &Error{Kind: KindQuery, Op: op, Err: err}
}

// RenderError reports that the view could not be produced.
func RenderError(op string, err error) error {
	return &Error{Kind: KindRender, Op: op, Err: err}
}

// ParseError provides programmatic access to malformed request fields.
// Use errors.Is(err, ErrRequestParse) for simple checks, or errors.As(err, &perr)
// to access perr.Fields for per-field details.
type ParseError struct {
	Fields map[string]string
}

func (e *ParseError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrRequestParse.Error(), strings.Join(parts, "; "))
}

func (e *ParseError) Unwrap() error {
	return ErrRequestParse
}

// KindOf reports the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var derr *Error
	if errors.As(err, &derr) && derr.Kind != KindUnknown {
		return derr.Kind
	}
	switch {
	case errors.Is(err, ErrRequestParse):
		return KindRequestParse
	case errors.Is(err, ErrConnection):
		return KindConnection
	case errors.Is(err, ErrQuery):
		return KindQuery
	case errors.Is(err, ErrRender):
		return KindRender
	default:
		return KindUnknown
	}
}
