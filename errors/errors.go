package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in planning the error occurred
type Phase string

const (
	PhaseIngest   Phase = "ingest"   // normalized graph loading
	PhaseSize     Phase = "size"     // size estimation
	PhaseRender   Phase = "render"   // type rendering
	PhaseBoundary Phase = "boundary" // handle encoding
	PhaseOrder    Phase = "order"    // schema graph ordering
	PhasePlan     Phase = "plan"     // plan assembly
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedType     Kind = "unsupported_type"
	KindUnsupportedEncoding Kind = "unsupported_encoding"
	KindCyclicReference     Kind = "cyclic_reference"
	KindNotFound            Kind = "not_found"
	KindInvalidInput        Kind = "invalid_input"
)

// Sentinels match any error of the same Kind regardless of Phase.
var (
	ErrUnsupportedType     = &Error{Kind: KindUnsupportedType}
	ErrUnsupportedEncoding = &Error{Kind: KindUnsupportedEncoding}
	ErrCyclicReference     = &Error{Kind: KindCyclicReference}
)

// Error is the structured error type used throughout the planner
type Error struct {
	Cause       error
	Phase       Phase
	Kind        Kind
	Type        string
	ContentType string
	Detail      string
	Path        []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" || e.ContentType != "" {
		b.WriteString(": ")
		if e.Type != "" {
			b.WriteString("type ")
			b.WriteString(e.Type)
		}
		if e.ContentType != "" {
			if e.Type != "" {
				b.WriteString(", ")
			}
			b.WriteString("content type ")
			b.WriteString(e.ContentType)
		}
	}

	if e.Detail != "" {
		if e.Type != "" || e.ContentType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target without a Phase matches on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// WithPath returns a copy of e with path segments prepended.
func (e *Error) WithPath(path ...string) *Error {
	c := *e
	c.Path = append(append([]string(nil), path...), e.Path...)
	return &c
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the element path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the offending type description
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// ContentType sets the offending content type
func (b *Builder) ContentType(ct string) *Builder {
	b.err.ContentType = ct
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedType creates an error for a type kind with no mapping rule
func UnsupportedType(phase Phase, kind string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedType,
		Type:   kind,
		Detail: "no mapping rule",
	}
}

// UnsupportedEncoding creates an error for a type and content type pair
// the boundary layer cannot transfer
func UnsupportedEncoding(typ, contentType string) *Error {
	return &Error{
		Phase:       PhaseBoundary,
		Kind:        KindUnsupportedEncoding,
		Type:        typ,
		ContentType: contentType,
		Detail:      "no transfer rule",
	}
}

// CyclicReference creates an error listing the objects that reference each other
func CyclicReference(phase Phase, names []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCyclicReference,
		Detail: fmt.Sprintf("objects reference each other: %s", strings.Join(names, ", ")),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return New(phase, kind).Cause(cause).Detail("%s", detail).Build()
}

// Is forwards to the standard library so callers importing this package
// keep access to error matching.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As forwards to the standard library.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
