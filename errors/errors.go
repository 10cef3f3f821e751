package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseResolve  Phase = "resolve"  // rule resolution for a source shape
	PhaseEmit     Phase = "emit"     // expression emission for a rule tree
	PhaseRegistry Phase = "registry" // leaf registration
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedShape Kind = "unsupported_shape"
	KindAmbiguousRule    Kind = "ambiguous_rule"
	KindNilType          Kind = "nil_type"
	KindInvalidShape     Kind = "invalid_shape"
	KindArity            Kind = "arity"
	KindRegistration     Kind = "registration"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Shape  string
	Detail string
	Path   []string
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

	if e.GoType != "" || e.Shape != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.Shape != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", shape ")
			b.WriteString(e.Shape)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("shape ")
			b.WriteString(e.Shape)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Shape != "" {
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

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
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

// Path sets the container path leading to the offending shape
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Shape sets the shape expression
func (b *Builder) Shape(s string) *Builder {
	b.err.Shape = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// UnsupportedShape creates an error for a shape with no applicable rule
func UnsupportedShape(phase Phase, path []string, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedShape,
		Path:   path,
		GoType: goType,
		Detail: "no lowering rule applies",
	}
}

// AmbiguousRule creates an error for a shape matched by two rules
func AmbiguousRule(phase Phase, path []string, goType, first, second string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAmbiguousRule,
		Path:   path,
		GoType: goType,
		Detail: fmt.Sprintf("both %s and %s rules apply", first, second),
	}
}

// NilType creates an error for a missing source type
func NilType(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilType,
		Detail: "source type cannot be nil",
	}
}

// InvalidShape creates an error for a malformed shape expression
func InvalidShape(phase Phase, shape, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidShape,
		Shape:  shape,
		Detail: detail,
	}
}

// Registration creates a leaf registration error
func Registration(goType, detail string) *Error {
	return &Error{
		Phase:  PhaseRegistry,
		Kind:   KindRegistration,
		GoType: goType,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
