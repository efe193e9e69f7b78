package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse     Phase = "parse"     // text to typed model
	PhaseSerialize Phase = "serialize" // typed model to text
	PhaseClassify  Phase = "classify"  // section header dispatch
	PhaseLoad      Phase = "load"      // reading source text
)

// Kind categorizes the error
type Kind string

const (
	KindFieldMissing    Kind = "field_missing"
	KindInvalidValue    Kind = "invalid_value"
	KindDuplicateEntry  Kind = "duplicate_main_entry"
	KindMissingActionID Kind = "missing_action_id"
	KindUnclassifiable  Kind = "unclassifiable_section"
	KindReadFailed      Kind = "read_failed"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Section string
	Key     string
	Value   string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Section != "" {
		b.WriteString(" in [")
		b.WriteString(e.Section)
		b.WriteByte(']')
	}
	if e.Key != "" {
		b.WriteString(" key ")
		b.WriteString(fmt.Sprintf("%q", e.Key))
	}
	if e.Detail != "" {
		b.WriteString(": ")
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
// Two errors match when their Phase and Kind agree, so callers can test
// against a bare &Error{Phase: ..., Kind: ...} sentinel.
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

// Section sets the section header the error occurred in
func (b *Builder) Section(name string) *Builder {
	b.err.Section = name
	return b
}

// Key sets the offending key
func (b *Builder) Key(key string) *Builder {
	b.err.Key = key
	return b
}

// Value sets the offending raw value
func (b *Builder) Value(v string) *Builder {
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

// MissingField creates a missing required field error
func MissingField(section, field string) *Error {
	return &Error{
		Phase:   PhaseParse,
		Kind:    KindFieldMissing,
		Section: section,
		Key:     field,
		Detail:  fmt.Sprintf("required field %q not found", field),
	}
}

// InvalidValue creates an undecodable field value error
func InvalidValue(section, key, raw string) *Error {
	return &Error{
		Phase:   PhaseParse,
		Kind:    KindInvalidValue,
		Section: section,
		Key:     key,
		Value:   raw,
		Detail:  fmt.Sprintf("cannot decode %q", raw),
	}
}

// DuplicateMainEntry creates an error for a second main entry section
func DuplicateMainEntry(header string) *Error {
	return &Error{
		Phase:   PhaseClassify,
		Kind:    KindDuplicateEntry,
		Section: header,
		Detail:  "more than one main entry section",
	}
}

// MissingActionID creates an error for an action section without an identifier
func MissingActionID(header string) *Error {
	return &Error{
		Phase:   PhaseClassify,
		Kind:    KindMissingActionID,
		Section: header,
		Detail:  "action section header carries no identifier",
	}
}

// Unclassifiable creates an error for a section an integration layer cannot
// dispatch. The core itself never produces this: anything that is not the
// main entry or an action falls back to opaque passthrough.
func Unclassifiable(header string) *Error {
	return &Error{
		Phase:   PhaseClassify,
		Kind:    KindUnclassifiable,
		Section: header,
		Detail:  "cannot determine section variant",
	}
}

// ReadFailed wraps a source-text reading failure
func ReadFailed(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindReadFailed,
		Detail: detail,
		Cause:  cause,
	}
}
