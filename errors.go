package valibot

import (
	"errors"
	"fmt"
	"strings"
)

// Validation tags: short machine-readable identifiers naming which rule or
// schema kind produced an Issue.
const (
	ValidationInvalidType    = "invalid_type"
	ValidationRequired       = "required"
	ValidationUnknownKey     = "unknown_key"
	ValidationUnion          = "union"
	ValidationNonNullable    = "non_nullable"
	ValidationNonOptional    = "non_optional"
	ValidationNonNullish     = "non_nullish"
	ValidationMinLength      = "min_length"
	ValidationMaxLength      = "max_length"
	ValidationLength         = "length"
	ValidationMinValue       = "min_value"
	ValidationMaxValue       = "max_value"
	ValidationPattern        = "pattern"
	ValidationEmail          = "email"
	ValidationURL            = "url"
	ValidationUUID           = "uuid"
	ValidationEmoji          = "emoji"
	ValidationInteger        = "integer"
	ValidationMultipleOf     = "multiple_of"
	ValidationFinite         = "finite"
	ValidationLuhn           = "luhn"
	ValidationStartsWith     = "starts_with"
	ValidationEndsWith       = "ends_with"
	ValidationIncludes       = "includes"
	ValidationCustom         = "custom"
	ValidationDiscriminator  = "discriminator"
	ValidationRecursiveDepth = "recursive_unresolved"
	ValidationTransform      = "transform"
)

// Issue represents a single validation failure.
type Issue struct {
	Reason     Reason
	Validation string
	Message    string
	Input      any
	Path       []PathItem
	Issues     Issues // nested: carries a union's per-option sub-issues.
	Origin     Origin
}

// Issues is a non-empty sequence of Issue; it implements error for the
// convenience layer (Parse/SchemaError), never for the core parse path
// itself.
type Issues []Issue

// Error summarizes the first few issues and the total count.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Validation, RenderPointer(it.Path))
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to dst, initializing the slice when needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// NewIssue builds an Issue at info's current path. It is the single
// construction point every schema and rule uses to produce an Issue.
func NewIssue(info ValidateInfo, validation string, message string, input any) Issue {
	return Issue{
		Reason:     info.Reason,
		Validation: validation,
		Message:    message,
		Input:      input,
		Path:       info.Path,
		Origin:     info.Origin,
	}
}

// SchemaError is the domain error the convenience API (Parse) raises on
// validation failure. The core itself never constructs or throws this type.
type SchemaError struct {
	Issues Issues
}

func (e *SchemaError) Error() string {
	if len(e.Issues) == 0 {
		return "valibot: validation failed"
	}
	return fmt.Sprintf("valibot: validation failed: %s", e.Issues.Error())
}

func (e *SchemaError) Unwrap() error { return e.Issues }

// AsIssues extracts Issues from an error using errors.As.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var se *SchemaError
	if errors.As(err, &se) {
		return se.Issues, true
	}
	var ii Issues
	if errors.As(err, &ii) {
		return ii, true
	}
	return nil, false
}

// RenderPointer renders a Path as a JSON-Pointer-like diagnostic string.
// This is a display convenience only; the core never parses it back.
func RenderPointer(path []PathItem) string {
	if len(path) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, item := range path {
		b.WriteByte('/')
		fmt.Fprintf(&b, "%v", item.Key)
	}
	return b.String()
}
