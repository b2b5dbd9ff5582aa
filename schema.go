package valibot

import "context"

// Schema is the uniform contract every schema kind implements. Parse must
// be a pure function of (input, info): no mutation of input or of the
// schema, no non-local state across calls, beyond the one permitted
// exception of memoizing the schema's own structural decomposition (see
// dsl.Recursive).
type Schema[O any] interface {
	// Kind returns the schema's stable kind tag.
	Kind() string
	// Async reports whether this schema (or any descendant) requires the
	// async discipline.
	Async() bool
	// Parse type-checks and pipes input, returning a Result.
	Parse(info ParseInfo, input any) Result[O]
}

// AsyncParser is implemented by schemas whose Async() is true. ParseAsync
// returns once the latent result resolves. The scheduling model is
// cooperative and single-threaded at the call-site, with children of one
// composite scheduled concurrently inside the call.
type AsyncParser[O any] interface {
	Schema[O]
	ParseAsync(ctx context.Context, info ParseInfo, input any) Result[O]
}

// AnySchema is a type-erased view of a Schema[O], the technique this
// repository needs wherever a composite holds schemas of different O per
// child (object fields, heterogeneous tuple positions, union options):
// Go generics cannot express map[string]Schema[?] with a varying type
// parameter per entry.
type AnySchema struct {
	kind       string
	async      bool
	parse      func(info ParseInfo, input any) Result[any]
	parseAsync func(ctx context.Context, info ParseInfo, input any) Result[any]
}

// Kind returns the wrapped schema's kind tag.
func (a AnySchema) Kind() string { return a.kind }

// Async reports whether the wrapped schema is async.
func (a AnySchema) Async() bool { return a.async }

// Parse type-checks and pipes input through the wrapped schema.
func (a AnySchema) Parse(info ParseInfo, input any) Result[any] { return a.parse(info, input) }

// ParseAsync runs the wrapped schema's async parse. It returns an
// async_unsupported issue if the wrapped schema does not implement
// AsyncParser; callers should guard with Async() first. Composite schemas
// accept a mix of sync and async children and, on their async path, call
// ParseAsync only on children whose Async() is true.
func (a AnySchema) ParseAsync(ctx context.Context, info ParseInfo, input any) Result[any] {
	if a.parseAsync == nil {
		return Err[any](Issues{{
			Reason:     ReasonType,
			Validation: "async_unsupported",
			Message:    "schema does not support async parse",
			Input:      input,
			Path:       info.Path,
		}})
	}
	return a.parseAsync(ctx, info, input)
}

// Wrap erases a Schema[O] into an AnySchema.
func Wrap[O any](s Schema[O]) AnySchema {
	as := AnySchema{
		kind:  s.Kind(),
		async: s.Async(),
		parse: func(info ParseInfo, input any) Result[any] {
			return MapResult(s.Parse(info, input), func(v O) any { return v })
		},
	}
	if ap, ok := s.(AsyncParser[O]); ok {
		as.parseAsync = func(ctx context.Context, info ParseInfo, input any) Result[any] {
			return MapResult(ap.ParseAsync(ctx, info, input), func(v O) any { return v })
		}
	}
	return as
}

// Typed recovers a Schema[O] view over an AnySchema that was built from a
// Schema[O] via Wrap, for handing a type-erased schema to an API that
// takes a typed Schema[O] (for example, as an Array element schema).
func Typed[O any](a AnySchema) Schema[O] { return typedView[O]{a} }

type typedView[O any] struct{ a AnySchema }

func (t typedView[O]) Kind() string { return t.a.kind }
func (t typedView[O]) Async() bool  { return t.a.async }
func (t typedView[O]) Parse(info ParseInfo, input any) Result[O] {
	res := t.a.parse(info, input)
	if !res.IsOk() {
		return Err[O](res.Issues())
	}
	v, ok := res.Output().(O)
	if !ok {
		return Err[O](Issues{{
			Reason:     ReasonType,
			Validation: ValidationInvalidType,
			Message:    "internal: type-erased output does not match requested type",
			Path:       info.Path,
		}})
	}
	return Ok(v)
}
func (t typedView[O]) ParseAsync(ctx context.Context, info ParseInfo, input any) Result[O] {
	res := t.a.ParseAsync(ctx, info, input)
	if !res.IsOk() {
		return Err[O](res.Issues())
	}
	v, ok := res.Output().(O)
	if !ok {
		return Err[O](Issues{{Reason: ReasonType, Validation: ValidationInvalidType, Message: "internal: type mismatch", Path: info.Path}})
	}
	return Ok(v)
}
