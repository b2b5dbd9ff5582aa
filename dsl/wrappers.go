package dsl

import (
	"context"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/i18n"
)

// nullableSchema projects Schema[O] to Schema[*O]: nil input is accepted and
// produces a nil output pointer (or def()'s value, when set) without
// invoking inner. Undefined input still reaches inner, which will normally
// reject it unless inner is itself an Optional/Nullish wrapper: composing
// wrappers is how Nullable(Optional(x)) and similar combinations get
// expressed.
type nullableSchema[O any] struct {
	inner valibot.Schema[O]
	def   func() O
}

// Nullable returns a schema accepting nil in addition to whatever inner
// accepts, producing a *O that is nil on nil input.
func Nullable[O any](inner valibot.Schema[O]) valibot.Schema[*O] {
	return nullableSchema[O]{inner: inner}
}

// NullableWithDefault is Nullable, but nil input resolves to def() rather
// than nil.
func NullableWithDefault[O any](inner valibot.Schema[O], def func() O) valibot.Schema[*O] {
	return nullableSchema[O]{inner: inner, def: def}
}

func (n nullableSchema[O]) Kind() string { return "nullable" }
func (n nullableSchema[O]) Async() bool  { return n.inner.Async() }
func (n nullableSchema[O]) Parse(info valibot.ParseInfo, input any) valibot.Result[*O] {
	if input == nil {
		if n.def != nil {
			v := n.def()
			return valibot.Ok(&v)
		}
		var zero *O
		return valibot.Ok(zero)
	}
	res := n.inner.Parse(info, input)
	if !res.IsOk() {
		return valibot.Err[*O](res.Issues())
	}
	v := res.Output()
	return valibot.Ok(&v)
}
func (n nullableSchema[O]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[*O] {
	if input == nil {
		if n.def != nil {
			v := n.def()
			return valibot.Ok(&v)
		}
		var zero *O
		return valibot.Ok(zero)
	}
	var res valibot.Result[O]
	if ap, ok := n.inner.(valibot.AsyncParser[O]); ok {
		res = ap.ParseAsync(ctx, info, input)
	} else {
		res = n.inner.Parse(info, input)
	}
	if !res.IsOk() {
		return valibot.Err[*O](res.Issues())
	}
	v := res.Output()
	return valibot.Ok(&v)
}

// optionalSchema projects Schema[O] to Schema[*O]: valibot.Undefined input
// is accepted and produces a nil output pointer, or, if def is set, def()'s
// value instead.
type optionalSchema[O any] struct {
	inner valibot.Schema[O]
	def   func() O
}

// Optional returns a schema accepting valibot.Undefined in addition to
// whatever inner accepts.
func Optional[O any](inner valibot.Schema[O]) valibot.Schema[*O] {
	return optionalSchema[O]{inner: inner}
}

// OptionalWithDefault is Optional, but a missing value resolves to def()
// rather than nil.
func OptionalWithDefault[O any](inner valibot.Schema[O], def func() O) valibot.Schema[*O] {
	return optionalSchema[O]{inner: inner, def: def}
}

func (o optionalSchema[O]) Kind() string { return "optional" }
func (o optionalSchema[O]) Async() bool  { return o.inner.Async() }
func (o optionalSchema[O]) Parse(info valibot.ParseInfo, input any) valibot.Result[*O] {
	if valibot.IsUndefined(input) {
		if o.def != nil {
			v := o.def()
			return valibot.Ok(&v)
		}
		var zero *O
		return valibot.Ok(zero)
	}
	res := o.inner.Parse(info, input)
	if !res.IsOk() {
		return valibot.Err[*O](res.Issues())
	}
	v := res.Output()
	return valibot.Ok(&v)
}
func (o optionalSchema[O]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[*O] {
	if valibot.IsUndefined(input) {
		if o.def != nil {
			v := o.def()
			return valibot.Ok(&v)
		}
		var zero *O
		return valibot.Ok(zero)
	}
	var res valibot.Result[O]
	if ap, ok := o.inner.(valibot.AsyncParser[O]); ok {
		res = ap.ParseAsync(ctx, info, input)
	} else {
		res = o.inner.Parse(info, input)
	}
	if !res.IsOk() {
		return valibot.Err[*O](res.Issues())
	}
	v := res.Output()
	return valibot.Ok(&v)
}

// nullishSchema accepts both nil and valibot.Undefined, producing a nil
// output pointer for either.
type nullishSchema[O any] struct {
	inner valibot.Schema[O]
	def   func() O
}

// Nullish returns a schema accepting nil or valibot.Undefined in addition
// to whatever inner accepts.
func Nullish[O any](inner valibot.Schema[O]) valibot.Schema[*O] {
	return nullishSchema[O]{inner: inner}
}

// NullishWithDefault is Nullish, but nil or valibot.Undefined input
// resolves to def() rather than nil.
func NullishWithDefault[O any](inner valibot.Schema[O], def func() O) valibot.Schema[*O] {
	return nullishSchema[O]{inner: inner, def: def}
}

func (n nullishSchema[O]) Kind() string { return "nullish" }
func (n nullishSchema[O]) Async() bool  { return n.inner.Async() }
func (n nullishSchema[O]) Parse(info valibot.ParseInfo, input any) valibot.Result[*O] {
	if input == nil || valibot.IsUndefined(input) {
		if n.def != nil {
			v := n.def()
			return valibot.Ok(&v)
		}
		var zero *O
		return valibot.Ok(zero)
	}
	res := n.inner.Parse(info, input)
	if !res.IsOk() {
		return valibot.Err[*O](res.Issues())
	}
	v := res.Output()
	return valibot.Ok(&v)
}
func (n nullishSchema[O]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[*O] {
	if input == nil || valibot.IsUndefined(input) {
		if n.def != nil {
			v := n.def()
			return valibot.Ok(&v)
		}
		var zero *O
		return valibot.Ok(zero)
	}
	var res valibot.Result[O]
	if ap, ok := n.inner.(valibot.AsyncParser[O]); ok {
		res = ap.ParseAsync(ctx, info, input)
	} else {
		res = n.inner.Parse(info, input)
	}
	if !res.IsOk() {
		return valibot.Err[*O](res.Issues())
	}
	v := res.Output()
	return valibot.Ok(&v)
}

// nonNullableSchema inverts Nullable: Schema[*O] -> Schema[O], rejecting a
// nil pointer output with a non_nullable issue.
type nonNullableSchema[O any] struct{ inner valibot.Schema[*O] }

// NonNullable rejects nil, requiring inner's pointer output to be non-nil.
func NonNullable[O any](inner valibot.Schema[*O]) valibot.Schema[O] {
	return nonNullableSchema[O]{inner: inner}
}

func (w nonNullableSchema[O]) Kind() string { return "non_nullable" }
func (w nonNullableSchema[O]) Async() bool  { return w.inner.Async() }
func (w nonNullableSchema[O]) Parse(info valibot.ParseInfo, input any) valibot.Result[O] {
	res := w.inner.Parse(info, input)
	return unwrapNonNil(res, info, valibot.ValidationNonNullable)
}
func (w nonNullableSchema[O]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[O] {
	res := parseInnerAsync(ctx, w.inner, info, input)
	return unwrapNonNil(res, info, valibot.ValidationNonNullable)
}

// nonOptionalSchema inverts Optional: rejects nil with a non_optional issue.
type nonOptionalSchema[O any] struct{ inner valibot.Schema[*O] }

// NonOptional requires inner's pointer output to be non-nil.
func NonOptional[O any](inner valibot.Schema[*O]) valibot.Schema[O] {
	return nonOptionalSchema[O]{inner: inner}
}

func (w nonOptionalSchema[O]) Kind() string { return "non_optional" }
func (w nonOptionalSchema[O]) Async() bool  { return w.inner.Async() }
func (w nonOptionalSchema[O]) Parse(info valibot.ParseInfo, input any) valibot.Result[O] {
	res := w.inner.Parse(info, input)
	return unwrapNonNil(res, info, valibot.ValidationNonOptional)
}
func (w nonOptionalSchema[O]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[O] {
	res := parseInnerAsync(ctx, w.inner, info, input)
	return unwrapNonNil(res, info, valibot.ValidationNonOptional)
}

// nonNullishSchema inverts Nullish: rejects nil with a non_nullish issue.
type nonNullishSchema[O any] struct{ inner valibot.Schema[*O] }

// NonNullish requires inner's pointer output to be non-nil.
func NonNullish[O any](inner valibot.Schema[*O]) valibot.Schema[O] {
	return nonNullishSchema[O]{inner: inner}
}

func (w nonNullishSchema[O]) Kind() string { return "non_nullish" }
func (w nonNullishSchema[O]) Async() bool  { return w.inner.Async() }
func (w nonNullishSchema[O]) Parse(info valibot.ParseInfo, input any) valibot.Result[O] {
	res := w.inner.Parse(info, input)
	return unwrapNonNil(res, info, valibot.ValidationNonNullish)
}
func (w nonNullishSchema[O]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[O] {
	res := parseInnerAsync(ctx, w.inner, info, input)
	return unwrapNonNil(res, info, valibot.ValidationNonNullish)
}

// parseInnerAsync runs inner's async path if it implements AsyncParser,
// falling back to its sync Parse otherwise.
func parseInnerAsync[O any](ctx context.Context, inner valibot.Schema[O], info valibot.ParseInfo, input any) valibot.Result[O] {
	if ap, ok := inner.(valibot.AsyncParser[O]); ok {
		return ap.ParseAsync(ctx, info, input)
	}
	return inner.Parse(info, input)
}

func unwrapNonNil[O any](res valibot.Result[*O], info valibot.ParseInfo, validation string) valibot.Result[O] {
	if !res.IsOk() {
		return valibot.Err[O](res.Issues())
	}
	ptr := res.Output()
	if ptr == nil {
		vinfo := info.ToValidateInfo(valibot.ReasonType, "")
		return valibot.Err[O](valibot.Issues{valibot.NewIssue(vinfo, validation, i18n.T(validation, nil), nil)})
	}
	return valibot.Ok(*ptr)
}
