package dsl

import (
	"context"

	"github.com/jussisaurio/valibot"
)

// transformSchema runs inner, then maps its typed output to O via fn. fn
// may itself fail, in which case it returns a non-nil error that this
// wrapper folds into a single "transform" Issue.
type transformSchema[I, O any] struct {
	inner valibot.Schema[I]
	fn    func(I) (O, error)
}

// Transform returns a schema that parses input against inner and then maps
// the successful output through fn.
func Transform[I, O any](inner valibot.Schema[I], fn func(I) (O, error)) valibot.Schema[O] {
	return transformSchema[I, O]{inner: inner, fn: fn}
}

func (t transformSchema[I, O]) Kind() string { return "transform" }
func (t transformSchema[I, O]) Async() bool  { return t.inner.Async() }
func (t transformSchema[I, O]) Parse(info valibot.ParseInfo, input any) valibot.Result[O] {
	res := t.inner.Parse(info, input)
	return t.apply(info, res)
}
func (t transformSchema[I, O]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[O] {
	var res valibot.Result[I]
	if ap, ok := t.inner.(valibot.AsyncParser[I]); ok {
		res = ap.ParseAsync(ctx, info, input)
	} else {
		res = t.inner.Parse(info, input)
	}
	return t.apply(info, res)
}

func (t transformSchema[I, O]) apply(info valibot.ParseInfo, res valibot.Result[I]) valibot.Result[O] {
	if !res.IsOk() {
		return valibot.Err[O](res.Issues())
	}
	out, err := t.fn(res.Output())
	if err != nil {
		vinfo := info.ToValidateInfo(valibot.ReasonType, "")
		return valibot.Err[O](valibot.Issues{valibot.NewIssue(vinfo, valibot.ValidationTransform, err.Error(), res.Output())})
	}
	return valibot.Ok(out)
}

// coerceSchema attempts fn against the raw input before inner ever sees it,
// falling back to passing the (possibly coerced) value through inner
// unchanged when fn declines (ok == false) rather than errors: Coerce
// tries to make the input fit before validating it, where Transform
// assumes it already fits and reshapes the validated output instead.
type coerceSchema[O any] struct {
	inner valibot.Schema[O]
	fn    func(any) (any, bool)
}

// Coerce returns a schema that first offers raw input to fn; if fn accepts
// it (returns ok == true), the coerced value replaces input before inner
// runs. If fn declines, inner parses the original input directly.
func Coerce[O any](inner valibot.Schema[O], fn func(any) (any, bool)) valibot.Schema[O] {
	return coerceSchema[O]{inner: inner, fn: fn}
}

func (c coerceSchema[O]) Kind() string { return c.inner.Kind() }
func (c coerceSchema[O]) Async() bool  { return c.inner.Async() }
func (c coerceSchema[O]) Parse(info valibot.ParseInfo, input any) valibot.Result[O] {
	return c.inner.Parse(info, c.coerce(input))
}
func (c coerceSchema[O]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[O] {
	coerced := c.coerce(input)
	if ap, ok := c.inner.(valibot.AsyncParser[O]); ok {
		return ap.ParseAsync(ctx, info, coerced)
	}
	return c.inner.Parse(info, coerced)
}

func (c coerceSchema[O]) coerce(input any) any {
	if v, ok := c.fn(input); ok {
		return v
	}
	return input
}

