package dsl

import (
	"context"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/i18n"
)

type tupleSchema struct {
	items []valibot.AnySchema
	rest  *valibot.AnySchema
	async bool
}

// Tuple returns a fixed-length positional schema: items[i] validates
// input[i], each position may carry a distinct output type via AnySchema.
func Tuple(items ...valibot.AnySchema) valibot.Schema[[]any] {
	t := &tupleSchema{items: items}
	for _, it := range items {
		if it.Async() {
			t.async = true
		}
	}
	return t
}

// TupleWithRest returns a tuple schema where items[0:] validate fixed
// positions and rest validates every remaining element. Rest-position
// failures flow through the ordinary Result-return path rather than
// panicking.
func TupleWithRest(rest valibot.AnySchema, items ...valibot.AnySchema) valibot.Schema[[]any] {
	t := &tupleSchema{items: items, rest: &rest}
	for _, it := range items {
		if it.Async() {
			t.async = true
		}
	}
	if rest.Async() {
		t.async = true
	}
	return t
}

func (t *tupleSchema) Kind() string { return "tuple" }
func (t *tupleSchema) Async() bool  { return t.async }

func (t *tupleSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[[]any] {
	items, ok := asAnySlice(input)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonTuple, "")
		return valibot.Err[[]any](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	if iss := t.shapeIssues(info, items); len(iss) > 0 {
		return valibot.Err[[]any](iss)
	}
	out := make([]any, len(items))
	var issues valibot.Issues
	for i, raw := range items {
		childInfo := info.WithPathItem(valibot.TupleIndexItem(items, i, raw))
		schema := t.schemaFor(i)
		res := schema.Parse(childInfo, raw)
		if !res.IsOk() {
			issues = valibot.AppendIssues(issues, res.Issues()...)
			if info.AbortEarly {
				return valibot.Err[[]any](issues)
			}
			continue
		}
		out[i] = res.Output()
	}
	if len(issues) > 0 {
		return valibot.Err[[]any](issues)
	}
	return valibot.Ok(out)
}

func (t *tupleSchema) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[[]any] {
	if !t.async {
		return t.Parse(info, input)
	}
	items, ok := asAnySlice(input)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonTuple, "")
		return valibot.Err[[]any](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	if iss := t.shapeIssues(info, items); len(iss) > 0 {
		return valibot.Err[[]any](iss)
	}
	values, perItem := parallelChildren(ctx, len(items), info.AbortEarly, func(i int) (any, valibot.Issues) {
		childInfo := info.WithPathItem(valibot.TupleIndexItem(items, i, items[i]))
		schema := t.schemaFor(i)
		var res valibot.Result[any]
		if schema.Async() {
			res = schema.ParseAsync(ctx, childInfo, items[i])
		} else {
			res = schema.Parse(childInfo, items[i])
		}
		if !res.IsOk() {
			return nil, res.Issues()
		}
		return res.Output(), nil
	})
	if info.AbortEarly {
		if iss, failed := firstFailure(perItem); failed {
			return valibot.Err[[]any](iss)
		}
	}
	out := make([]any, len(items))
	var issues valibot.Issues
	for i := range items {
		if len(perItem[i]) > 0 {
			issues = valibot.AppendIssues(issues, perItem[i]...)
			continue
		}
		out[i] = values[i]
	}
	if len(issues) > 0 {
		return valibot.Err[[]any](issues)
	}
	return valibot.Ok(out)
}

func (t *tupleSchema) schemaFor(i int) valibot.AnySchema {
	if i < len(t.items) {
		return t.items[i]
	}
	return *t.rest
}

func (t *tupleSchema) shapeIssues(info valibot.ParseInfo, items []any) valibot.Issues {
	vinfo := info.ToValidateInfo(valibot.ReasonTuple, "")
	if t.rest == nil {
		if len(items) != len(t.items) {
			return valibot.Issues{valibot.NewIssue(vinfo, valibot.ValidationLength, i18n.T(valibot.ValidationLength, nil), items)}
		}
		return nil
	}
	if len(items) < len(t.items) {
		return valibot.Issues{valibot.NewIssue(vinfo, valibot.ValidationMinLength, i18n.T(valibot.ValidationMinLength, nil), items)}
	}
	return nil
}
