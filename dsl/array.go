package dsl

import (
	"context"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/i18n"
)

type arraySchema[E any] struct {
	elem   valibot.Schema[E]
	minLen int
	maxLen int
	pipe   valibot.Pipe[[]E]
}

// ArrayOption configures an Array schema at construction time.
type ArrayOption[E any] func(*arraySchema[E])

// MinItems rejects arrays shorter than n.
func MinItems[E any](n int) ArrayOption[E] { return func(a *arraySchema[E]) { a.minLen = n } }

// MaxItems rejects arrays longer than n.
func MaxItems[E any](n int) ArrayOption[E] { return func(a *arraySchema[E]) { a.maxLen = n } }

// WithArrayPipe attaches post type-check pipe actions over the whole slice.
func WithArrayPipe[E any](actions ...valibot.Action[[]E]) ArrayOption[E] {
	return func(a *arraySchema[E]) { a.pipe = append(a.pipe, actions...) }
}

// Array returns a schema for homogeneous slices, validating each element
// against elem and then running the whole-array pipe.
func Array[E any](elem valibot.Schema[E], opts ...ArrayOption[E]) valibot.Schema[[]E] {
	a := &arraySchema[E]{elem: elem, minLen: -1, maxLen: -1}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *arraySchema[E]) Kind() string { return "array" }
func (a *arraySchema[E]) Async() bool  { return a.elem.Async() }

func (a *arraySchema[E]) Parse(info valibot.ParseInfo, input any) valibot.Result[[]E] {
	items, ok := asAnySlice(input)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonArray, "")
		return valibot.Err[[]E](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	if iss := a.lengthIssues(info, items); len(iss) > 0 && info.AbortEarly {
		return valibot.Err[[]E](iss)
	}
	out := make([]E, 0, len(items))
	var issues valibot.Issues
	for i, raw := range items {
		childInfo := info.WithPathItem(valibot.ArrayIndexItem(items, i, raw))
		res := a.elem.Parse(childInfo, raw)
		if !res.IsOk() {
			issues = valibot.AppendIssues(issues, res.Issues()...)
			if info.AbortEarly {
				return valibot.Err[[]E](issues)
			}
			continue
		}
		out = append(out, res.Output())
	}
	issues = valibot.AppendIssues(issues, a.lengthIssues(info, items)...)
	if len(issues) > 0 {
		return valibot.Err[[]E](issues)
	}
	return valibot.RunPipe(out, a.pipe, info.ToValidateInfo(valibot.ReasonArray, ""))
}

func (a *arraySchema[E]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[[]E] {
	items, ok := asAnySlice(input)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonArray, "")
		return valibot.Err[[]E](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	values, perElem := parallelChildren(ctx, len(items), info.AbortEarly, func(i int) (any, valibot.Issues) {
		childInfo := info.WithPathItem(valibot.ArrayIndexItem(items, i, items[i]))
		var res valibot.Result[E]
		if a.elem.Async() {
			if ap, ok := a.elem.(valibot.AsyncParser[E]); ok {
				res = ap.ParseAsync(ctx, childInfo, items[i])
			} else {
				res = a.elem.Parse(childInfo, items[i])
			}
		} else {
			res = a.elem.Parse(childInfo, items[i])
		}
		if !res.IsOk() {
			return nil, res.Issues()
		}
		return res.Output(), nil
	})
	if info.AbortEarly {
		if iss, failed := firstFailure(perElem); failed {
			return valibot.Err[[]E](iss)
		}
	}
	out := make([]E, 0, len(items))
	var issues valibot.Issues
	for i := range items {
		if len(perElem[i]) > 0 {
			issues = valibot.AppendIssues(issues, perElem[i]...)
			continue
		}
		out = append(out, values[i].(E))
	}
	issues = valibot.AppendIssues(issues, a.lengthIssues(info, items)...)
	if len(issues) > 0 {
		return valibot.Err[[]E](issues)
	}
	return valibot.RunPipe(out, a.pipe, info.ToValidateInfo(valibot.ReasonArray, ""))
}

func (a *arraySchema[E]) lengthIssues(info valibot.ParseInfo, items []any) valibot.Issues {
	vinfo := info.ToValidateInfo(valibot.ReasonArray, "")
	var issues valibot.Issues
	if a.minLen >= 0 && len(items) < a.minLen {
		issues = valibot.AppendIssues(issues, valibot.NewIssue(vinfo, valibot.ValidationMinLength, i18n.T(valibot.ValidationMinLength, nil), items))
	}
	if a.maxLen >= 0 && len(items) > a.maxLen {
		issues = valibot.AppendIssues(issues, valibot.NewIssue(vinfo, valibot.ValidationMaxLength, i18n.T(valibot.ValidationMaxLength, nil), items))
	}
	return issues
}

func asAnySlice(input any) ([]any, bool) {
	switch v := input.(type) {
	case []any:
		return v, true
	default:
		return nil, false
	}
}
