package dsl

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/jussisaurio/valibot"
)

var errChildFailedAbortEarly = errors.New("dsl: child failed under abort-early")

// parallelChildren runs each thunk concurrently via errgroup, writing its
// result into a pre-sized slot so output order matches declaration order
// regardless of completion order: composite schemas schedule their
// children concurrently but must preserve positional identity. When
// abortEarly is set, a failing thunk cancels the group's context so thunks
// that have not yet started skip their work, and callers collapse the
// result to the first failing slot's issues.
func parallelChildren(ctx context.Context, n int, abortEarly bool, work func(i int) (any, valibot.Issues)) ([]any, []valibot.Issues) {
	values := make([]any, n)
	issues := make([]valibot.Issues, n)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if abortEarly && gctx.Err() != nil {
				return nil
			}
			v, iss := work(i)
			values[i] = v
			issues[i] = iss
			if abortEarly && len(iss) > 0 {
				return errChildFailedAbortEarly
			}
			return nil
		})
	}
	_ = g.Wait()
	return values, issues
}

// firstFailure returns the single issue from the lowest-indexed failing
// slot, the collapsed result an abort-early parallel composite must return
// instead of concatenating every child's issues.
func firstFailure(perChild []valibot.Issues) (valibot.Issues, bool) {
	for _, iss := range perChild {
		if len(iss) > 0 {
			return iss[:1], true
		}
	}
	return nil, false
}

// parseFieldsAsync parses an object's declared fields concurrently, then
// hands the assembled map and accumulated issues to finish for unknown-key
// handling and refinement, mirroring objectSchema.Parse's synchronous path.
func parseFieldsAsync(
	ctx context.Context,
	info valibot.ParseInfo,
	src map[string]any,
	fields []Field,
	finish func(out map[string]any, issues valibot.Issues) valibot.Result[map[string]any],
) valibot.Result[map[string]any] {
	values, perField := parallelChildren(ctx, len(fields), info.AbortEarly, func(i int) (any, valibot.Issues) {
		f := fields[i]
		childInfo := info.WithPathItem(valibot.ObjectKeyItem(src, f.Key, src[f.Key]))
		val, exists := src[f.Key]
		if !exists {
			if f.Default != nil {
				val = f.Default()
			} else {
				val = valibot.Undefined
			}
		}
		schema := fieldSchema(f)
		var res valibot.Result[any]
		if schema.Async() {
			res = schema.ParseAsync(ctx, childInfo, val)
		} else {
			res = schema.Parse(childInfo, val)
		}
		if !res.IsOk() {
			return nil, res.Issues()
		}
		if !exists && f.Default == nil && isAbsentOutput(res.Output()) {
			return fieldAbsentMarker, nil
		}
		return res.Output(), nil
	})
	if info.AbortEarly {
		if iss, failed := firstFailure(perField); failed {
			return valibot.Err[map[string]any](iss)
		}
	}
	out := make(map[string]any, len(fields))
	var issues valibot.Issues
	for i, f := range fields {
		if len(perField[i]) > 0 {
			issues = valibot.AppendIssues(issues, perField[i]...)
			continue
		}
		if values[i] == fieldAbsentMarker {
			continue
		}
		out[f.Key] = values[i]
	}
	return finish(out, issues)
}
