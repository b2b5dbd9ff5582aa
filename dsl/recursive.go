package dsl

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/jussisaurio/valibot"
)

// recursiveSchema defers resolving its inner schema until first use: the
// one state a schema is allowed to hold is a memoized self-decomposition.
// Without it, a self-referencing schema (a tree node whose children are
// the same node type) could never be constructed, since the thunk breaks
// the initialization cycle a direct value reference would create.
type recursiveSchema[T any] struct {
	thunk     func() valibot.Schema[T]
	once      sync.Once
	resolving atomic.Bool
	inner     valibot.Schema[T]
}

// Recursive returns a schema whose structure is produced by thunk, resolved
// exactly once on first Parse/Async call and cached for every call after.
func Recursive[T any](thunk func() valibot.Schema[T]) valibot.Schema[T] {
	return &recursiveSchema[T]{thunk: thunk}
}

func (r *recursiveSchema[T]) resolve() valibot.Schema[T] {
	r.once.Do(func() {
		r.resolving.Store(true)
		r.inner = r.thunk()
		r.resolving.Store(false)
	})
	return r.inner
}

func (r *recursiveSchema[T]) Kind() string { return "recursive" }

// Async reports false while the thunk is still building the inner schema,
// so a self-reference met during construction (Wrap or a composite
// constructor asking its children) does not re-enter the resolution.
func (r *recursiveSchema[T]) Async() bool {
	if r.resolving.Load() {
		return false
	}
	return r.resolve().Async()
}
func (r *recursiveSchema[T]) Parse(info valibot.ParseInfo, input any) valibot.Result[T] {
	return r.resolve().Parse(info, input)
}
func (r *recursiveSchema[T]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[T] {
	inner := r.resolve()
	if ap, ok := inner.(valibot.AsyncParser[T]); ok {
		return ap.ParseAsync(ctx, info, input)
	}
	return inner.Parse(info, input)
}
