package valibot

import "context"

// Parse is the primary one-shot entry point. On success it returns the
// typed output; on failure it raises a *SchemaError carrying the issues.
// The core Schema.Parse itself never raises; this wrapper and ParseAsync
// are the only places the library converts Result into a Go error.
func Parse[T any](s Schema[T], input any, opts ...ParseInfo) (T, error) {
	info := parseInfoOf(opts)
	res := s.Parse(info, input)
	if !res.IsOk() {
		var zero T
		return zero, &SchemaError{Issues: res.Issues()}
	}
	return res.Output(), nil
}

// SafeParse never raises; it returns a discriminated result instead.
func SafeParse[T any](s Schema[T], input any, opts ...ParseInfo) (T, Issues, bool) {
	info := parseInfoOf(opts)
	res := s.Parse(info, input)
	if !res.IsOk() {
		var zero T
		return zero, res.Issues(), false
	}
	return res.Output(), nil, true
}

// ParseAsync is the async analogue of Parse. If s implements AsyncParser
// its ParseAsync is used; a schema that only implements the sync discipline
// is run directly since a trivially-ready latent result still satisfies the
// async contract.
func ParseAsync[T any](ctx context.Context, s Schema[T], input any, opts ...ParseInfo) (T, error) {
	info := parseInfoOf(opts)
	var res Result[T]
	if ap, ok := s.(AsyncParser[T]); ok {
		res = ap.ParseAsync(ctx, info, input)
	} else {
		res = s.Parse(info, input)
	}
	if !res.IsOk() {
		var zero T
		return zero, &SchemaError{Issues: res.Issues()}
	}
	return res.Output(), nil
}

// SafeParseAsync is the async, non-raising analogue of SafeParse.
func SafeParseAsync[T any](ctx context.Context, s Schema[T], input any, opts ...ParseInfo) (T, Issues, bool) {
	info := parseInfoOf(opts)
	var res Result[T]
	if ap, ok := s.(AsyncParser[T]); ok {
		res = ap.ParseAsync(ctx, info, input)
	} else {
		res = s.Parse(info, input)
	}
	if !res.IsOk() {
		var zero T
		return zero, res.Issues(), false
	}
	return res.Output(), nil, true
}

// Is reports whether input conforms to s.
func Is[T any](s Schema[T], input any) bool {
	_, _, ok := SafeParse(s, input)
	return ok
}

func parseInfoOf(opts []ParseInfo) ParseInfo {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ParseInfo{}
}
