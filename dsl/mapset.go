package dsl

import (
	"context"

	"github.com/jussisaurio/valibot"
)

// mapSchema validates a native Go map[K]V, as opposed to Record's JSON
// object projection: input is expected to already be a map[any]any (e.g.
// produced by a prior decode step), and both key and value sides run
// through their own schemas with independent path provenance.
type mapSchema[K comparable, V any] struct {
	key   valibot.Schema[K]
	value valibot.Schema[V]
}

// Map returns a schema for map[K]V where keySchema validates each key and
// valueSchema validates each value.
func Map[K comparable, V any](keySchema valibot.Schema[K], valueSchema valibot.Schema[V]) valibot.Schema[map[K]V] {
	return mapSchema[K, V]{key: keySchema, value: valueSchema}
}

func (m mapSchema[K, V]) Kind() string { return "map" }
func (m mapSchema[K, V]) Async() bool  { return m.key.Async() || m.value.Async() }

func (m mapSchema[K, V]) Parse(info valibot.ParseInfo, input any) valibot.Result[map[K]V] {
	src, ok := input.(map[any]any)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonMap, "")
		return valibot.Err[map[K]V](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	out := make(map[K]V, len(src))
	var issues valibot.Issues
	for k, v := range src {
		keyInfo := info.WithPathItem(valibot.MapKeyItem(src, k, k))
		keyRes := m.key.Parse(keyInfo, k)
		valInfo := info.WithPathItem(valibot.MapValueItem(src, k, v))
		valRes := m.value.Parse(valInfo, v)
		if !keyRes.IsOk() || !valRes.IsOk() {
			if !keyRes.IsOk() {
				issues = valibot.AppendIssues(issues, keyRes.Issues()...)
			}
			if !valRes.IsOk() {
				issues = valibot.AppendIssues(issues, valRes.Issues()...)
			}
			if info.AbortEarly {
				return valibot.Err[map[K]V](issues)
			}
			continue
		}
		out[keyRes.Output()] = valRes.Output()
	}
	if len(issues) > 0 {
		return valibot.Err[map[K]V](issues)
	}
	return valibot.Ok(out)
}

func (m mapSchema[K, V]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[map[K]V] {
	if !m.Async() {
		return m.Parse(info, input)
	}
	src, ok := input.(map[any]any)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonMap, "")
		return valibot.Err[map[K]V](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	keys := make([]any, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	type kv struct {
		key K
		val V
	}
	values, perEntry := parallelChildren(ctx, len(keys), info.AbortEarly, func(i int) (any, valibot.Issues) {
		rawKey := keys[i]
		v := src[rawKey]
		keyInfo := info.WithPathItem(valibot.MapKeyItem(src, rawKey, rawKey))
		keyRes := m.key.Parse(keyInfo, rawKey)
		valInfo := info.WithPathItem(valibot.MapValueItem(src, rawKey, v))
		var valRes valibot.Result[V]
		if m.value.Async() {
			if ap, ok := m.value.(valibot.AsyncParser[V]); ok {
				valRes = ap.ParseAsync(ctx, valInfo, v)
			} else {
				valRes = m.value.Parse(valInfo, v)
			}
		} else {
			valRes = m.value.Parse(valInfo, v)
		}
		if !keyRes.IsOk() || !valRes.IsOk() {
			var iss valibot.Issues
			if !keyRes.IsOk() {
				iss = valibot.AppendIssues(iss, keyRes.Issues()...)
			}
			if !valRes.IsOk() {
				iss = valibot.AppendIssues(iss, valRes.Issues()...)
			}
			return nil, iss
		}
		return kv{key: keyRes.Output(), val: valRes.Output()}, nil
	})
	if info.AbortEarly {
		if iss, failed := firstFailure(perEntry); failed {
			return valibot.Err[map[K]V](iss)
		}
	}
	out := make(map[K]V, len(keys))
	var issues valibot.Issues
	for i := range keys {
		if len(perEntry[i]) > 0 {
			issues = valibot.AppendIssues(issues, perEntry[i]...)
			continue
		}
		pair := values[i].(kv)
		out[pair.key] = pair.val
	}
	if len(issues) > 0 {
		return valibot.Err[map[K]V](issues)
	}
	return valibot.Ok(out)
}

// setSchema validates a native Go slice projected as a set: duplicate
// members (by Go equality) collapse to one, matching JS Set semantics.
type setSchema[V comparable] struct {
	elem valibot.Schema[V]
}

// Set returns a schema for a collection of unique V values. Input is a
// []any; duplicates surviving element validation collapse silently, the
// same de-duplication a native JS Set performs on insert.
func Set[V comparable](elem valibot.Schema[V]) valibot.Schema[map[V]struct{}] {
	return setSchema[V]{elem: elem}
}

func (s setSchema[V]) Kind() string { return "set" }
func (s setSchema[V]) Async() bool  { return s.elem.Async() }

func (s setSchema[V]) Parse(info valibot.ParseInfo, input any) valibot.Result[map[V]struct{}] {
	items, ok := asAnySlice(input)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonSet, "")
		return valibot.Err[map[V]struct{}](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	out := make(map[V]struct{}, len(items))
	var issues valibot.Issues
	for i, raw := range items {
		childInfo := info.WithPathItem(valibot.SetIndexItem(items, i, raw))
		res := s.elem.Parse(childInfo, raw)
		if !res.IsOk() {
			issues = valibot.AppendIssues(issues, res.Issues()...)
			if info.AbortEarly {
				return valibot.Err[map[V]struct{}](issues)
			}
			continue
		}
		out[res.Output()] = struct{}{}
	}
	if len(issues) > 0 {
		return valibot.Err[map[V]struct{}](issues)
	}
	return valibot.Ok(out)
}

func (s setSchema[V]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[map[V]struct{}] {
	if !s.Async() {
		return s.Parse(info, input)
	}
	items, ok := asAnySlice(input)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonSet, "")
		return valibot.Err[map[V]struct{}](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	values, perElem := parallelChildren(ctx, len(items), info.AbortEarly, func(i int) (any, valibot.Issues) {
		childInfo := info.WithPathItem(valibot.SetIndexItem(items, i, items[i]))
		var res valibot.Result[V]
		if ap, ok := s.elem.(valibot.AsyncParser[V]); ok {
			res = ap.ParseAsync(ctx, childInfo, items[i])
		} else {
			res = s.elem.Parse(childInfo, items[i])
		}
		if !res.IsOk() {
			return nil, res.Issues()
		}
		return res.Output(), nil
	})
	if info.AbortEarly {
		if iss, failed := firstFailure(perElem); failed {
			return valibot.Err[map[V]struct{}](iss)
		}
	}
	out := make(map[V]struct{}, len(items))
	var issues valibot.Issues
	for i := range items {
		if len(perElem[i]) > 0 {
			issues = valibot.AppendIssues(issues, perElem[i]...)
			continue
		}
		out[values[i].(V)] = struct{}{}
	}
	if len(issues) > 0 {
		return valibot.Err[map[V]struct{}](issues)
	}
	return valibot.Ok(out)
}
