package dsl

import (
	"context"

	"github.com/jussisaurio/valibot"
)

// recordDenylist mirrors the prototype-pollution guard every Record schema
// enforces: these keys are always skipped regardless of the key schema,
// never surfaced as an issue, since a caller that round-trips a parsed
// record back into a dynamic-language object must not be able to smuggle a
// prototype override through Go's map[string]any representation.
var recordDenylist = map[string]struct{}{
	"__proto__":   {},
	"prototype":   {},
	"constructor": {},
}

type recordSchema[V any] struct {
	key   valibot.Schema[string]
	value valibot.Schema[V]
}

// Record returns a schema for map[string]V where every key passes keySchema
// and every value passes valueSchema. Keys in the denylist are dropped from
// the output without producing an issue.
func Record[V any](keySchema valibot.Schema[string], valueSchema valibot.Schema[V]) valibot.Schema[map[string]V] {
	return recordSchema[V]{key: keySchema, value: valueSchema}
}

func (r recordSchema[V]) Kind() string { return "record" }
func (r recordSchema[V]) Async() bool  { return r.key.Async() || r.value.Async() }

func (r recordSchema[V]) Parse(info valibot.ParseInfo, input any) valibot.Result[map[string]V] {
	src, ok := input.(map[string]any)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonRecord, "")
		return valibot.Err[map[string]V](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	out := make(map[string]V, len(src))
	var issues valibot.Issues
	for k, v := range src {
		if _, denied := recordDenylist[k]; denied {
			continue
		}
		keyInfo := info.WithPathItem(valibot.RecordKeyItem(src, k, k))
		keyRes := r.key.Parse(keyInfo, k)
		valInfo := info.WithPathItem(valibot.RecordValueItem(src, k, v))
		valRes := r.value.Parse(valInfo, v)
		if !keyRes.IsOk() || !valRes.IsOk() {
			if !keyRes.IsOk() {
				issues = valibot.AppendIssues(issues, keyRes.Issues()...)
			}
			if !valRes.IsOk() {
				issues = valibot.AppendIssues(issues, valRes.Issues()...)
			}
			if info.AbortEarly {
				return valibot.Err[map[string]V](issues)
			}
			continue
		}
		out[keyRes.Output()] = valRes.Output()
	}
	if len(issues) > 0 {
		return valibot.Err[map[string]V](issues)
	}
	return valibot.Ok(out)
}

func (r recordSchema[V]) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[map[string]V] {
	if !r.Async() {
		return r.Parse(info, input)
	}
	src, ok := input.(map[string]any)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonRecord, "")
		return valibot.Err[map[string]V](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	keys := make([]string, 0, len(src))
	for k := range src {
		if _, denied := recordDenylist[k]; denied {
			continue
		}
		keys = append(keys, k)
	}
	type kv struct {
		key string
		val V
	}
	values, perKey := parallelChildren(ctx, len(keys), info.AbortEarly, func(i int) (any, valibot.Issues) {
		k := keys[i]
		v := src[k]
		keyInfo := info.WithPathItem(valibot.RecordKeyItem(src, k, k))
		keyRes := r.key.Parse(keyInfo, k)
		valInfo := info.WithPathItem(valibot.RecordValueItem(src, k, v))
		var valRes valibot.Result[V]
		if r.value.Async() {
			if ap, ok := r.value.(valibot.AsyncParser[V]); ok {
				valRes = ap.ParseAsync(ctx, valInfo, v)
			} else {
				valRes = r.value.Parse(valInfo, v)
			}
		} else {
			valRes = r.value.Parse(valInfo, v)
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
		if iss, failed := firstFailure(perKey); failed {
			return valibot.Err[map[string]V](iss)
		}
	}
	out := make(map[string]V, len(keys))
	var issues valibot.Issues
	for i := range keys {
		if len(perKey[i]) > 0 {
			issues = valibot.AppendIssues(issues, perKey[i]...)
			continue
		}
		pair := values[i].(kv)
		out[pair.key] = pair.val
	}
	if len(issues) > 0 {
		return valibot.Err[map[string]V](issues)
	}
	return valibot.Ok(out)
}
