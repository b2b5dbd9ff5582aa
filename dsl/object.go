package dsl

import (
	"context"
	"reflect"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/i18n"
)

// Field pairs a declared key with its type-erased schema and metadata. Order
// within an Object's field slice is declaration order; objectSchema never
// re-sorts it.
type Field struct {
	Key      string
	Schema   valibot.AnySchema
	Optional bool
	Default  func() any
}

// F declares a required field.
func F[T any](key string, s valibot.Schema[T]) Field {
	return Field{Key: key, Schema: valibot.Wrap(s)}
}

// FOptional declares a field that may be absent from the input map.
func FOptional[T any](key string, s valibot.Schema[T]) Field {
	return Field{Key: key, Schema: valibot.Wrap(s), Optional: true}
}

// FDefault declares a field that, when absent, is replaced by def() before
// parsing.
func FDefault[T any](key string, s valibot.Schema[T], def func() T) Field {
	return Field{Key: key, Schema: valibot.Wrap(s), Optional: true, Default: func() any { return def() }}
}

type objectSchema struct {
	fields        []Field
	index         map[string]int
	unknownPolicy valibot.UnknownPolicy
	unknownTarget string
	refines       []func(map[string]any) valibot.Issues
	async         bool
}

// ObjectOption configures an Object schema at construction time.
type ObjectOption func(*objectSchema)

// WithUnknownStrict rejects any input key not declared as a Field.
func WithUnknownStrict() ObjectOption {
	return func(o *objectSchema) { o.unknownPolicy = valibot.UnknownStrict }
}

// WithUnknownPassthrough preserves undeclared keys into the output map
// directly (target == "") or nested under a declared map[string]any field
// named target.
func WithUnknownPassthrough(target string) ObjectOption {
	return func(o *objectSchema) {
		o.unknownPolicy = valibot.UnknownPassthrough
		o.unknownTarget = target
	}
}

// WithObjectRefine attaches a whole-object refinement run after every field
// has type-checked and piped successfully.
func WithObjectRefine(fn func(map[string]any) valibot.Issues) ObjectOption {
	return func(o *objectSchema) { o.refines = append(o.refines, fn) }
}

// Object builds an object schema from an ordered list of fields. Default
// unknown-key handling is Strip.
func Object(fields []Field, opts ...ObjectOption) valibot.Schema[map[string]any] {
	o := &objectSchema{
		fields:        fields,
		index:         make(map[string]int, len(fields)),
		unknownPolicy: valibot.UnknownStrip,
	}
	for i, f := range fields {
		o.index[f.Key] = i
		if f.Schema.Async() {
			o.async = true
		}
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *objectSchema) Kind() string { return "object" }
func (o *objectSchema) Async() bool  { return o.async }

func (o *objectSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[map[string]any] {
	src, ok := input.(map[string]any)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonObject, "")
		return valibot.Err[map[string]any](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	out, issues := o.parseKnown(info, src)
	if info.AbortEarly && len(issues) > 0 {
		return valibot.Err[map[string]any](issues)
	}
	issues = valibot.AppendIssues(issues, o.parseUnknown(info, src, out)...)
	if len(issues) > 0 {
		return valibot.Err[map[string]any](issues)
	}
	for _, refine := range o.refines {
		if extra := refine(out); len(extra) > 0 {
			issues = valibot.AppendIssues(issues, extra...)
			if info.AbortEarly {
				break
			}
		}
	}
	if len(issues) > 0 {
		return valibot.Err[map[string]any](issues)
	}
	return valibot.Ok(out)
}

func (o *objectSchema) parseKnown(info valibot.ParseInfo, src map[string]any) (map[string]any, valibot.Issues) {
	out := make(map[string]any, len(o.fields))
	var issues valibot.Issues
	for _, f := range o.fields {
		childInfo := info.WithPathItem(valibot.ObjectKeyItem(src, f.Key, src[f.Key]))
		val, exists := src[f.Key]
		if !exists {
			if f.Default != nil {
				val = f.Default()
			} else {
				val = valibot.Undefined
			}
		}
		res := fieldSchema(f).Parse(childInfo, val)
		if !res.IsOk() {
			issues = valibot.AppendIssues(issues, res.Issues()...)
			if info.AbortEarly {
				return out, issues
			}
			continue
		}
		if !exists && f.Default == nil && isAbsentOutput(res.Output()) {
			continue
		}
		out[f.Key] = res.Output()
	}
	return out, issues
}

// fieldUndefinedGate lets a field declared optional with no default treat a
// missing key as acceptable without requiring its own schema to understand
// the Undefined sentinel. Any other input, including an explicit nil, still
// reaches inner unchanged, so a field already wrapped in Optional/Nullish by
// hand keeps deciding its own Undefined handling.
type fieldUndefinedGate struct{ inner valibot.AnySchema }

func (g fieldUndefinedGate) Kind() string { return g.inner.Kind() }
func (g fieldUndefinedGate) Async() bool  { return g.inner.Async() }
func (g fieldUndefinedGate) Parse(info valibot.ParseInfo, input any) valibot.Result[any] {
	if valibot.IsUndefined(input) {
		return valibot.Ok[any](nil)
	}
	return g.inner.Parse(info, input)
}
func (g fieldUndefinedGate) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[any] {
	if valibot.IsUndefined(input) {
		return valibot.Ok[any](nil)
	}
	return g.inner.ParseAsync(ctx, info, input)
}

// fieldSchema returns the schema a field is actually parsed through: a
// field declared optional with no default gets an Undefined gate layered
// on top so a plain schema doesn't need to handle the sentinel itself;
// every other field runs its declared schema unchanged, deciding presence
// entirely on its own when it's already an Optional/Nullable/Nullish
// wrapper.
func fieldSchema(f Field) valibot.AnySchema {
	if f.Optional && f.Default == nil {
		return valibot.Wrap[any](fieldUndefinedGate{inner: f.Schema})
	}
	return f.Schema
}

// isAbsentOutput reports whether a successfully parsed value represents "no
// value": untyped nil, or a nil pointer of any type, the shapes
// Optional/Nullable/Nullish wrappers and fieldUndefinedGate produce when a
// missing key was accepted rather than supplied.
func isAbsentOutput(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// fieldAbsentMarker signals to parseFieldsAsync's assembly step that a
// field resolved to no value and should be omitted, distinct from a
// legitimately parsed nil such as Any() accepting a real null.
var fieldAbsentMarker = new(struct{})

func (o *objectSchema) parseUnknown(info valibot.ParseInfo, src, out map[string]any) valibot.Issues {
	var issues valibot.Issues
	for k, v := range src {
		if _, known := o.index[k]; known {
			continue
		}
		switch o.unknownPolicy {
		case valibot.UnknownStrict:
			childInfo := info.WithPathItem(valibot.ObjectKeyItem(src, k, v))
			issues = valibot.AppendIssues(issues, valibot.NewIssue(childInfo.ToValidateInfo(valibot.ReasonObject, ""), valibot.ValidationUnknownKey, i18n.T(valibot.ValidationUnknownKey, nil), v))
			if info.AbortEarly {
				return issues
			}
		case valibot.UnknownStrip:
			// drop
		case valibot.UnknownPassthrough:
			if o.unknownTarget == "" {
				out[k] = v
				continue
			}
			extra, _ := out[o.unknownTarget].(map[string]any)
			if extra == nil {
				extra = map[string]any{}
			}
			extra[k] = v
			out[o.unknownTarget] = extra
		}
	}
	return issues
}

func (o *objectSchema) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[map[string]any] {
	if !o.async {
		return o.Parse(info, input)
	}
	src, ok := input.(map[string]any)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonObject, "")
		return valibot.Err[map[string]any](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	return parseFieldsAsync(ctx, info, src, o.fields, func(out map[string]any, issues valibot.Issues) valibot.Result[map[string]any] {
		issues = valibot.AppendIssues(issues, o.parseUnknown(info, src, out)...)
		if len(issues) > 0 {
			return valibot.Err[map[string]any](issues)
		}
		for _, refine := range o.refines {
			if extra := refine(out); len(extra) > 0 {
				issues = valibot.AppendIssues(issues, extra...)
			}
		}
		if len(issues) > 0 {
			return valibot.Err[map[string]any](issues)
		}
		return valibot.Ok(out)
	})
}

// Shape returns the object's declared fields in declaration order, for
// introspection by derived operations (Pick/Omit/Extend/Merge).
func (o *objectSchema) Shape() []Field {
	out := make([]Field, len(o.fields))
	copy(out, o.fields)
	return out
}

// Pick returns a new object schema retaining only the named fields, in the
// original declaration order.
func Pick(s valibot.Schema[map[string]any], keys ...string) valibot.Schema[map[string]any] {
	o, ok := s.(*objectSchema)
	if !ok {
		return s
	}
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	var kept []Field
	for _, f := range o.fields {
		if _, ok := want[f.Key]; ok {
			kept = append(kept, f)
		}
	}
	return Object(kept, objOptionsFrom(o)...)
}

// Omit returns a new object schema dropping the named fields.
func Omit(s valibot.Schema[map[string]any], keys ...string) valibot.Schema[map[string]any] {
	o, ok := s.(*objectSchema)
	if !ok {
		return s
	}
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	var kept []Field
	for _, f := range o.fields {
		if _, ok := drop[f.Key]; !ok {
			kept = append(kept, f)
		}
	}
	return Object(kept, objOptionsFrom(o)...)
}

// Extend returns a new object schema with more fields appended after the
// original's, replacing any field sharing a key with one from more.
func Extend(s valibot.Schema[map[string]any], more []Field) valibot.Schema[map[string]any] {
	o, ok := s.(*objectSchema)
	if !ok {
		return s
	}
	overridden := make(map[string]struct{}, len(more))
	for _, f := range more {
		overridden[f.Key] = struct{}{}
	}
	kept := make([]Field, 0, len(o.fields)+len(more))
	for _, f := range o.fields {
		if _, skip := overridden[f.Key]; !skip {
			kept = append(kept, f)
		}
	}
	kept = append(kept, more...)
	return Object(kept, objOptionsFrom(o)...)
}

// Merge returns a new object schema whose fields are a's followed by b's,
// with b's fields winning on key collision; unknown-key policy is taken
// from a.
func Merge(a, b valibot.Schema[map[string]any]) valibot.Schema[map[string]any] {
	ao, ok := a.(*objectSchema)
	if !ok {
		return a
	}
	bo, ok := b.(*objectSchema)
	if !ok {
		return a
	}
	return Extend(ao, bo.fields)
}

// Partial returns a new object schema where every field becomes optional.
func Partial(s valibot.Schema[map[string]any]) valibot.Schema[map[string]any] {
	o, ok := s.(*objectSchema)
	if !ok {
		return s
	}
	kept := make([]Field, len(o.fields))
	for i, f := range o.fields {
		f.Optional = true
		kept[i] = f
	}
	return Object(kept, objOptionsFrom(o)...)
}

// Required returns a new object schema where every field becomes required,
// the inverse of Partial.
func Required(s valibot.Schema[map[string]any]) valibot.Schema[map[string]any] {
	o, ok := s.(*objectSchema)
	if !ok {
		return s
	}
	kept := make([]Field, len(o.fields))
	for i, f := range o.fields {
		f.Optional = false
		f.Default = nil
		kept[i] = f
	}
	return Object(kept, objOptionsFrom(o)...)
}

// Strict returns a new object schema that rejects unknown keys instead of
// whatever unknown-key policy s was built with.
func Strict(s valibot.Schema[map[string]any]) valibot.Schema[map[string]any] {
	o, ok := s.(*objectSchema)
	if !ok {
		return s
	}
	opts := objOptionsWithoutUnknownPolicy(o)
	opts = append(opts, WithUnknownStrict())
	return Object(o.Shape(), opts...)
}

// Passthrough returns a new object schema that preserves unknown keys in
// the output instead of whatever unknown-key policy s was built with.
func Passthrough(s valibot.Schema[map[string]any]) valibot.Schema[map[string]any] {
	o, ok := s.(*objectSchema)
	if !ok {
		return s
	}
	opts := objOptionsWithoutUnknownPolicy(o)
	opts = append(opts, WithUnknownPassthrough(o.unknownTarget))
	return Object(o.Shape(), opts...)
}

func objOptionsWithoutUnknownPolicy(o *objectSchema) []ObjectOption {
	opts := []ObjectOption{}
	for _, r := range o.refines {
		opts = append(opts, WithObjectRefine(r))
	}
	return opts
}

func objOptionsFrom(o *objectSchema) []ObjectOption {
	opts := []ObjectOption{}
	switch o.unknownPolicy {
	case valibot.UnknownStrict:
		opts = append(opts, WithUnknownStrict())
	case valibot.UnknownPassthrough:
		opts = append(opts, WithUnknownPassthrough(o.unknownTarget))
	}
	for _, r := range o.refines {
		opts = append(opts, WithObjectRefine(r))
	}
	return opts
}
