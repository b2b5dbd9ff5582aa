package valibot

// undefinedT is the type of the Undefined sentinel. Go's nil already denotes
// JSON null; schemas need a second, distinct value to denote "this field was
// never supplied" so Optional/Nullable/Nullish wrappers can tell the two
// apart.
type undefinedT struct{}

// Undefined is the sentinel value object schemas pass to a field's schema in
// place of nil when the field's key was absent from the input map. It is
// distinct from any valid JSON value, including nil.
var Undefined any = undefinedT{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedT)
	return ok
}
