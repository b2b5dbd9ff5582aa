// Package dsl holds the concrete schema kinds (primitives, composites,
// wrappers, transforms) built on top of the valibot core protocol.
package dsl

import (
	"encoding/json"
	"math"
	"math/big"
	"time"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/i18n"
)

func typeIssue(info valibot.ValidateInfo, input any, validation string) valibot.Issue {
	return valibot.NewIssue(info, validation, i18n.T(validation, nil), input)
}

// ---- String ----

type stringSchema struct{ pipe valibot.Pipe[string] }

// String returns the string schema: accepts Go string input only.
func String(pipe ...valibot.Action[string]) valibot.Schema[string] {
	return stringSchema{pipe: valibot.Pipe[string](pipe)}
}

func (s stringSchema) Kind() string { return "string" }
func (s stringSchema) Async() bool  { return false }
func (s stringSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[string] {
	vinfo := info.ToValidateInfo(valibot.ReasonString, "")
	str, ok := input.(string)
	if !ok {
		return valibot.Err[string](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	return valibot.RunPipe(str, s.pipe, vinfo)
}

// ---- Bool ----

type boolSchema struct{ pipe valibot.Pipe[bool] }

// Bool returns the boolean schema.
func Bool(pipe ...valibot.Action[bool]) valibot.Schema[bool] {
	return boolSchema{pipe: valibot.Pipe[bool](pipe)}
}

func (s boolSchema) Kind() string { return "boolean" }
func (s boolSchema) Async() bool  { return false }
func (s boolSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[bool] {
	vinfo := info.ToValidateInfo(valibot.ReasonBoolean, "")
	b, ok := input.(bool)
	if !ok {
		return valibot.Err[bool](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	return valibot.RunPipe(b, s.pipe, vinfo)
}

// ---- Number ----

type numberSchema struct{ pipe valibot.Pipe[float64] }

// Number returns the number schema. It accepts Go numeric kinds and both
// encoding/json.Number and goccy/go-json's Number, normalizing to float64.
func Number(pipe ...valibot.Action[float64]) valibot.Schema[float64] {
	return numberSchema{pipe: valibot.Pipe[float64](pipe)}
}

func (s numberSchema) Kind() string { return "number" }
func (s numberSchema) Async() bool  { return false }
func (s numberSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[float64] {
	vinfo := info.ToValidateInfo(valibot.ReasonNumber, "")
	f, ok := coerceFloat(input)
	if !ok {
		return valibot.Err[float64](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	return valibot.RunPipe(f, s.pipe, vinfo)
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ---- BigInt ----

type bigIntSchema struct{ pipe valibot.Pipe[*big.Int] }

// BigInt returns the bigint schema: accepts a non-nil *big.Int, int, int64,
// and base-10 numeric strings. Other Go integer kinds are rejected.
func BigInt(pipe ...valibot.Action[*big.Int]) valibot.Schema[*big.Int] {
	return bigIntSchema{pipe: valibot.Pipe[*big.Int](pipe)}
}

func (s bigIntSchema) Kind() string { return "bigint" }
func (s bigIntSchema) Async() bool  { return false }
func (s bigIntSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[*big.Int] {
	vinfo := info.ToValidateInfo(valibot.ReasonBigint, "")
	b, ok := coerceBigInt(input)
	if !ok {
		return valibot.Err[*big.Int](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	return valibot.RunPipe(b, s.pipe, vinfo)
}

func coerceBigInt(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case *big.Int:
		if n == nil {
			return nil, false
		}
		return new(big.Int).Set(n), true
	case int:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case string:
		return new(big.Int).SetString(n, 10)
	default:
		return nil, false
	}
}

// ---- NaN ----

type nanSchema struct{}

// NaN returns a schema accepting only the float64 NaN value.
func NaN() valibot.Schema[float64] { return nanSchema{} }

func (nanSchema) Kind() string { return "nan" }
func (nanSchema) Async() bool  { return false }
func (nanSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[float64] {
	vinfo := info.ToValidateInfo(valibot.ReasonNumber, "")
	f, ok := input.(float64)
	if !ok || !math.IsNaN(f) {
		return valibot.Err[float64](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	return valibot.Ok(f)
}

// ---- Never / Void / Any / Unknown ----

type neverSchema struct{}

// Never returns a schema that rejects every input.
func Never() valibot.Schema[struct{}] { return neverSchema{} }

func (neverSchema) Kind() string { return "never" }
func (neverSchema) Async() bool  { return false }
func (neverSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[struct{}] {
	vinfo := info.ToValidateInfo(valibot.ReasonAny, "")
	return valibot.Err[struct{}](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
}

type voidSchema struct{}

// Void returns a schema that only accepts the absence of a value
// (valibot.Undefined).
func Void() valibot.Schema[struct{}] { return voidSchema{} }

func (voidSchema) Kind() string { return "void" }
func (voidSchema) Async() bool  { return false }
func (voidSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[struct{}] {
	vinfo := info.ToValidateInfo(valibot.ReasonAny, "")
	if !valibot.IsUndefined(input) {
		return valibot.Err[struct{}](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	return valibot.Ok(struct{}{})
}

type anySchemaKind struct{ kind string }

// Any returns a schema that accepts every input unchanged.
func Any() valibot.Schema[any] { return anySchemaKind{kind: "any"} }

// Unknown is an alias for Any with a distinct Kind() tag, preserving the
// distinction an author might rely on for introspection.
func Unknown() valibot.Schema[any] { return anySchemaKind{kind: "unknown"} }

func (a anySchemaKind) Kind() string { return a.kind }
func (a anySchemaKind) Async() bool  { return false }
func (a anySchemaKind) Parse(info valibot.ParseInfo, input any) valibot.Result[any] {
	return valibot.Ok(input)
}

// ---- Literal ----

type literalSchema[T comparable] struct{ want T }

// Literal returns a schema requiring input to equal want exactly.
func Literal[T comparable](want T) valibot.Schema[T] { return literalSchema[T]{want: want} }

func (l literalSchema[T]) Kind() string { return "literal" }
func (l literalSchema[T]) Async() bool  { return false }
func (l literalSchema[T]) Parse(info valibot.ParseInfo, input any) valibot.Result[T] {
	vinfo := info.ToValidateInfo(valibot.ReasonType, "")
	v, ok := input.(T)
	if !ok || v != l.want {
		return valibot.Err[T](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	return valibot.Ok(v)
}

// ---- Enum ----

type enumSchema[T comparable] struct{ values []T }

// Enum returns a schema requiring membership in values.
func Enum[T comparable](values ...T) valibot.Schema[T] { return enumSchema[T]{values: values} }

func (e enumSchema[T]) Kind() string { return "enum" }
func (e enumSchema[T]) Async() bool  { return false }
func (e enumSchema[T]) Parse(info valibot.ParseInfo, input any) valibot.Result[T] {
	vinfo := info.ToValidateInfo(valibot.ReasonType, "")
	v, ok := input.(T)
	if ok {
		for _, want := range e.values {
			if v == want {
				return valibot.Ok(v)
			}
		}
	}
	return valibot.Err[T](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
}

// ---- InstanceOf ----

type instanceSchema[T any] struct{}

// InstanceOf returns a schema requiring input to already be a concrete T via
// type assertion; it performs no coercion.
func InstanceOf[T any]() valibot.Schema[T] { return instanceSchema[T]{} }

func (instanceSchema[T]) Kind() string { return "instance" }
func (instanceSchema[T]) Async() bool  { return false }
func (instanceSchema[T]) Parse(info valibot.ParseInfo, input any) valibot.Result[T] {
	vinfo := info.ToValidateInfo(valibot.ReasonType, "")
	v, ok := input.(T)
	if !ok {
		return valibot.Err[T](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	return valibot.Ok(v)
}

// ---- Date ----

type dateSchema struct{ pipe valibot.Pipe[time.Time] }

// Date returns a schema accepting a Go time.Time directly, or a string in
// RFC3339 form, which it parses into time.Time.
func Date(pipe ...valibot.Action[time.Time]) valibot.Schema[time.Time] {
	return dateSchema{pipe: valibot.Pipe[time.Time](pipe)}
}

func (s dateSchema) Kind() string { return "date" }
func (s dateSchema) Async() bool  { return false }
func (s dateSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[time.Time] {
	vinfo := info.ToValidateInfo(valibot.ReasonDate, "")
	switch t := input.(type) {
	case time.Time:
		return valibot.RunPipe(t, s.pipe, vinfo)
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return valibot.Err[time.Time](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
		}
		return valibot.RunPipe(parsed, s.pipe, vinfo)
	default:
		return valibot.Err[time.Time](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
}

// ---- Blob ----

type blobSchema struct{ pipe valibot.Pipe[[]byte] }

// Blob returns a schema accepting []byte input directly.
func Blob(pipe ...valibot.Action[[]byte]) valibot.Schema[[]byte] {
	return blobSchema{pipe: valibot.Pipe[[]byte](pipe)}
}

func (s blobSchema) Kind() string { return "blob" }
func (s blobSchema) Async() bool  { return false }
func (s blobSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[[]byte] {
	vinfo := info.ToValidateInfo(valibot.ReasonBlob, "")
	b, ok := input.([]byte)
	if !ok {
		return valibot.Err[[]byte](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	return valibot.RunPipe(b, s.pipe, vinfo)
}

// ---- Symbol ----

type symbolSchema struct{}

// Symbol returns a schema accepting any comparable value treated as an
// opaque identity token. Go has no runtime Symbol primitive, so this
// accepts any non-nil, non-Undefined value unchanged.
func Symbol() valibot.Schema[any] { return symbolSchema{} }

func (symbolSchema) Kind() string { return "symbol" }
func (symbolSchema) Async() bool  { return false }
func (symbolSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[any] {
	vinfo := info.ToValidateInfo(valibot.ReasonAny, "")
	if input == nil || valibot.IsUndefined(input) {
		return valibot.Err[any](valibot.Issues{typeIssue(vinfo, input, valibot.ValidationInvalidType)})
	}
	return valibot.Ok(input)
}
