package dsl

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"
)

// DecodeJSON decodes r into the untyped map[string]any/[]any/string/bool/
// gojson.Number tree Parse expects as input. It decodes numbers with
// UseNumber so large integers and high-precision decimals survive the
// JSON-to-Go hop instead of rounding through float64 on the way in;
// Number()'s coercion recognizes the resulting gojson.Number values.
func DecodeJSON(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeJSONBytes is DecodeJSON over an in-memory buffer.
func DecodeJSONBytes(b []byte) (any, error) {
	return DecodeJSON(bytes.NewReader(b))
}
