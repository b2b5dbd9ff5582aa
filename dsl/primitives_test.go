package dsl_test

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/dsl"
	"github.com/jussisaurio/valibot/rules"
)

func TestString_TypeCheckAndPipe(t *testing.T) {
	s := dsl.String(rules.MinLength(2))
	if _, err := valibot.Parse(s, "ab"); err != nil {
		t.Fatalf("expected valid string to pass, got %v", err)
	}
	if _, err := valibot.Parse(s, "a"); err == nil {
		t.Fatalf("expected too-short string to fail")
	}
	if _, err := valibot.Parse(s, 1); err == nil {
		t.Fatalf("expected non-string input to fail type check")
	}
}

func TestNumber_CoercesNumericKinds(t *testing.T) {
	n := dsl.Number()
	for _, in := range []any{1, int64(1), float32(1), "not-a-number"} {
		_, err := valibot.Parse(n, in)
		if s, ok := in.(string); ok && s == "not-a-number" {
			if err == nil {
				t.Fatalf("expected string input to be rejected")
			}
			continue
		}
		if err != nil {
			t.Fatalf("expected %v (%T) to coerce to float64, got %v", in, in, err)
		}
	}
}

func TestNumber_CoercesDecodedJSONNumber(t *testing.T) {
	decoded, err := dsl.DecodeJSONBytes([]byte(`{"age": 29}`))
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("expected a decoded object, got %T", decoded)
	}
	n := dsl.Number()
	out, err := valibot.Parse(n, obj["age"])
	if err != nil || out != 29.0 {
		t.Fatalf("expected the decoder's Number value to coerce to 29, got (%v, %v)", out, err)
	}
}

func TestDecodeJSON_RoundTripsNestedValues(t *testing.T) {
	decoded, err := dsl.DecodeJSON(strings.NewReader(`{"a": [1, "x", true, null]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := decoded.(map[string]any)
	arr, ok := obj["a"].([]any)
	if !ok || len(arr) != 4 {
		t.Fatalf("expected a 4-element array, got %v", obj["a"])
	}
}

func TestBigInt_CoercesStringsAndInts(t *testing.T) {
	b := dsl.BigInt()
	out, err := valibot.Parse(b, "12345678901234567890")
	if err != nil {
		t.Fatalf("expected big numeric string to parse, got %v", err)
	}
	want, _ := new(big.Int).SetString("12345678901234567890", 10)
	if out.Cmp(want) != 0 {
		t.Fatalf("expected %s, got %s", want, out)
	}
	if _, err := valibot.Parse(b, "not-a-number"); err == nil {
		t.Fatalf("expected non-numeric string to fail")
	}
}

func TestNaN_OnlyAcceptsFloatNaN(t *testing.T) {
	n := dsl.NaN()
	nan := 0.0
	nan = nan / nan
	if _, err := valibot.Parse(n, nan); err != nil {
		t.Fatalf("expected NaN to pass, got %v", err)
	}
	if _, err := valibot.Parse(n, 1.0); err == nil {
		t.Fatalf("expected a normal float to be rejected")
	}
}

func TestNeverAndVoid(t *testing.T) {
	if _, err := valibot.Parse(dsl.Never(), "anything"); err == nil {
		t.Fatalf("expected Never() to reject everything")
	}
	if _, err := valibot.Parse(dsl.Void(), valibot.Undefined); err != nil {
		t.Fatalf("expected Void() to accept Undefined, got %v", err)
	}
	if _, err := valibot.Parse(dsl.Void(), nil); err == nil {
		t.Fatalf("expected Void() to reject nil (distinct from Undefined)")
	}
}

func TestAnyAndUnknown(t *testing.T) {
	if out, err := valibot.Parse(dsl.Any(), 42); err != nil || out != 42 {
		t.Fatalf("expected Any() to accept and echo any value")
	}
	if dsl.Any().Kind() == dsl.Unknown().Kind() {
		t.Fatalf("expected Any and Unknown to carry distinct kind tags")
	}
}

func TestLiteralAndEnum(t *testing.T) {
	lit := dsl.Literal("on")
	if _, err := valibot.Parse(lit, "on"); err != nil {
		t.Fatalf("expected literal match to pass")
	}
	if _, err := valibot.Parse(lit, "off"); err == nil {
		t.Fatalf("expected literal mismatch to fail")
	}

	e := dsl.Enum("red", "green", "blue")
	if _, err := valibot.Parse(e, "green"); err != nil {
		t.Fatalf("expected enum member to pass")
	}
	if _, err := valibot.Parse(e, "purple"); err == nil {
		t.Fatalf("expected non-member to fail")
	}
}

func TestInstanceOf(t *testing.T) {
	type marker struct{ n int }
	s := dsl.InstanceOf[marker]()
	if _, err := valibot.Parse(s, marker{n: 1}); err != nil {
		t.Fatalf("expected matching concrete type to pass")
	}
	if _, err := valibot.Parse(s, 1); err == nil {
		t.Fatalf("expected mismatched type to fail")
	}
}

func TestDate_AcceptsTimeAndRFC3339String(t *testing.T) {
	d := dsl.Date()
	now := time.Now()
	if out, err := valibot.Parse(d, now); err != nil || !out.Equal(now) {
		t.Fatalf("expected time.Time input to pass through, got (%v, %v)", out, err)
	}
	str := now.Format(time.RFC3339Nano)
	if _, err := valibot.Parse(d, str); err != nil {
		t.Fatalf("expected RFC3339Nano string to parse, got %v", err)
	}
	if _, err := valibot.Parse(d, "not-a-date"); err == nil {
		t.Fatalf("expected malformed date string to fail")
	}
}

func TestBlob(t *testing.T) {
	b := dsl.Blob()
	if _, err := valibot.Parse(b, []byte("data")); err != nil {
		t.Fatalf("expected []byte input to pass, got %v", err)
	}
	if _, err := valibot.Parse(b, "data"); err == nil {
		t.Fatalf("expected string input to be rejected (not []byte)")
	}
}

func TestSymbol(t *testing.T) {
	sym := dsl.Symbol()
	if _, err := valibot.Parse(sym, "token"); err != nil {
		t.Fatalf("expected any non-nil value to pass, got %v", err)
	}
	if _, err := valibot.Parse(sym, nil); err == nil {
		t.Fatalf("expected nil to be rejected")
	}
	if _, err := valibot.Parse(sym, valibot.Undefined); err == nil {
		t.Fatalf("expected Undefined to be rejected")
	}
}
