package dsl_test

import (
	"context"
	"testing"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/dsl"
)

func TestArray_ElementAndLengthChecks(t *testing.T) {
	s := dsl.Array(dsl.String(), dsl.MinItems[string](1), dsl.MaxItems[string](2))
	if _, err := valibot.Parse(s, []any{"a", "b"}); err != nil {
		t.Fatalf("expected valid array to pass, got %v", err)
	}
	if _, err := valibot.Parse(s, []any{}); err == nil {
		t.Fatalf("expected empty array to fail MinItems")
	}
	if _, err := valibot.Parse(s, []any{"a", "b", "c"}); err == nil {
		t.Fatalf("expected over-long array to fail MaxItems")
	}
	if _, err := valibot.Parse(s, []any{"a", 1}); err == nil {
		t.Fatalf("expected a non-string element to fail")
	}
	if _, err := valibot.Parse(s, "not-an-array"); err == nil {
		t.Fatalf("expected non-slice input to fail the type check")
	}
}

func TestArray_IndexPathOnFailure(t *testing.T) {
	s := dsl.Array(dsl.String())
	_, issues, ok := valibot.SafeParse(s, []any{"a", 2})
	if ok {
		t.Fatalf("expected failure")
	}
	if len(issues) != 1 || issues[0].Path[0].Key != 1 {
		t.Fatalf("expected the issue to be anchored at index 1, got %+v", issues)
	}
}

type asyncString struct{}

func (asyncString) Kind() string { return "string" }
func (asyncString) Async() bool  { return true }
func (asyncString) Parse(info valibot.ParseInfo, input any) valibot.Result[string] {
	s, ok := input.(string)
	if !ok {
		return valibot.Err[string](valibot.Issues{{Validation: "invalid_type"}})
	}
	return valibot.Ok(s)
}
func (a asyncString) ParseAsync(ctx context.Context, info valibot.ParseInfo, input any) valibot.Result[string] {
	return a.Parse(info, input)
}

func TestArray_ParseAsyncPreservesOrder(t *testing.T) {
	s := dsl.Array[string](asyncString{})
	out, err := valibot.ParseAsync[[]string](context.Background(), s, []any{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 || out[0] != "a" || out[1] != "b" || out[2] != "c" {
		t.Fatalf("expected output positions to match input order, got %v", out)
	}
}
