package dsl_test

import (
	"testing"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/dsl"
)

func TestTuple_FixedLengthHeterogeneous(t *testing.T) {
	s := dsl.Tuple(valibot.Wrap[string](dsl.String()), valibot.Wrap[float64](dsl.Number()))
	out, err := valibot.Parse(s, []any{"x", 1.0})
	if err != nil {
		t.Fatalf("expected tuple to parse, got %v", err)
	}
	if out[0] != "x" || out[1] != 1.0 {
		t.Fatalf("expected positional output preserved, got %v", out)
	}
	if _, err := valibot.Parse(s, []any{"x"}); err == nil {
		t.Fatalf("expected a short tuple to fail the length check")
	}
	if _, err := valibot.Parse(s, []any{"x", "not-a-number"}); err == nil {
		t.Fatalf("expected a wrong-typed position to fail")
	}
}

func TestTupleWithRest_OverflowGoesThroughRest(t *testing.T) {
	s := dsl.TupleWithRest(valibot.Wrap[float64](dsl.Number()), valibot.Wrap[string](dsl.String()))
	out, err := valibot.Parse(s, []any{"x", 1.0, 2.0, 3.0})
	if err != nil {
		t.Fatalf("expected rest elements to validate against the rest schema, got %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("expected all 4 positions in output, got %v", out)
	}
	_, issues, ok := valibot.SafeParse(s, []any{"x", 1.0, "bad"})
	if ok {
		t.Fatalf("expected a rest-position type failure to surface via Result, not panic")
	}
	if len(issues) == 0 {
		t.Fatalf("expected at least one issue for the bad rest element")
	}
}
