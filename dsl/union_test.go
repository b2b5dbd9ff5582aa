package dsl_test

import (
	"testing"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/dsl"
)

func TestUnion_FirstMatchWins(t *testing.T) {
	s := dsl.Union(valibot.Wrap[string](dsl.String()), valibot.Wrap[float64](dsl.Number()))
	out, err := valibot.Parse(s, "hello")
	if err != nil || out != "hello" {
		t.Fatalf("expected string option to match, got (%v, %v)", out, err)
	}
	out, err = valibot.Parse(s, 3.0)
	if err != nil || out != 3.0 {
		t.Fatalf("expected number option to match, got (%v, %v)", out, err)
	}
}

func TestUnion_ExhaustionNestsPerOptionIssues(t *testing.T) {
	s := dsl.Union(valibot.Wrap[string](dsl.String()), valibot.Wrap[float64](dsl.Number()))
	_, issues, ok := valibot.SafeParse(s, true)
	if ok {
		t.Fatalf("expected bool input to match neither option")
	}
	if len(issues) != 1 || issues[0].Validation != valibot.ValidationUnion {
		t.Fatalf("expected a single union issue, got %+v", issues)
	}
	if len(issues[0].Issues) != 2 {
		t.Fatalf("expected the union issue to nest both options' sub-issues, got %+v", issues[0].Issues)
	}
}

func TestDiscriminatedUnion_DispatchesOnTag(t *testing.T) {
	cat := dsl.Object([]dsl.Field{dsl.F("kind", dsl.Literal("cat")), dsl.F("meow", dsl.Bool())})
	dog := dsl.Object([]dsl.Field{dsl.F("kind", dsl.Literal("dog")), dsl.F("bark", dsl.Bool())})
	s := dsl.DiscriminatedUnion("kind", map[string]valibot.Schema[map[string]any]{"cat": cat, "dog": dog})

	if _, err := valibot.Parse(s, map[string]any{"kind": "cat", "meow": true}); err != nil {
		t.Fatalf("expected cat variant to parse, got %v", err)
	}
	if _, err := valibot.Parse(s, map[string]any{"kind": "bird"}); err == nil {
		t.Fatalf("expected an unmapped discriminator value to fail")
	}
}
