package dsl_test

import (
	"fmt"
	"testing"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/dsl"
)

func TestTransform_MapsOutputType(t *testing.T) {
	s := dsl.Transform(dsl.String(), func(v string) (int, error) { return len(v), nil })
	out, err := valibot.Parse(s, "hello")
	if err != nil || out != 5 {
		t.Fatalf("expected length 5, got (%d, %v)", out, err)
	}
}

func TestTransform_FnErrorBecomesIssue(t *testing.T) {
	s := dsl.Transform(dsl.String(), func(v string) (int, error) {
		return 0, fmt.Errorf("cannot convert %q", v)
	})
	_, issues, ok := valibot.SafeParse(s, "x")
	if ok || len(issues) != 1 || issues[0].Validation != valibot.ValidationTransform {
		t.Fatalf("expected a single transform issue, got %+v", issues)
	}
}

func TestTransform_InnerFailureShortCircuits(t *testing.T) {
	s := dsl.Transform(dsl.String(), func(v string) (int, error) { return len(v), nil })
	if _, err := valibot.Parse(s, 5); err == nil {
		t.Fatalf("expected inner type-check failure to propagate without calling fn")
	}
}

func TestCoerce_AcceptsOrFallsBack(t *testing.T) {
	s := dsl.Coerce(dsl.Number(), func(v any) (any, bool) {
		str, ok := v.(string)
		if !ok {
			return nil, false
		}
		var f float64
		if _, err := fmt.Sscanf(str, "%f", &f); err != nil {
			return nil, false
		}
		return f, true
	})
	out, err := valibot.Parse(s, "3.5")
	if err != nil || out != 3.5 {
		t.Fatalf("expected coerced numeric string, got (%v, %v)", out, err)
	}
	out, err = valibot.Parse(s, 4.0)
	if err != nil || out != 4.0 {
		t.Fatalf("expected non-string input to fall through unchanged, got (%v, %v)", out, err)
	}
}
