package rules_test

import (
	"math/big"
	"regexp"
	"testing"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/rules"
)

func run[T any](action valibot.Action[T], v T) valibot.Result[T] {
	return action(v, valibot.ValidateInfo{})
}

func TestStringLengthRules(t *testing.T) {
	if res := run(rules.MinLength(3), "ab"); res.IsOk() {
		t.Fatalf("expected MinLength(3) to reject a 2-rune string")
	}
	if res := run(rules.MaxLength(2), "abc"); res.IsOk() {
		t.Fatalf("expected MaxLength(2) to reject a 3-rune string")
	}
	if res := run(rules.Length(3), "abc"); !res.IsOk() {
		t.Fatalf("expected Length(3) to accept an exact-length string")
	}
}

func TestPattern(t *testing.T) {
	re := regexp.MustCompile(`^\d+$`)
	if res := run(rules.Pattern(re), "123"); !res.IsOk() {
		t.Fatalf("expected digit string to match")
	}
	if res := run(rules.Pattern(re), "12a"); res.IsOk() {
		t.Fatalf("expected non-digit string to fail")
	}
}

func TestEmailURLUUID(t *testing.T) {
	if res := run(rules.Email(), "a@b.com"); !res.IsOk() {
		t.Fatalf("expected a valid email to pass")
	}
	if res := run(rules.Email(), "not-an-email"); res.IsOk() {
		t.Fatalf("expected an invalid email to fail")
	}
	if res := run(rules.URL(), "https://example.com"); !res.IsOk() {
		t.Fatalf("expected an absolute URL to pass")
	}
	if res := run(rules.URL(), "/relative/path"); res.IsOk() {
		t.Fatalf("expected a relative path to fail URL()")
	}
	if res := run(rules.UUID(), "123e4567-e89b-12d3-a456-426614174000"); !res.IsOk() {
		t.Fatalf("expected a canonical UUID to pass")
	}
	if res := run(rules.UUID(), "not-a-uuid"); res.IsOk() {
		t.Fatalf("expected a malformed UUID to fail")
	}
}

func TestStringAffixAndCase(t *testing.T) {
	if res := run(rules.StartsWith("foo"), "foobar"); !res.IsOk() {
		t.Fatalf("expected StartsWith match")
	}
	if res := run(rules.EndsWith("bar"), "foobar"); !res.IsOk() {
		t.Fatalf("expected EndsWith match")
	}
	if res := run(rules.Includes("oob"), "foobar"); !res.IsOk() {
		t.Fatalf("expected Includes match")
	}
	if res := run(rules.Trim(), "  x  "); res.Output() != "x" {
		t.Fatalf("expected Trim to strip whitespace, got %q", res.Output())
	}
	if res := run(rules.ToLowerCase(), "ABC"); res.Output() != "abc" {
		t.Fatalf("expected lower-cased output")
	}
	if res := run(rules.ToUpperCase(), "abc"); res.Output() != "ABC" {
		t.Fatalf("expected upper-cased output")
	}
}

func TestNumericRules(t *testing.T) {
	if res := run(rules.Min(5), 4.0); res.IsOk() {
		t.Fatalf("expected Min(5) to reject 4")
	}
	if res := run(rules.Max(5), 6.0); res.IsOk() {
		t.Fatalf("expected Max(5) to reject 6")
	}
	if res := run(rules.Integer(), 1.5); res.IsOk() {
		t.Fatalf("expected Integer() to reject a fractional value")
	}
	if res := run(rules.MultipleOf(3), 9.0); !res.IsOk() {
		t.Fatalf("expected 9 to be a multiple of 3")
	}
	if res := run(rules.MultipleOf(3), 10.0); res.IsOk() {
		t.Fatalf("expected 10 to not be a multiple of 3")
	}
	nan := 0.0
	nan = nan / nan
	if res := run(rules.Finite(), nan); res.IsOk() {
		t.Fatalf("expected Finite() to reject NaN")
	}
}

func TestLuhn(t *testing.T) {
	if res := run(rules.Luhn(), "4539578763621486"); !res.IsOk() {
		t.Fatalf("expected a valid Luhn number to pass")
	}
	if res := run(rules.Luhn(), "4539578763621487"); res.IsOk() {
		t.Fatalf("expected a checksum mismatch to fail")
	}
}

func TestBigIntRules(t *testing.T) {
	if res := run(rules.MinBig(big.NewInt(10)), big.NewInt(5)); res.IsOk() {
		t.Fatalf("expected MinBig to reject a smaller value")
	}
	if res := run(rules.MaxBig(big.NewInt(10)), big.NewInt(20)); res.IsOk() {
		t.Fatalf("expected MaxBig to reject a larger value")
	}
}

func TestCustom(t *testing.T) {
	even := rules.Custom(func(n float64) bool { return int64(n)%2 == 0 })
	if res := run(even, 4.0); !res.IsOk() {
		t.Fatalf("expected 4 to satisfy the even predicate")
	}
	if res := run(even, 3.0); res.IsOk() {
		t.Fatalf("expected 3 to fail the even predicate")
	}
}

func TestAndShortCircuitsOnlyWithAbortPipeEarly(t *testing.T) {
	calls := 0
	counting := func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		calls++
		return valibot.Err[string](valibot.Issues{{Validation: "x"}})
	}
	combined := rules.And(counting, counting)
	res := combined("v", valibot.ValidateInfo{})
	if res.IsOk() || len(res.Issues()) != 2 {
		t.Fatalf("expected both actions' issues collected without AbortPipeEarly")
	}
	if calls != 2 {
		t.Fatalf("expected both actions invoked, got %d calls", calls)
	}

	calls = 0
	res = combined("v", valibot.ValidateInfo{AbortPipeEarly: true})
	if calls != 1 {
		t.Fatalf("expected And to stop after the first failure under AbortPipeEarly, got %d calls", calls)
	}
}

func TestOrSucceedsIfAnyBranchSucceeds(t *testing.T) {
	combined := rules.Or(rules.MinLength(10), rules.Length(3))
	if res := run(combined, "abc"); !res.IsOk() {
		t.Fatalf("expected the second branch to rescue a 3-length string")
	}
	if res := run(combined, "a"); res.IsOk() {
		t.Fatalf("expected both branches to fail for a 1-length string")
	}
}
