package valibot_test

import "testing"

import "github.com/jussisaurio/valibot"

func TestResult_OkAndErr(t *testing.T) {
	ok := valibot.Ok(5)
	if !ok.IsOk() || ok.Output() != 5 {
		t.Fatalf("expected ok result with output 5")
	}

	fail := valibot.Err[int](valibot.Issues{{Validation: "x"}})
	if fail.IsOk() || len(fail.Issues()) != 1 {
		t.Fatalf("expected failing result with one issue")
	}
}

func TestErr_EmptyIssuesGetsPlaceholder(t *testing.T) {
	fail := valibot.Err[int](nil)
	if fail.IsOk() || len(fail.Issues()) == 0 {
		t.Fatalf("expected a placeholder issue when Err is called with none")
	}
}

func TestMapResult(t *testing.T) {
	doubled := valibot.MapResult(valibot.Ok(3), func(v int) int { return v * 2 })
	if !doubled.IsOk() || doubled.Output() != 6 {
		t.Fatalf("expected mapped success, got %+v", doubled)
	}

	untouched := valibot.MapResult(valibot.Err[int](valibot.Issues{{Validation: "x"}}), func(v int) string { return "never" })
	if untouched.IsOk() {
		t.Fatalf("expected MapResult to leave a failing result untouched")
	}
}
