package valibot_test

import (
	"context"
	"testing"

	"github.com/jussisaurio/valibot"
)

// echoSchema is a minimal stub Schema that accepts string input unchanged
// and rejects everything else, used to exercise the convenience API without
// pulling in the dsl package.
type echoSchema struct{}

func (echoSchema) Kind() string { return "echo" }
func (echoSchema) Async() bool  { return false }
func (echoSchema) Parse(info valibot.ParseInfo, input any) valibot.Result[string] {
	s, ok := input.(string)
	if !ok {
		vinfo := info.ToValidateInfo(valibot.ReasonType, "")
		return valibot.Err[string](valibot.Issues{valibot.NewIssue(vinfo, valibot.ValidationInvalidType, "expected string", input)})
	}
	return valibot.Ok(s)
}

func TestParse_SuccessAndFailure(t *testing.T) {
	out, err := valibot.Parse[string](echoSchema{}, "hello")
	if err != nil || out != "hello" {
		t.Fatalf("expected (\"hello\", nil), got (%q, %v)", out, err)
	}

	_, err = valibot.Parse[string](echoSchema{}, 42)
	if err == nil {
		t.Fatalf("expected error for non-string input")
	}
	issues, ok := valibot.AsIssues(err)
	if !ok || len(issues) != 1 || issues[0].Validation != valibot.ValidationInvalidType {
		t.Fatalf("expected one invalid_type issue, got %v", issues)
	}
}

func TestSafeParse_NeverRaises(t *testing.T) {
	_, issues, ok := valibot.SafeParse[string](echoSchema{}, 1)
	if ok || len(issues) == 0 {
		t.Fatalf("expected failing, non-empty issues result")
	}
}

func TestParseAsync_FallsBackToSyncSchema(t *testing.T) {
	out, err := valibot.ParseAsync[string](context.Background(), echoSchema{}, "x")
	if err != nil || out != "x" {
		t.Fatalf("expected sync fallback to succeed, got (%q, %v)", out, err)
	}
}

func TestIs(t *testing.T) {
	if !valibot.Is[string](echoSchema{}, "ok") {
		t.Fatalf("expected Is to report true for valid input")
	}
	if valibot.Is[string](echoSchema{}, 7) {
		t.Fatalf("expected Is to report false for invalid input")
	}
}
