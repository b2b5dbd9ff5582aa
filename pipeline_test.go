package valibot_test

import (
	"testing"

	"github.com/jussisaurio/valibot"
)

func minLen(n int) valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		if len(v) < n {
			return valibot.Err[string](valibot.Issues{valibot.NewIssue(info, "min_length", "too short", v)})
		}
		return valibot.Ok(v)
	}
}

func upper() valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		out := ""
		for _, r := range v {
			if r >= 'a' && r <= 'z' {
				r -= 32
			}
			out += string(r)
		}
		return valibot.Ok(out)
	}
}

func TestRunPipe_AppliesInOrder(t *testing.T) {
	res := valibot.RunPipe("ab", valibot.Pipe[string]{minLen(1), upper()}, valibot.ValidateInfo{})
	if !res.IsOk() || res.Output() != "AB" {
		t.Fatalf("expected transformed output AB, got %+v", res)
	}
}

func TestRunPipe_CollectsIssuesWithoutAbort(t *testing.T) {
	res := valibot.RunPipe("", valibot.Pipe[string]{minLen(5), minLen(3)}, valibot.ValidateInfo{})
	if res.IsOk() || len(res.Issues()) != 2 {
		t.Fatalf("expected both failing actions' issues collected, got %+v", res)
	}
}

func TestRunPipe_AbortEarlyStopsAtFirstFailure(t *testing.T) {
	info := valibot.ValidateInfo{AbortEarly: true}
	res := valibot.RunPipe("", valibot.Pipe[string]{minLen(5), minLen(3)}, info)
	if res.IsOk() || len(res.Issues()) != 1 {
		t.Fatalf("expected exactly one issue under AbortEarly, got %+v", res)
	}
}

func TestRunPipe_Empty(t *testing.T) {
	res := valibot.RunPipe("v", nil, valibot.ValidateInfo{})
	if !res.IsOk() || res.Output() != "v" {
		t.Fatalf("expected a no-op pipe to pass the value through unchanged")
	}
}
