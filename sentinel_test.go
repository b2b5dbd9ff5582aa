package valibot_test

import (
	"testing"

	"github.com/jussisaurio/valibot"
)

func TestIsUndefined(t *testing.T) {
	if !valibot.IsUndefined(valibot.Undefined) {
		t.Fatalf("expected valibot.Undefined to report as undefined")
	}
	if valibot.IsUndefined(nil) {
		t.Fatalf("expected nil to be distinct from valibot.Undefined")
	}
	if valibot.IsUndefined("") {
		t.Fatalf("expected an empty string not to be undefined")
	}
}
