package main

import (
	"bytes"
	"testing"
)

func TestRunSelfCheck(t *testing.T) {
	var buf bytes.Buffer
	if code := runSelfCheck(&buf); code != 0 {
		t.Fatalf("self-check failed (exit %d):\n%s", code, buf.String())
	}
}
