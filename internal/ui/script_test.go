package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRunScriptPlaysUntilQuit(t *testing.T) {
	ctrl := testController(t)
	script := strings.Join([]string{
		"# first scenario",
		"start",
		"",
		"add neutrophil",
		"submit",
		"score",
		"quit",
		"add macrophage",
	}, "\n")

	var out bytes.Buffer
	if err := RunScript(context.Background(), NewInterpreter(ctrl), strings.NewReader(script), &out); err != nil {
		t.Fatalf("run script: %v", err)
	}
	got := out.String()
	if strings.Contains(got, "first scenario") {
		t.Fatalf("expected comment skipped, got %q", got)
	}
	if !strings.Contains(got, "Good choice! Neutrophil is effective here.") {
		t.Fatalf("expected feedback in output, got %q", got)
	}
	if !strings.Contains(got, "Score: 10.") {
		t.Fatalf("expected score line, got %q", got)
	}
	if strings.Contains(got, "> add macrophage") {
		t.Fatalf("expected script to stop at quit")
	}
}

func TestRunScriptHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunScript(ctx, NewInterpreter(testController(t)), strings.NewReader("start\n"), &bytes.Buffer{})
	if err == nil {
		t.Fatalf("expected context error")
	}
}
