package config

import (
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Frontend != FrontendTUI {
		t.Fatalf("expected tui frontend, got %q", cfg.Frontend)
	}
	if !cfg.Audio {
		t.Fatalf("expected audio enabled by default")
	}
	if cfg.FeedbackTTL != 3*time.Second {
		t.Fatalf("expected 3s feedback ttl, got %s", cfg.FeedbackTTL)
	}
	if cfg.MetricsAddr != "" {
		t.Fatalf("expected metrics disabled by default, got %q", cfg.MetricsAddr)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("IMMUNE_FRONTEND", "script")
	t.Setenv("IMMUNE_AUDIO", "false")
	t.Setenv("IMMUNE_METRICS_ADDR", "127.0.0.1:9102")
	t.Setenv("IMMUNE_FEEDBACK_TTL", "500ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Frontend != FrontendScript || cfg.Audio || cfg.MetricsAddr != "127.0.0.1:9102" || cfg.FeedbackTTL != 500*time.Millisecond {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsUnknownFrontend(t *testing.T) {
	t.Setenv("IMMUNE_FRONTEND", "vr")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "invalid frontend") {
		t.Fatalf("expected invalid frontend error, got %v", err)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("IMMUNE_AUDIO", "maybe")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

// os.Exit cannot be intercepted in-process, so Exitf runs in a subprocess.
func TestExitfExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "catalog broken")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")
	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: catalog broken") {
		t.Fatalf("expected message in output, got %q", out)
	}
}
