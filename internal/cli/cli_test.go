package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/codefionn/rechenwerk/internal/config"
)

func TestEvaluatePrintsResult(t *testing.T) {
	var out bytes.Buffer
	runner := New(config.Default(), nil, &out)

	if err := runner.Evaluate("2×(3+4)"); err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "14" {
		t.Errorf("expected 14, got %q", got)
	}
}

func TestEvaluatePrintsErrorLabel(t *testing.T) {
	var out bytes.Buffer
	runner := New(config.Default(), nil, &out)

	if err := runner.Evaluate("1÷0"); err == nil {
		t.Fatal("expected an error for division by zero")
	}
	if got := strings.TrimSpace(out.String()); got != "Can't divide by zero" {
		t.Errorf("expected the error label, got %q", got)
	}
}

func TestRadiansOption(t *testing.T) {
	var out bytes.Buffer
	runner := New(config.Default(), &Options{Radians: true}, &out)

	if err := runner.Evaluate("sin(90)"); err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "0.893996663601" {
		t.Errorf("expected the radians result, got %q", got)
	}
}

func TestConfigAngleUnit(t *testing.T) {
	cfg := config.Default()
	cfg.AngleUnit = "radians"

	var out bytes.Buffer
	runner := New(cfg, nil, &out)

	if err := runner.Evaluate("cos(0)"); err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "1" {
		t.Errorf("expected 1, got %q", got)
	}
}

func TestRunBatch(t *testing.T) {
	input := strings.NewReader("1+1\n\n2×3\n1÷0\n")
	var out bytes.Buffer
	runner := New(config.Default(), nil, &out)

	failed, err := runner.RunBatch(input)
	if err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}
	if failed != 1 {
		t.Errorf("expected 1 failure, got %d", failed)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{"2", "6", "Can't divide by zero"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], line)
		}
	}
}
