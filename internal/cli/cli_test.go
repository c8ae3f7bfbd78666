package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestRunRequiresASource(t *testing.T) {
	err := Run(nil)
	var ue UsageError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	if !strings.Contains(ue.Error(), "-api or -demo") {
		t.Fatalf("expected the error to name the missing flags, got %q", ue.Error())
	}
}

func TestRunRejectsAPIAndDemoTogether(t *testing.T) {
	err := Run([]string{"-api", "http://127.0.0.1:8000", "-demo"})
	var ue UsageError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	if !strings.Contains(ue.Error(), "mutually exclusive") {
		t.Fatalf("unexpected message %q", ue.Error())
	}
}

func TestRunRejectsPositionalArguments(t *testing.T) {
	err := Run([]string{"-demo", "WELL-01"})
	var ue UsageError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	if !strings.Contains(ue.Error(), "WELL-01") {
		t.Fatalf("expected the stray argument to be named, got %q", ue.Error())
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	err := Run([]string{"-serve"})
	var ue UsageError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UsageError, got %v", err)
	}
}

func TestUsageNamesEveryFlag(t *testing.T) {
	usage := Usage()
	for _, flag := range []string{"-api", "-demo", "-well"} {
		if !strings.Contains(usage, flag) {
			t.Fatalf("usage text missing %s", flag)
		}
	}
}
