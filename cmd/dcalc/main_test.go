package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	perrors "github.com/sambeau/dcalc/pkg/dcalc/errors"
)

func noenv(string) string { return "" }

// runArgs runs the CLI with HOME pointed at an empty directory
func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := run(context.Background(), args, stdout, stderr, noenv)
	return stdout.String(), stderr.String(), err
}

func TestRunVersion(t *testing.T) {
	stdout, _, err := runArgs(t, "-version")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "dcalc version") {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestRunHelp(t *testing.T) {
	stdout, _, err := runArgs(t, "-h")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, want := range []string{"dcalc - scientific and complex calculator", "-config", "-precision", "DCALC_CONFIG"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in help, got %q", want, stdout)
		}
	}
}

func TestRunInvalidFlag(t *testing.T) {
	if _, _, err := runArgs(t, "--invalid-flag"); err == nil {
		t.Error("expected error for invalid flag")
	}
}

func TestRunMissingConfig(t *testing.T) {
	_, _, err := runArgs(t, "-config", "/nonexistent/config.yaml", "-e", "1")
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("expected 'config file not found' error, got %q", err.Error())
	}
}

func TestRunEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-e", "1+2*3"}, "7\n"},
		{[]string{"-e", "2*sin(pi/6)"}, "1\n"},
		{[]string{"-precision", "5", "-e", "2/3"}, "0.66667\n"},
		{[]string{"-e", "ln(0)"}, "Math ERROR\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, _, err := runArgs(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("got %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestRunEvalError(t *testing.T) {
	_, _, err := runArgs(t, "-e", "1/0")
	var ce *perrors.CalcError
	if !errors.As(err, &ce) || ce.Code != "EVAL-0001" {
		t.Errorf("error = %v, want EVAL-0001", err)
	}

	if _, _, err := runArgs(t, "-precision", "12", "-e", "1"); err == nil {
		t.Error("expected error for precision 12")
	}
}

func TestRunSolve(t *testing.T) {
	stdout, _, err := runArgs(t, "solve", "1", "-3", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Roots of f(x)=0: x=2 ∨ x=1") {
		t.Errorf("got:\n%s", stdout)
	}

	if _, _, err := runArgs(t, "solve", "1"); err == nil {
		t.Error("expected error for a single coefficient")
	}
}

func TestRunComplex(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"complex", "add", "1", "2", "3", "4"}, "4+6i\n"},
		{[]string{"-polar", "complex", "mul", "2", "0", "1", "pi/2"}, "2∠1.571\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, _, err := runArgs(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("got %q, want %q", stdout, tt.want)
			}
		})
	}

	if _, _, err := runArgs(t, "complex"); err == nil {
		t.Error("expected usage error without an operation")
	}
	if _, _, err := runArgs(t, "complex", "frobnicate", "1"); err == nil {
		t.Error("expected error for unknown operation")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	_, _, err := runArgs(t, "integrate")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("error = %v", err)
	}
}

func TestRunDescribe(t *testing.T) {
	stdout, _, err := runArgs(t, "describe", "comb")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Function: comb(n, k)") {
		t.Errorf("got:\n%s", stdout)
	}

	stdout, _, err = runArgs(t, "describe", "--json", "pi")
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(stdout), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if decoded["kind"] != "constant" {
		t.Errorf("decoded = %v", decoded)
	}

	if _, _, err := runArgs(t, "describe", "sine"); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestRunWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dcalc.yaml")
	content := "precision: 1\nlogging:\n  level: debug\n  format: json\n  output: stderr\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, err := runArgs(t, "-config", path, "-e", "2/3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "0.7\n" {
		t.Errorf("got %q, want precision from config", stdout)
	}
	if !strings.Contains(stderr, `"message":"evaluated"`) {
		t.Errorf("expected debug JSON log on stderr, got %q", stderr)
	}

	// flags override the file
	stdout, _, err = runArgs(t, "-config", path, "-precision", "4", "-log-level", "error", "-e", "2/3")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "0.6667\n" {
		t.Errorf("got %q, want flag precision", stdout)
	}
}

func TestRunLogsRejectedInputAsJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dcalc.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n  format: json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := runArgs(t, "-config", path, "-e", "1/0")
	if err == nil {
		t.Fatal("expected division by zero error")
	}
	for _, want := range []string{`"message":"rejected"`, `"code":"EVAL-0001"`} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected %s in log, got %q", want, stderr)
		}
	}
}

func TestRunInvalidLogLevel(t *testing.T) {
	_, _, err := runArgs(t, "-log-level", "loud", "-e", "1")
	if err == nil || !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("error = %v", err)
	}
}

func TestRunWatchNeedsConfig(t *testing.T) {
	// run from an empty directory so no ./dcalc.yaml is found
	wd, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	_, _, err := runArgs(t, "-watch")
	if err == nil || !strings.Contains(err.Error(), "-watch needs a config file") {
		t.Errorf("error = %v", err)
	}
}
