package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/eunmann/bsearch-bench/pkg/benchutil"
	"github.com/eunmann/bsearch-bench/pkg/logging"
	"github.com/eunmann/bsearch-bench/pkg/membudget"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestRunCompleteSweep(t *testing.T) {
	defer logging.Init(logging.DefaultLevel, false)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"ignored"}, &stdout, envOf(nil))
	if code := ExitCode(&stderr, err); code != ExitOK {
		t.Fatalf("exit code = %d (%v), stderr: %s", code, err, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr not empty: %q", stderr.String())
	}

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 16 {
		t.Fatalf("got %d lines, want 16:\n%s", len(lines), stdout.String())
	}
	if lines[0] != "case_type,case_id,n,reps,time_ns" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "best,1,1000,911927,") {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[15], "average,15,100000,567870,") {
		t.Errorf("last row = %q", lines[15])
	}
}

func TestRunAllocationFailure(t *testing.T) {
	defer logging.Init(logging.DefaultLevel, false)

	var stdout, stderr bytes.Buffer
	// 16KiB holds the 1000-element array but not the 5000-element one.
	err := run(context.Background(), nil, &stdout, envOf(map[string]string{
		EnvMemBudget: "16KiB",
	}))

	if code := ExitCode(&stderr, err); code != ExitAllocFailed {
		t.Fatalf("exit code = %d, want %d (err %v)", code, ExitAllocFailed, err)
	}
	if stderr.String() != "malloc failed for n=5000\n" {
		t.Errorf("stderr = %q", stderr.String())
	}

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row:\n%s", len(lines), stdout.String())
	}
	if !strings.HasPrefix(lines[1], "best,1,1000,") {
		t.Errorf("surviving row = %q", lines[1])
	}
}

func TestRunInvalidMemBudget(t *testing.T) {
	defer logging.Init(logging.DefaultLevel, false)

	var stdout bytes.Buffer
	err := run(context.Background(), nil, &stdout, envOf(map[string]string{
		EnvMemBudget: "lots",
	}))
	if err == nil {
		t.Fatal("expected error with invalid budget")
	}
	if !strings.Contains(err.Error(), EnvMemBudget) {
		t.Errorf("expected %s in error, got: %v", EnvMemBudget, err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout not empty: %q", stdout.String())
	}
}

func TestRunInvalidLogLevel(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), nil, &stdout, envOf(map[string]string{
		EnvLogLevel: "loud",
	}))
	if err == nil {
		t.Fatal("expected error with invalid log level")
	}
	if !strings.Contains(err.Error(), EnvLogLevel) {
		t.Errorf("expected %s in error, got: %v", EnvLogLevel, err)
	}
}

func TestDetermineMemoryBudgetEnv(t *testing.T) {
	budget, err := determineMemoryBudget("2GiB")
	if err != nil {
		t.Fatalf("determineMemoryBudget error: %v", err)
	}
	if budget.Total() != 2*1024*1024*1024 {
		t.Errorf("Total() = %d, want %d", budget.Total(), 2*1024*1024*1024)
	}
	if budget.Source() != membudget.BudgetSourceEnv {
		t.Errorf("Source() = %s, want %s", budget.Source(), membudget.BudgetSourceEnv)
	}
}

func TestDetermineMemoryBudgetDefault(t *testing.T) {
	budget, err := determineMemoryBudget("")
	if err != nil {
		t.Fatalf("determineMemoryBudget error: %v", err)
	}
	if budget.Source() != membudget.BudgetSourceAuto50Pct && budget.Source() != membudget.BudgetSourceDefault {
		t.Errorf("Source() = %s, want auto-50pct or default", budget.Source())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStderr string
	}{
		{"success", nil, ExitOK, ""},
		{
			"alloc failure",
			fmt.Errorf("case 12: %w", &benchutil.AllocError{N: 5000, Bytes: 40000}),
			ExitAllocFailed,
			"malloc failed for n=5000\n",
		},
		{"other", errors.New("write header: broken pipe"), ExitError, "error: write header: broken pipe\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := ExitCode(&stderr, tt.err); code != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", code, tt.wantCode)
			}
			if stderr.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
