package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"
)

func TestDryRunDescribesCommand(t *testing.T) {
	var buf bytes.Buffer
	svc := NewDryRun(&buf)

	if err := svc.Run(context.Background(), []string{"git", "push", "--tags"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := buf.String(); got != "Would run: git push --tags\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestDryRunEmptyCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := NewDryRun(&buf).Run(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestExecEmptyCommand(t *testing.T) {
	if err := NewExec(t.TempDir()).Run(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestExecMissingBinary(t *testing.T) {
	err := NewExec(t.TempDir()).Run(context.Background(), []string{"relctl-no-such-binary"})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !strings.Contains(err.Error(), "relctl-no-such-binary") {
		t.Fatalf("error should name the failing command: %v", err)
	}
}

func TestExecRunsInFixedDirectory(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	svc := NewExec(dir)
	if err := svc.Run(context.Background(), []string{"git", "init", "--quiet"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// git init in the runner's working directory, not the test's.
	if err := svc.Run(context.Background(), []string{"git", "rev-parse", "--git-dir"}); err != nil {
		t.Fatalf("expected repository in runner working directory: %v", err)
	}
}

func TestExecNonzeroExitIsError(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	err := NewExec(t.TempDir()).Run(context.Background(), []string{"git", "rev-parse", "--git-dir"})
	if err == nil {
		t.Fatal("expected error for nonzero exit status")
	}
}
