// Package runner executes external commands for the release workflow.
//
// Two variants implement the same interface: an exec runner that actually
// invokes the command, and a dry-run runner that only describes it. Callers
// pick a variant once instead of branching on a dry-run flag at every call
// site.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Service runs a single external command to completion.
type Service interface {
	Run(ctx context.Context, argv []string) error
}

// NewExec creates a runner that executes commands with the working directory
// fixed to dir. A nonzero exit status is an error; there are no retries.
func NewExec(dir string) Service {
	return &execService{dir: dir}
}

// NewDryRun creates a runner that prints the command it would execute.
func NewDryRun(out io.Writer) Service {
	return &dryRunService{out: out}
}

type execService struct {
	dir string
}

func (s *execService) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = s.dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", strings.Join(argv, " "), err)
	}
	return nil
}

type dryRunService struct {
	out io.Writer
}

func (s *dryRunService) Run(_ context.Context, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	fmt.Fprintf(s.out, "Would run: %s\n", strings.Join(argv, " "))
	return nil
}
