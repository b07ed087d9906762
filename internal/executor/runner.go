package executor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Runner runs one command in a directory.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string, stdout, stderr io.Writer) error
}

// ExecRunner runs commands as child processes.
type ExecRunner struct{}

// Run executes argv with dir as the working directory. The executable is
// resolved on PATH unless argv[0] contains a separator.
func (ExecRunner) Run(ctx context.Context, dir string, argv []string, stdout, stderr io.Writer) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}

	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("%s not found: %w", argv[0], err)
	}

	cmd := exec.CommandContext(ctx, bin, argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
