package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/crosslink-dev/crosslink/internal/logging"
	"github.com/crosslink-dev/crosslink/internal/plan"
)

// CommandError reports the operation that stopped a run.
type CommandError struct {
	Package string
	Path    string
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("[%s] %s failed: %v", e.Package, e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Executor runs a plan strictly in order.
type Executor struct {
	Runner  Runner
	Out     io.Writer
	Command plan.CommandOptions

	prefix lipgloss.Style
	errTxt lipgloss.Style
}

// New returns an Executor that echoes to out, coloring output only when out
// is a color terminal.
func New(out io.Writer, opts plan.CommandOptions) *Executor {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(ColorProfile(out))
	return &Executor{
		Runner:  ExecRunner{},
		Out:     out,
		Command: opts,
		prefix:  r.NewStyle().Foreground(lipgloss.Color("4")),
		errTxt:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Execute runs every operation of p in its package directory. It stops at
// the first failing command or when ctx is done, and returns the cause.
// Nothing is rolled back.
func (e *Executor) Execute(ctx context.Context, p *plan.Plan) error {
	logger := logging.GetLogger("executor")
	start := time.Now()
	defer logging.LogDuration(logger, start, "plan execution")

	for i, g := range p.Groups {
		if i > 0 {
			fmt.Fprintln(e.Out)
		}
		tag := e.prefix.Render("[" + g.Package + "]")

		for _, op := range g.Operations {
			if err := ctx.Err(); err != nil {
				return err
			}

			argv := op.Argv(e.Command)
			line := strings.Join(argv, " ")
			fmt.Fprintf(e.Out, "%s %s\n", tag, line)
			logger.Debug().Str("package", g.Package).Str("dir", g.Path).Strs("argv", argv).Msg("Running")

			var stdout, stderr bytes.Buffer
			err := e.Runner.Run(ctx, g.Path, argv, &stdout, &stderr)

			for _, l := range filterStderr(stderr.String(), g.Package) {
				fmt.Fprintf(e.Out, "%s %s\n", tag, e.errTxt.Render(l))
			}
			if stdout.Len() > 0 {
				logger.Trace().Str("package", g.Package).Str("stdout", stdout.String()).Msg("Command output")
			}

			if err != nil {
				logger.Error().Err(err).Str("package", g.Package).Str("command", line).Msg("Command failed")
				return &CommandError{
					Package: g.Package,
					Path:    g.Path,
					Command: line,
					Stderr:  stderr.String(),
					Err:     err,
				}
			}
		}
	}

	return nil
}
