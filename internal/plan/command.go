package plan

import "strings"

// CommandOptions controls how operations render as npm command lines.
type CommandOptions struct {
	NPM       string // npm executable, "npm" when empty
	SaveExact bool   // add --save --save-exact when installing missing peers
}

// Argv returns the command line for op.
func (op Operation) Argv(opts CommandOptions) []string {
	npm := opts.NPM
	if npm == "" {
		npm = "npm"
	}

	argv := []string{npm, string(op.Kind)}
	if op.Kind == OpInstall && len(op.Args) > 0 && opts.SaveExact {
		argv = append(argv, "--save", "--save-exact")
	}
	return append(argv, op.Args...)
}

// CommandLine renders op as a single shell line.
func (op Operation) CommandLine(opts CommandOptions) string {
	return strings.Join(op.Argv(opts), " ")
}

// ShellLines renders every operation as "cd <path> && <command>", the form
// printed for a dry run.
func (p *Plan) ShellLines(opts CommandOptions) []string {
	lines := make([]string, 0, p.Len())
	for _, g := range p.Groups {
		prefix := "cd " + g.Path + " && "
		for _, op := range g.Operations {
			lines = append(lines, prefix+op.CommandLine(opts))
		}
	}
	return lines
}
