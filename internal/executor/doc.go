// Package executor consumes a plan. Print writes it as shell lines or as
// structured JSON/YAML for a dry run. Executor runs every operation in order
// inside its package directory, echoing each command with a package prefix
// and stopping at the first failure.
package executor
