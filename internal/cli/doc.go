// Package cli defines the Cobra command tree for the crosslink CLI. The root
// command plans (and with -e executes) the link or teardown sequence for the
// packages under the given directories. Command implementations delegate to
// internal packages and only handle flags, settings and output.
package cli
