//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crosslink-dev/crosslink/internal/manifest"
	"github.com/crosslink-dev/crosslink/internal/workset"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir   string // HOME, holds .crosslink/config.yaml
	StateDir  string // XDG_STATE_HOME, holds the log file
	Workspace string // a mock monorepo checkout
}

// setupTestEnv creates isolated temp directories and points HOME and the XDG
// state directory at them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:   t.TempDir(),
		StateDir:  t.TempDir(),
		Workspace: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)

	// Resolve symlinked temp roots so paths match what the shell reports.
	ws, err := filepath.EvalSymlinks(env.Workspace)
	if err != nil {
		t.Fatalf("resolving workspace: %v", err)
	}
	env.Workspace = ws

	return env
}

// setupMonorepo lays out a synthetic workspace with two base directories:
//
//	packages/core    no local deps, foreign lodash
//	packages/ui      depends on core, peer react ^18
//	packages/utils   depends on core, dev dep typescript
//	apps/web         depends on ui and utils, react 18.2.0
//
// Returns the two base directories.
func setupMonorepo(t *testing.T, root string) (packages, apps string) {
	t.Helper()

	packages = filepath.Join(root, "packages")
	apps = filepath.Join(root, "apps")

	writeFile(t, filepath.Join(packages, "core", "package.json"), `{
  "name": "@acme/core",
  "version": "1.0.0",
  "dependencies": {"lodash": "^4.17.21"}
}`)
	writeFile(t, filepath.Join(packages, "ui", "package.json"), `{
  "name": "@acme/ui",
  "version": "2.1.0",
  "dependencies": {"@acme/core": "^1.0.0"},
  "peerDependencies": {"react": "^18.0.0"}
}`)
	writeFile(t, filepath.Join(packages, "utils", "package.json"), `{
  "name": "@acme/utils",
  "version": "0.3.0",
  "dependencies": {"@acme/core": "^1.0.0"},
  "devDependencies": {"typescript": "~5.4.0"}
}`)
	writeFile(t, filepath.Join(apps, "web", "package.json"), `{
  "name": "web",
  "version": "0.0.1",
  "dependencies": {"@acme/ui": "^2.0.0", "@acme/utils": "^0.3.0", "react": "18.2.0"}
}`)

	// Directories without a manifest and hidden entries are ignored.
	writeFile(t, filepath.Join(packages, "docs", "README.md"), "# docs\n")
	writeFile(t, filepath.Join(packages, ".cache", "package.json"), `{"name": "hidden"}`)

	return packages, apps
}

// loadWorkingSet reads every package under dirs.
func loadWorkingSet(t *testing.T, dirs ...string) *workset.WorkingSet {
	t.Helper()

	pkgs, err := manifest.Load(context.Background(), dirs, manifest.Options{})
	if err != nil {
		t.Fatalf("manifest.Load: %v", err)
	}
	ws, err := workset.New(pkgs)
	if err != nil {
		t.Fatalf("workset.New: %v", err)
	}
	return ws
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// writeFakeNPM installs a shell script standing in for npm. Every call is
// appended to the returned log as "<dir> <args>". A call whose arguments
// equal failArgs exits non-zero.
func writeFakeNPM(t *testing.T, dir, failArgs string) (npm, logFile string) {
	t.Helper()

	logFile = filepath.Join(dir, "npm-calls.log")
	npm = filepath.Join(dir, "npm")
	script := "#!/bin/sh\n" +
		"echo \"$(pwd) $*\" >> " + logFile + "\n" +
		"echo 'npm WARN deprecated left-pad@1.0.0: use String.prototype.padStart' >&2\n"
	if failArgs != "" {
		script += "if [ \"$*\" = \"" + failArgs + "\" ]; then echo 'npm ERR! code E404' >&2; exit 1; fi\n"
	}
	if err := os.WriteFile(npm, []byte(script), 0755); err != nil {
		t.Fatalf("writing fake npm: %v", err)
	}
	return npm, logFile
}

// readLines returns the non-empty lines of the file at path.
func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var out []string
	for _, l := range strings.Split(string(data), "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// assertLines fails unless got equals want line by line.
func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(got), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d:\n  got:  %s\n  want: %s", i, got[i], want[i])
		}
	}
}
