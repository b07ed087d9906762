package manifest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func writePackage(t *testing.T, base, dir, content string) string {
	t.Helper()
	pkgDir := filepath.Join(base, dir)
	writeFile(t, filepath.Join(pkgDir, DefaultFileName), content)
	return pkgDir
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		valid   bool
		keyword string
	}{
		{"minimal", `{"name": "a"}`, true, ""},
		{"full", `{"name": "a", "version": "1.0.0", "dependencies": {"b": "^1.0.0"}, "devDependencies": {"c": "2.0.0"}, "peerDependencies": {"react": "^18.0.0"}}`, true, ""},
		{"unknown fields are fine", `{"name": "a", "scripts": {"test": "jest"}, "private": true}`, true, ""},
		{"missing name", `{"version": "1.0.0"}`, false, "required"},
		{"empty name", `{"name": ""}`, false, "minLength"},
		{"name not a string", `{"name": 42}`, false, "type"},
		{"dependency version not a string", `{"name": "a", "dependencies": {"b": 1}}`, false, "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.json))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid, "issues: %v", result.Issues)
			if !tt.valid {
				require.NotEmpty(t, result.Issues)
				keywords := make([]string, len(result.Issues))
				for i, issue := range result.Issues {
					keywords[i] = issue.Keyword
				}
				assert.Contains(t, keywords, tt.keyword)
			}
		})
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	_, err := Validate([]byte(`{"name": `))
	assert.Error(t, err)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"version": "1.0.0"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidManifest)
}

func TestToPackageMergesDependencies(t *testing.T) {
	pj, err := Parse([]byte(`{
		"name": "app",
		"version": "0.1.0",
		"dependencies": {"lib": "^1.0.0", "shared": "1.0.0"},
		"devDependencies": {"shared": "2.0.0", "jest": "^29.0.0"},
		"peerDependencies": {"react": "^18.0.0"}
	}`))
	require.NoError(t, err)

	p := pj.ToPackage("/work/app")
	assert.Equal(t, "app", p.Name)
	assert.Equal(t, "/work/app", p.Path)
	assert.Equal(t, "0.1.0", p.Version)
	assert.Equal(t, []string{"jest", "lib", "shared"}, p.Dependencies)
	assert.Equal(t, "2.0.0", p.Versions["shared"], "devDependencies win")
	assert.Equal(t, "^1.0.0", p.Versions["lib"])
	assert.Equal(t, map[string]string{"react": "^18.0.0"}, p.PeerDependencies)
}

func TestToPackageEmptyMaps(t *testing.T) {
	pj, err := Parse([]byte(`{"name": "bare"}`))
	require.NoError(t, err)
	p := pj.ToPackage("/x")
	assert.Empty(t, p.Dependencies)
	assert.NotNil(t, p.PeerDependencies)
	assert.NotNil(t, p.Versions)
}

func TestLoadOrderAndSkips(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writePackage(t, first, "zeta", `{"name": "zeta"}`)
	writePackage(t, first, "alpha", `{"name": "alpha", "dependencies": {"zeta": "*"}}`)
	require.NoError(t, os.MkdirAll(filepath.Join(first, "docs"), 0755))
	writeFile(t, filepath.Join(first, "README.md"), "# not a package")
	writePackage(t, first, ".hidden", `{"name": "hidden"}`)
	writePackage(t, second, "mid", `{"name": "mid"}`)

	pkgs, err := Load(context.Background(), []string{first, second}, Options{Concurrency: 2})
	require.NoError(t, err)

	names := make([]string, len(pkgs))
	for i, p := range pkgs {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"alpha", "zeta", "mid"}, names)
	assert.Equal(t, filepath.Join(first, "alpha"), pkgs[0].Path)
	assert.True(t, filepath.IsAbs(pkgs[2].Path))
}

func TestLoadCustomFileName(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "a", "manifest.json"), `{"name": "a"}`)
	writePackage(t, base, "b", `{"name": "b"}`)

	pkgs, err := Load(context.Background(), []string{base}, Options{FileName: "manifest.json"})
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "a", pkgs[0].Name)
}

func TestLoadFollowsSymlinkedDirs(t *testing.T) {
	base := t.TempDir()
	elsewhere := t.TempDir()
	target := writePackage(t, elsewhere, "real", `{"name": "linked"}`)
	require.NoError(t, os.Symlink(target, filepath.Join(base, "linked")))

	pkgs, err := Load(context.Background(), []string{base}, Options{})
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "linked", pkgs[0].Name)
}

func TestLoadSkipsDanglingSymlink(t *testing.T) {
	base := t.TempDir()
	writePackage(t, base, "a", `{"name": "a"}`)
	require.NoError(t, os.Symlink(filepath.Join(t.TempDir(), "gone"), filepath.Join(base, "dangling")))

	pkgs, err := Load(context.Background(), []string{base}, Options{})
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "a", pkgs[0].Name)
}

func TestLoadUnreadableEntryAborts(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("needs unix permissions enforced")
	}

	base := t.TempDir()
	locked := t.TempDir()
	writePackage(t, locked, "inner", `{"name": "inner"}`)
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })
	require.NoError(t, os.Symlink(filepath.Join(locked, "inner"), filepath.Join(base, "inner")))

	pkgs, err := Load(context.Background(), []string{base}, Options{})
	assert.Nil(t, pkgs)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr), "got %v", err)
	assert.Equal(t, filepath.Join(base, "inner"), readErr.Path)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestLoadMissingBaseDir(t *testing.T) {
	_, err := Load(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, Options{})
	require.Error(t, err)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBadManifestAborts(t *testing.T) {
	base := t.TempDir()
	writePackage(t, base, "good", `{"name": "good"}`)
	bad := writePackage(t, base, "bad", `{"name": `)

	pkgs, err := Load(context.Background(), []string{base}, Options{})
	assert.Nil(t, pkgs)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, filepath.Join(bad, DefaultFileName), readErr.Path)
}

func TestLoadCanceledContext(t *testing.T) {
	base := t.TempDir()
	writePackage(t, base, "a", `{"name": "a"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, []string{base}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
