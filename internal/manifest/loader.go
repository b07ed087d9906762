package manifest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/crosslink-dev/crosslink/internal/logging"
	"github.com/crosslink-dev/crosslink/internal/workset"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 8

// Options controls Load.
type Options struct {
	FileName    string // manifest file name, DefaultFileName when empty
	Concurrency int    // parallel reads, defaultConcurrency when <= 0
}

// Load scans each base directory for immediate subdirectories holding a
// manifest and returns their packages. Base directories are taken in the
// given order and entries within a directory in name order; the result is
// in that order no matter how the concurrent reads complete.
//
// Entries without a manifest, hidden entries and plain files are skipped.
// Any unreadable directory or bad manifest fails the whole load.
func Load(ctx context.Context, dirs []string, opts Options) ([]workset.Package, error) {
	logger := logging.GetLogger("manifest")
	start := time.Now()
	defer logging.LogDuration(logger, start, "manifest load")

	if opts.FileName == "" {
		opts.FileName = DefaultFileName
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}

	candidates, err := listCandidates(ctx, dirs, opts.Concurrency)
	if err != nil {
		return nil, err
	}

	found := make([]*workset.Package, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, dir := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := loadDir(dir, opts.FileName)
			if err != nil {
				return err
			}
			found[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pkgs := make([]workset.Package, 0, len(found))
	for _, p := range found {
		if p != nil {
			pkgs = append(pkgs, *p)
		}
	}

	logger.Debug().
		Int("dirs", len(dirs)).
		Int("candidates", len(candidates)).
		Int("packages", len(pkgs)).
		Msg("Loaded manifests")
	return pkgs, nil
}

// listCandidates lists the subdirectories of every base directory, keeping
// base directory order.
func listCandidates(ctx context.Context, dirs []string, limit int) ([]string, error) {
	perDir := make([][]string, len(dirs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, dir := range dirs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			subdirs, err := listSubdirs(dir)
			if err != nil {
				return err
			}
			perDir[i] = subdirs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []string
	for _, subdirs := range perDir {
		out = append(out, subdirs...)
	}
	return out, nil
}

func listSubdirs(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, &ReadError{Path: dir, Err: err}
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, &ReadError{Path: abs, Err: err}
	}

	var out []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(abs, entry.Name())
		// Stat follows symlinks so linked package directories count.
		// Dangling links are skipped; any other failure aborts the load.
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		if !info.IsDir() {
			continue
		}
		out = append(out, path)
	}
	return out, nil
}

// loadDir returns the package in dir, or nil when dir has no manifest.
func loadDir(dir, fileName string) (*workset.Package, error) {
	path := filepath.Join(dir, fileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &ReadError{Path: path, Err: err}
	}

	pj, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	p := pj.ToPackage(dir)
	return &p, nil
}
