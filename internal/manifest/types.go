package manifest

import "fmt"

// DefaultFileName is the manifest file looked for in each package directory.
const DefaultFileName = "package.json"

// PackageJSON is the subset of package.json that drives linking.
type PackageJSON struct {
	Name             string            `json:"name"`
	Version          string            `json:"version,omitempty"`
	Dependencies     map[string]string `json:"dependencies,omitempty"`
	DevDependencies  map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies map[string]string `json:"peerDependencies,omitempty"`
}

// ReadError reports a manifest or directory that could not be read, decoded
// or validated. It aborts the whole load.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
