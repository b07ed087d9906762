package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/crosslink-dev/crosslink/internal/workset"
)

// ErrInvalidManifest is wrapped by errors for manifests that fail schema
// validation.
var ErrInvalidManifest = errors.New("invalid manifest")

// Parse decodes and validates manifest JSON.
func Parse(data []byte) (*PackageJSON, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidManifest, strings.Join(msgs, "; "))
	}

	var pj PackageJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &pj, nil
}

// ParseFile reads and parses the manifest at path.
func ParseFile(path string) (*PackageJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	pj, err := Parse(data)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return pj, nil
}

// ToPackage converts a manifest found in dir into a working set package.
// Runtime and dev dependencies are merged; a name present in both takes
// the devDependencies version.
func (pj *PackageJSON) ToPackage(dir string) workset.Package {
	versions := make(map[string]string, len(pj.Dependencies)+len(pj.DevDependencies))
	for name, v := range pj.Dependencies {
		versions[name] = v
	}
	for name, v := range pj.DevDependencies {
		versions[name] = v
	}

	deps := make([]string, 0, len(versions))
	for name := range versions {
		deps = append(deps, name)
	}
	sort.Strings(deps)

	peers := make(map[string]string, len(pj.PeerDependencies))
	for name, v := range pj.PeerDependencies {
		peers[name] = v
	}

	return workset.Package{
		Name:             pj.Name,
		Path:             dir,
		Version:          pj.Version,
		Dependencies:     deps,
		PeerDependencies: peers,
		Versions:         versions,
	}
}
