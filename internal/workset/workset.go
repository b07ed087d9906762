package workset

import (
	"slices"
	"sort"
)

// WorkingSet is the immutable collection of local packages for one run.
// Input order is preserved and acts as the tie-break when ordering.
type WorkingSet struct {
	packages []Package
	index    map[string]int
}

// New builds a WorkingSet from packages in input order. Duplicate names are
// rejected with a DuplicatePackageError. Packages are copied; later changes
// to the argument do not affect the set.
func New(pkgs []Package) (*WorkingSet, error) {
	ws := &WorkingSet{
		packages: make([]Package, 0, len(pkgs)),
		index:    make(map[string]int, len(pkgs)),
	}

	for _, p := range pkgs {
		if i, ok := ws.index[p.Name]; ok {
			return nil, &DuplicatePackageError{
				Name:   p.Name,
				First:  ws.packages[i].Path,
				Second: p.Path,
			}
		}
		ws.index[p.Name] = len(ws.packages)
		ws.packages = append(ws.packages, clonePackage(p))
	}

	return ws, nil
}

func clonePackage(p Package) Package {
	out := p
	deps := slices.Clone(p.Dependencies)
	sort.Strings(deps)
	out.Dependencies = slices.Compact(deps)
	out.PeerDependencies = cloneMap(p.PeerDependencies)
	out.Versions = cloneMap(p.Versions)
	return out
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Len returns the number of packages.
func (ws *WorkingSet) Len() int { return len(ws.packages) }

// Names returns package names in input order.
func (ws *WorkingSet) Names() []string {
	names := make([]string, len(ws.packages))
	for i, p := range ws.packages {
		names[i] = p.Name
	}
	return names
}

// Has reports whether name is a member of the working set.
func (ws *WorkingSet) Has(name string) bool {
	_, ok := ws.index[name]
	return ok
}

// Get returns the package with the given name.
func (ws *WorkingSet) Get(name string) (Package, bool) {
	i, ok := ws.index[name]
	if !ok {
		return Package{}, false
	}
	return ws.packages[i], true
}
