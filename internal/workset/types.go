package workset

// Package is one local package read from a manifest.
type Package struct {
	Name    string // unique within the working set
	Path    string // absolute path to the package directory
	Version string // the package's own version, informational

	// Dependencies is the merged runtime and dev dependency names, sorted and
	// without duplicates.
	Dependencies []string

	// PeerDependencies maps a peer name to the range consumers must satisfy.
	PeerDependencies map[string]string

	// Versions maps a dependency name to the version or range declared for it.
	Versions map[string]string
}

// Partition splits a package's dependencies by membership in the working set.
type Partition struct {
	Own     []string // dependencies that are members of the working set
	Foreign []string // dependencies resolved elsewhere
}

// Classification maps a package name to its dependency partition.
type Classification map[string]Partition
