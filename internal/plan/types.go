package plan

// Mode selects forward (install) or reverse (uninstall) plan generation.
type Mode string

const (
	ModeInstall   Mode = "install"
	ModeUninstall Mode = "uninstall"
)

// OpKind is the kind of a logical operation.
type OpKind string

const (
	OpLink      OpKind = "link"
	OpUnlink    OpKind = "unlink"
	OpInstall   OpKind = "install"
	OpUninstall OpKind = "uninstall"
	OpPrune     OpKind = "prune"
)

// Operation is one logical step. An operation with no Args acts on the
// package itself: link() registers it globally, install() materializes its
// manifest dependencies.
type Operation struct {
	Kind OpKind   `json:"kind" yaml:"kind"`
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// Group holds the operations for one package, to be run in its directory.
type Group struct {
	Package    string      `json:"package" yaml:"package"`
	Path       string      `json:"path" yaml:"path"`
	Operations []Operation `json:"operations" yaml:"operations"`
}

// Plan is the ordered operation sequence for a run. Groups must be executed
// in order; Order is the dependency order they were built from.
type Plan struct {
	Mode   Mode     `json:"mode" yaml:"mode"`
	Order  []string `json:"order" yaml:"order"`
	Groups []Group  `json:"groups" yaml:"groups"`
}

// Len returns the total number of operations.
func (p *Plan) Len() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Operations)
	}
	return n
}
