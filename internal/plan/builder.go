package plan

import (
	"slices"

	"github.com/crosslink-dev/crosslink/internal/workset"
)

// LinkSet returns the names a package links against: the global requests
// that are among its foreign dependencies (in request order), followed by
// its local dependencies, without duplicates.
func LinkSet(globals []string, part workset.Partition) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	for _, g := range globals {
		if slices.Contains(part.Foreign, g) {
			add(g)
		}
	}
	for _, o := range part.Own {
		add(o)
	}
	return out
}

// Input is everything the builder needs. Missing is only read in install
// mode.
type Input struct {
	Set            *workset.WorkingSet
	Order          []string
	Classification workset.Classification
	Globals        []string
	Missing        map[string][]string
	Mode           Mode
}

// Build lays out the operation groups. Install mode walks the order forward:
// link(link set), install(missing), install(), link(). Uninstall mode walks
// it in reverse: unlink(), unlink(link set), uninstall(other foreign deps),
// prune(). Empty name lists are omitted.
func Build(in Input) *Plan {
	p := &Plan{
		Mode:   in.Mode,
		Order:  slices.Clone(in.Order),
		Groups: make([]Group, 0, len(in.Order)),
	}

	names := slices.Clone(in.Order)
	if in.Mode == ModeUninstall {
		slices.Reverse(names)
	}

	for _, name := range names {
		pkg, _ := in.Set.Get(name)
		part := in.Classification[name]
		linked := LinkSet(in.Globals, part)

		g := Group{Package: name, Path: pkg.Path}
		if in.Mode == ModeUninstall {
			g.Operations = uninstallOps(part, linked)
		} else {
			g.Operations = installOps(linked, in.Missing[name])
		}
		p.Groups = append(p.Groups, g)
	}

	return p
}

func installOps(linked, missing []string) []Operation {
	var ops []Operation
	if len(linked) > 0 {
		ops = append(ops, Operation{Kind: OpLink, Args: linked})
	}
	if len(missing) > 0 {
		ops = append(ops, Operation{Kind: OpInstall, Args: slices.Clone(missing)})
	}
	return append(ops,
		Operation{Kind: OpInstall},
		Operation{Kind: OpLink},
	)
}

func uninstallOps(part workset.Partition, linked []string) []Operation {
	ops := []Operation{{Kind: OpUnlink}}
	if len(linked) > 0 {
		ops = append(ops, Operation{Kind: OpUnlink, Args: linked})
	}

	var rest []string
	for _, f := range part.Foreign {
		if !slices.Contains(linked, f) {
			rest = append(rest, f)
		}
	}
	if len(rest) > 0 {
		ops = append(ops, Operation{Kind: OpUninstall, Args: rest})
	}

	return append(ops, Operation{Kind: OpPrune})
}
