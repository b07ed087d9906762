package plan

import (
	"github.com/crosslink-dev/crosslink/internal/logging"
	"github.com/crosslink-dev/crosslink/internal/peers"
	"github.com/crosslink-dev/crosslink/internal/versions"
	"github.com/crosslink-dev/crosslink/internal/workset"
)

// Options configures Analyze.
type Options struct {
	Globals   []string         // Global Request List
	Uninstall bool             // build the reverse teardown plan
	Policy    peers.Policy     // peer validation policy, Strict when empty
	Matcher   versions.Matcher // semver matching when nil
}

// Analyze classifies, orders and validates the working set and builds the
// plan. Peer validation only runs in install mode. The first fatal condition
// (a cycle or an invalid peer dependency) is returned as soon as it is found.
func Analyze(ws *workset.WorkingSet, opts Options) (*Plan, error) {
	logger := logging.GetLogger("plan")

	cls := workset.Classify(ws)
	order, err := workset.Order(ws, cls)
	if err != nil {
		return nil, err
	}
	logger.Debug().Strs("order", order).Msg("Computed link order")

	mode := ModeInstall
	if opts.Uninstall {
		mode = ModeUninstall
	}

	var missing map[string][]string
	if mode == ModeInstall {
		missing, err = validatePeers(ws, order, cls, opts)
		if err != nil {
			return nil, err
		}
	}

	p := Build(Input{
		Set:            ws,
		Order:          order,
		Classification: cls,
		Globals:        opts.Globals,
		Missing:        missing,
		Mode:           mode,
	})
	logger.Debug().Str("mode", string(mode)).Int("groups", len(p.Groups)).Int("operations", p.Len()).Msg("Built plan")
	return p, nil
}

func validatePeers(ws *workset.WorkingSet, order []string, cls workset.Classification, opts Options) (map[string][]string, error) {
	policy := opts.Policy
	if policy == "" {
		policy = peers.Strict
	}
	v := peers.New(ws, policy)
	if opts.Matcher != nil {
		v.Matcher = opts.Matcher
	}

	missing := make(map[string][]string, len(order))
	for _, name := range order {
		part := cls[name]
		m, err := v.Missing(name, LinkSet(opts.Globals, part), part.Own)
		if err != nil {
			return nil, err
		}
		missing[name] = m
	}
	return missing, nil
}
