package peers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/crosslink-dev/crosslink/internal/logging"
	"github.com/crosslink-dev/crosslink/internal/versions"
	"github.com/crosslink-dev/crosslink/internal/workset"
)

// Policy selects how a declared but unsatisfying peer version is handled.
type Policy string

const (
	// Strict reports declared versions that fail the peer range as fatal.
	Strict Policy = "strict"
	// Lenient schedules a reinstall of the peer at the required range instead.
	Lenient Policy = "lenient"
)

// ParsePolicy converts a config value into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case Strict, Lenient:
		return p, nil
	case "":
		return Strict, nil
	default:
		return "", fmt.Errorf("unknown peer policy %q: expected %q or %q", s, Strict, Lenient)
	}
}

// Violation is one unsatisfiable peer requirement.
type Violation struct {
	Consumer        string // package being linked
	ConsumerVersion string // version the consumer declares for the peer, empty if none
	Provider        string // package declaring the peer requirement
	Peer            string
	Range           string // range the provider requires
	Reason          string // set when the range itself could not be parsed
}

func (v Violation) String() string {
	have := v.ConsumerVersion
	if have == "" {
		have = "[?.?.?]"
	}
	s := fmt.Sprintf("%s:%s@%s ... %s:%s@%s", v.Consumer, v.Peer, have, v.Provider, v.Peer, v.Range)
	if v.Reason != "" {
		s += " (" + v.Reason + ")"
	}
	return s
}

// InvalidPeerDependencyError lists every violation found for one package.
type InvalidPeerDependencyError struct {
	Violations []Violation
}

func (e *InvalidPeerDependencyError) Error() string {
	lines := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		lines[i] = v.String()
	}
	return "some dependencies don't satisfy peer dependencies\n  " + strings.Join(lines, "\n  ")
}

// Validator checks peer requirements against a working set.
type Validator struct {
	Set     *workset.WorkingSet
	Policy  Policy
	Matcher versions.Matcher
}

// New returns a Validator using semver matching.
func New(ws *workset.WorkingSet, policy Policy) *Validator {
	return &Validator{Set: ws, Policy: policy, Matcher: versions.SemverMatcher{}}
}

// Missing returns the "peer@range" entries consumer must additionally
// install, one per peer name, given the names it links against. When two
// providers ask for different ranges of the same peer the first is kept.
// It fails with an InvalidPeerDependencyError when a requirement cannot be
// met under the validator's policy. A declared range (rather than a version)
// never satisfies a peer. Link targets outside the working set contribute no
// requirements.
func (v *Validator) Missing(consumer string, linkSet, own []string) ([]string, error) {
	logger := logging.GetLogger("peers")

	pkg, ok := v.Set.Get(consumer)
	if !ok {
		return nil, fmt.Errorf("package %q is not in the working set", consumer)
	}

	isOwn := make(map[string]bool, len(own))
	for _, o := range own {
		isOwn[o] = true
	}

	var missing []string
	var violations []Violation
	chosen := make(map[string]string)
	addMissing := func(peer, required, provider string) {
		if r, ok := chosen[peer]; ok {
			if r != required {
				logger.Warn().
					Str("package", consumer).
					Str("peer", peer).
					Str("kept", r).
					Str("ignored", required).
					Str("provider", provider).
					Msg("Providers require different peer ranges, installing the first")
			}
			return
		}
		chosen[peer] = required
		missing = append(missing, peer+"@"+required)
	}

	for _, provider := range linkSet {
		dep, ok := v.Set.Get(provider)
		if !ok {
			continue
		}

		for _, peer := range sortedKeys(dep.PeerDependencies) {
			required := dep.PeerDependencies[peer]
			declared, has := pkg.Versions[peer]

			if !has {
				if !isOwn[peer] {
					addMissing(peer, required, provider)
				}
				continue
			}

			ok, err := v.Matcher.Satisfies(versions.Normalize(declared), required)
			switch {
			case errors.Is(err, versions.ErrNotAVersion) && !versions.IsRange(declared):
				logger.Warn().
					Str("package", consumer).
					Str("peer", peer).
					Str("declared", declared).
					Msg("Declared version is not a semantic version, skipping peer check")
				continue
			case errors.Is(err, versions.ErrNotAVersion):
				// A declared range pins no version that can be checked, so
				// it cannot be shown to satisfy the peer.
			case err != nil:
				violations = append(violations, Violation{
					Consumer:        consumer,
					ConsumerVersion: declared,
					Provider:        provider,
					Peer:            peer,
					Range:           required,
					Reason:          err.Error(),
				})
				continue
			case ok:
				continue
			}

			if v.Policy == Lenient {
				addMissing(peer, required, provider)
				continue
			}
			violations = append(violations, Violation{
				Consumer:        consumer,
				ConsumerVersion: declared,
				Provider:        provider,
				Peer:            peer,
				Range:           required,
			})
		}
	}

	if len(violations) > 0 {
		return nil, &InvalidPeerDependencyError{Violations: violations}
	}

	if len(missing) > 0 {
		logger.Debug().Str("package", consumer).Strs("missing", missing).Msg("Peer dependencies to install")
	}
	return missing, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
