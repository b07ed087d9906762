package versions

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrNotAVersion is returned when a version string is not a semantic version
// (dist tags, git URLs, file: specs and the like).
var ErrNotAVersion = errors.New("not a semantic version")

// Matcher decides whether a concrete version satisfies a range expression.
type Matcher interface {
	Satisfies(version, rangeExpr string) (bool, error)
}

// SemverMatcher implements Matcher with npm-style range semantics.
type SemverMatcher struct{}

// Satisfies reports whether version satisfies rangeExpr.
func (SemverMatcher) Satisfies(version, rangeExpr string) (bool, error) {
	return Satisfies(version, rangeExpr)
}

// bareVersion matches an optional single range operator followed by a dotted
// numeric or x-wildcard version.
var bareVersion = regexp.MustCompile(`^(?:[<>]?=|~|\^)?\s*((?:[\dxX]+\.)+[\dxX]+)$`)

// Normalize strips a leading range operator from a declared version so that
// "^1.2.3" becomes "1.2.3". Anything that is not operator+version is returned
// unchanged.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if m := bareVersion.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

// Satisfies reports whether version satisfies rangeExpr. Wildcard components
// in version are read as zero. A leading "v" is tolerated.
func Satisfies(version, rangeExpr string) (bool, error) {
	v, err := Parse(version)
	if err != nil {
		return false, err
	}
	c, err := semver.NewConstraint(strings.TrimSpace(rangeExpr))
	if err != nil {
		return false, fmt.Errorf("parsing range %q: %w", rangeExpr, err)
	}
	return c.Check(v), nil
}

// Parse parses a bare version, reading x components as zero.
func Parse(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if version == "" {
		return nil, fmt.Errorf("%w: empty", ErrNotAVersion)
	}

	parts := strings.Split(version, ".")
	for i, p := range parts {
		if p == "x" || p == "X" || p == "*" {
			parts[i] = "0"
		}
	}

	v, err := semver.NewVersion(strings.Join(parts, "."))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotAVersion, version)
	}
	return v, nil
}

// IsRange reports whether s parses as a semver range expression such as
// "<2.0.0" or ">=1.0.0 <2.0.0". Dist tags, URLs and file: specs do not.
func IsRange(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := semver.NewConstraint(s)
	return err == nil
}
