package executor

import (
	"regexp"
	"strings"
)

// npmNoise matches npm warnings that carry no information for a link run.
var npmNoise = regexp.MustCompile(`^npm WARN (skippingAction|notsup|optional|prefer|deprecated) `)

// filterStderr returns the non-empty stderr lines worth showing. Warnings
// about the package itself (usually missing repository or description
// fields) are dropped along with the npmNoise set.
func filterStderr(stderr, pkg string) []string {
	own := "npm WARN " + pkg
	var out []string
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || npmNoise.MatchString(line) || strings.HasPrefix(line, own) {
			continue
		}
		out = append(out, line)
	}
	return out
}
