// Package versions wraps semantic-version range matching for peer dependency
// checks. Declared dependency versions in a manifest are usually ranges
// ("^1.2.3"), so Normalize reduces them to a bare version before matching.
package versions
