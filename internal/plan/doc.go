// Package plan turns a working set into an ordered sequence of npm
// operations. Analyze runs the whole pipeline: classification, ordering,
// peer validation and plan building. It returns either a complete Plan or a
// single error, never a partial plan.
package plan
