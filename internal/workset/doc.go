// Package workset holds the collection of local packages discovered for one
// invocation and the graph analysis over it: partitioning each package's
// dependencies into local and foreign names, and ordering the local packages
// so every package comes after the local packages it depends on.
//
// A WorkingSet is immutable once built. All functions here are pure.
package workset
