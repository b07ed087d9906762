package workset

import (
	"fmt"
	"strings"
)

// CyclicDependencyError is returned when the local dependency graph has a
// cycle. Remaining lists every package that could not be ordered, in input
// order, including packages that only depend on a cycle.
type CyclicDependencyError struct {
	Remaining []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cannot link cyclically dependent packages: [%s]", strings.Join(e.Remaining, ", "))
}

// DuplicatePackageError is returned when two directories declare the same
// package name.
type DuplicatePackageError struct {
	Name   string
	First  string
	Second string
}

func (e *DuplicatePackageError) Error() string {
	return fmt.Sprintf("package %q is declared in both %s and %s", e.Name, e.First, e.Second)
}
