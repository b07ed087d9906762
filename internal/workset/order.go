package workset

// Order returns every package name such that each package appears after all
// of its local dependencies. When several packages are ready at once the one
// earliest in input order is taken, so the result is reproducible.
//
// If at some point no remaining package is ready, a CyclicDependencyError
// naming all remaining packages is returned and no order is produced.
func Order(ws *WorkingSet, cls Classification) ([]string, error) {
	names := ws.Names()
	done := make(map[string]bool, len(names))
	order := make([]string, 0, len(names))

	for len(order) < len(names) {
		next, ok := firstReady(names, done, cls)
		if !ok {
			return nil, &CyclicDependencyError{Remaining: remaining(names, done)}
		}
		done[next] = true
		order = append(order, next)
	}

	return order, nil
}

// firstReady returns the first name, in input order, that is not done and
// whose local dependencies are all done.
func firstReady(names []string, done map[string]bool, cls Classification) (string, bool) {
	for _, n := range names {
		if done[n] {
			continue
		}
		if isReady(cls[n].Own, done) {
			return n, true
		}
	}
	return "", false
}

func isReady(own []string, done map[string]bool) bool {
	for _, dep := range own {
		if !done[dep] {
			return false
		}
	}
	return true
}

func remaining(names []string, done map[string]bool) []string {
	var out []string
	for _, n := range names {
		if !done[n] {
			out = append(out, n)
		}
	}
	return out
}
