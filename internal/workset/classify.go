package workset

// Classify partitions every package's dependencies into names present in the
// working set (Own) and the rest (Foreign). Both lists keep the package's
// dependency order.
func Classify(ws *WorkingSet) Classification {
	out := make(Classification, ws.Len())
	for _, p := range ws.packages {
		part := Partition{
			Own:     []string{},
			Foreign: []string{},
		}
		for _, dep := range p.Dependencies {
			if ws.Has(dep) {
				part.Own = append(part.Own, dep)
			} else {
				part.Foreign = append(part.Foreign, dep)
			}
		}
		out[p.Name] = part
	}
	return out
}
