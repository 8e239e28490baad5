package field

// List is an ordered descriptor collection; reconciliation reports preserve
// declaration order.
type List []Descriptor

// Paths returns the descriptors' paths in canonical form, in order.
func (l List) Paths() []string {
	res := make([]string, len(l))
	for i, d := range l {
		res[i] = d.Path().String()
	}
	return res
}

// WithoutIgnored filters out descriptors documented only for coverage.
func (l List) WithoutIgnored() List {
	res := make(List, 0, len(l))
	for _, d := range l {
		if d.Ignored() {
			continue
		}
		res = append(res, d)
	}
	return res
}
