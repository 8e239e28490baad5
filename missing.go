package docfields

import (
	"github.com/docfields/docfields/debug"
	"github.com/docfields/docfields/field"
	"github.com/docfields/docfields/ir"
)

func (h *treeHandler) MissingFields() field.List {
	var missing field.List
	for _, d := range h.descriptors {
		if d.Optional() || d.Ignored() {
			continue
		}
		if len(h.root.Locate(d.Path())) > 0 {
			continue
		}
		if h.excusedByOptionalAncestor(d) {
			continue
		}
		if debug.Missing() {
			debug.Logf("missing %s\n", d.Path())
		}
		missing = append(missing, d)
	}
	return missing
}

// excusedByOptionalAncestor reports whether some optional descriptor is a
// segment-wise ancestor of d whose own position is vacant, so the described
// field is only absent because its documented-optional ancestor is. The
// check applies transitively: any vacant optional ancestor along the path
// excuses the whole descendant chain.
func (h *treeHandler) excusedByOptionalAncestor(d field.Descriptor) bool {
	for _, c := range h.descriptors {
		if !c.Optional() {
			continue
		}
		if !c.Path().AncestorOf(d.Path()) {
			continue
		}
		if h.vacant(c) {
			return true
		}
	}
	return false
}

// vacant reports whether the candidate descriptor's position is effectively
// absent: no concrete match, a null value, or only (recursively) empty
// arrays. A wildcard path that matches anything other than empty arrays is
// not vacant — a non-empty array does not excuse its descendants.
func (h *treeHandler) vacant(c field.Descriptor) bool {
	locs := h.root.Locate(c.Path())
	if len(locs) == 0 {
		return true
	}
	if !c.Path().HasWildcard() {
		n := locs[0]
		return n.Type == ir.NullType || ir.IsEmptyValue(n)
	}
	for _, n := range locs {
		if !ir.IsEmptyValue(n) {
			return false
		}
	}
	return true
}
