package docfields

import (
	"github.com/docfields/docfields/debug"
	"github.com/docfields/docfields/fieldpath"
	"github.com/docfields/docfields/ir"
)

func (h *treeHandler) UndocumentedFields() []string {
	var res []string
	seen := map[string]bool{}
	h.walkUndocumented(h.root, fieldpath.Path{}, &res, seen)
	return res
}

func (h *treeHandler) walkUndocumented(n *ir.Node, p fieldpath.Path, res *[]string, seen map[string]bool) {
	if n != h.root {
		cp := p.String()
		if !seen[cp] {
			seen[cp] = true
			if !h.documented(p) {
				if debug.Undocumented() {
					debug.Logf("undocumented %s\n", cp)
				}
				*res = append(*res, cp)
			}
		}
	}
	switch n.Type {
	case ir.ObjectType:
		for i, f := range n.Fields {
			h.walkUndocumented(n.Values[i], p.Append(fieldpath.Segment{Key: f.String}), res, seen)
		}
	case ir.ArrayType:
		for _, v := range n.Values {
			h.walkUndocumented(v, p.Append(fieldpath.Segment{Wildcard: true}), res, seen)
		}
	}
}

// documented reports whether the canonical path p is covered: some
// descriptor documents exactly p, or a subsection descriptor documents an
// ancestor and thereby the whole subtree.
func (h *treeHandler) documented(p fieldpath.Path) bool {
	for _, d := range h.descriptors {
		dp := d.Path()
		if dp.Equal(p) {
			return true
		}
		if d.Subsection() && dp.AncestorOf(p) {
			return true
		}
	}
	return false
}

// UndocumentedContent prunes every documented part from a copy of the
// payload. A container survives when its own path is undocumented or when
// something undocumented remains beneath it; it returns nil when the whole
// payload is documented.
func (h *treeHandler) UndocumentedContent() *ir.Node {
	return h.prune(h.root, fieldpath.Path{})
}

func (h *treeHandler) prune(n *ir.Node, p fieldpath.Path) *ir.Node {
	root := n == h.root
	if !root && h.subsectionCovered(p) {
		return nil
	}
	exact := !root && h.documentedExactly(p)
	switch n.Type {
	case ir.ObjectType:
		var kvs []ir.KeyVal
		for i, f := range n.Fields {
			child := h.prune(n.Values[i], p.Append(fieldpath.Segment{Key: f.String}))
			if child != nil {
				kvs = append(kvs, ir.KeyVal{Key: f.String, Val: child})
			}
		}
		if len(kvs) > 0 {
			return ir.FromKeyVals(kvs)
		}
		if root || exact {
			return nil
		}
		return ir.FromKeyVals(nil)
	case ir.ArrayType:
		var vals []*ir.Node
		for _, v := range n.Values {
			child := h.prune(v, p.Append(fieldpath.Segment{Wildcard: true}))
			if child != nil {
				vals = append(vals, child)
			}
		}
		if len(vals) > 0 {
			return ir.FromSlice(vals)
		}
		if root || exact {
			return nil
		}
		return ir.FromSlice(nil)
	default:
		if root || exact {
			return nil
		}
		return n.Clone()
	}
}

func (h *treeHandler) documentedExactly(p fieldpath.Path) bool {
	for _, d := range h.descriptors {
		if d.Path().Equal(p) {
			return true
		}
	}
	return false
}

func (h *treeHandler) subsectionCovered(p fieldpath.Path) bool {
	for _, d := range h.descriptors {
		if d.Subsection() && (d.Path().Equal(p) || d.Path().AncestorOf(p)) {
			return true
		}
	}
	return false
}
