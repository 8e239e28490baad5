package ir

import "github.com/docfields/docfields/fieldpath"

// Locate resolves a field path against the tree rooted at y, expanding the
// [] wildcard once per array element. The result is empty if any ancestor
// segment is absent. The returned nodes alias the tree; they are not clones.
func (y *Node) Locate(p fieldpath.Path) []*Node {
	return locate(y, p.Segments(), nil)
}

func locate(n *Node, segs []fieldpath.Segment, dst []*Node) []*Node {
	if len(segs) == 0 {
		return append(dst, n)
	}
	seg := segs[0]
	if seg.Wildcard {
		if n.Type != ArrayType {
			return dst
		}
		for _, v := range n.Values {
			dst = locate(v, segs[1:], dst)
		}
		return dst
	}
	if n.Type != ObjectType {
		return dst
	}
	for i, f := range n.Fields {
		if f.String != seg.Key {
			continue
		}
		dst = locate(n.Values[i], segs[1:], dst)
	}
	return dst
}
