package ir

import (
	"strconv"
	"strings"

	"github.com/docfields/docfields/fieldpath"
)

// Path returns the concrete path of this node's position in the tree, with
// explicit array indices, e.g. "a[0].b". The root is "".
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	switch y.Parent.Type {
	case ObjectType:
		prefix := y.Parent.Path()
		f := fieldpath.QuoteKey(y.ParentField)
		if prefix == "" {
			return f
		}
		if strings.HasPrefix(f, "[") {
			return prefix + f
		}
		return prefix + "." + f
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// CanonicalPath returns the node's path with array indices collapsed to the
// [] wildcard, so a[0].b and a[1].b canonicalize identically.
func (y *Node) CanonicalPath() fieldpath.Path {
	var segs []fieldpath.Segment
	for n := y; n.Parent != nil; n = n.Parent {
		switch n.Parent.Type {
		case ObjectType:
			segs = append(segs, fieldpath.Segment{Key: n.ParentField})
		case ArrayType:
			segs = append(segs, fieldpath.Segment{Wildcard: true})
		default:
			panic("parent but not in container")
		}
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return fieldpath.New(segs)
}
