package docfields

import (
	"bytes"
	"fmt"

	"github.com/docfields/docfields/debug"
	"github.com/docfields/docfields/encode"
	"github.com/docfields/docfields/field"
	"github.com/docfields/docfields/fieldpath"
	"github.com/docfields/docfields/format"
	"github.com/docfields/docfields/ir"
	"github.com/docfields/docfields/parse"
)

// Located is one concrete payload position a field path resolved to.
type Located struct {
	Path string // concrete path with explicit indices, e.g. "a[0].b"
	Node *ir.Node
}

// ContentHandler exposes the reconciliation capabilities over one parsed
// payload and one descriptor set. Handlers are cheap; build one per body.
type ContentHandler interface {
	// Content returns the parsed payload tree.
	Content() *ir.Node
	// Locate resolves a path to its concrete positions, expanding the []
	// wildcard once per array element. Empty when any ancestor is absent.
	Locate(p fieldpath.Path) []Located
	// MissingFields returns, in declaration order, the descriptors that are
	// neither present nor vacuously satisfied by an optional ancestor.
	MissingFields() field.List
	// UndocumentedFields returns the canonical paths present in the payload
	// that no descriptor documents, in depth-first order.
	UndocumentedFields() []string
	// UndocumentedContent returns a copy of the payload with every
	// documented part pruned, or nil when the payload is fully documented.
	UndocumentedContent() *ir.Node
	// ResolveFieldType resolves the descriptor's type against the payload.
	ResolveFieldType(d field.Descriptor) (ir.Type, error)
	// Subsection re-encodes the payload fragment beneath a path that
	// resolves to exactly one concrete position.
	Subsection(p fieldpath.Path) ([]byte, error)
}

// NewHandler parses content per the declared media type and returns the
// handler for that format. It fails with an error wrapping parse.ErrContent
// when the media type is unsupported or the bytes do not decode.
func NewHandler(content []byte, mediaType string, descriptors []field.Descriptor) (ContentHandler, error) {
	f, err := format.ForMediaType(mediaType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", parse.ErrContent, err)
	}
	root, err := parse.ParseFormat(content, f)
	if err != nil {
		return nil, err
	}
	return &treeHandler{
		root:        root,
		descriptors: descriptors,
		format:      f,
	}, nil
}

// treeHandler reconciles any tree-shaped payload; the per-format variance
// is confined to the parse and encode strategies selected at construction.
type treeHandler struct {
	root        *ir.Node
	descriptors []field.Descriptor
	format      format.Format
}

func (h *treeHandler) Content() *ir.Node { return h.root }

func (h *treeHandler) Locate(p fieldpath.Path) []Located {
	nodes := h.root.Locate(p)
	res := make([]Located, len(nodes))
	for i, n := range nodes {
		res[i] = Located{Path: n.Path(), Node: n}
	}
	if debug.Locate() {
		debug.Logf("locate %s: %d match(es)\n", p, len(res))
	}
	return res
}

func (h *treeHandler) Subsection(p fieldpath.Path) ([]byte, error) {
	locs := h.root.Locate(p)
	switch len(locs) {
	case 0:
		return nil, fmt.Errorf("%s does not identify a section of the payload", p)
	case 1:
	default:
		return nil, fmt.Errorf("%s identifies multiple sections of the payload", p)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(locs[0], buf, encode.EncodeFormat(h.format)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Subsection parses content and extracts the fragment beneath path.
func Subsection(content []byte, mediaType, path string) ([]byte, error) {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return nil, err
	}
	h, err := NewHandler(content, mediaType, nil)
	if err != nil {
		return nil, err
	}
	return h.Subsection(p)
}
