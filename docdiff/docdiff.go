// Package docdiff renders the difference between a payload and the part of
// it covered by a set of field descriptors.
package docdiff

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/docfields/docfields"
	"github.com/docfields/docfields/encode"
	"github.com/docfields/docfields/field"
	"github.com/docfields/docfields/gomap"
	"github.com/docfields/docfields/ir"
)

// ErrDiff wraps failures to compute a documented/undocumented split.
var ErrDiff = errors.New("diff error")

// Coverage is the result of splitting a payload against its descriptors.
type Coverage struct {
	// Full is the whole payload.
	Full *ir.Node
	// Documented is the payload with undocumented parts pruned, nil when
	// nothing is documented.
	Documented *ir.Node
	// Undocumented is the payload with documented parts pruned, nil when
	// everything is documented.
	Undocumented *ir.Node
}

// Split computes the documented and undocumented portions of content.
func Split(content []byte, mediaType string, descriptors []field.Descriptor) (*Coverage, error) {
	h, err := docfields.NewHandler(content, mediaType, descriptors)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDiff, err)
	}
	cov := &Coverage{Full: h.Content()}
	cov.Undocumented = h.UndocumentedContent()
	cov.Documented = documentedContent(cov.Full, cov.Undocumented)
	return cov, nil
}

// documentedContent derives the documented portion as the complement of the
// undocumented one, by position.
func documentedContent(full, undocumented *ir.Node) *ir.Node {
	if undocumented == nil {
		return full.Clone()
	}
	return complement(full, undocumented)
}

func complement(full, und *ir.Node) *ir.Node {
	switch full.Type {
	case ir.ObjectType:
		var kvs []ir.KeyVal
		for i, f := range full.Fields {
			uv, ok := und.Value(f.String)
			if !ok {
				kvs = append(kvs, ir.KeyVal{Key: f.String, Val: full.Values[i].Clone()})
				continue
			}
			if c := complement(full.Values[i], uv); c != nil {
				kvs = append(kvs, ir.KeyVal{Key: f.String, Val: c})
			}
		}
		if len(kvs) == 0 {
			return nil
		}
		return ir.FromKeyVals(kvs)
	case ir.ArrayType:
		// pruning preserves element order but not positions, so arrays
		// are kept whole once any element survives
		if len(und.Values) == len(full.Values) {
			return nil
		}
		return full.Clone()
	default:
		return nil
	}
}

// MergePatch computes the RFC 7386 merge patch turning the documented
// portion of a JSON payload into the full payload. The patch is exactly the
// undocumented remainder.
func MergePatch(cov *Coverage) ([]byte, error) {
	fullJSON, err := json.Marshal(gomap.FromNode(cov.Full))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDiff, err)
	}
	var doc any
	if cov.Documented != nil {
		doc = gomap.FromNode(cov.Documented)
	} else {
		doc = map[string]any{}
	}
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDiff, err)
	}
	if jsonpatch.Equal(docJSON, fullJSON) {
		return []byte("{}"), nil
	}
	patch, err := jsonpatch.CreateMergePatch(docJSON, fullJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDiff, err)
	}
	return patch, nil
}

// Text renders a line diff from the documented portion to the full payload,
// in the standard diff-match-patch pretty text form. Encode options control
// the rendering of both sides.
func Text(cov *Coverage, opts ...encode.EncodeOption) (string, error) {
	docText := ""
	if cov.Documented != nil {
		s, err := encodeString(cov.Documented, opts...)
		if err != nil {
			return "", err
		}
		docText = s
	}
	fullText, err := encodeString(cov.Full, opts...)
	if err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(docText, fullText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	return dmp.DiffPrettyText(diffs), nil
}

func encodeString(n *ir.Node, opts ...encode.EncodeOption) (string, error) {
	var sb strings.Builder
	if err := encode.Encode(n, &sb, opts...); err != nil {
		return "", fmt.Errorf("%w: %s", ErrDiff, err)
	}
	return sb.String(), nil
}
