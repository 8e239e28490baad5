// Package parse builds ir.Node trees from raw payload bytes and a declared
// media type. It performs no I/O; callers hand it the body they already
// have.
package parse

import (
	"fmt"

	"github.com/docfields/docfields/format"
	"github.com/docfields/docfields/ir"
)

// Parse decodes content according to its declared media type. It fails with
// an error wrapping ErrContent when the media type is unsupported or the
// bytes are not valid for the declared format.
func Parse(content []byte, mediaType string) (*ir.Node, error) {
	f, err := format.ForMediaType(mediaType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContent, err)
	}
	return ParseFormat(content, f)
}

// ParseFormat is Parse for an already-resolved format.
func ParseFormat(content []byte, f format.Format) (*ir.Node, error) {
	switch f {
	case format.JSONFormat:
		return parseJSON(content)
	case format.XMLFormat:
		return parseXML(content)
	case format.YAMLFormat:
		return parseYAML(content)
	default:
		return nil, fmt.Errorf("%w: %v %v", ErrContent, format.ErrBadFormat, f)
	}
}
