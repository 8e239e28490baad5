package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/docfields/docfields/ir"
)

// parseXML maps an XML document onto the same tree shape as JSON payloads:
// the root element becomes the single field of the root object, child
// elements become fields, repeated same-name siblings become an array,
// attributes become "@name" fields, and trailing non-whitespace text of a
// mixed element lands under "#text".
func parseXML(content []byte) (*ir.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContent, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			elem, err := xmlElement(dec, t)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrContent, err)
			}
			return ir.FromKeyVals([]ir.KeyVal{{Key: t.Name.Local, Val: elem}}), nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return nil, fmt.Errorf("%w: text outside root element", ErrContent)
			}
		default:
			// comments, directives, processing instructions
		}
	}
}

// xmlElement decodes the element whose start tag was just consumed.
func xmlElement(dec *xml.Decoder, start xml.StartElement) (*ir.Node, error) {
	var kvs []ir.KeyVal
	for _, attr := range start.Attr {
		kvs = append(kvs, ir.KeyVal{Key: "@" + attr.Name.Local, Val: ir.FromString(attr.Value)})
	}
	var (
		names []string
		nodes []*ir.Node
		text  strings.Builder
	)
loop:
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := xmlElement(dec, t)
			if err != nil {
				return nil, err
			}
			names = append(names, t.Name.Local)
			nodes = append(nodes, child)
		case xml.EndElement:
			break loop
		case xml.CharData:
			text.Write(t)
		}
	}
	txt := strings.TrimSpace(text.String())
	if len(names) == 0 && len(kvs) == 0 {
		if txt == "" {
			return ir.Null(), nil
		}
		return ir.FromString(txt), nil
	}
	counts := map[string]int{}
	for _, nm := range names {
		counts[nm]++
	}
	grouped := map[string]bool{}
	for i, nm := range names {
		if counts[nm] == 1 {
			kvs = append(kvs, ir.KeyVal{Key: nm, Val: nodes[i]})
			continue
		}
		if grouped[nm] {
			continue
		}
		grouped[nm] = true
		var elems []*ir.Node
		for j := i; j < len(names); j++ {
			if names[j] == nm {
				elems = append(elems, nodes[j])
			}
		}
		kvs = append(kvs, ir.KeyVal{Key: nm, Val: ir.FromSlice(elems)})
	}
	if txt != "" {
		kvs = append(kvs, ir.KeyVal{Key: "#text", Val: ir.FromString(txt)})
	}
	return ir.FromKeyVals(kvs), nil
}
