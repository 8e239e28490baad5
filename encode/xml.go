package encode

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/docfields/docfields/ir"
)

// xmlName finds the element name for a re-encoded fragment: the nearest
// ancestor-or-self object field the node hangs off.
func xmlName(node *ir.Node) string {
	for n := node; n != nil; n = n.Parent {
		if n.ParentField != "" {
			return strings.TrimPrefix(n.ParentField, "@")
		}
	}
	return "value"
}

func encodeXML(w *stickyWriter, name string, node *ir.Node, es *EncState, depth int) {
	switch node.Type {
	case ir.ArrayType:
		for _, v := range node.Values {
			encodeXML(w, name, v, es, depth)
		}
	case ir.ObjectType:
		if node.Parent == nil {
			// document mode: the root object holds the root element(s)
			for i, f := range node.Fields {
				encodeXML(w, f.String, node.Values[i], es, depth)
			}
			return
		}
		w.writeString("<" + name)
		for i, f := range node.Fields {
			if !strings.HasPrefix(f.String, "@") {
				continue
			}
			w.writeString(" " + f.String[1:] + `="`)
			w.writeString(xmlEscape(node.Values[i].String))
			w.writeString(`"`)
		}
		w.writeString(">")
		for i, f := range node.Fields {
			switch {
			case strings.HasPrefix(f.String, "@"):
			case f.String == "#text":
				w.writeString(xmlEscape(node.Values[i].String))
			default:
				encodeXML(w, f.String, node.Values[i], es, depth+1)
			}
		}
		w.writeString("</" + name + ">")
	case ir.NullType:
		w.writeString("<" + name + "/>")
	default:
		w.writeString("<" + name + ">")
		w.writeString(xmlEscape(scalarText(node)))
		w.writeString("</" + name + ">")
	}
}

func scalarText(node *ir.Node) string {
	switch node.Type {
	case ir.StringType:
		return node.String
	case ir.NumberType:
		return node.Number
	case ir.BoolType:
		if node.Bool {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

func xmlEscape(s string) string {
	buf := bytes.NewBuffer(nil)
	if err := xml.EscapeText(buf, []byte(s)); err != nil {
		panic(err)
	}
	return buf.String()
}
