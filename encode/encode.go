// Package encode renders ir.Node trees back to payload text. It is used for
// subsection extraction, undocumented-content reporting, and terminal
// output.
package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/docfields/docfields/format"
	"github.com/docfields/docfields/gomap"
	"github.com/docfields/docfields/ir"
)

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		jw := &stickyWriter{w: w}
		encodeJSON(jw, node, es, 0)
		if es.indent > 0 {
			jw.writeString("\n")
		}
		return jw.err
	case format.XMLFormat:
		xw := &stickyWriter{w: w}
		encodeXML(xw, xmlName(node), node, es, 0)
		return xw.err
	case format.YAMLFormat:
		d, err := yaml.Marshal(gomap.FromNodeOrdered(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %v", format.ErrBadFormat, es.format)
	}
}

// MustString renders node to a string and panics on error; for values built
// in-process which cannot fail to encode.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

type stickyWriter struct {
	w   io.Writer
	err error
}

func (sw *stickyWriter) writeString(s string) {
	if sw.err != nil {
		return
	}
	_, sw.err = io.WriteString(sw.w, s)
}

func encodeJSON(w *stickyWriter, node *ir.Node, es *EncState, depth int) {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			w.writeString("{}")
			return
		}
		w.writeString("{")
		for i, f := range node.Fields {
			if i > 0 {
				w.writeString(",")
			}
			w.writeString(es.sep(depth + 1))
			w.writeString(es.color(fieldColor, jsonString(f.String)))
			w.writeString(":")
			if es.indent > 0 {
				w.writeString(" ")
			}
			encodeJSON(w, node.Values[i], es, depth+1)
		}
		w.writeString(es.sep(depth))
		w.writeString("}")
	case ir.ArrayType:
		if len(node.Values) == 0 {
			w.writeString("[]")
			return
		}
		w.writeString("[")
		for i, v := range node.Values {
			if i > 0 {
				w.writeString(",")
			}
			w.writeString(es.sep(depth + 1))
			encodeJSON(w, v, es, depth+1)
		}
		w.writeString(es.sep(depth))
		w.writeString("]")
	case ir.StringType:
		w.writeString(es.color(stringColor, jsonString(node.String)))
	case ir.NumberType:
		w.writeString(es.color(numberColor, node.Number))
	case ir.BoolType:
		if node.Bool {
			w.writeString(es.color(boolColor, "true"))
		} else {
			w.writeString(es.color(boolColor, "false"))
		}
	case ir.NullType:
		w.writeString(es.color(nullColor, "null"))
	default:
		panic("type")
	}
}

// sep returns the separator before an element at the given depth: nothing
// when compact, a newline plus indentation otherwise.
func (es *EncState) sep(depth int) string {
	if es.indent == 0 {
		return ""
	}
	return "\n" + strings.Repeat(" ", es.indent*depth)
}

func jsonString(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(d)
}
