package encode

import (
	"testing"

	"github.com/docfields/docfields/format"
	"github.com/docfields/docfields/parse"
)

type encodeTest struct {
	name string
	in   string
	inF  format.Format
	out  string
	opts []EncodeOption
}

func TestEncode(t *testing.T) {
	ets := []encodeTest{
		{
			name: "compact json",
			in:   `{ "a": 1, "b": [true, null], "c": "x" }`,
			inF:  format.JSONFormat,
			out:  `{"a":1,"b":[true,null],"c":"x"}`,
		},
		{
			name: "indented json",
			in:   `{"a":{"b":1}}`,
			inF:  format.JSONFormat,
			out:  "{\n  \"a\": {\n    \"b\": 1\n  }\n}\n",
			opts: []EncodeOption{EncodeIndent(2)},
		},
		{
			name: "empty containers",
			in:   `{"a":{},"b":[]}`,
			inF:  format.JSONFormat,
			out:  `{"a":{},"b":[]}`,
		},
		{
			name: "number text preserved",
			in:   `{"a": 1e3}`,
			inF:  format.JSONFormat,
			out:  `{"a":1e3}`,
		},
		{
			name: "json to yaml",
			in:   `{"z": 1, "a": "x"}`,
			inF:  format.JSONFormat,
			out:  "z: 1\na: x\n",
			opts: []EncodeOption{EncodeFormat(format.YAMLFormat)},
		},
		{
			name: "xml round trip",
			in:   `<order id="7"><item>book</item><item>pen</item></order>`,
			inF:  format.XMLFormat,
			out:  `<order id="7"><item>book</item><item>pen</item></order>`,
			opts: []EncodeOption{EncodeFormat(format.XMLFormat)},
		},
		{
			name: "xml empty element",
			in:   `<a/>`,
			inF:  format.XMLFormat,
			out:  `<a/>`,
			opts: []EncodeOption{EncodeFormat(format.XMLFormat)},
		},
		{
			name: "xml text escaped",
			in:   `{"a": "x < y"}`,
			inF:  format.JSONFormat,
			out:  `<a>x &lt; y</a>`,
			opts: []EncodeOption{EncodeFormat(format.XMLFormat)},
		},
		{
			name: "json string escaped",
			in:   "{\"a\": \"line\\nbreak\"}",
			inF:  format.JSONFormat,
			out:  `{"a":"line\nbreak"}`,
		},
	}
	for _, et := range ets {
		t.Run(et.name, func(t *testing.T) {
			node, err := parse.ParseFormat([]byte(et.in), et.inF)
			if err != nil {
				t.Fatal(err)
			}
			got := MustString(node, et.opts...)
			if got != et.out {
				t.Errorf("got %q, want %q", got, et.out)
			}
		})
	}
}
