package parse

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/docfields/docfields/ir"
)

// parseJSON decodes token by token rather than into a map so that object
// field order survives into the tree.
func parseJSON(content []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContent, err)
	}
	node, err := jsonValue(dec, tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContent, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrContent)
	}
	return node, nil
}

func jsonValue(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var kvs []ir.KeyVal
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				valTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				val, err := jsonValue(dec, valTok)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ir.FromKeyVals(kvs), nil
		case '[':
			var vals []*ir.Node
			for dec.More() {
				valTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				val, err := jsonValue(dec, valTok)
				if err != nil {
					return nil, err
				}
				vals = append(vals, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ir.FromSlice(vals), nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case json.Number:
		return ir.FromNumber(t.String())
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}
