package parse

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/docfields/docfields/ir"
)

func parseYAML(content []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(content, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContent, err)
	}
	return yamlNode(v)
}

func yamlNode(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(t))
		for _, item := range t {
			val, err := yamlNode(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: fmt.Sprint(item.Key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(t))
		for k, vv := range t {
			val, err := yamlNode(vv)
			if err != nil {
				return nil, err
			}
			m[k] = val
		}
		return ir.FromMap(m), nil
	case []any:
		vals := make([]*ir.Node, len(t))
		for i, vv := range t {
			val, err := yamlNode(vv)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t <= math.MaxInt64 {
			return ir.FromInt(int64(t)), nil
		}
		return ir.FromNumber(fmt.Sprint(t))
	case float64:
		return ir.FromFloat(t), nil
	default:
		return ir.FromString(fmt.Sprint(t)), nil
	}
}
