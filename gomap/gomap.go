// Package gomap converts between ir.Node trees and plain Go values.
package gomap

import (
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/docfields/docfields/ir"
)

// FromNode converts a tree to plain Go values: objects become
// map[string]any, arrays []any, numbers int64 or float64.
func FromNode(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = FromNode(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = FromNode(v)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case ir.NullType:
		return nil
	default:
		panic("type")
	}
}

// FromNodeOrdered is FromNode except objects become yaml.MapSlice so that
// field order survives YAML encoding.
func FromNodeOrdered(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: FromNodeOrdered(node.Values[i])}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = FromNodeOrdered(v)
		}
		return res
	default:
		return FromNode(node)
	}
}

// ToNode converts plain Go values into a tree. Map keys come out sorted;
// use yaml.MapSlice to control field order.
func ToNode(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return t, nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(t))
		for _, item := range t {
			val, err := ToNode(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: fmt.Sprint(item.Key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kvs := make([]ir.KeyVal, 0, len(keys))
		for _, k := range keys {
			val, err := ToNode(t[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: k, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		vals := make([]*ir.Node, len(t))
		for i, vv := range t {
			val, err := ToNode(vv)
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
	case int32:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint:
		return ir.FromInt(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return ir.FromNumber(fmt.Sprint(t))
		}
		return ir.FromInt(int64(t)), nil
	case float32:
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a payload node", v)
	}
}
