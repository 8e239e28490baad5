// Package ir provides the in-memory representation of payload bodies.
//
// A payload, whatever its wire format, is represented as a tree of nodes. A
// Node is a tagged union over objects (ordered field/value pairs), arrays,
// and the scalar types. Trees are built once per payload by the parse
// package and are read-only during reconciliation.
package ir

import (
	"sort"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Fields = make([]*Node, len(y.Fields))
	dst.Values = make([]*Node, len(y.Values))
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Fields[i] = dstI
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

// Root walks parent links to the top of the tree.
func (y *Node) Root() *Node {
	for y.Parent != nil {
		y = y.Parent
	}
	return y
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  strconv.FormatFloat(f, 'g', -1, 64),
		Float64: &f,
	}
}

// FromNumber builds a number node from its source text, keeping the exact
// input in Number and the parsed value in Int64 or Float64.
func FromNumber(raw string) (*Node, error) {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return &Node{Type: NumberType, Number: raw, Int64: &i}, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &Node{Type: NumberType, Number: raw, Float64: &f}, nil
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType, Values: vs}
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i, kv := range kvs {
		f := FromString(kv.Key)
		f.Parent = res
		f.ParentIndex = i
		f.ParentField = kv.Key
		res.Fields[i] = f
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// FromMap builds an object node with fields in sorted key order.
func FromMap(m map[string]*Node) *Node {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: k, Val: m[k]}
	}
	return FromKeyVals(kvs)
}

// ToMap returns an object node's values keyed by field name.
func ToMap(y *Node) map[string]*Node {
	res := make(map[string]*Node, len(y.Fields))
	for i, f := range y.Fields {
		res[f.String] = y.Values[i]
	}
	return res
}

// Value returns the value of the named field of an object node.
func (y *Node) Value(field string) (*Node, bool) {
	if y.Type != ObjectType {
		return nil, false
	}
	for i, f := range y.Fields {
		if f.String == field {
			return y.Values[i], true
		}
	}
	return nil, false
}

// Visit walks the tree rooted at y in depth-first order, calling f once
// before a node's children (isPost false) and once after (isPost true).
// Returning false from the pre-order call skips the node's children.
func (y *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	desc, err := f(y, false)
	if err != nil {
		return err
	}
	if desc {
		for _, v := range y.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(y, true)
	return err
}
