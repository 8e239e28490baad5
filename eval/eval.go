// Package eval runs expressions against a payload tree, for asserting
// properties of documented content.
package eval

import (
	"errors"
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/docfields/docfields/fieldpath"
	"github.com/docfields/docfields/gomap"
	"github.com/docfields/docfields/ir"
)

// ErrEval wraps expression compilation and run failures.
var ErrEval = errors.New("eval error")

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			p, err := fieldpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			locs := doc.Locate(p)
			if len(locs) == 0 {
				return nil, fmt.Errorf("no value at %s", p)
			}
			if len(locs) > 1 {
				return nil, fmt.Errorf("%d values at %s", len(locs), p)
			}
			return gomap.FromNode(locs[0]), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			p, err := fieldpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			locs := doc.Locate(p)
			res := make([]any, len(locs))
			for i, n := range locs {
				res[i] = gomap.FromNode(n)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Run compiles src and evaluates it against doc. Object fields of doc are
// visible as top level identifiers, and getpath, listpath and getenv are
// available as functions.
func Run(doc *ir.Node, src string) (any, error) {
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEval, err)
	}
	res, err := expr.Run(prg, env(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEval, err)
	}
	return res, nil
}

// Assert evaluates src against doc and requires a boolean result.
func Assert(doc *ir.Node, src string) (bool, error) {
	res, err := Run(doc, src)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: assertion returned %T, not bool", ErrEval, res)
	}
	return b, nil
}

// Program is a compiled expression bound to no particular payload.
type Program struct {
	prg *vm.Program
	src string
}

// Compile compiles src without the path helpers, for expressions that only
// reference payload fields.
func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEval, err)
	}
	return &Program{prg: prg, src: src}, nil
}

// Run evaluates the compiled program against doc.
func (p *Program) Run(doc *ir.Node) (any, error) {
	res, err := expr.Run(p.prg, env(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEval, err)
	}
	return res, nil
}

func env(doc *ir.Node) map[string]any {
	if doc.Type == ir.ObjectType {
		if m, ok := gomap.FromNode(doc).(map[string]any); ok {
			return m
		}
	}
	return map[string]any{"value": gomap.FromNode(doc)}
}
