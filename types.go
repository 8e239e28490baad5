package docfields

import (
	"errors"

	"github.com/docfields/docfields/debug"
	"github.com/docfields/docfields/field"
	"github.com/docfields/docfields/ir"
)

// ResolveFieldType resolves the descriptor's type against the payload. An
// explicit override takes precedence: it is returned as long as the payload
// does not contradict it (VariesType overrides unconditionally, and a null
// value is no contradiction for an optional field). Without an override the
// type is inferred from the concrete occurrences: all agreeing yields the
// common type, disagreement yields VariesType, with nulls skipped for
// optional descriptors.
func (h *treeHandler) ResolveFieldType(d field.Descriptor) (ir.Type, error) {
	if t, ok := d.Type(); ok {
		if t == ir.VariesType {
			return t, nil
		}
		actual, err := h.actualFieldType(d)
		if err != nil {
			var fde *FieldDoesNotExistError
			if errors.As(err, &fde) {
				// absent field cannot contradict the override
				return t, nil
			}
			return 0, err
		}
		if actual == t || (d.Optional() && actual == ir.NullType) {
			return t, nil
		}
		return 0, &TypesDoNotMatchError{Descriptor: d, Actual: actual}
	}
	return h.actualFieldType(d)
}

func (h *treeHandler) actualFieldType(d field.Descriptor) (ir.Type, error) {
	locs := h.root.Locate(d.Path())
	if len(locs) == 0 {
		return 0, &FieldDoesNotExistError{Path: d.Path()}
	}
	types := map[ir.Type]bool{}
	for _, n := range locs {
		types[n.Type] = true
	}
	if d.Optional() && len(types) > 1 {
		delete(types, ir.NullType)
	}
	if debug.Types() {
		debug.Logf("types of %s: %v\n", d.Path(), types)
	}
	if len(types) == 1 {
		for t := range types {
			return t, nil
		}
	}
	return ir.VariesType, nil
}
