package docfields

import (
	"github.com/docfields/docfields/field"
	"github.com/docfields/docfields/ir"
)

// Result holds the outcome of a Verify run.
type Result struct {
	// Missing lists descriptors with no matching, unexcused occurrence.
	Missing field.List
	// Undocumented lists the canonical paths present in the payload that
	// no descriptor covers.
	Undocumented []string
	// Types maps each non-ignored descriptor path to its resolved type.
	Types map[string]ir.Type
}

type verifyState struct {
	relaxed bool
	scope   Scope
}

type VerifyOption func(*verifyState)

// Relaxed skips the undocumented-fields check. Missing descriptors are
// still an error.
func Relaxed() VerifyOption {
	return func(v *verifyState) {
		v.relaxed = true
	}
}

// WithScope sets the wording used in reported errors.
func WithScope(s Scope) VerifyOption {
	return func(v *verifyState) {
		v.scope = s
	}
}

// Verify reconciles descriptors against the payload. It returns the full
// Result together with the first error: a *SnippetError when fields are
// missing or undocumented, or a type resolution error. A non-nil Result is
// returned even on error.
func Verify(content []byte, mediaType string, descriptors []field.Descriptor, opts ...VerifyOption) (*Result, error) {
	vs := &verifyState{scope: FieldsScope}
	for _, o := range opts {
		o(vs)
	}
	h, err := NewHandler(content, mediaType, descriptors)
	if err != nil {
		return nil, err
	}
	res := &Result{Types: map[string]ir.Type{}}
	res.Missing = h.MissingFields()
	if !vs.relaxed {
		res.Undocumented = h.UndocumentedFields()
	}
	if len(res.Missing) > 0 || len(res.Undocumented) > 0 {
		return res, &SnippetError{
			Scope:        vs.scope,
			Undocumented: res.Undocumented,
			Missing:      res.Missing,
		}
	}
	for _, d := range descriptors {
		if d.Ignored() {
			continue
		}
		t, err := h.ResolveFieldType(d)
		if err != nil {
			return res, err
		}
		res.Types[d.Path().String()] = t
	}
	return res, nil
}
