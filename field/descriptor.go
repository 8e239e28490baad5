// Package field declares the expectations callers document against a
// payload: one Descriptor per described field.
package field

import (
	"github.com/docfields/docfields/fieldpath"
	"github.com/docfields/docfields/ir"
)

// Descriptor is a declared expectation that a payload contains (or may
// optionally contain) a value at a path. Descriptors are immutable values;
// a set of them is reused across many payloads unchanged.
type Descriptor struct {
	path        fieldpath.Path
	description string
	optional    bool
	ignored     bool
	subsection  bool
	typ         *ir.Type
}

type Option func(*Descriptor)

// Optional marks the field as one the payload may omit.
func Optional() Option {
	return func(d *Descriptor) { d.optional = true }
}

// Ignored documents the field's presence without describing it: it is
// excluded from missing-field checks and type resolution but still counts
// as documented.
func Ignored() Option {
	return func(d *Descriptor) { d.ignored = true }
}

// Subsection documents the entire subtree beneath the path, so no
// descendant needs an individual description.
func Subsection() Option {
	return func(d *Descriptor) { d.subsection = true }
}

// Type fixes the field's type instead of inferring it from the payload.
func Type(t ir.Type) Option {
	return func(d *Descriptor) { d.typ = &t }
}

func Description(s string) Option {
	return func(d *Descriptor) { d.description = s }
}

// New builds a descriptor for the field at the given path. Malformed path
// syntax is reported here, never during reconciliation.
func New(path string, opts ...Option) (Descriptor, error) {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return Descriptor{}, err
	}
	d := Descriptor{path: p}
	for _, opt := range opts {
		opt(&d)
	}
	return d, nil
}

// MustNew is New for paths known to be well-formed; it panics otherwise.
func MustNew(path string, opts ...Option) Descriptor {
	d, err := New(path, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Descriptor) Path() fieldpath.Path { return d.path }
func (d Descriptor) Description() string  { return d.description }
func (d Descriptor) Optional() bool       { return d.optional }
func (d Descriptor) Ignored() bool        { return d.ignored }
func (d Descriptor) Subsection() bool     { return d.subsection }

// Type returns the explicit type override, if any.
func (d Descriptor) Type() (ir.Type, bool) {
	if d.typ == nil {
		return 0, false
	}
	return *d.typ, true
}
