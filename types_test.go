package docfields

import (
	"errors"
	"testing"

	"github.com/docfields/docfields/field"
	"github.com/docfields/docfields/ir"
)

func TestResolveFieldTypeInferred(t *testing.T) {
	tests := []struct {
		name    string
		content string
		desc    field.Descriptor
		want    ir.Type
	}{
		{"string", `{"a": "x"}`, field.MustNew("a"), ir.StringType},
		{"number", `{"a": 1.5}`, field.MustNew("a"), ir.NumberType},
		{"bool", `{"a": true}`, field.MustNew("a"), ir.BoolType},
		{"null", `{"a": null}`, field.MustNew("a"), ir.NullType},
		{"object", `{"a": {}}`, field.MustNew("a"), ir.ObjectType},
		{"array", `{"a": []}`, field.MustNew("a"), ir.ArrayType},
		{
			"number then null varies",
			`{"a": [{"id": 1}, {"id": null}]}`,
			field.MustNew("a[].id"),
			ir.VariesType,
		},
		{
			"null then number varies",
			`{"a": [{"id": null}, {"id": 1}]}`,
			field.MustNew("a.[].id"),
			ir.VariesType,
		},
		{
			"optional ignores null alongside number",
			`{"a": [{"id": 1}, {"id": null}]}`,
			field.MustNew("a[].id", field.Optional()),
			ir.NumberType,
		},
		{
			"optional ignores null before number",
			`{"a": [{"id": null}, {"id": 1}]}`,
			field.MustNew("a[].id", field.Optional()),
			ir.NumberType,
		},
		{
			"optional all null stays null",
			`{"a": [{"id": null}, {"id": null}]}`,
			field.MustNew("a[].id", field.Optional()),
			ir.NullType,
		},
		{
			"mixed concrete types vary",
			`{"a": [{"id": 1}, {"id": "x"}]}`,
			field.MustNew("a[].id"),
			ir.VariesType,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := jsonHandler(t, tc.content, tc.desc)
			got, err := h.ResolveFieldType(tc.desc)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestResolveFieldTypeExplicit(t *testing.T) {
	t.Run("matching override", func(t *testing.T) {
		d := field.MustNew("a", field.Type(ir.StringType))
		h := jsonHandler(t, `{"a": "x"}`, d)
		got, err := h.ResolveFieldType(d)
		if err != nil {
			t.Fatal(err)
		}
		if got != ir.StringType {
			t.Errorf("got %s", got)
		}
	})
	t.Run("override must match null value", func(t *testing.T) {
		d := field.MustNew("a", field.Type(ir.StringType))
		h := jsonHandler(t, `{"a": null}`, d)
		_, err := h.ResolveFieldType(d)
		var tdm *TypesDoNotMatchError
		if !errors.As(err, &tdm) {
			t.Fatalf("got %v, want TypesDoNotMatchError", err)
		}
	})
	t.Run("override must match varying values", func(t *testing.T) {
		d := field.MustNew("a[].id", field.Type(ir.StringType))
		h := jsonHandler(t, `{"a": [{"id": 1}, {"id": null}]}`, d)
		_, err := h.ResolveFieldType(d)
		var tdm *TypesDoNotMatchError
		if !errors.As(err, &tdm) {
			t.Fatalf("got %v, want TypesDoNotMatchError", err)
		}
	})
	t.Run("optional override tolerates null", func(t *testing.T) {
		d := field.MustNew("a", field.Type(ir.StringType), field.Optional())
		h := jsonHandler(t, `{"a": null}`, d)
		got, err := h.ResolveFieldType(d)
		if err != nil {
			t.Fatal(err)
		}
		if got != ir.StringType {
			t.Errorf("got %s", got)
		}
	})
	t.Run("varies overrides anything", func(t *testing.T) {
		d := field.MustNew("a", field.Type(ir.VariesType))
		h := jsonHandler(t, `{"a": "x"}`, d)
		got, err := h.ResolveFieldType(d)
		if err != nil {
			t.Fatal(err)
		}
		if got != ir.VariesType {
			t.Errorf("got %s", got)
		}
	})
	t.Run("override applies to absent field", func(t *testing.T) {
		d := field.MustNew("a.b.c", field.Type(ir.NumberType))
		h := jsonHandler(t, `{"a": {}}`, d)
		got, err := h.ResolveFieldType(d)
		if err != nil {
			t.Fatal(err)
		}
		if got != ir.NumberType {
			t.Errorf("got %s", got)
		}
	})
	t.Run("override with sometimes present ancestor", func(t *testing.T) {
		d := field.MustNew("a.[].b.c", field.Type(ir.NumberType))
		anc := field.MustNew("a.[].b", field.Optional())
		h := jsonHandler(t, `{"a": [{"d": 4}, {"b": {"c": 5}, "d": 4}]}`, d, anc)
		got, err := h.ResolveFieldType(d)
		if err != nil {
			t.Fatal(err)
		}
		if got != ir.NumberType {
			t.Errorf("got %s", got)
		}
	})
}

func TestResolveFieldTypeAbsent(t *testing.T) {
	d := field.MustNew("b")
	h := jsonHandler(t, `{"a": 1}`, d)
	_, err := h.ResolveFieldType(d)
	var fde *FieldDoesNotExistError
	if !errors.As(err, &fde) {
		t.Fatalf("got %v, want FieldDoesNotExistError", err)
	}
	want := "cannot determine the type of the field 'b' as it is not present in the payload; provide an explicit type"
	if err.Error() != want {
		t.Errorf("message %q, want %q", err.Error(), want)
	}
}
