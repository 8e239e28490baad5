package docfields

import (
	"errors"
	"testing"

	"github.com/docfields/docfields/field"
	"github.com/docfields/docfields/ir"
)

func TestVerifyOK(t *testing.T) {
	descs := []field.Descriptor{
		field.MustNew("a"),
		field.MustNew("b", field.Type(ir.NumberType)),
	}
	res, err := Verify([]byte(`{"a": "x", "b": 2}`), "application/json", descs)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Types["a"]; got != ir.StringType {
		t.Errorf("type of a = %s", got)
	}
	if got := res.Types["b"]; got != ir.NumberType {
		t.Errorf("type of b = %s", got)
	}
}

func TestVerifyUndocumentedAndMissing(t *testing.T) {
	descs := []field.Descriptor{field.MustNew("a")}
	res, err := Verify([]byte(`{"b": 1}`), "application/json", descs,
		WithScope(RequestParametersScope))
	var snipErr *SnippetError
	if !errors.As(err, &snipErr) {
		t.Fatalf("got %v, want SnippetError", err)
	}
	want := "Request parameters with the following names were not documented: [b]. " +
		"Request parameters with the following names were not found in the request: [a]"
	if got := snipErr.Error(); got != want {
		t.Errorf("message:\n got %q\nwant %q", got, want)
	}
	if len(res.Missing) != 1 || res.Missing[0].Path().String() != "a" {
		t.Errorf("missing = %v", res.Missing)
	}
	if len(res.Undocumented) != 1 || res.Undocumented[0] != "b" {
		t.Errorf("undocumented = %v", res.Undocumented)
	}
}

func TestVerifyUndocumentedOnlyMessage(t *testing.T) {
	_, err := Verify([]byte(`{"a": 1, "b": 1}`), "application/json",
		[]field.Descriptor{field.MustNew("a")})
	var snipErr *SnippetError
	if !errors.As(err, &snipErr) {
		t.Fatalf("got %v, want SnippetError", err)
	}
	want := "Fields with the following paths were not documented: [b]"
	if got := snipErr.Error(); got != want {
		t.Errorf("message %q, want %q", got, want)
	}
}

func TestVerifyMissingOnlyMessage(t *testing.T) {
	_, err := Verify([]byte(`{"a": 1}`), "application/json",
		[]field.Descriptor{field.MustNew("a"), field.MustNew("b")})
	var snipErr *SnippetError
	if !errors.As(err, &snipErr) {
		t.Fatalf("got %v, want SnippetError", err)
	}
	want := "Fields with the following paths were not found in the payload: [b]"
	if got := snipErr.Error(); got != want {
		t.Errorf("message %q, want %q", got, want)
	}
}

func TestVerifyRelaxed(t *testing.T) {
	descs := []field.Descriptor{field.MustNew("a")}
	if _, err := Verify([]byte(`{"a": 1, "b": 2}`), "application/json", descs, Relaxed()); err != nil {
		t.Errorf("relaxed verify: %v", err)
	}
	// missing fields still fail in relaxed mode
	_, err := Verify([]byte(`{"b": 2}`), "application/json",
		[]field.Descriptor{field.MustNew("a")}, Relaxed())
	var snipErr *SnippetError
	if !errors.As(err, &snipErr) {
		t.Fatalf("got %v, want SnippetError", err)
	}
	if len(snipErr.Undocumented) != 0 {
		t.Errorf("relaxed reported undocumented %v", snipErr.Undocumented)
	}
	if len(snipErr.Missing) != 1 {
		t.Errorf("missing = %v", snipErr.Missing)
	}
}

func TestVerifyIgnoredSkipsTypeResolution(t *testing.T) {
	descs := []field.Descriptor{
		field.MustNew("a"),
		field.MustNew("b", field.Ignored()),
	}
	res, err := Verify([]byte(`{"a": 1, "b": 2}`), "application/json", descs)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Types["b"]; ok {
		t.Error("ignored descriptor got a resolved type")
	}
}

func TestVerifyTypeMismatch(t *testing.T) {
	descs := []field.Descriptor{
		field.MustNew("a", field.Type(ir.StringType)),
	}
	_, err := Verify([]byte(`{"a": 1}`), "application/json", descs)
	var tdm *TypesDoNotMatchError
	if !errors.As(err, &tdm) {
		t.Fatalf("got %v, want TypesDoNotMatchError", err)
	}
	want := "the documented type of the field 'a' is String but the actual type is Number"
	if got := err.Error(); got != want {
		t.Errorf("message %q, want %q", got, want)
	}
}

func TestVerifyBadContent(t *testing.T) {
	if _, err := Verify([]byte(`nope{`), "application/json", nil); err == nil {
		t.Error("bad content verified")
	}
	if _, err := Verify([]byte(`{}`), "application/octet-stream", nil); err == nil {
		t.Error("bad media type verified")
	}
}
