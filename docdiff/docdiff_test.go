package docdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/docfields/docfields/field"
	"github.com/docfields/docfields/gomap"
)

func TestSplit(t *testing.T) {
	content := []byte(`{"a": 1, "b": {"c": 2, "d": 3}}`)
	descs := []field.Descriptor{
		field.MustNew("a"),
		field.MustNew("b"),
		field.MustNew("b.c"),
	}
	cov, err := Split(content, "application/json", descs)
	if err != nil {
		t.Fatal(err)
	}
	wantUndoc := map[string]any{"b": map[string]any{"d": int64(3)}}
	if diff := cmp.Diff(wantUndoc, gomap.FromNode(cov.Undocumented)); diff != "" {
		t.Errorf("undocumented mismatch (-want +got):\n%s", diff)
	}
	wantDoc := map[string]any{"a": int64(1), "b": map[string]any{"c": int64(2)}}
	if diff := cmp.Diff(wantDoc, gomap.FromNode(cov.Documented)); diff != "" {
		t.Errorf("documented mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitFullyDocumented(t *testing.T) {
	content := []byte(`{"a": 1}`)
	cov, err := Split(content, "application/json", []field.Descriptor{field.MustNew("a")})
	if err != nil {
		t.Fatal(err)
	}
	if cov.Undocumented != nil {
		t.Errorf("undocumented = %v", gomap.FromNode(cov.Undocumented))
	}
	if diff := cmp.Diff(gomap.FromNode(cov.Full), gomap.FromNode(cov.Documented)); diff != "" {
		t.Errorf("documented should equal full (-want +got):\n%s", diff)
	}
}

func TestSplitBadContent(t *testing.T) {
	if _, err := Split([]byte(`{`), "application/json", nil); err == nil {
		t.Error("bad content split")
	}
}

func TestMergePatch(t *testing.T) {
	content := []byte(`{"a": 1, "b": 2}`)
	cov, err := Split(content, "application/json", []field.Descriptor{field.MustNew("a")})
	if err != nil {
		t.Fatal(err)
	}
	patch, err := MergePatch(cov)
	if err != nil {
		t.Fatal(err)
	}
	if string(patch) != `{"b":2}` {
		t.Errorf("patch = %s", patch)
	}
}

func TestText(t *testing.T) {
	content := []byte(`{"a": 1, "b": 2}`)
	cov, err := Split(content, "application/json", []field.Descriptor{field.MustNew("a")})
	if err != nil {
		t.Fatal(err)
	}
	text, err := Text(cov)
	if err != nil {
		t.Fatal(err)
	}
	if text == "" {
		t.Error("empty diff text for undocumented content")
	}
}
