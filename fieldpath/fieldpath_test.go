package fieldpath

import (
	"errors"
	"testing"
)

type parseTest struct {
	in  string
	out string // canonical form, "" means in is already canonical
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `a`},
		{in: `a.b`},
		{in: `a.b.c`},
		{in: `a[]`},
		{in: `a[].b`},
		{in: `a.[].b`, out: `a[].b`},
		{in: `[]`},
		{in: `[].a`},
		{in: `[][]`},
		{in: `a[][].b`},
		{in: `['a.b']`},
		{in: `a['b.c'].d`},
		{in: `a["b'c"]`, out: `a["b'c"]`},
		{in: `a['b[]']`},
		{in: `@id`},
		{in: `#text`},
	}
	for _, pt := range pts {
		p, err := Parse(pt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", pt.in, err)
			continue
		}
		want := pt.out
		if want == "" {
			want = pt.in
		}
		if got := p.String(); got != want {
			t.Errorf("Parse(%q).String() = %q, want %q", pt.in, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		".",
		"a.",
		".a",
		"a..b",
		"a]",
		"a[",
		"a[b]",
		"a['b'",
		"a['b'd",
		"a['']",
		"a[''",
		"a[]b",
		"a['b']c",
	} {
		if _, err := Parse(in); !errors.Is(err, ErrPath) {
			t.Errorf("Parse(%q) = %v, want ErrPath", in, err)
		}
	}
}

func TestEqualNormalized(t *testing.T) {
	a := MustParse("a.[].b")
	b := MustParse("a[].b")
	if !a.Equal(b) {
		t.Errorf("%s != %s", a, b)
	}
	if a.Equal(MustParse("a[].c")) {
		t.Errorf("a[].b == a[].c")
	}
	if !MustParse("['a.b']").Equal(New([]Segment{{Key: "a.b"}})) {
		t.Errorf("quoted key not equal to literal segment")
	}
}

func TestAncestorOf(t *testing.T) {
	tests := []struct {
		p, q string
		want bool
	}{
		{"a", "a.b", true},
		{"a", "a[].b", true},
		{"a[]", "a[].b.c", true},
		{"a", "a", false},
		{"a.b", "a", false},
		{"a", "ab", false},
		{"a[]", "a.b", false},
	}
	for _, tc := range tests {
		p, q := MustParse(tc.p), MustParse(tc.q)
		if got := p.AncestorOf(q); got != tc.want {
			t.Errorf("%s.AncestorOf(%s) = %v, want %v", tc.p, tc.q, got, tc.want)
		}
	}
}

func TestHasWildcard(t *testing.T) {
	if MustParse("a.b").HasWildcard() {
		t.Error("a.b has no wildcard")
	}
	if !MustParse("a[].b").HasWildcard() {
		t.Error("a[].b has a wildcard")
	}
}

func TestAppend(t *testing.T) {
	p := MustParse("a")
	q := p.Append(Segment{Wildcard: true}).Append(Segment{Key: "b"})
	if got := q.String(); got != "a[].b" {
		t.Errorf("Append: got %q", got)
	}
	if got := p.String(); got != "a" {
		t.Errorf("Append mutated receiver: %q", got)
	}
}

func TestQuoteKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a", "a"},
		{"a.b", "['a.b']"},
		{"a[]", "['a[]']"},
		{"a'b", `["a'b"]`},
		{"", "['']"},
	}
	for _, tc := range tests {
		if got := QuoteKey(tc.in); got != tc.want {
			t.Errorf("QuoteKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
