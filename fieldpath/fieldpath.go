// Package fieldpath implements the dotted-bracket path expressions used to
// describe payload fields.
//
// A path is a sequence of segments. Each segment is either a literal object
// key or the [] wildcard, which applies to every element of the array at
// that position:
//
//	a.b        the key b inside the object a
//	a[].b      the key b inside every element of the array a
//	a.[].b     same as a[].b
//	[].a       the key a inside every element of the root array
//	a['b.c']   keys containing path syntax are bracket-quoted
//
// Malformed syntax is rejected when a path is parsed, never when it is used.
package fieldpath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPath reports malformed field path syntax.
var ErrPath = errors.New("invalid field path")

// Segment is one step of a Path: a literal object key, or the [] wildcard
// when Wildcard is set.
type Segment struct {
	Key      string
	Wildcard bool
}

func (s Segment) Equal(o Segment) bool {
	return s.Wildcard == o.Wildcard && s.Key == o.Key
}

// Path is an immutable, ordered sequence of segments.
type Path struct {
	segs []Segment
}

// New builds a Path from segments. The slice is copied.
func New(segs []Segment) Path {
	cp := make([]Segment, len(segs))
	copy(cp, segs)
	return Path{segs: cp}
}

func Parse(s string) (Path, error) {
	if s == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrPath)
	}
	var segs []Segment
	i, n := 0, len(s)
	bareKeyOK := true
	for i < n {
		switch c := s[i]; {
		case c == '.':
			if bareKeyOK {
				return Path{}, fmt.Errorf("%w: %q: unexpected '.' at %d", ErrPath, s, i)
			}
			bareKeyOK = true
			i++
		case c == '[':
			if i+1 < n && s[i+1] == ']' {
				segs = append(segs, Segment{Wildcard: true})
				i += 2
				bareKeyOK = false
				continue
			}
			if i+1 < n && (s[i+1] == '\'' || s[i+1] == '"') {
				q := s[i+1]
				j := strings.IndexByte(s[i+2:], q)
				if j == -1 {
					return Path{}, fmt.Errorf("%w: %q: unterminated quote at %d", ErrPath, s, i+1)
				}
				key := s[i+2 : i+2+j]
				k := i + 2 + j + 1
				if k >= n || s[k] != ']' {
					return Path{}, fmt.Errorf("%w: %q: expected ']' at %d", ErrPath, s, k)
				}
				if key == "" {
					return Path{}, fmt.Errorf("%w: %q: empty key at %d", ErrPath, s, i)
				}
				segs = append(segs, Segment{Key: key})
				i = k + 1
				bareKeyOK = false
				continue
			}
			return Path{}, fmt.Errorf("%w: %q: expected ']' or quoted key after '[' at %d", ErrPath, s, i)
		case c == ']':
			return Path{}, fmt.Errorf("%w: %q: unexpected ']' at %d", ErrPath, s, i)
		default:
			if !bareKeyOK {
				return Path{}, fmt.Errorf("%w: %q: expected '.' or '[' at %d", ErrPath, s, i)
			}
			j := i
			for j < n && s[j] != '.' && s[j] != '[' && s[j] != ']' {
				j++
			}
			segs = append(segs, Segment{Key: s[i:j]})
			i = j
			bareKeyOK = false
		}
	}
	if bareKeyOK {
		return Path{}, fmt.Errorf("%w: %q: trailing '.'", ErrPath, s)
	}
	return Path{segs: segs}, nil
}

// MustParse is Parse for paths known to be well-formed; it panics otherwise.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Segments returns the path's segments. The result must not be modified.
func (p Path) Segments() []Segment { return p.segs }

func (p Path) Len() int { return len(p.segs) }

// Append returns a new path with seg added at the end.
func (p Path) Append(seg Segment) Path {
	segs := make([]Segment, len(p.segs)+1)
	copy(segs, p.segs)
	segs[len(p.segs)] = seg
	return Path{segs: segs}
}

// String renders the path in canonical form: wildcards as [], one spelling
// per path, so a.[].b and a[].b print identically.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p.segs {
		if seg.Wildcard {
			b.WriteString("[]")
			continue
		}
		q := QuoteKey(seg.Key)
		if i > 0 && q[0] != '[' {
			b.WriteByte('.')
		}
		b.WriteString(q)
	}
	return b.String()
}

func (p Path) Equal(q Path) bool {
	if len(p.segs) != len(q.segs) {
		return false
	}
	for i := range p.segs {
		if !p.segs[i].Equal(q.segs[i]) {
			return false
		}
	}
	return true
}

// AncestorOf reports whether p is a proper segment-wise prefix of q.
func (p Path) AncestorOf(q Path) bool {
	if len(p.segs) >= len(q.segs) {
		return false
	}
	for i := range p.segs {
		if !p.segs[i].Equal(q.segs[i]) {
			return false
		}
	}
	return true
}

// HasWildcard reports whether any segment of p is the [] wildcard.
func (p Path) HasWildcard() bool {
	for _, seg := range p.segs {
		if seg.Wildcard {
			return true
		}
	}
	return false
}

// QuoteKey renders an object key as a path segment, bracket-quoting it when
// it contains path syntax.
func QuoteKey(k string) string {
	if k != "" && !strings.ContainsAny(k, ".[]'\"") {
		return k
	}
	if !strings.Contains(k, "'") {
		return "['" + k + "']"
	}
	return `["` + k + `"]`
}
