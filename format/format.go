// Package format identifies the payload formats the toolkit understands and
// maps declared media types onto them.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	XMLFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case XMLFormat:
		return "xml"
	case YAMLFormat:
		return "yaml"
	default:
		return "<unknown format>"
	}
}

// MediaType returns the canonical media type for f.
func (f Format) MediaType() string {
	switch f {
	case JSONFormat:
		return "application/json"
	case XMLFormat:
		return "application/xml"
	case YAMLFormat:
		return "application/yaml"
	default:
		return ""
	}
}

// Suffix returns the file extension for f.
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case XMLFormat:
		return ".xml"
	default:
		return ".yaml"
	}
}

func ParseFormat(v string) (Format, error) {
	switch strings.ToLower(v) {
	case "json", "j":
		return JSONFormat, nil
	case "xml", "x":
		return XMLFormat, nil
	case "yaml", "yml", "y":
		return YAMLFormat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
	}
}

// ForMediaType resolves a declared media type, including structured-syntax
// suffixes such as application/hal+json, to a Format. Media type parameters
// are ignored.
func ForMediaType(mediaType string) (Format, error) {
	mt := mediaType
	if i := strings.IndexByte(mt, ';'); i != -1 {
		mt = mt[:i]
	}
	mt = strings.ToLower(strings.TrimSpace(mt))
	switch mt {
	case "application/json", "text/json":
		return JSONFormat, nil
	case "application/xml", "text/xml":
		return XMLFormat, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return YAMLFormat, nil
	}
	switch {
	case strings.HasSuffix(mt, "+json"):
		return JSONFormat, nil
	case strings.HasSuffix(mt, "+xml"):
		return XMLFormat, nil
	case strings.HasSuffix(mt, "+yaml"):
		return YAMLFormat, nil
	}
	return 0, fmt.Errorf("%w: unsupported media type %q", ErrBadFormat, mediaType)
}

// ForFile guesses a format from a file name extension.
func ForFile(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return JSONFormat, nil
	case ".xml":
		return XMLFormat, nil
	case ".yaml", ".yml":
		return YAMLFormat, nil
	default:
		return 0, fmt.Errorf("%w: cannot tell format of %q", ErrBadFormat, name)
	}
}
