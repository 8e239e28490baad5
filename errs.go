package docfields

import (
	"fmt"
	"strings"

	"github.com/docfields/docfields/field"
	"github.com/docfields/docfields/fieldpath"
	"github.com/docfields/docfields/ir"
)

// Scope supplies the wording used when reporting reconciliation failures,
// so the same engine can verify payload fields, request parameters, or
// multipart request parts.
type Scope struct {
	// Subject opens the sentence, eg "Fields".
	Subject string
	// Noun is what the listed entries are, eg "paths" or "names".
	Noun string
	// Location is where the entries were looked for, eg "payload".
	Location string
}

var (
	FieldsScope            = Scope{Subject: "Fields", Noun: "paths", Location: "payload"}
	RequestParametersScope = Scope{Subject: "Request parameters", Noun: "names", Location: "request"}
	RequestPartsScope      = Scope{Subject: "Request parts", Noun: "names", Location: "request"}
)

// SnippetError reports the undocumented and missing entries found by Verify.
type SnippetError struct {
	Scope        Scope
	Undocumented []string
	Missing      field.List
}

func (e *SnippetError) Error() string {
	var parts []string
	if len(e.Undocumented) > 0 {
		parts = append(parts, fmt.Sprintf(
			"%s with the following %s were not documented: [%s]",
			e.Scope.Subject, e.Scope.Noun, strings.Join(e.Undocumented, ", ")))
	}
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf(
			"%s with the following %s were not found in the %s: [%s]",
			e.Scope.Subject, e.Scope.Noun, e.Scope.Location,
			strings.Join(e.Missing.Paths(), ", ")))
	}
	return strings.Join(parts, ". ")
}

// TypesDoNotMatchError reports a descriptor whose declared type contradicts
// the type found in the payload.
type TypesDoNotMatchError struct {
	Descriptor field.Descriptor
	Actual     ir.Type
}

func (e *TypesDoNotMatchError) Error() string {
	t, _ := e.Descriptor.Type()
	return fmt.Sprintf("the documented type of the field '%s' is %s but the actual type is %s",
		e.Descriptor.Path(), t, e.Actual)
}

// FieldDoesNotExistError reports a type query for a path with no occurrence
// in the payload.
type FieldDoesNotExistError struct {
	Path fieldpath.Path
}

func (e *FieldDoesNotExistError) Error() string {
	return fmt.Sprintf(
		"cannot determine the type of the field '%s' as it is not present in the payload; provide an explicit type",
		e.Path)
}
