// Package docfields reconciles structured payloads (JSON, XML, YAML)
// against a declared set of field descriptors.
//
// Given raw payload bytes, a declared media type, and an ordered list of
// field.Descriptor values, the engine reports which described fields are
// missing from the payload, which payload fields are undocumented, and the
// resolved type of every described field. It is the core that documentation
// snippet generators build on: they supply the descriptors and render the
// engine's output; this package never performs I/O or formats snippets.
//
// The usual entry point is Verify:
//
//	res, err := docfields.Verify(body, "application/json", descriptors)
//
// which fails with a *SnippetError enumerating undocumented and missing
// fields, or returns the resolved type of each described field. Lower-level
// access (locating values, extracting subsections, pruning documented
// content) is available through NewHandler.
package docfields
