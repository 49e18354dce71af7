package fieldmap

// Package fieldmap provides:
//
// - Named, typed field declarations for a document-index schema (Builder -> FieldMapper)
// - Construction-time analyzer resolution (verbatim keyword default for exact-match fields)
// - Schema-merge reconciliation with accumulated conflict diagnostics (simulate/apply)
// - Engine-agnostic query construction (term, prefix, fuzzy, range) from raw user values
// - A structured serialization envelope via xcontent.Writer
//
// Design policy:
// - Keep the declaration lifecycle in the root package; concrete field kinds
//   live under kinds/, analyzers under analysis/, value encodings under codec/,
//   mapping-definition parsing under mapdef/.
// - Field behavior is composed (FieldKind plus optional capability interfaces),
//   never inherited.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	b := fieldmap.NewBuilder("title", kinds.String()).Boost(2.0)
//	fm := b.Build(fieldmap.NewContentPath())
//
//	q := fm.FieldQuery("hello", nil)
//
//	mc := fieldmap.NewMergeContext(fieldmap.MergeFlags{Simulate: true})
//	fm.Merge(incoming, mc)
