package fieldmap

import "strings"

// Names resolves a field's logical name into the identifiers used for
// indexing, lookup and full dotted-path addressing within a nested schema.
// Computed once at build time from a PathContext; immutable afterward.
type Names struct {
	name           string
	indexName      string
	indexNameClean string
	fullName       string
	sourcePath     string
}

// NewNames assembles a Names value. Empty indexName, indexNameClean or
// fullName default to the logical name.
func NewNames(name, indexName, indexNameClean, fullName, sourcePath string) Names {
	if indexName == "" {
		indexName = name
	}
	if indexNameClean == "" {
		indexNameClean = name
	}
	if fullName == "" {
		fullName = name
	}
	return Names{
		name:           name,
		indexName:      indexName,
		indexNameClean: indexNameClean,
		fullName:       fullName,
		sourcePath:     sourcePath,
	}
}

// Name returns the logical field name.
func (n Names) Name() string { return n.name }

// IndexName returns the name terms are indexed under, resolved against the
// nesting path.
func (n Names) IndexName() string { return n.indexName }

// IndexNameClean returns the index name without any path prefix applied.
func (n Names) IndexNameClean() string { return n.indexNameClean }

// FullName returns the fully dotted root-to-leaf path.
func (n Names) FullName() string { return n.fullName }

// SourcePath returns the source-storage path the field was discovered under.
func (n Names) SourcePath() string { return n.sourcePath }

// CreateIndexNameTerm pairs the index name with an already-transformed value.
func (n Names) CreateIndexNameTerm(value string) Term {
	return Term{Field: n.indexName, Text: value}
}

// PathContext renders field names relative to the current nesting path. It is
// consumed at build time only; the same Builder may be finalized against
// different contexts.
type PathContext interface {
	// PathAsText renders name relative to the current path per the context's
	// path type.
	PathAsText(name string) string
	// FullPathAsText always renders the fully dotted root-to-leaf path.
	FullPathAsText(name string) string
	// SourcePath reports the source-storage path at the current position.
	SourcePath() string
}

// PathType selects how ContentPath renders index names.
type PathType int

const (
	PathTypeFull     PathType = iota // Index names carry the full dotted prefix.
	PathTypeJustName                 // Index names are the bare field name.
)

// ContentPath is the default PathContext: a mutable stack of object names
// maintained by a document or mapping walk.
type ContentPath struct {
	segments   []string
	pathType   PathType
	sourcePath string
}

// NewContentPath returns an empty root-level path with PathTypeFull.
func NewContentPath() *ContentPath { return &ContentPath{} }

// Push descends into the named object.
func (p *ContentPath) Push(name string) { p.segments = append(p.segments, name) }

// Pop ascends one level. Popping the root is a no-op.
func (p *ContentPath) Pop() {
	if len(p.segments) > 0 {
		p.segments = p.segments[:len(p.segments)-1]
	}
}

// SetPathType switches between full and just-name index name rendering.
func (p *ContentPath) SetPathType(t PathType) { p.pathType = t }

// SetSourcePath records the source-storage path for fields built below here.
func (p *ContentPath) SetSourcePath(sp string) { p.sourcePath = sp }

func (p *ContentPath) PathAsText(name string) string {
	if p.pathType == PathTypeJustName {
		return name
	}
	return p.FullPathAsText(name)
}

func (p *ContentPath) FullPathAsText(name string) string {
	if len(p.segments) == 0 {
		return name
	}
	return strings.Join(p.segments, ".") + "." + name
}

func (p *ContentPath) SourcePath() string { return p.sourcePath }
