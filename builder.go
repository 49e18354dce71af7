package fieldmap

import "github.com/reoring/fieldmap/analysis"

// Builder accumulates field configuration through chained setters and
// finalizes it into an immutable FieldMapper with Build. Setters record
// values without validation; that is the caller's responsibility. Name
// resolution happens at Build time against a caller-supplied PathContext, so
// one builder may be reused across nesting contexts.
type Builder struct {
	name           string
	kind           FieldKind
	indexName      string
	index          IndexMode
	store          StoreMode
	termVector     TermVectorMode
	boost          float64
	omitNorms      bool
	indexOptions   IndexOptions
	indexAnalyzer  *analysis.Named
	searchAnalyzer *analysis.Named
	includeInAll   *bool
}

// NewBuilder starts a builder for the named field with inherited defaults.
func NewBuilder(name string, kind FieldKind) *Builder {
	return &Builder{
		name:         name,
		kind:         kind,
		index:        DefaultIndex,
		store:        DefaultStore,
		termVector:   DefaultTermVector,
		boost:        DefaultBoost,
		omitNorms:    DefaultOmitNorms,
		indexOptions: DefaultIndexOptions,
	}
}

// Index sets the index mode.
func (b *Builder) Index(m IndexMode) *Builder {
	b.index = m
	return b
}

// Store sets the store mode.
func (b *Builder) Store(m StoreMode) *Builder {
	b.store = m
	return b
}

// TermVector sets the term-vector mode.
func (b *Builder) TermVector(m TermVectorMode) *Builder {
	b.termVector = m
	return b
}

// Boost sets the boost.
func (b *Builder) Boost(boost float64) *Builder {
	b.boost = boost
	return b
}

// OmitNorms sets the omit-norms flag.
func (b *Builder) OmitNorms(omit bool) *Builder {
	b.omitNorms = omit
	return b
}

// IndexOptions sets the index-options granularity.
func (b *Builder) IndexOptions(o IndexOptions) *Builder {
	b.indexOptions = o
	return b
}

// IndexName overrides the index name; by default the logical name is used.
func (b *Builder) IndexName(indexName string) *Builder {
	b.indexName = indexName
	return b
}

// IndexAnalyzer sets the index-time analyzer. When no search-time analyzer
// has been set yet it is seeded with the same value, so a single analyzer
// setting covers both roles; setting the search analyzer first prevents the
// seed.
func (b *Builder) IndexAnalyzer(a *analysis.Named) *Builder {
	b.indexAnalyzer = a
	if b.searchAnalyzer == nil {
		b.searchAnalyzer = a
	}
	return b
}

// SearchAnalyzer sets the search-time analyzer.
func (b *Builder) SearchAnalyzer(a *analysis.Named) *Builder {
	b.searchAnalyzer = a
	return b
}

// IncludeInAll records an explicit include-in-all setting.
func (b *Builder) IncludeInAll(include bool) *Builder {
	b.includeInAll = &include
	return b
}

// BuildNames resolves the field's names against path.
func (b *Builder) BuildNames(path PathContext) Names {
	clean := b.indexName
	if clean == "" {
		clean = b.name
	}
	return NewNames(b.name, b.buildIndexName(path), clean, b.buildFullName(path), path.SourcePath())
}

func (b *Builder) buildIndexName(path PathContext) string {
	actual := b.indexName
	if actual == "" {
		actual = b.name
	}
	return path.PathAsText(actual)
}

func (b *Builder) buildFullName(path PathContext) string {
	return path.FullPathAsText(b.name)
}

// Build finalizes the accumulated configuration into a FieldMapper, resolving
// names against path.
func (b *Builder) Build(path PathContext) *FieldMapper {
	return NewFieldMapper(b.BuildNames(path), b.kind, Config{
		Index:          b.index,
		Store:          b.store,
		TermVector:     b.termVector,
		Boost:          b.boost,
		OmitNorms:      b.omitNorms,
		IndexOptions:   b.indexOptions,
		IndexAnalyzer:  b.indexAnalyzer,
		SearchAnalyzer: b.searchAnalyzer,
		IncludeInAll:   b.includeInAll,
	})
}
