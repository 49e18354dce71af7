package fieldmap

import (
	"fmt"
	"strconv"

	"github.com/reoring/fieldmap/analysis"
)

// FieldKind supplies the concrete behavior of a field declaration: producing
// an indexable representation from a parse context and reporting the content
// type tag used for merge checks and serialization. Kinds are composed into a
// FieldMapper rather than inherited from it.
type FieldKind interface {
	// CreateField produces the indexable representation for the current
	// document, or nil when the field is absent (a no-op, not an error).
	CreateField(fm *FieldMapper, ctx *ParseContext) (*IndexableField, error)
	// ContentType reports the kind tag.
	ContentType() string
}

// ValueTransformer is an optional FieldKind hook that maps a human-readable
// value to its indexed form before query terms are built. Kinds that do not
// implement it use the value verbatim.
type ValueTransformer interface {
	IndexedValue(value string) string
}

// BoostManager is an optional FieldKind hook for kinds that stamp boost onto
// their representations themselves; Parse then leaves the field's boost
// untouched.
type BoostManager interface {
	CustomBoost() bool
}

// QueryStringCustomizer is an optional FieldKind hook to opt into specialized
// free-text query-string handling.
type QueryStringCustomizer interface {
	// QueryStringTermQuery returns a specialized term query, or nil for none.
	QueryStringTermQuery(t Term) Query
	// UseFieldQueryWithQueryString reports whether query-string parsing
	// should route terms through FieldQuery.
	UseFieldQueryWithQueryString() bool
}

// FieldMapper is the per-field declaration: Names plus indexing
// configuration, with concrete behavior delegated to its FieldKind. All
// configuration is immutable after construction except boost, which only a
// schema merge in apply mode rewrites (under the caller's synchronization).
// Query construction is pure and safe for concurrent use.
type FieldMapper struct {
	names          Names
	kind           FieldKind
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

// NewFieldMapper constructs a declaration from names, kind and configuration.
// When the field is indexed but not analyzed and an analyzer slot is nil,
// that slot defaults to the verbatim keyword analyzer; the resolution happens
// here, once, not at query time.
func NewFieldMapper(names Names, kind FieldKind, cfg Config) *FieldMapper {
	indexAnalyzer := cfg.IndexAnalyzer
	if indexAnalyzer == nil && cfg.Index.Indexed() && !cfg.Index.Analyzed() {
		indexAnalyzer = analysis.KeywordNamed
	}
	searchAnalyzer := cfg.SearchAnalyzer
	if searchAnalyzer == nil && cfg.Index.Indexed() && !cfg.Index.Analyzed() {
		searchAnalyzer = analysis.KeywordNamed
	}
	return &FieldMapper{
		names:          names,
		kind:           kind,
		index:          cfg.Index,
		store:          cfg.Store,
		termVector:     cfg.TermVector,
		boost:          cfg.Boost,
		omitNorms:      cfg.OmitNorms,
		indexOptions:   cfg.IndexOptions,
		indexAnalyzer:  indexAnalyzer,
		searchAnalyzer: searchAnalyzer,
		includeInAll:   cfg.IncludeInAll,
	}
}

// Name returns the logical field name.
func (m *FieldMapper) Name() string { return m.names.Name() }

// Names returns the full naming value.
func (m *FieldMapper) Names() Names { return m.names }

// Kind returns the concrete field kind.
func (m *FieldMapper) Kind() FieldKind { return m.kind }

// ContentType returns the kind tag.
func (m *FieldMapper) ContentType() string { return m.kind.ContentType() }

func (m *FieldMapper) Index() IndexMode           { return m.index }
func (m *FieldMapper) Store() StoreMode           { return m.store }
func (m *FieldMapper) TermVector() TermVectorMode { return m.termVector }
func (m *FieldMapper) Boost() float64             { return m.boost }
func (m *FieldMapper) OmitNorms() bool            { return m.omitNorms }
func (m *FieldMapper) IndexOptions() IndexOptions { return m.indexOptions }

// Stored reports whether the raw value is kept retrievable.
func (m *FieldMapper) Stored() bool { return m.store == StoreYes }

// Indexed reports whether the field is searchable at all.
func (m *FieldMapper) Indexed() bool { return m.index.Indexed() }

// Analyzed reports whether values are tokenized before indexing.
func (m *FieldMapper) Analyzed() bool { return m.index.Analyzed() }

// IndexAnalyzer returns the index-time analyzer, possibly the keyword default.
func (m *FieldMapper) IndexAnalyzer() *analysis.Named { return m.indexAnalyzer }

// SearchAnalyzer returns the search-time analyzer, possibly the keyword default.
func (m *FieldMapper) SearchAnalyzer() *analysis.Named { return m.searchAnalyzer }

// SearchQuoteAnalyzer returns the analyzer for quoted phrases; it is the
// search analyzer.
func (m *FieldMapper) SearchQuoteAnalyzer() *analysis.Named { return m.searchAnalyzer }

// IncludeInAll reports the explicit include-in-all setting, or nil when
// inherited.
func (m *FieldMapper) IncludeInAll() *bool { return m.includeInAll }

// Parse produces and records this field's indexable representation for the
// document being parsed. A nil representation from the kind means the field
// is absent and Parse is a no-op. Any error from the kind is re-wrapped with
// the fully-qualified field name so callers can always identify which field
// failed.
func (m *FieldMapper) Parse(ctx *ParseContext) error {
	f, err := m.kind.CreateField(m, ctx)
	if err != nil {
		return ParseFailure(m.names.FullName(), err)
	}
	if f == nil {
		return nil
	}
	f.SetOmitNorms(m.omitNorms)
	f.SetIndexOptions(m.indexOptions)
	if !m.customBoost() {
		f.SetBoost(m.boost)
	}
	if ctx.Listener().BeforeFieldAdded(m, f, ctx) {
		ctx.Doc().Add(f)
	}
	return nil
}

func (m *FieldMapper) customBoost() bool {
	if b, ok := m.kind.(BoostManager); ok {
		return b.CustomBoost()
	}
	return false
}

// IndexedValue maps a human-readable value to its indexed form via the kind's
// optional transform; identity by default.
func (m *FieldMapper) IndexedValue(value string) string {
	if t, ok := m.kind.(ValueTransformer); ok {
		return t.IndexedValue(value)
	}
	return value
}

// FieldQuery builds an exact-match term query over the index name using the
// indexed value.
func (m *FieldMapper) FieldQuery(value string, qctx *QueryParseContext) Query {
	return TermQuery{Term: m.names.CreateIndexNameTerm(m.IndexedValue(value))}
}

// FieldFilter is the non-scoring counterpart of FieldQuery; both resolve
// against the same index-name and indexed-value pair.
func (m *FieldMapper) FieldFilter(value string, qctx *QueryParseContext) Filter {
	return TermFilter{Term: m.names.CreateIndexNameTerm(m.IndexedValue(value))}
}

// FuzzyQuery builds a fuzzy term query with the minimum similarity given as
// text. The term text goes through the indexed-value transform.
func (m *FieldMapper) FuzzyQuery(value, minSim string, prefixLength, maxExpansions int) (Query, error) {
	sim, err := strconv.ParseFloat(minSim, 64)
	if err != nil {
		return nil, &Error{
			Path:    m.names.FullName(),
			Code:    CodeInvalidValue,
			Message: fmt.Sprintf("invalid fuzzy similarity [%s]", minSim),
			Cause:   err,
		}
	}
	return FuzzyQuery{
		Term:          m.names.CreateIndexNameTerm(m.IndexedValue(value)),
		MinSimilarity: sim,
		PrefixLength:  prefixLength,
		MaxExpansions: maxExpansions,
	}, nil
}

// FuzzyQueryNumeric builds a fuzzy term query from a numeric similarity. The
// value is used verbatim, without the indexed-value transform.
func (m *FieldMapper) FuzzyQueryNumeric(value string, minSim float64, prefixLength, maxExpansions int) Query {
	return FuzzyQuery{
		Term:          m.names.CreateIndexNameTerm(value),
		MinSimilarity: minSim,
		PrefixLength:  prefixLength,
		MaxExpansions: maxExpansions,
	}
}

// PrefixQuery builds a prefix query. An empty method falls back to the
// context's default rewrite when a context is supplied.
func (m *FieldMapper) PrefixQuery(value string, method RewriteMethod, qctx *QueryParseContext) Query {
	if method == "" && qctx != nil {
		method = qctx.DefaultRewrite
	}
	return PrefixQuery{
		Prefix:  m.names.CreateIndexNameTerm(m.IndexedValue(value)),
		Rewrite: method,
	}
}

// PrefixFilter is the non-scoring prefix match.
func (m *FieldMapper) PrefixFilter(value string, qctx *QueryParseContext) Filter {
	return PrefixFilter{Prefix: m.names.CreateIndexNameTerm(m.IndexedValue(value))}
}

// RangeQuery builds a range query over the index name. Nil bounds stay
// unbounded; non-nil bounds go through the indexed-value transform.
func (m *FieldMapper) RangeQuery(lower, upper *string, includeLower, includeUpper bool, qctx *QueryParseContext) Query {
	return RangeQuery{
		Field:        m.names.IndexName(),
		Lower:        m.indexedBound(lower),
		Upper:        m.indexedBound(upper),
		IncludeLower: includeLower,
		IncludeUpper: includeUpper,
	}
}

// RangeFilter is the non-scoring counterpart of RangeQuery.
func (m *FieldMapper) RangeFilter(lower, upper *string, includeLower, includeUpper bool, qctx *QueryParseContext) Filter {
	return RangeFilter{
		Field:        m.names.IndexName(),
		Lower:        m.indexedBound(lower),
		Upper:        m.indexedBound(upper),
		IncludeLower: includeLower,
		IncludeUpper: includeUpper,
	}
}

func (m *FieldMapper) indexedBound(bound *string) *string {
	if bound == nil {
		return nil
	}
	v := m.IndexedValue(*bound)
	return &v
}

// QueryStringTermQuery returns the kind's specialized term query for
// query-string parsing, or nil when there is none.
func (m *FieldMapper) QueryStringTermQuery(t Term) Query {
	if c, ok := m.kind.(QueryStringCustomizer); ok {
		return c.QueryStringTermQuery(t)
	}
	return nil
}

// UseFieldQueryWithQueryString reports whether query-string parsing should
// route terms through FieldQuery; false unless the kind opts in.
func (m *FieldMapper) UseFieldQueryWithQueryString() bool {
	if c, ok := m.kind.(QueryStringCustomizer); ok {
		return c.UseFieldQueryWithQueryString()
	}
	return false
}
