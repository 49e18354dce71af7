package fieldmap

// Term pairs an index name with the (already transformed) text matched
// against the index.
type Term struct {
	Field string
	Text  string
}

// Query is a structured, engine-agnostic search request derived from a raw
// user value against a field declaration. The storage engine consuming these
// values is out of scope here.
type Query interface{ isQuery() }

// Filter is the non-scoring counterpart of Query.
type Filter interface{ isFilter() }

// RewriteMethod names a multi-term query rewrite strategy. The zero value
// means "engine default".
type RewriteMethod string

const (
	RewriteConstantScoreAuto RewriteMethod = "constant_score_auto"
	RewriteScoringBoolean    RewriteMethod = "scoring_boolean"
	RewriteTopTermsBoost     RewriteMethod = "top_terms_boost"
)

// TermQuery matches documents containing the exact term.
type TermQuery struct {
	Term Term
}

// TermFilter is the non-scoring exact-term match.
type TermFilter struct {
	Term Term
}

// FuzzyQuery matches terms within MinSimilarity of the given term.
type FuzzyQuery struct {
	Term          Term
	MinSimilarity float64
	PrefixLength  int
	MaxExpansions int
}

// PrefixQuery matches terms starting with the given prefix.
type PrefixQuery struct {
	Prefix  Term
	Rewrite RewriteMethod
}

// PrefixFilter is the non-scoring prefix match.
type PrefixFilter struct {
	Prefix Term
}

// RangeQuery matches terms between Lower and Upper in index order. A nil
// bound leaves that side unbounded; inclusivity is toggleable per side.
type RangeQuery struct {
	Field        string
	Lower        *string
	Upper        *string
	IncludeLower bool
	IncludeUpper bool
}

// RangeFilter is the non-scoring range match.
type RangeFilter struct {
	Field        string
	Lower        *string
	Upper        *string
	IncludeLower bool
	IncludeUpper bool
}

func (TermQuery) isQuery()    {}
func (FuzzyQuery) isQuery()   {}
func (PrefixQuery) isQuery()  {}
func (RangeQuery) isQuery()   {}
func (TermFilter) isFilter()  {}
func (PrefixFilter) isFilter() {}
func (RangeFilter) isFilter() {}

// QueryParseContext carries ambient query-construction settings. Every query
// operation accepts a nil context; absence only disables context-sensitive
// behavior, it never fails.
type QueryParseContext struct {
	// Index is the name of the index the query targets, for diagnostics.
	Index string
	// DefaultRewrite is applied to multi-term queries that do not carry an
	// explicit rewrite override.
	DefaultRewrite RewriteMethod
}
