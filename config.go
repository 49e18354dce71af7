package fieldmap

import "github.com/reoring/fieldmap/analysis"

// Config bundles a field's indexing options. It is a plain snapshot consumed
// by NewFieldMapper; after construction everything it described is immutable
// on the mapper except boost, which a schema merge may rewrite.
type Config struct {
	Index          IndexMode
	Store          StoreMode
	TermVector     TermVectorMode
	Boost          float64
	OmitNorms      bool
	IndexOptions   IndexOptions
	IndexAnalyzer  *analysis.Named
	SearchAnalyzer *analysis.Named
	IncludeInAll   *bool
}

// DefaultConfig returns the inherited construction defaults.
func DefaultConfig() Config {
	return Config{
		Index:        DefaultIndex,
		Store:        DefaultStore,
		TermVector:   DefaultTermVector,
		Boost:        DefaultBoost,
		OmitNorms:    DefaultOmitNorms,
		IndexOptions: DefaultIndexOptions,
	}
}
