package fieldmap

import "fmt"

// IndexMode controls whether and how a field value becomes searchable.
type IndexMode int

const (
	IndexNo          IndexMode = iota // Value is not searchable at all.
	IndexNotAnalyzed                  // Indexed verbatim as a single exact term.
	IndexAnalyzed                     // Run through the index analyzer before indexing.
)

// Indexed reports whether values of this mode reach the index.
func (m IndexMode) Indexed() bool { return m != IndexNo }

// Analyzed reports whether values of this mode are tokenized before indexing.
func (m IndexMode) Analyzed() bool { return m == IndexAnalyzed }

func (m IndexMode) String() string {
	switch m {
	case IndexNo:
		return "no"
	case IndexNotAnalyzed:
		return "not_analyzed"
	case IndexAnalyzed:
		return "analyzed"
	}
	panic(fmt.Sprintf("fieldmap: unknown IndexMode (%d)", int(m)))
}

// StoreMode controls whether the raw field value is kept retrievable.
type StoreMode int

const (
	StoreNo StoreMode = iota
	StoreYes
)

func (m StoreMode) String() string {
	if m == StoreYes {
		return "yes"
	}
	return "no"
}

// TermVectorMode selects which per-document term metadata is recorded.
type TermVectorMode int

const (
	TermVectorNo TermVectorMode = iota
	TermVectorYes
	TermVectorWithOffsets
	TermVectorWithPositions
	TermVectorWithPositionsOffsets
)

func (m TermVectorMode) String() string {
	switch m {
	case TermVectorNo:
		return "no"
	case TermVectorYes:
		return "yes"
	case TermVectorWithOffsets:
		return "with_offsets"
	case TermVectorWithPositions:
		return "with_positions"
	case TermVectorWithPositionsOffsets:
		return "with_positions_offsets"
	}
	panic(fmt.Sprintf("fieldmap: unknown TermVectorMode (%d)", int(m)))
}

// IndexOptions selects the granularity of positional information retained per
// indexed term.
type IndexOptions int

const (
	IndexOptionsDocs IndexOptions = iota
	IndexOptionsDocsAndFreqs
	IndexOptionsDocsAndFreqsAndPositions
)

// String renders the serialized form. An IndexOptions value outside the
// declared set is a programming error and panics rather than being written out
// silently.
func (o IndexOptions) String() string {
	switch o {
	case IndexOptionsDocs:
		return "docs"
	case IndexOptionsDocsAndFreqs:
		return "freqs"
	case IndexOptionsDocsAndFreqsAndPositions:
		return "positions"
	}
	panic(fmt.Sprintf("fieldmap: unknown IndexOptions (%d)", int(o)))
}

// Construction defaults inherited by every Builder.
const (
	DefaultIndex        = IndexAnalyzed
	DefaultStore        = StoreNo
	DefaultTermVector   = TermVectorNo
	DefaultBoost        = 1.0
	DefaultOmitNorms    = false
	DefaultIndexOptions = IndexOptionsDocsAndFreqsAndPositions
)
