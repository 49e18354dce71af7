// Package mapdef reads textual mapping definitions into field declarations.
// A definition is an object with a "properties" map keyed by field name:
//
//	{
//	  "properties": {
//	    "title": { "type": "string", "analyzer": "standard", "boost": 2.0 },
//	    "views": { "type": "long", "index": "not_analyzed", "store": "yes" }
//	  }
//	}
//
// The same documents are accepted as YAML via ParseYAML.
package mapdef

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"

	fieldmap "github.com/reoring/fieldmap"
	"github.com/reoring/fieldmap/analysis"
	"github.com/reoring/fieldmap/kinds"
)

// Mapping is a named set of field declarations parsed from one definition.
type Mapping map[string]*fieldmap.FieldMapper

// SortedNames returns the field names in lexical order, for deterministic
// iteration.
func (m Mapping) SortedNames() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse reads a JSON mapping definition. Analyzer names are resolved through
// reg; a nil registry resolves every name to an unbound analyzer.
func Parse(data []byte, reg *analysis.Registry) (Mapping, error) {
	var doc struct {
		Properties map[string]map[string]any `json:"properties"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &fieldmap.Error{
			Path:    "",
			Code:    fieldmap.CodeInvalidValue,
			Message: "invalid mapping definition",
			Cause:   err,
		}
	}
	return fromProperties(doc.Properties, reg)
}

func fromProperties(props map[string]map[string]any, reg *analysis.Registry) (Mapping, error) {
	if reg == nil {
		reg = analysis.NewRegistry()
	}
	mapping := make(Mapping, len(props))
	for _, name := range sortedKeys(props) {
		fm, err := parseField(name, props[name], reg)
		if err != nil {
			return nil, err
		}
		mapping[name] = fm
	}
	return mapping, nil
}

func sortedKeys(props map[string]map[string]any) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseField(name string, props map[string]any, reg *analysis.Registry) (*fieldmap.FieldMapper, error) {
	kind, err := kindForType(name, props)
	if err != nil {
		return nil, err
	}
	b := fieldmap.NewBuilder(name, kind)
	if v, ok := props["index"]; ok {
		m, err := ParseIndexMode(str(v))
		if err != nil {
			return nil, fieldError(name, err)
		}
		b.Index(m)
	}
	if v, ok := props["store"]; ok {
		m, err := ParseStoreMode(v)
		if err != nil {
			return nil, fieldError(name, err)
		}
		b.Store(m)
	}
	if v, ok := props["term_vector"]; ok {
		m, err := ParseTermVectorMode(str(v))
		if err != nil {
			return nil, fieldError(name, err)
		}
		b.TermVector(m)
	}
	if v, ok := props["index_options"]; ok {
		o, err := ParseIndexOptions(str(v))
		if err != nil {
			return nil, fieldError(name, err)
		}
		b.IndexOptions(o)
	}
	if v, ok := props["boost"]; ok {
		f, err := floatValue(v)
		if err != nil {
			return nil, fieldError(name, err)
		}
		b.Boost(f)
	}
	if v, ok := props["omit_norms"]; ok {
		bv, err := boolValue(v)
		if err != nil {
			return nil, fieldError(name, err)
		}
		b.OmitNorms(bv)
	}
	if v, ok := props["index_name"]; ok {
		b.IndexName(str(v))
	}
	// "analyzer" seeds both roles; explicit index/search settings take over
	// afterward regardless of key order in the document.
	if v, ok := props["analyzer"]; ok {
		b.IndexAnalyzer(reg.Resolve(str(v)))
	}
	if v, ok := props["index_analyzer"]; ok {
		b.IndexAnalyzer(reg.Resolve(str(v)))
	}
	if v, ok := props["search_analyzer"]; ok {
		b.SearchAnalyzer(reg.Resolve(str(v)))
	}
	if v, ok := props["include_in_all"]; ok {
		bv, err := boolValue(v)
		if err != nil {
			return nil, fieldError(name, err)
		}
		b.IncludeInAll(bv)
	}
	return b.Build(fieldmap.NewContentPath()), nil
}

func kindForType(name string, props map[string]any) (fieldmap.FieldKind, error) {
	typ := "string"
	if v, ok := props["type"]; ok {
		typ = str(v)
	}
	switch typ {
	case "string":
		return kinds.String(), nil
	case "long", "integer":
		return kinds.Long(), nil
	case "double", "float":
		return kinds.Double(), nil
	case "boolean":
		return kinds.Bool(), nil
	case "date":
		return kinds.Date(), nil
	default:
		return nil, &fieldmap.Error{
			Path:    name,
			Code:    fieldmap.CodeUnknownType,
			Message: fmt.Sprintf("unknown field type [%s]", typ),
		}
	}
}

func fieldError(name string, err error) error {
	if fe, ok := fieldmap.AsError(err); ok {
		fe.Path = name
		return fe
	}
	return &fieldmap.Error{Path: name, Code: fieldmap.CodeInvalidValue, Message: "invalid field setting", Cause: err}
}

// ParseIndexMode maps the textual index mode.
func ParseIndexMode(s string) (fieldmap.IndexMode, error) {
	switch s {
	case "no":
		return fieldmap.IndexNo, nil
	case "not_analyzed":
		return fieldmap.IndexNotAnalyzed, nil
	case "analyzed":
		return fieldmap.IndexAnalyzed, nil
	default:
		return 0, &fieldmap.Error{Code: fieldmap.CodeUnknownMode, Message: fmt.Sprintf("unknown index mode [%s]", s)}
	}
}

// ParseStoreMode maps the textual store mode; booleans are accepted too.
func ParseStoreMode(v any) (fieldmap.StoreMode, error) {
	switch s := v.(type) {
	case bool:
		if s {
			return fieldmap.StoreYes, nil
		}
		return fieldmap.StoreNo, nil
	case string:
		switch s {
		case "no":
			return fieldmap.StoreNo, nil
		case "yes":
			return fieldmap.StoreYes, nil
		}
	}
	return 0, &fieldmap.Error{Code: fieldmap.CodeUnknownMode, Message: fmt.Sprintf("unknown store mode [%v]", v)}
}

// ParseTermVectorMode maps the textual term-vector mode.
func ParseTermVectorMode(s string) (fieldmap.TermVectorMode, error) {
	switch s {
	case "no":
		return fieldmap.TermVectorNo, nil
	case "yes":
		return fieldmap.TermVectorYes, nil
	case "with_offsets":
		return fieldmap.TermVectorWithOffsets, nil
	case "with_positions":
		return fieldmap.TermVectorWithPositions, nil
	case "with_positions_offsets":
		return fieldmap.TermVectorWithPositionsOffsets, nil
	default:
		return 0, &fieldmap.Error{Code: fieldmap.CodeUnknownMode, Message: fmt.Sprintf("unknown term_vector mode [%s]", s)}
	}
}

// ParseIndexOptions maps the textual index-options granularity.
func ParseIndexOptions(s string) (fieldmap.IndexOptions, error) {
	switch s {
	case "docs":
		return fieldmap.IndexOptionsDocs, nil
	case "freqs":
		return fieldmap.IndexOptionsDocsAndFreqs, nil
	case "positions":
		return fieldmap.IndexOptionsDocsAndFreqsAndPositions, nil
	default:
		return 0, &fieldmap.Error{Code: fieldmap.CodeUnknownMode, Message: fmt.Sprintf("unknown index_options [%s]", s)}
	}
}

func str(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func floatValue(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

func boolValue(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("expected boolean, got %T", v)
}

// MergeMappings merges incoming into existing field by field, accumulating
// every conflict in one pass. Fields are visited in lexical order so
// diagnostics are deterministic. Outside simulation, fields new to existing
// are added and matching fields receive the allowed mutable deltas.
func MergeMappings(existing, incoming Mapping, simulate bool) *fieldmap.MergeContext {
	mc := fieldmap.NewMergeContext(fieldmap.MergeFlags{Simulate: simulate})
	for _, name := range incoming.SortedNames() {
		inc := incoming[name]
		if ex, ok := existing[name]; ok {
			ex.Merge(inc, mc)
			continue
		}
		if !simulate {
			existing[name] = inc
		}
	}
	return mc
}
