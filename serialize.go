package fieldmap

import (
	"strings"

	"github.com/reoring/fieldmap/analysis"
	"github.com/reoring/fieldmap/xcontent"
)

// reserved analyzer names are never emitted: internal analyzers carry a
// leading underscore, and "default" is the inherited marker.
func analyzerEmittable(a *analysis.Named) bool {
	return a != nil && !strings.HasPrefix(a.Name(), "_") && a.Name() != "default"
}

// ToXContent writes the declaration as an object keyed by the logical field
// name.
func (m *FieldMapper) ToXContent(w xcontent.Writer) {
	w.StartObject(m.names.Name())
	m.xContentBody(w)
	w.EndObject()
}

// xContentBody emits the content-type tag plus every setting that differs
// from its inherited default. Index and search analyzer collapse into one
// "analyzer" key when they share an emittable name.
func (m *FieldMapper) xContentBody(w xcontent.Writer) {
	w.Field("type", m.ContentType())
	if m.names.Name() != m.names.IndexNameClean() {
		w.Field("index_name", m.names.IndexNameClean())
	}
	if m.index != DefaultIndex {
		w.Field("index", m.index.String())
	}
	if m.store != DefaultStore {
		w.Field("store", m.store.String())
	}
	if m.termVector != DefaultTermVector {
		w.Field("term_vector", m.termVector.String())
	}
	if m.boost != DefaultBoost {
		w.Field("boost", m.boost)
	}
	if m.omitNorms != DefaultOmitNorms {
		w.Field("omit_norms", m.omitNorms)
	}
	if m.indexOptions != DefaultIndexOptions {
		w.Field("index_options", m.indexOptions.String())
	}
	if analyzerEmittable(m.indexAnalyzer) && analyzerEmittable(m.searchAnalyzer) &&
		m.indexAnalyzer.Name() == m.searchAnalyzer.Name() {
		w.Field("analyzer", m.indexAnalyzer.Name())
	} else {
		if analyzerEmittable(m.indexAnalyzer) {
			w.Field("index_analyzer", m.indexAnalyzer.Name())
		}
		if analyzerEmittable(m.searchAnalyzer) {
			w.Field("search_analyzer", m.searchAnalyzer.Name())
		}
	}
	if m.includeInAll != nil {
		w.Field("include_in_all", *m.includeInAll)
	}
}

// MarshalJSON renders the declaration through a MapWriter.
func (m *FieldMapper) MarshalJSON() ([]byte, error) {
	w := xcontent.NewMapWriter()
	m.ToXContent(w)
	return w.MarshalJSON()
}
