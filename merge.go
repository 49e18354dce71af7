package fieldmap

import (
	"fmt"

	"github.com/reoring/fieldmap/analysis"
)

// ConflictSink accumulates schema-merge conflict diagnostics. Messages are
// free-form text; callers needing programmatic classification should supply
// an enriched sink.
type ConflictSink interface {
	AddConflict(msg string)
}

// Conflicts is the default ConflictSink: an ordered, non-deduplicated list.
type Conflicts []string

func (c *Conflicts) AddConflict(msg string) { *c = append(*c, msg) }

// MergeFlags selects between report-only simulation and applying the allowed
// mutable deltas. The flag is supplied per merge invocation, never persisted.
type MergeFlags struct {
	Simulate bool
}

// MergeContext carries the flags and conflict accumulator for one schema
// merge pass. Conflicts are accumulated rather than raised so a caller
// validating a full schema update sees every incompatibility at once.
type MergeContext struct {
	flags     MergeFlags
	conflicts Conflicts
	sink      ConflictSink
}

// NewMergeContext returns a context accumulating into its own Conflicts list.
func NewMergeContext(flags MergeFlags) *MergeContext {
	return &MergeContext{flags: flags}
}

// SetSink additionally forwards every conflict to sink.
func (mc *MergeContext) SetSink(sink ConflictSink) { mc.sink = sink }

// Flags returns the flags for this pass.
func (mc *MergeContext) Flags() MergeFlags { return mc.flags }

// AddConflict records one conflict, preserving insertion order.
func (mc *MergeContext) AddConflict(msg string) {
	mc.conflicts.AddConflict(msg)
	if mc.sink != nil {
		mc.sink.AddConflict(msg)
	}
}

// Conflicts returns the accumulated conflict messages.
func (mc *MergeContext) Conflicts() []string { return mc.conflicts }

// HasConflicts reports whether any conflict was recorded.
func (mc *MergeContext) HasConflicts() bool { return len(mc.conflicts) > 0 }

// Merge reconciles with into m under the same name. Declarations of
// different kinds record exactly one conflict naming both kinds and abort;
// otherwise index, store and term-vector modes and both analyzer identities
// are each checked independently, without short-circuiting, so every
// incompatibility is reported. Outside simulation the incoming boost is
// copied onto m; boost is the only mutable delta, everything else can only
// ever be reported, never silently changed.
func (m *FieldMapper) Merge(with *FieldMapper, mc *MergeContext) {
	if m.ContentType() != with.ContentType() {
		mc.AddConflict(fmt.Sprintf("mapper [%s] of different type, current_type [%s], merged_type [%s]",
			m.names.FullName(), m.ContentType(), with.ContentType()))
		return
	}
	if m.index != with.index {
		mc.AddConflict(fmt.Sprintf("mapper [%s] has different index values", m.names.FullName()))
	}
	if m.store != with.store {
		mc.AddConflict(fmt.Sprintf("mapper [%s] has different store values", m.names.FullName()))
	}
	if m.termVector != with.termVector {
		mc.AddConflict(fmt.Sprintf("mapper [%s] has different term_vector values", m.names.FullName()))
	}
	if analyzersDiffer(m.indexAnalyzer, with.indexAnalyzer) {
		mc.AddConflict(fmt.Sprintf("mapper [%s] has different index_analyzer", m.names.FullName()))
	}
	if analyzersDiffer(m.searchAnalyzer, with.searchAnalyzer) {
		mc.AddConflict(fmt.Sprintf("mapper [%s] has different search_analyzer", m.names.FullName()))
	}
	if !mc.flags.Simulate {
		m.boost = with.boost
	}
}

// analyzersDiffer compares analyzer identity by name; both nil is equal.
func analyzersDiffer(a, b *analysis.Named) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil || b == nil:
		return true
	default:
		return a.Name() != b.Name()
	}
}
