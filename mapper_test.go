package fieldmap_test

import (
	"errors"
	"strings"
	"testing"

	fieldmap "github.com/reoring/fieldmap"
	"github.com/reoring/fieldmap/analysis"
)

// stubKind is a minimal FieldKind driven entirely by its fields.
type stubKind struct {
	content string
	field   *fieldmap.IndexableField
	err     error
}

func (k stubKind) ContentType() string {
	if k.content == "" {
		return "stub"
	}
	return k.content
}

func (k stubKind) CreateField(fm *fieldmap.FieldMapper, ctx *fieldmap.ParseContext) (*fieldmap.IndexableField, error) {
	return k.field, k.err
}

// upperKind transforms indexed values to upper case.
type upperKind struct{ stubKind }

func (upperKind) IndexedValue(v string) string { return strings.ToUpper(v) }

// selfBoostKind stamps boost itself.
type selfBoostKind struct{ stubKind }

func (selfBoostKind) CustomBoost() bool { return true }

func buildMapper(t *testing.T, kind fieldmap.FieldKind, cfg fieldmap.Config) *fieldmap.FieldMapper {
	t.Helper()
	return fieldmap.NewFieldMapper(fieldmap.NewNames("f", "", "", "", ""), kind, cfg)
}

func TestAnalyzerDefaulting_NotAnalyzedGetsKeyword(t *testing.T) {
	for _, mode := range []fieldmap.IndexMode{fieldmap.IndexNotAnalyzed} {
		cfg := fieldmap.DefaultConfig()
		cfg.Index = mode
		fm := buildMapper(t, stubKind{}, cfg)
		if fm.IndexAnalyzer() != analysis.KeywordNamed {
			t.Fatalf("mode %v: expected keyword index analyzer, got %v", mode, fm.IndexAnalyzer())
		}
		if fm.SearchAnalyzer() != analysis.KeywordNamed {
			t.Fatalf("mode %v: expected keyword search analyzer, got %v", mode, fm.SearchAnalyzer())
		}
	}
}

func TestAnalyzerDefaulting_NotIndexedStaysNil(t *testing.T) {
	cfg := fieldmap.DefaultConfig()
	cfg.Index = fieldmap.IndexNo
	fm := buildMapper(t, stubKind{}, cfg)
	if fm.IndexAnalyzer() != nil || fm.SearchAnalyzer() != nil {
		t.Fatalf("not-indexed field must not get analyzer defaults")
	}
}

func TestAnalyzerDefaulting_AnalyzedNeverDefaulted(t *testing.T) {
	cfg := fieldmap.DefaultConfig()
	cfg.Index = fieldmap.IndexAnalyzed
	fm := buildMapper(t, stubKind{}, cfg)
	if fm.IndexAnalyzer() != nil || fm.SearchAnalyzer() != nil {
		t.Fatalf("analyzed field must keep nil analyzers when unset")
	}
}

func TestAnalyzerDefaulting_IndependentPerSlot(t *testing.T) {
	std := analysis.NewNamed("standard", nil)
	cfg := fieldmap.DefaultConfig()
	cfg.Index = fieldmap.IndexNotAnalyzed
	cfg.IndexAnalyzer = std
	fm := buildMapper(t, stubKind{}, cfg)
	if fm.IndexAnalyzer() != std {
		t.Fatalf("explicit index analyzer must survive: %v", fm.IndexAnalyzer())
	}
	if fm.SearchAnalyzer() != analysis.KeywordNamed {
		t.Fatalf("search analyzer slot defaults independently: %v", fm.SearchAnalyzer())
	}
}

func TestAccessors_DerivedFlags(t *testing.T) {
	cfg := fieldmap.DefaultConfig()
	cfg.Index = fieldmap.IndexNotAnalyzed
	cfg.Store = fieldmap.StoreYes
	fm := buildMapper(t, stubKind{}, cfg)

	if !fm.Stored() || !fm.Indexed() || fm.Analyzed() {
		t.Fatalf("derived flags wrong: stored=%v indexed=%v analyzed=%v", fm.Stored(), fm.Indexed(), fm.Analyzed())
	}

	cfg = fieldmap.DefaultConfig()
	cfg.Index = fieldmap.IndexNo
	fm = buildMapper(t, stubKind{}, cfg)
	if fm.Indexed() || fm.Analyzed() || fm.Stored() {
		t.Fatalf("not-indexed flags wrong")
	}
}

func TestSearchQuoteAnalyzerIsSearchAnalyzer(t *testing.T) {
	std := analysis.NewNamed("standard", nil)
	cfg := fieldmap.DefaultConfig()
	cfg.SearchAnalyzer = std
	fm := buildMapper(t, stubKind{}, cfg)
	if fm.SearchQuoteAnalyzer() != std {
		t.Fatalf("search quote analyzer must alias the search analyzer")
	}
}

func TestParse_AbsentFieldIsNoOp(t *testing.T) {
	fm := buildMapper(t, stubKind{}, fieldmap.DefaultConfig())
	doc := &fieldmap.Document{}
	ctx := fieldmap.NewParseContext(doc)
	ctx.SetListener(&recordingListener{})

	if err := fm.Parse(ctx); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(doc.Fields()) != 0 {
		t.Fatalf("no representation must be added")
	}
	if ctx.Listener().(*recordingListener).calls != 0 {
		t.Fatalf("listener must not be invoked for absent field")
	}
}

type recordingListener struct {
	calls int
	veto  bool
}

func (l *recordingListener) BeforeFieldAdded(fm *fieldmap.FieldMapper, f *fieldmap.IndexableField, ctx *fieldmap.ParseContext) bool {
	l.calls++
	return !l.veto
}

func TestParse_StampsConfigurationOntoField(t *testing.T) {
	f := fieldmap.NewIndexableField("f", "v", fieldmap.IndexAnalyzed, fieldmap.StoreNo, fieldmap.TermVectorNo)
	cfg := fieldmap.DefaultConfig()
	cfg.Boost = 3.0
	cfg.OmitNorms = true
	cfg.IndexOptions = fieldmap.IndexOptionsDocs
	fm := buildMapper(t, stubKind{field: f}, cfg)

	doc := &fieldmap.Document{}
	if err := fm.Parse(fieldmap.NewParseContext(doc)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := doc.Field("f")
	if got == nil {
		t.Fatalf("representation missing")
	}
	if got.Boost() != 3.0 || !got.OmitNorms() || got.IndexOptions() != fieldmap.IndexOptionsDocs {
		t.Fatalf("configuration not stamped: boost=%v omit=%v opts=%v", got.Boost(), got.OmitNorms(), got.IndexOptions())
	}
}

func TestParse_CustomBoostKindKeepsOwnBoost(t *testing.T) {
	f := fieldmap.NewIndexableField("f", "v", fieldmap.IndexAnalyzed, fieldmap.StoreNo, fieldmap.TermVectorNo)
	f.SetBoost(9.0)
	cfg := fieldmap.DefaultConfig()
	cfg.Boost = 3.0
	fm := buildMapper(t, selfBoostKind{stubKind{field: f}}, cfg)

	doc := &fieldmap.Document{}
	if err := fm.Parse(fieldmap.NewParseContext(doc)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := doc.Field("f").Boost(); got != 9.0 {
		t.Fatalf("custom-boost kind must keep its own boost, got %v", got)
	}
}

func TestParse_ListenerVetoDiscardsSilently(t *testing.T) {
	f := fieldmap.NewIndexableField("f", "v", fieldmap.IndexAnalyzed, fieldmap.StoreNo, fieldmap.TermVectorNo)
	fm := buildMapper(t, stubKind{field: f}, fieldmap.DefaultConfig())

	doc := &fieldmap.Document{}
	ctx := fieldmap.NewParseContext(doc)
	ctx.SetListener(&recordingListener{veto: true})

	if err := fm.Parse(ctx); err != nil {
		t.Fatalf("veto is not an error: %v", err)
	}
	if len(doc.Fields()) != 0 {
		t.Fatalf("vetoed representation must be discarded")
	}
}

func TestParse_ErrorWrappedWithFullName(t *testing.T) {
	cause := errors.New("boom")
	kind := stubKind{err: cause}
	fm := fieldmap.NewFieldMapper(
		fieldmap.NewNames("zip", "user.zip", "zip", "user.zip", ""),
		kind, fieldmap.DefaultConfig())

	err := fm.Parse(fieldmap.NewParseContext(&fieldmap.Document{}))
	if err == nil {
		t.Fatalf("expected error")
	}
	fe, ok := fieldmap.AsError(err)
	if !ok {
		t.Fatalf("expected *fieldmap.Error, got %T", err)
	}
	if fe.Code != fieldmap.CodeParseFailure {
		t.Fatalf("expected parse_failure, got %s", fe.Code)
	}
	if fe.Path != "user.zip" {
		t.Fatalf("error must name the fully-qualified field, got %q", fe.Path)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause must be preserved")
	}
	if !strings.Contains(err.Error(), "user.zip") {
		t.Fatalf("message must mention the field: %s", err.Error())
	}
}
