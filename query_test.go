package fieldmap_test

import (
	"testing"

	fieldmap "github.com/reoring/fieldmap"
)

func queryMapper(kind fieldmap.FieldKind) *fieldmap.FieldMapper {
	return fieldmap.NewFieldMapper(
		fieldmap.NewNames("f", "ns.f", "f", "ns.f", ""),
		kind, fieldmap.DefaultConfig())
}

func TestFieldQueryFilterParity(t *testing.T) {
	fm := queryMapper(upperKind{})

	q := fm.FieldQuery("x", nil).(fieldmap.TermQuery)
	f := fm.FieldFilter("x", nil).(fieldmap.TermFilter)

	want := fieldmap.Term{Field: "ns.f", Text: "X"}
	if q.Term != want {
		t.Fatalf("query term mismatch: %+v", q.Term)
	}
	if f.Term != want {
		t.Fatalf("filter term mismatch: %+v", f.Term)
	}
}

func TestFieldQuery_IdentityTransformByDefault(t *testing.T) {
	fm := queryMapper(stubKind{})
	q := fm.FieldQuery("x", nil).(fieldmap.TermQuery)
	if q.Term.Text != "x" {
		t.Fatalf("default transform must be identity, got %q", q.Term.Text)
	}
}

func TestFuzzyQuery_StringSimilarityTransforms(t *testing.T) {
	fm := queryMapper(upperKind{})

	q, err := fm.FuzzyQuery("abc", "0.5", 1, 50)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	fq := q.(fieldmap.FuzzyQuery)
	if fq.Term.Text != "ABC" {
		t.Fatalf("string-similarity overload must transform the value, got %q", fq.Term.Text)
	}
	if fq.MinSimilarity != 0.5 || fq.PrefixLength != 1 || fq.MaxExpansions != 50 {
		t.Fatalf("fuzzy parameters lost: %+v", fq)
	}
}

func TestFuzzyQueryNumeric_UsesRawValue(t *testing.T) {
	fm := queryMapper(upperKind{})

	fq := fm.FuzzyQueryNumeric("abc", 0.5, 1, 50).(fieldmap.FuzzyQuery)
	if fq.Term.Text != "abc" {
		t.Fatalf("numeric-similarity overload must use the raw value, got %q", fq.Term.Text)
	}
}

func TestFuzzyQuery_InvalidSimilarity(t *testing.T) {
	fm := queryMapper(stubKind{})
	_, err := fm.FuzzyQuery("abc", "not-a-number", 0, 0)
	if err == nil {
		t.Fatalf("expected error for unparsable similarity")
	}
	fe, ok := fieldmap.AsError(err)
	if !ok || fe.Code != fieldmap.CodeInvalidValue {
		t.Fatalf("expected invalid_value error, got %v", err)
	}
}

func TestPrefixQuery_ExplicitRewriteWins(t *testing.T) {
	fm := queryMapper(upperKind{})
	qctx := &fieldmap.QueryParseContext{DefaultRewrite: fieldmap.RewriteScoringBoolean}

	pq := fm.PrefixQuery("ab", fieldmap.RewriteTopTermsBoost, qctx).(fieldmap.PrefixQuery)
	if pq.Rewrite != fieldmap.RewriteTopTermsBoost {
		t.Fatalf("explicit rewrite must win, got %q", pq.Rewrite)
	}
	if pq.Prefix.Text != "AB" {
		t.Fatalf("prefix must go through the transform, got %q", pq.Prefix.Text)
	}
}

func TestPrefixQuery_ContextDefaultRewrite(t *testing.T) {
	fm := queryMapper(stubKind{})
	qctx := &fieldmap.QueryParseContext{DefaultRewrite: fieldmap.RewriteScoringBoolean}

	pq := fm.PrefixQuery("ab", "", qctx).(fieldmap.PrefixQuery)
	if pq.Rewrite != fieldmap.RewriteScoringBoolean {
		t.Fatalf("context default rewrite expected, got %q", pq.Rewrite)
	}

	// nil context only disables the default, never crashes
	pq = fm.PrefixQuery("ab", "", nil).(fieldmap.PrefixQuery)
	if pq.Rewrite != "" {
		t.Fatalf("nil context leaves rewrite empty, got %q", pq.Rewrite)
	}
}

func TestPrefixFilter(t *testing.T) {
	fm := queryMapper(upperKind{})
	pf := fm.PrefixFilter("ab", nil).(fieldmap.PrefixFilter)
	if pf.Prefix != (fieldmap.Term{Field: "ns.f", Text: "AB"}) {
		t.Fatalf("prefix filter mismatch: %+v", pf.Prefix)
	}
}

func TestRangeQuery_UnboundedBelowExclusiveAbove(t *testing.T) {
	fm := queryMapper(upperKind{})
	upper := "5"

	rq := fm.RangeQuery(nil, &upper, true, false, nil).(fieldmap.RangeQuery)
	if rq.Field != "ns.f" {
		t.Fatalf("range field mismatch: %q", rq.Field)
	}
	if rq.Lower != nil {
		t.Fatalf("lower bound must stay nil")
	}
	if rq.Upper == nil || *rq.Upper != "5" {
		t.Fatalf("upper bound must be indexedValue(\"5\"), got %v", rq.Upper)
	}
	if !rq.IncludeLower || rq.IncludeUpper {
		t.Fatalf("inclusivity flags wrong: %+v", rq)
	}
}

func TestRange_TransformAppliedToNonNilBoundsOnly(t *testing.T) {
	fm := queryMapper(upperKind{})
	lower := "a"
	upper := "b"

	rq := fm.RangeQuery(&lower, &upper, true, true, nil).(fieldmap.RangeQuery)
	if *rq.Lower != "A" || *rq.Upper != "B" {
		t.Fatalf("bounds must be transformed: %q %q", *rq.Lower, *rq.Upper)
	}

	rf := fm.RangeFilter(&lower, nil, false, false, nil).(fieldmap.RangeFilter)
	if *rf.Lower != "A" || rf.Upper != nil {
		t.Fatalf("filter bounds wrong: %+v", rf)
	}
}

func TestRange_DoesNotMutateCallerBounds(t *testing.T) {
	fm := queryMapper(upperKind{})
	lower := "a"
	_ = fm.RangeQuery(&lower, nil, true, true, nil)
	if lower != "a" {
		t.Fatalf("caller bound mutated to %q", lower)
	}
}

func TestQueryStringDefaults(t *testing.T) {
	fm := queryMapper(stubKind{})
	if q := fm.QueryStringTermQuery(fieldmap.Term{Field: "ns.f", Text: "x"}); q != nil {
		t.Fatalf("default query-string term query must be nil, got %v", q)
	}
	if fm.UseFieldQueryWithQueryString() {
		t.Fatalf("default UseFieldQueryWithQueryString must be false")
	}
}
