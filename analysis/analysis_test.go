package analysis_test

import (
	"testing"

	"github.com/reoring/fieldmap/analysis"
)

func TestKeywordEmitsSingleVerbatimToken(t *testing.T) {
	toks := analysis.Keyword{}.Analyze("f", "Hello World")
	if len(toks) != 1 {
		t.Fatalf("want 1 token, got %d", len(toks))
	}
	if toks[0].Term != "Hello World" || toks[0].EndByte != len("Hello World") {
		t.Fatalf("unexpected token %+v", toks[0])
	}
}

func TestNamedIdentityIsTheName(t *testing.T) {
	a := analysis.NewNamed("standard", nil)
	if a.Name() != "standard" {
		t.Fatalf("name = %q", a.Name())
	}
	// An unbound Named still analyzes via the keyword fallback.
	toks := a.Analyze("f", "abc def")
	if len(toks) != 1 || toks[0].Term != "abc def" {
		t.Fatalf("fallback tokens = %+v", toks)
	}
}

func TestKeywordNamedReservedName(t *testing.T) {
	if analysis.KeywordNamed.Name() != "_keyword" {
		t.Fatalf("name = %q", analysis.KeywordNamed.Name())
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := analysis.NewRegistry()
	std := analysis.NewNamed("standard", analysis.Keyword{})
	reg.Register(std)

	if got := reg.Get("standard"); got != std {
		t.Fatalf("Get returned %v", got)
	}
	if got := reg.Get("missing"); got != nil {
		t.Fatalf("Get must return nil on unknown names, got %v", got)
	}
}

func TestRegistryResolveMissCreatesUnbound(t *testing.T) {
	reg := analysis.NewRegistry()
	a := reg.Resolve("whitespace")
	if a == nil || a.Name() != "whitespace" {
		t.Fatalf("Resolve miss = %v", a)
	}
	// The created analyzer is registered for subsequent lookups.
	if reg.Get("whitespace") != a {
		t.Fatalf("Resolve must register what it creates")
	}

	std := analysis.NewNamed("standard", analysis.Keyword{})
	reg.Register(std)
	if got := reg.Resolve("standard"); got != std {
		t.Fatalf("Resolve hit must return the registered analyzer")
	}
}
