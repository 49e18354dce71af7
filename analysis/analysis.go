// Package analysis models analyzers as opaque named capabilities. The mapping
// core only ever needs an analyzer's registry name (for merge identity checks
// and serialization) and the ability to hand text to it; tokenization
// algorithms live elsewhere.
package analysis

import "sync"

// Token is a single token produced by an analyzer.
type Token struct {
	Term      string
	Position  int
	StartByte int
	EndByte   int
}

// Analyzer processes field text into a stream of tokens. Implementations must
// be safe for concurrent use across documents.
type Analyzer interface {
	Analyze(field, text string) []Token
}

// Named binds an Analyzer to the name it was registered under. Two Named
// analyzers are considered the same capability iff their names are equal; the
// bound implementation is never compared.
type Named struct {
	name     string
	analyzer Analyzer
}

// NewNamed wraps a into a Named. A nil analyzer yields an unbound Named that
// analyzes verbatim; mapping definitions may reference analyzers whose
// implementation is provided only at index time.
func NewNamed(name string, a Analyzer) *Named {
	return &Named{name: name, analyzer: a}
}

// Name returns the registry name.
func (n *Named) Name() string { return n.name }

func (n *Named) Analyze(field, text string) []Token {
	if n.analyzer == nil {
		return Keyword{}.Analyze(field, text)
	}
	return n.analyzer.Analyze(field, text)
}

// Keyword emits the input unchanged as a single token. It is the verbatim
// analyzer backing exact-match fields.
type Keyword struct{}

func (Keyword) Analyze(field, text string) []Token {
	return []Token{{Term: text, Position: 0, StartByte: 0, EndByte: len(text)}}
}

// KeywordNamed is the construction-time default analyzer for fields that are
// indexed but not analyzed. The leading underscore marks the name as internal
// so serialization suppresses it.
var KeywordNamed = NewNamed("_keyword", Keyword{})

// Registry resolves analyzer names referenced by mapping definitions.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Named
}

// NewRegistry returns a registry pre-seeded with the keyword analyzer.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]*Named{KeywordNamed.Name(): KeywordNamed}}
}

// Register adds or replaces the analyzer under its own name.
func (r *Registry) Register(n *Named) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[n.Name()] = n
}

// Get returns the registered analyzer or nil.
func (r *Registry) Get(name string) *Named {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// Resolve returns the registered analyzer, creating and registering an
// unbound Named when the name is unknown. Mapping parsing never fails on a
// missing analyzer implementation.
func (r *Registry) Resolve(name string) *Named {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.byName[name]; ok {
		return n
	}
	n := NewNamed(name, nil)
	r.byName[name] = n
	return n
}
