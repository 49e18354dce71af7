// Package xcontent is the structured serialization sink field declarations
// write themselves into. The core never writes raw bytes; it drives a Writer
// and lets the writer decide the wire form.
package xcontent

import (
	"github.com/goccy/go-json"
)

// Writer receives a stream of nested objects and key/value fields.
type Writer interface {
	StartObject(key string)
	EndObject()
	Field(key string, value any)
}

// MapWriter builds a nested map[string]any and marshals it as JSON. Field
// values are stored as given; key order is not preserved (JSON objects are
// unordered).
type MapWriter struct {
	root  map[string]any
	stack []map[string]any
}

// NewMapWriter returns an empty writer positioned at the root object.
func NewMapWriter() *MapWriter {
	root := map[string]any{}
	return &MapWriter{root: root, stack: []map[string]any{root}}
}

func (w *MapWriter) current() map[string]any { return w.stack[len(w.stack)-1] }

func (w *MapWriter) StartObject(key string) {
	child := map[string]any{}
	w.current()[key] = child
	w.stack = append(w.stack, child)
}

// EndObject closes the innermost object. Closing the root is a programming
// error and panics.
func (w *MapWriter) EndObject() {
	if len(w.stack) == 1 {
		panic("xcontent: EndObject without matching StartObject")
	}
	w.stack = w.stack[:len(w.stack)-1]
}

func (w *MapWriter) Field(key string, value any) { w.current()[key] = value }

// Map returns the root object built so far.
func (w *MapWriter) Map() map[string]any { return w.root }

// MarshalJSON renders the root object.
func (w *MapWriter) MarshalJSON() ([]byte, error) { return json.Marshal(w.root) }
