package fieldmap

// IndexableField is the per-document representation of one field value handed
// to the index engine. The owning FieldMapper stamps boost, norms and index
// options onto it during Parse.
type IndexableField struct {
	name         string
	value        string
	index        IndexMode
	store        StoreMode
	termVector   TermVectorMode
	boost        float64
	omitNorms    bool
	indexOptions IndexOptions
}

// NewIndexableField creates a representation carrying the given value under
// name. Boost starts at the neutral 1.0.
func NewIndexableField(name, value string, index IndexMode, store StoreMode, termVector TermVectorMode) *IndexableField {
	return &IndexableField{
		name:         name,
		value:        value,
		index:        index,
		store:        store,
		termVector:   termVector,
		boost:        DefaultBoost,
		indexOptions: DefaultIndexOptions,
	}
}

func (f *IndexableField) Name() string               { return f.name }
func (f *IndexableField) Value() string              { return f.value }
func (f *IndexableField) Index() IndexMode           { return f.index }
func (f *IndexableField) Store() StoreMode           { return f.store }
func (f *IndexableField) TermVector() TermVectorMode { return f.termVector }
func (f *IndexableField) Boost() float64             { return f.boost }
func (f *IndexableField) OmitNorms() bool            { return f.omitNorms }
func (f *IndexableField) IndexOptions() IndexOptions { return f.indexOptions }

func (f *IndexableField) SetBoost(boost float64)          { f.boost = boost }
func (f *IndexableField) SetOmitNorms(omit bool)          { f.omitNorms = omit }
func (f *IndexableField) SetIndexOptions(o IndexOptions)  { f.indexOptions = o }

// Document accumulates the indexable representations produced for one parsed
// document.
type Document struct {
	fields []*IndexableField
}

// Add appends f to the document.
func (d *Document) Add(f *IndexableField) { d.fields = append(d.fields, f) }

// Fields returns the representations added so far, in insertion order.
func (d *Document) Fields() []*IndexableField { return d.fields }

// Field returns the first representation added under name, or nil.
func (d *Document) Field(name string) *IndexableField {
	for _, f := range d.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// FieldListener may veto a produced representation before it reaches the
// document. Returning false discards the representation silently.
type FieldListener interface {
	BeforeFieldAdded(fm *FieldMapper, f *IndexableField, ctx *ParseContext) bool
}

type acceptAllListener struct{}

func (acceptAllListener) BeforeFieldAdded(*FieldMapper, *IndexableField, *ParseContext) bool {
	return true
}

// ParseContext is the per-document parse state threaded through field
// mappers: the document under construction, the listener hook and the current
// nesting path, plus the raw value for the field currently being parsed.
type ParseContext struct {
	doc      *Document
	path     *ContentPath
	listener FieldListener
	value    any
	valueSet bool
}

// NewParseContext returns a context writing into doc with an accept-all
// listener and a fresh root path.
func NewParseContext(doc *Document) *ParseContext {
	return &ParseContext{doc: doc, path: NewContentPath(), listener: acceptAllListener{}}
}

// Doc returns the document under construction.
func (c *ParseContext) Doc() *Document { return c.doc }

// Path returns the mutable nesting path.
func (c *ParseContext) Path() *ContentPath { return c.path }

// Listener returns the field listener hook.
func (c *ParseContext) Listener() FieldListener { return c.listener }

// SetListener installs a listener; nil restores the accept-all default.
func (c *ParseContext) SetListener(l FieldListener) {
	if l == nil {
		l = acceptAllListener{}
	}
	c.listener = l
}

// SetExternalValue supplies the raw value for the field about to be parsed.
func (c *ParseContext) SetExternalValue(v any) {
	c.value = v
	c.valueSet = true
}

// ExternalValue returns the raw value and whether one was supplied. A missing
// value means the field is absent for this document.
func (c *ParseContext) ExternalValue() (any, bool) { return c.value, c.valueSet }

// ClearExternalValue marks the field value as absent again.
func (c *ParseContext) ClearExternalValue() {
	c.value = nil
	c.valueSet = false
}
