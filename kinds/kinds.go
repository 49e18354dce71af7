// Package kinds provides the starter set of concrete field kinds: string,
// long, double, boolean and date. Each kind reads the raw value from the
// parse context's external value and reports nil when the field is absent.
package kinds

import (
	"encoding/json"
	"fmt"
	"strconv"

	fieldmap "github.com/reoring/fieldmap"
	"github.com/reoring/fieldmap/codec"
)

// String returns the plain text kind. Values are indexed as given; the
// indexed-value transform is identity.
func String() fieldmap.FieldKind { return stringKind{} }

// Long returns the 64-bit integer kind. Indexed values use the sortable
// fixed-width encoding so range queries order numerically.
func Long() fieldmap.FieldKind { return longKind{} }

// Double returns the 64-bit float kind, encoded like Long.
func Double() fieldmap.FieldKind { return doubleKind{} }

// Bool returns the boolean kind with the canonical T/F indexed form.
func Bool() fieldmap.FieldKind { return boolKind{} }

// Date returns the RFC3339 date kind, indexed as sortable epoch millis.
func Date() fieldmap.FieldKind { return dateKind{} }

type stringKind struct{}

func (stringKind) ContentType() string { return "string" }

func (stringKind) CreateField(fm *fieldmap.FieldMapper, ctx *fieldmap.ParseContext) (*fieldmap.IndexableField, error) {
	v, ok := ctx.ExternalValue()
	if !ok || v == nil {
		return nil, nil
	}
	if !fm.Indexed() && !fm.Stored() {
		return nil, nil
	}
	value, err := stringValue(v)
	if err != nil {
		return nil, err
	}
	return fieldmap.NewIndexableField(fm.Names().IndexName(), value, fm.Index(), fm.Store(), fm.TermVector()), nil
}

func stringValue(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), nil
	case int:
		return strconv.Itoa(s), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case bool:
		return strconv.FormatBool(s), nil
	default:
		return "", fmt.Errorf("cannot coerce %T to string", v)
	}
}

type longKind struct{}

func (longKind) ContentType() string { return "long" }

// CustomBoost reports that numeric kinds stamp boost themselves.
func (longKind) CustomBoost() bool { return true }

func (longKind) CreateField(fm *fieldmap.FieldMapper, ctx *fieldmap.ParseContext) (*fieldmap.IndexableField, error) {
	v, ok := ctx.ExternalValue()
	if !ok || v == nil {
		return nil, nil
	}
	n, err := int64Value(v)
	if err != nil {
		return nil, err
	}
	f := fieldmap.NewIndexableField(fm.Names().IndexName(), codec.SortableInt64(n), fm.Index(), fm.Store(), fm.TermVector())
	f.SetBoost(fm.Boost())
	return f, nil
}

// IndexedValue transforms a decimal literal into its sortable encoding. An
// unparsable value is returned unchanged.
func (longKind) IndexedValue(value string) string {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return value
	}
	return codec.SortableInt64(n)
}

func int64Value(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case json.Number:
		return n.Int64()
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("cannot coerce %T to int64", v)
	}
}

type doubleKind struct{}

func (doubleKind) ContentType() string { return "double" }

func (doubleKind) CustomBoost() bool { return true }

func (doubleKind) CreateField(fm *fieldmap.FieldMapper, ctx *fieldmap.ParseContext) (*fieldmap.IndexableField, error) {
	v, ok := ctx.ExternalValue()
	if !ok || v == nil {
		return nil, nil
	}
	n, err := float64Value(v)
	if err != nil {
		return nil, err
	}
	f := fieldmap.NewIndexableField(fm.Names().IndexName(), codec.SortableFloat64(n), fm.Index(), fm.Store(), fm.TermVector())
	f.SetBoost(fm.Boost())
	return f, nil
}

func (doubleKind) IndexedValue(value string) string {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	return codec.SortableFloat64(n)
}

func float64Value(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(n, 64)
	default:
		return 0, fmt.Errorf("cannot coerce %T to float64", v)
	}
}

type boolKind struct{}

func (boolKind) ContentType() string { return "boolean" }

func (boolKind) CreateField(fm *fieldmap.FieldMapper, ctx *fieldmap.ParseContext) (*fieldmap.IndexableField, error) {
	v, ok := ctx.ExternalValue()
	if !ok || v == nil {
		return nil, nil
	}
	var value string
	switch b := v.(type) {
	case bool:
		value = boolTerm(b)
	case string:
		value = boolKind{}.IndexedValue(b)
		if value != "T" && value != "F" {
			return nil, fmt.Errorf("cannot coerce %q to boolean", b)
		}
	default:
		return nil, fmt.Errorf("cannot coerce %T to boolean", v)
	}
	return fieldmap.NewIndexableField(fm.Names().IndexName(), value, fm.Index(), fm.Store(), fm.TermVector()), nil
}

// IndexedValue maps human-readable booleans onto the canonical single-letter
// terms; anything unrecognized is returned unchanged.
func (boolKind) IndexedValue(value string) string {
	switch value {
	case "true":
		return "T"
	case "false":
		return "F"
	default:
		return value
	}
}

func boolTerm(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

type dateKind struct{}

func (dateKind) ContentType() string { return "date" }

func (dateKind) CreateField(fm *fieldmap.FieldMapper, ctx *fieldmap.ParseContext) (*fieldmap.IndexableField, error) {
	v, ok := ctx.ExternalValue()
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("cannot coerce %T to date", v)
	}
	encoded, err := codec.DateMillis(s)
	if err != nil {
		return nil, err
	}
	return fieldmap.NewIndexableField(fm.Names().IndexName(), encoded, fm.Index(), fm.Store(), fm.TermVector()), nil
}

// IndexedValue transforms an RFC3339 literal into its sortable epoch-millis
// encoding. An unparsable value is returned unchanged.
func (dateKind) IndexedValue(value string) string {
	encoded, err := codec.DateMillis(value)
	if err != nil {
		return value
	}
	return encoded
}
