// Package codec provides bidirectional transforms between human-readable
// values and the indexed forms numeric and date fields match against. The
// encodings are fixed-width and order-preserving: lexicographic comparison of
// encoded terms equals numeric comparison of the originals, which is what
// range queries over an ordered term dictionary rely on.
package codec

import (
	"fmt"
	"math"
	"strconv"
)

// SortableInt64 encodes v as 16 hex digits with the sign bit flipped so that
// encoded strings sort in numeric order.
func SortableInt64(v int64) string {
	return fmt.Sprintf("%016x", uint64(v)^(1<<63))
}

// ParseSortableInt64 decodes a SortableInt64 encoding.
func ParseSortableInt64(s string) (int64, error) {
	if len(s) != 16 {
		return 0, fmt.Errorf("codec: sortable int64 must be 16 hex digits, got %q", s)
	}
	u, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("codec: invalid sortable int64 %q: %w", s, err)
	}
	return int64(u ^ (1 << 63)), nil
}

// SortableFloat64 encodes f so that encoded strings sort in numeric order:
// positive values get the sign bit set, negative values are bit-inverted.
func SortableFloat64(f float64) string {
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		bits = ^bits
	} else {
		bits |= 1 << 63
	}
	return fmt.Sprintf("%016x", bits)
}

// ParseSortableFloat64 decodes a SortableFloat64 encoding.
func ParseSortableFloat64(s string) (float64, error) {
	if len(s) != 16 {
		return 0, fmt.Errorf("codec: sortable float64 must be 16 hex digits, got %q", s)
	}
	bits, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("codec: invalid sortable float64 %q: %w", s, err)
	}
	if bits&(1<<63) != 0 {
		bits &^= 1 << 63
	} else {
		bits = ^bits
	}
	return math.Float64frombits(bits), nil
}
