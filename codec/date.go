package codec

import (
	"fmt"
	"time"
)

// DateMillis encodes an RFC3339 timestamp as the sortable encoding of its
// epoch milliseconds. Nanosecond precision is accepted on input; anything
// below the millisecond is truncated.
func DateMillis(s string) (string, error) {
	t, err := parseRFC3339(s)
	if err != nil {
		return "", fmt.Errorf("codec: invalid RFC3339 time %q: %w", s, err)
	}
	return SortableInt64(t.UnixMilli()), nil
}

// ParseDateMillis decodes a DateMillis encoding back into a UTC time.
func ParseDateMillis(encoded string) (time.Time, error) {
	ms, err := ParseSortableInt64(encoded)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
