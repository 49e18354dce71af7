package middleware

import (
	"context"

	fieldmap "github.com/reoring/fieldmap"
	"github.com/reoring/fieldmap/mapdef"
)

// ctxKeyMapping is a typed context key for storing a parsed mapping update.
type ctxKeyMapping struct{}

// ContextWithMapping attaches a parsed mapping to the context.
func ContextWithMapping(ctx context.Context, m mapdef.Mapping) context.Context {
	return context.WithValue(ctx, ctxKeyMapping{}, m)
}

// MappingFromContext retrieves a parsed mapping from context.
func MappingFromContext(ctx context.Context) (mapdef.Mapping, bool) {
	m, ok := ctx.Value(ctxKeyMapping{}).(mapdef.Mapping)
	return m, ok
}

// SimulateUpdate parses body as a JSON mapping definition and simulates
// merging it into existing. It returns the parsed mapping and every conflict
// found in one pass; existing is never mutated.
func SimulateUpdate(existing mapdef.Mapping, body []byte) (mapdef.Mapping, []string, error) {
	incoming, err := mapdef.Parse(body, nil)
	if err != nil {
		return nil, nil, err
	}
	mc := mapdef.MergeMappings(existing, incoming, true)
	return incoming, mc.Conflicts(), nil
}

// ConflictPayload shapes merge conflicts for JSON responses.
func ConflictPayload(conflicts []string) map[string]any {
	return map[string]any{"conflicts": conflicts}
}

// ErrorPayload shapes a parse failure for JSON responses.
func ErrorPayload(err error) map[string]any {
	if fe, ok := fieldmap.AsError(err); ok {
		return map[string]any{"error": map[string]any{
			"path":    fe.Path,
			"code":    fe.Code,
			"message": fe.Message,
		}}
	}
	return map[string]any{"error": err.Error()}
}
