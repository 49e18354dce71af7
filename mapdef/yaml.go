package mapdef

import (
	"gopkg.in/yaml.v3"

	fieldmap "github.com/reoring/fieldmap"
	"github.com/reoring/fieldmap/analysis"
)

// ParseYAML reads a YAML mapping definition. The document shape is the same
// as Parse's JSON shape.
func ParseYAML(data []byte, reg *analysis.Registry) (Mapping, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &fieldmap.Error{
			Code:    fieldmap.CodeInvalidValue,
			Message: "invalid YAML mapping definition",
			Cause:   err,
		}
	}
	root := yamlAnyToStringMap(node)
	props := map[string]map[string]any{}
	if root != nil {
		if rawProps, ok := root["properties"].(map[string]any); ok {
			for name, v := range rawProps {
				if m := yamlAnyToStringMap(v); m != nil {
					props[name] = m
				}
			}
		}
	}
	return fromProperties(props, reg)
}

// yamlAnyToStringMap normalizes YAML decoding output into map[string]any,
// recursing through nested maps and sequences. Non-map input yields nil.
func yamlAnyToStringMap(v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		out[k] = yamlNormalize(val)
	}
	return out
}

func yamlNormalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return yamlAnyToStringMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = yamlNormalize(e)
		}
		return out
	default:
		return v
	}
}
