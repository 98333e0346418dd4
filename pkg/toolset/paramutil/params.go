// Package paramutil extracts and validates tool call parameters from the
// untyped argument maps delivered by the MCP transport. JSON numbers arrive
// as float64; the integer extractors accept the other widths as well.
package paramutil

import "fmt"

// ExtractRequiredString extracts a required string parameter from params map.
// Returns ErrMissingParameter if the parameter is missing or empty.
func ExtractRequiredString(params map[string]interface{}, key string) (string, error) {
	if v, ok := params[key].(string); ok && v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissingParameter, key)
}

// ExtractOptionalString extracts an optional string parameter.
// Returns empty string if the parameter is missing or empty.
func ExtractOptionalString(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

// ExtractOptionalStringWithDefault extracts an optional string parameter with
// a default value. Returns defaultValue if the parameter is missing or empty.
func ExtractOptionalStringWithDefault(params map[string]interface{}, key, defaultValue string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return defaultValue
}

// ExtractBool extracts a boolean parameter with a default value
func ExtractBool(params map[string]interface{}, key string, defaultValue bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return defaultValue
}

// ExtractOptionalBool extracts an optional boolean parameter, distinguishing
// "absent" (nil) from an explicit true/false.
func ExtractOptionalBool(params map[string]interface{}, key string) *bool {
	if v, ok := params[key].(bool); ok {
		return &v
	}
	return nil
}

// ExtractInt64 extracts an int64 parameter with a default value
func ExtractInt64(params map[string]interface{}, key string, defaultValue int64) int64 {
	if v := ExtractOptionalInt64(params, key); v != nil {
		return *v
	}
	return defaultValue
}

// ExtractOptionalInt64 extracts an optional int64 parameter
func ExtractOptionalInt64(params map[string]interface{}, key string) *int64 {
	if v, ok := params[key].(float64); ok {
		val := int64(v)
		return &val
	}
	if v, ok := params[key].(int64); ok {
		return &v
	}
	if v, ok := params[key].(int); ok {
		val := int64(v)
		return &val
	}
	return nil
}

// ExtractRequiredInt64 extracts a required int64 parameter.
// Returns ErrMissingParameter if the parameter is absent.
func ExtractRequiredInt64(params map[string]interface{}, key string) (int64, error) {
	if v := ExtractOptionalInt64(params, key); v != nil {
		return *v, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrMissingParameter, key)
}

// ExtractRequiredFloat64 extracts a required float64 parameter.
// Returns ErrMissingParameter if the parameter is absent.
func ExtractRequiredFloat64(params map[string]interface{}, key string) (float64, error) {
	if v, ok := params[key].(float64); ok {
		return v, nil
	}
	if v, ok := params[key].(int); ok {
		return float64(v), nil
	}
	if v, ok := params[key].(int64); ok {
		return float64(v), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrMissingParameter, key)
}

// BoolPtr returns a pointer to a boolean value
func BoolPtr(b bool) *bool {
	return &b
}
