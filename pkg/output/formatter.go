package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter provides formatting capabilities for different output formats
type Formatter struct{}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// IsValidFormat checks if the given format is supported
func IsValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "text", "yaml", "json":
		return true
	default:
		return false
	}
}

// FormatYAML formats data as YAML
func (f *Formatter) FormatYAML(data interface{}) (string, error) {
	yamlBytes, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(yamlBytes), nil
}

// FormatJSON formats data as JSON with 2-space indentation
func (f *Formatter) FormatJSON(data interface{}) (string, error) {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(jsonBytes), nil
}

// ReindentJSON re-serializes a raw JSON document with stable 2-space
// indentation. If raw does not parse as JSON it is returned unchanged.
func ReindentJSON(raw string) string {
	var parsed interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw
	}
	indented, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return raw
	}
	return string(indented)
}
