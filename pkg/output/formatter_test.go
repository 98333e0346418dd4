package output

import (
	"strings"
	"testing"
)

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"text", true},
		{"TEXT", true},
		{"yaml", true},
		{"YAML", true},
		{"json", true},
		{"JSON", true},
		{"yml", false}, // Only "yaml" is supported, not "yml"
		{"table", false},
		{"unknown", false},
		{"", false},
	}

	for _, test := range tests {
		result := IsValidFormat(test.input)
		if result != test.expected {
			t.Errorf("IsValidFormat('%s') = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestFormatter_FormatJSON(t *testing.T) {
	formatter := NewFormatter()

	testData := []map[string]string{
		{"name": "test1", "status": "Succeeded"},
		{"name": "test2", "status": "Creating"},
	}

	result, err := formatter.FormatJSON(testData)
	if err != nil {
		t.Errorf("FormatJSON failed: %v", err)
	}

	if !strings.Contains(result, "test1") || !strings.Contains(result, "Succeeded") {
		t.Errorf("JSON output should contain test data, got: %s", result)
	}
	if !strings.HasPrefix(result, "[") || !strings.HasSuffix(result, "]") {
		t.Errorf("JSON output should be a JSON array, got: %s", result)
	}
}

func TestFormatter_FormatYAML(t *testing.T) {
	formatter := NewFormatter()

	testData := map[string]string{
		"key1": "value1",
		"key2": "value2",
	}

	result, err := formatter.FormatYAML(testData)
	if err != nil {
		t.Errorf("FormatYAML failed: %v", err)
	}
	if !strings.Contains(result, "key1: value1") {
		t.Errorf("YAML output should contain test data, got: %s", result)
	}
}

func TestReindentJSON(t *testing.T) {
	// Valid JSON is re-serialized with 2-space indentation
	result := ReindentJSON(`{"b":1,"a":{"nested":true}}`)
	if !strings.Contains(result, "  \"a\": {") {
		t.Errorf("Expected 2-space indented JSON, got: %s", result)
	}
	if !strings.Contains(result, "    \"nested\": true") {
		t.Errorf("Expected nested indentation, got: %s", result)
	}

	// Identical input must yield identical output
	if ReindentJSON(`{"b":1,"a":{"nested":true}}`) != result {
		t.Error("ReindentJSON should be deterministic")
	}
}

func TestReindentJSON_Malformed(t *testing.T) {
	tests := []string{
		"not json at all",
		"{truncated",
		"",
		"0 Pod(s) found with issues",
	}

	for _, raw := range tests {
		if got := ReindentJSON(raw); got != raw {
			t.Errorf("ReindentJSON(%q) should return input unchanged, got %q", raw, got)
		}
	}
}
