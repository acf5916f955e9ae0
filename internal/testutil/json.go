package testutil

import (
	"encoding/json"
	"testing"
)

// ParseJSON decodes one JSON envelope written by an OutputFormatter
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
