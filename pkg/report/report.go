// Package report formats smoke-test outcomes for stdout.
package report

import (
	"encoding/json"
	"fmt"
)

// Preview truncates s to at most n runes, appending "..." when cut.
func Preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// JSON renders v with two-space indentation. Values that cannot be
// marshalled fall back to their %v rendering.
func JSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
