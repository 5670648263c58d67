// Package jsonpath extracts values from JSON response bodies using
// gjson path expressions, with tolerance for the common JSONPath
// dollar-dot spelling ($.dataseries[0].temp2m).
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Extract returns the value at the given path as a string. Paths may be
// written in gjson form (dataseries.0.temp2m) or JSONPath form
// ($.dataseries[0].temp2m); both address the same value.
func Extract(body, path string) (string, error) {
	if body == "" {
		return "", fmt.Errorf("empty JSON body")
	}
	if path == "" {
		return "", fmt.Errorf("empty path expression")
	}

	result := gjson.Get(body, normalize(path))
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// normalize rewrites a JSONPath-style expression into gjson syntax.
// Paths without JSONPath markers pass through unchanged.
func normalize(path string) string {
	if path == "$" {
		return "@this"
	}
	if strings.HasPrefix(path, "$") {
		path = strings.TrimPrefix(strings.TrimPrefix(path, "$"), ".")
		if path == "" {
			return "@this"
		}
	}
	// Bracketed member access: ['name'] or ["name"] -> .name
	replacer := strings.NewReplacer("['", ".", "']", "", `["`, ".", `"]`, "")
	path = replacer.Replace(path)
	// Array indexes: [3] -> .3
	path = strings.ReplaceAll(path, "[", ".")
	path = strings.ReplaceAll(path, "]", "")
	return strings.TrimPrefix(path, ".")
}
