package output

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the available CLI output formats.
type OutputFormat string

const (
	// FormatText is the default human-readable format.
	FormatText OutputFormat = "text"
	// FormatJSON prints the response body as indented JSON.
	FormatJSON OutputFormat = "json"
	// FormatYAML converts a JSON response body to YAML.
	FormatYAML OutputFormat = "yaml"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON, FormatYAML:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// RenderBody renders a JSON response body in the given machine format.
// FormatText is not handled here; the Formatter owns human rendering.
func RenderBody(format OutputFormat, body string) (string, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return "", fmt.Errorf("response body is not JSON: %w", err)
	}

	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out) + "\n", nil
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported render format %q", format)
	}
}
