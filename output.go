package main

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// writeMerged renders the merged configuration to w in the requested
// format: block-style YAML or 2-space-indented JSON with HTML escaping
// turned off.
func writeMerged(w io.Writer, merged map[string]any, format string) error {
	if format == "yaml" {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(merged); err != nil {
			return err
		}
		return encoder.Close()
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(merged)
}
