package conf

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// File is one parsed configuration file.
type File struct {
	Path   string
	Config map[string]any
}

// ParseError reports a configuration file that could not be read or
// decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads and decodes every path into a generic mapping, preserving
// the order of paths in the result. Each file is opened, read fully and
// closed before the next one is touched.
//
// The first unreadable or undecodable file aborts the whole batch with a
// *ParseError. This is intentionally non-partial: silently dropping a bad
// file could hide configuration the caller expected to take effect.
func Parse(paths []string) ([]File, error) {
	files := make([]File, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		config, err := decodeDocument(data)
		if err != nil {
			slog.Error("failed to parse config file", "path", path, "error", err)
			return nil, &ParseError{Path: path, Err: err}
		}
		files = append(files, File{Path: path, Config: config})
	}
	return files, nil
}

// decodeDocument decodes one YAML document into a mapping. An empty,
// whitespace-only or explicit-null document decodes to an empty mapping.
// Documents whose top level is a sequence or scalar are rejected: the
// merge operates on top-level keys, so there is nothing meaningful to do
// with them.
func decodeDocument(data []byte) (map[string]any, error) {
	var document any
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, err
	}
	switch value := document.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return value, nil
	default:
		return nil, fmt.Errorf("top-level document is %T, expected a mapping", document)
	}
}
