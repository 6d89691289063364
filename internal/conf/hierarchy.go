package conf

import "fmt"

// MergeHierarchy computes the effective configuration for target within
// the hierarchy rooted at base by composing Discover, Parse and
// MergeByDepth.
//
// When no YAML file is in scope at all, the result is an empty mapping
// plus a single diagnostic; that is a terminal condition, not an error.
// Fatal failures are *InvalidTargetError from discovery and *ParseError
// from parsing; collisions are only ever diagnostics.
func MergeHierarchy(base, target string) (map[string]any, []Diagnostic, error) {
	paths, err := Discover(base, target)
	if err != nil {
		return nil, nil, err
	}

	if len(paths) == 0 {
		diagnostic := Diagnostic(fmt.Sprintf(
			"No YAML files found in hierarchy from %s to %s", base, target))
		return map[string]any{}, []Diagnostic{diagnostic}, nil
	}

	files, err := Parse(paths)
	if err != nil {
		return nil, nil, err
	}

	merged, diagnostics := MergeByDepth(files)
	return merged, diagnostics, nil
}
