package conf

import (
	"fmt"
	"sort"
)

// Diagnostic is a non-fatal, human-readable finding collected while
// merging, such as a same-depth key collision. Diagnostics never abort a
// merge.
type Diagnostic string

// depthGroup holds the files sharing one path depth. It exists only while
// MergeByDepth runs.
type depthGroup struct {
	depth   int
	entries []File
}

// MergeByDepth folds parsed files into a single mapping, shallowest depth
// group first, so deeper files override shallower ones. Within one group
// files apply in their given order; top-level keys defined by more than
// one file in the same group are reported as collision diagnostics while
// the merge proceeds with the last value seen.
func MergeByDepth(files []File) (map[string]any, []Diagnostic) {
	merged := map[string]any{}
	var diagnostics []Diagnostic

	for _, group := range groupByDepth(files) {
		diagnostics = append(diagnostics, detectCollisions(group)...)
		for _, file := range group.entries {
			merged = DeepMerge(merged, file.Config)
		}
	}

	return merged, diagnostics
}

// groupByDepth buckets files by path component count, ascending. Depth is
// the raw component count of the path as given, not a base-relative rank:
// files in unrelated branches with equal component counts share a group.
func groupByDepth(files []File) []depthGroup {
	byDepth := make(map[int][]File)
	for _, file := range files {
		depth := pathDepth(file.Path)
		byDepth[depth] = append(byDepth[depth], file)
	}

	depths := make([]int, 0, len(byDepth))
	for depth := range byDepth {
		depths = append(depths, depth)
	}
	sort.Ints(depths)

	groups := make([]depthGroup, 0, len(depths))
	for _, depth := range depths {
		groups = append(groups, depthGroup{depth: depth, entries: byDepth[depth]})
	}
	return groups
}

// pathDepth counts the path components of path; the filesystem root
// counts as one.
func pathDepth(path string) int {
	return len(splitComponents(path))
}

// detectCollisions reports top-level keys defined by more than one file
// within a single depth group. The first file to define a key is recorded
// and never updated, so every later occurrence is blamed on that first
// source: three files colliding on one key yield exactly two diagnostics,
// both naming the first file.
func detectCollisions(group depthGroup) []Diagnostic {
	var diagnostics []Diagnostic
	sources := make(map[string]string)

	for _, file := range group.entries {
		for _, key := range sortedKeys(file.Config) {
			if first, seen := sources[key]; seen {
				diagnostics = append(diagnostics, Diagnostic(fmt.Sprintf(
					"Key collision at depth %d: '%s' found in both %s and %s",
					group.depth, key, first, file.Path)))
			} else {
				sources[key] = file.Path
			}
		}
	}

	return diagnostics
}

// DeepMerge combines two mappings with override winning. Keys holding
// mappings on both sides merge recursively; every other combination,
// sequences included, is replaced wholesale by the override's value.
// Neither input is modified; the result is a fresh mapping that may share
// untouched sub-mappings with base.
func DeepMerge(base, override map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(override))
	for key, value := range base {
		result[key] = value
	}

	for key, value := range override {
		baseMap, baseIsMap := result[key].(map[string]any)
		overrideMap, overrideIsMap := value.(map[string]any)
		if baseIsMap && overrideIsMap {
			result[key] = DeepMerge(baseMap, overrideMap)
			continue
		}
		result[key] = value
	}

	return result
}

// sortedKeys returns the top-level keys of config in lexical order, so
// collision diagnostics come out in a stable order regardless of map
// iteration.
func sortedKeys(config map[string]any) []string {
	keys := make([]string, 0, len(config))
	for key := range config {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
