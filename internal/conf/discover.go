package conf

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// InvalidTargetError reports a target path that is neither the base
// directory nor one of its descendants.
type InvalidTargetError struct {
	Base   string
	Target string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("target path %s is not within base directory %s", e.Target, e.Base)
}

// Discover walks the hierarchy rooted at base and returns the absolute
// path of every YAML file in scope for target. A directory is in scope
// when its base-relative components form a prefix of the target's
// base-relative components; the base itself is always in scope. Files are
// matched on the case-sensitive suffixes ".yaml" and ".yml".
//
// The walk is read-only. An empty result is not an error. Discover fails
// with *InvalidTargetError when target is not the base or a descendant of
// it; the check is component-wise, so a base of /aaa does not match a
// target of /aaab.
func Discover(base, target string) ([]string, error) {
	baseAbs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", base, err)
	}
	targetAbs, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", target, err)
	}

	targetRel, ok := relComponents(baseAbs, targetAbs)
	if !ok {
		return nil, &InvalidTargetError{Base: baseAbs, Target: targetAbs}
	}

	var files []string
	err = filepath.WalkDir(baseAbs, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			rel, _ := relComponents(baseAbs, path)
			// A directory that diverges from the target hierarchy cannot
			// contain an in-scope descendant, so its whole subtree is
			// skipped.
			if !inScope(rel, targetRel) {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(entry.Name(), ".yaml") || strings.HasSuffix(entry.Name(), ".yml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", baseAbs, err)
	}

	return files, nil
}

// inScope reports whether a directory with the given base-relative
// components lies on the path from the base to the target.
func inScope(rel, targetRel []string) bool {
	if len(rel) > len(targetRel) {
		return false
	}
	for i := range rel {
		if rel[i] != targetRel[i] {
			return false
		}
	}
	return true
}

// relComponents returns target's path components below base, or false when
// target is not base or one of its descendants.
func relComponents(base, target string) ([]string, bool) {
	baseParts := splitComponents(base)
	targetParts := splitComponents(target)
	if len(targetParts) < len(baseParts) {
		return nil, false
	}
	for i := range baseParts {
		if targetParts[i] != baseParts[i] {
			return nil, false
		}
	}
	return targetParts[len(baseParts):], true
}

// splitComponents breaks a cleaned path into its components. The
// filesystem root counts as a component of its own, so /etc/app has three
// components while etc/app has two.
func splitComponents(path string) []string {
	path = filepath.Clean(path)
	sep := string(filepath.Separator)

	var parts []string
	if strings.HasPrefix(path, sep) {
		parts = append(parts, sep)
	}
	for _, part := range strings.Split(path, sep) {
		if part != "" && part != "." {
			parts = append(parts, part)
		}
	}
	return parts
}
