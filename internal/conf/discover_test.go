package conf

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeFiles creates a file tree below root, making parent directories as
// needed. Keys use forward slashes relative to root.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

func TestDiscover_HierarchyScoping(t *testing.T) {
	base := filepath.Join(t.TempDir(), "aaa")
	writeFiles(t, base, map[string]string{
		"config.yaml":         "base: config",
		"a/config.yaml":       "a: config",
		"a/a/b/config.yaml":   "target: config",
		"a/c/b/config.yaml":   "excluded: config",
		"a/a/b/d/config.yaml": "below target: config",
	})

	found, err := Discover(base, filepath.Join(base, "a", "a", "b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The base, a/ and a/a/b are on the target path. The sibling branch
	// a/c/b diverges at the second component, and a/a/b/d lies below the
	// target, so both stay out.
	expected := []string{
		filepath.Join(base, "config.yaml"),
		filepath.Join(base, "a", "config.yaml"),
		filepath.Join(base, "a", "a", "b", "config.yaml"),
	}
	sort.Strings(expected)
	sort.Strings(found)
	if diff := cmp.Diff(expected, found); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover_TargetEqualsBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "aaa")
	writeFiles(t, base, map[string]string{
		"config.yaml":     "base: config",
		"extra.yml":       "more: config",
		"sub/config.yaml": "sub: config",
	})

	found, err := Discover(base, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		filepath.Join(base, "config.yaml"),
		filepath.Join(base, "extra.yml"),
	}
	sort.Strings(expected)
	sort.Strings(found)
	if diff := cmp.Diff(expected, found); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover_SuffixMatching(t *testing.T) {
	base := filepath.Join(t.TempDir(), "aaa")
	writeFiles(t, base, map[string]string{
		"config.yaml":     "a: 1",
		"extra.yml":       "b: 2",
		"CONFIG.YAML":     "c: 3",
		"notes.txt":       "not config",
		"data.json":       "{}",
		"backup.yaml.bak": "d: 4",
	})

	found, err := Discover(base, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Suffix matching is case-sensitive and exact.
	expected := []string{
		filepath.Join(base, "config.yaml"),
		filepath.Join(base, "extra.yml"),
	}
	sort.Strings(expected)
	sort.Strings(found)
	if diff := cmp.Diff(expected, found); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover_NoMatches(t *testing.T) {
	base := filepath.Join(t.TempDir(), "aaa")
	writeFiles(t, base, map[string]string{
		"notes.txt":     "nothing",
		"sub/other.txt": "nothing either",
	})

	found, err := Discover(base, filepath.Join(base, "sub"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("expected no files, got %v", found)
	}
}

func TestDiscover_InvalidTarget(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		target string
	}{
		{
			name:   "target outside base",
			base:   "aaa",
			target: "bbb",
		},
		{
			name:   "string prefix is not a descendant",
			base:   "aaa",
			target: "aaab/x",
		},
		{
			name:   "target above base",
			base:   "aaa/sub",
			target: "aaa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := t.TempDir()
			base := filepath.Join(tmp, filepath.FromSlash(tt.base))
			target := filepath.Join(tmp, filepath.FromSlash(tt.target))
			for _, dir := range []string{base, target} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					t.Fatalf("failed to create %s: %v", dir, err)
				}
			}

			_, err := Discover(base, target)
			var invalidTarget *InvalidTargetError
			if !errors.As(err, &invalidTarget) {
				t.Fatalf("expected *InvalidTargetError, got %v", err)
			}
			if invalidTarget.Base != base {
				t.Errorf("expected Base=%s, got %s", base, invalidTarget.Base)
			}
		})
	}
}

func TestSplitComponents(t *testing.T) {
	tests := []struct {
		path     string
		expected []string
	}{
		{"/etc/app/config.yaml", []string{"/", "etc", "app", "config.yaml"}},
		{"/", []string{"/"}},
		{"etc/app", []string{"etc", "app"}},
		{"etc//app/", []string{"etc", "app"}},
		{"config.yaml", []string{"config.yaml"}},
		{".", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, splitComponents(tt.path)); diff != "" {
				t.Errorf("splitComponents(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}
