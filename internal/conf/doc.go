package conf

// Package conf implements hierarchical YAML configuration merging for hcm.
//
// # Usage
//
// The typical entry point is MergeHierarchy, which computes the effective
// configuration for a target directory:
//
//	import "github.com/AlexandreNap/hierarchical-config-merging/internal/conf"
//
//	merged, diagnostics, err := conf.MergeHierarchy("/etc/app", "/etc/app/env/prod/region/eu")
//
// Callers that only need the file set can use Discover directly.
//
// # Scoping
//
// Given a base directory and a target path below it, a directory is in
// scope when its base-relative components form a prefix of the target's
// base-relative components. The base itself is always in scope; sibling
// branches that diverge from the target at any component are not. Every
// *.yaml and *.yml file immediately inside an in-scope directory
// participates in the merge.
//
// # Merge Order
//
// Files are bucketed by path depth (component count) and folded from the
// shallowest bucket to the deepest, so values close to the target override
// values inherited from ancestors. Within one bucket files apply in
// traversal order. Two files at the same depth defining the same top-level
// key produce a collision diagnostic; the merge still proceeds and the
// last file wins. Diagnostics are advisory and never abort a merge.
//
// # Internal Architecture
//
// The pipeline is a chain of small pure functions with clear separation
// of concerns:
//
//   - Discover: read-only filesystem walk producing the in-scope file set.
//
//   - Parse: per-file YAML decoding into generic mappings. Fail-fast: one
//     undecodable file aborts the whole batch, since merging a partial
//     result would silently drop configuration the caller expects.
//
//   - MergeByDepth: depth grouping, same-depth collision detection, and
//     the depth-ordered fold over DeepMerge.
//
//   - DeepMerge: recursive two-mapping merge. Mappings merge key-wise;
//     every other value kind, sequences included, is replaced wholesale by
//     the override.
