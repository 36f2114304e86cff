// Package csg converts a parsed solid-modeling AST into a typed CSG tree
// of primitives, boolean operations, and affine transforms. Conversion is
// best-effort: a bad primitive or unsupported construct drops only its own
// subtree and records a diagnostic, never the whole run.
package csg
