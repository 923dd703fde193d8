// Package manifest builds, parses, and validates block.json, the metadata
// descriptor that registers an ACF block with WordPress. Validation runs
// against an embedded JSON Schema covering the fields this tool writes.
package manifest
