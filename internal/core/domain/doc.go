// Package domain defines the core business entities for verbump.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Increment: A semantic-version increment level
//   - VerbTable: The approved verb to increment mapping
//   - IssuePattern: The issue-id matching rule
//   - ParsedCommit: A commit message decomposed into its fields
//   - Commit: A raw commit record supplied by a caller
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
