package domain

import (
	"fmt"
	"strings"
)

// Increment identifies a semantic-version increment level.
type Increment string

// Increment levels ordered by semantic-versioning impact.
const (
	// IncrementNone carries no version impact.
	IncrementNone Increment = "none"

	// IncrementPatch bumps the patch component (bug fixes, maintenance).
	IncrementPatch Increment = "patch"

	// IncrementMinor bumps the minor component (new features).
	IncrementMinor Increment = "minor"

	// IncrementMajor bumps the major component (breaking changes).
	IncrementMajor Increment = "major"
)

// ParseIncrement converts a level name into an Increment.
// Level names are matched case-insensitively.
func ParseIncrement(s string) (Increment, error) {
	switch Increment(strings.ToLower(strings.TrimSpace(s))) {
	case IncrementNone:
		return IncrementNone, nil
	case IncrementPatch:
		return IncrementPatch, nil
	case IncrementMinor:
		return IncrementMinor, nil
	case IncrementMajor:
		return IncrementMajor, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownIncrement, s)
	}
}

// IsValid returns true if the increment level is recognised.
func (i Increment) IsValid() bool {
	switch i {
	case IncrementNone, IncrementPatch, IncrementMinor, IncrementMajor:
		return true
	default:
		return false
	}
}

// Priority returns the sortable priority of the level.
// Higher values win when a batch of increments is reduced to one.
// Unrecognised levels sort with IncrementNone.
func (i Increment) Priority() int {
	switch i {
	case IncrementMajor:
		return 3
	case IncrementMinor:
		return 2
	case IncrementPatch:
		return 1
	default:
		return 0
	}
}

// String returns the string representation.
func (i Increment) String() string {
	return string(i)
}

// Description returns a human-readable description of the level.
func (i Increment) Description() string {
	switch i {
	case IncrementMajor:
		return "Breaking change"
	case IncrementMinor:
		return "New feature/capability"
	case IncrementPatch:
		return "Bug fix/improvement"
	case IncrementNone:
		return "No version impact"
	default:
		return unknownDescription
	}
}
