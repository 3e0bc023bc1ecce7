package domain

import (
	"sort"
	"strings"
)

// VerbTable maps approved past-tense action verbs to increment levels.
// Tables are immutable after construction; Extend returns a new table
// rather than mutating the receiver, so a table can be shared freely
// across goroutines.
type VerbTable struct {
	verbs  []string
	levels map[string]Increment
}

type verbEntry struct {
	verb  string
	level Increment
}

// defaultVerbs is the built-in convention. Order matters: suggestion
// output follows table order, so the table is declared grouped by
// impact, alphabetical within each group.
var defaultVerbs = []verbEntry{
	// Breaking changes
	{"Changed", IncrementMajor},

	// New features
	{"Added", IncrementMinor},
	{"Created", IncrementMinor},
	{"Enhanced", IncrementMinor},
	{"Implemented", IncrementMinor},

	// Fixes and maintenance
	{"Bumped", IncrementPatch},
	{"Configured", IncrementPatch},
	{"Deprecated", IncrementPatch},
	{"Disabled", IncrementPatch},
	{"Downgraded", IncrementPatch},
	{"Enabled", IncrementPatch},
	{"Fixed", IncrementPatch},
	{"Improved", IncrementPatch},
	{"Integrated", IncrementPatch},
	{"Merged", IncrementPatch},
	{"Migrated", IncrementPatch},
	{"Optimized", IncrementPatch},
	{"Refactored", IncrementPatch},
	{"Released", IncrementPatch},
	{"Removed", IncrementPatch},
	{"Resolved", IncrementPatch},
	{"Reverted", IncrementPatch},
	{"Tested", IncrementPatch},
	{"Updated", IncrementPatch},
	{"Upgraded", IncrementPatch},
	{"Validated", IncrementPatch},

	// No version impact
	{"Commented", IncrementNone},
	{"Documented", IncrementNone},
	{"Formatted", IncrementNone},
	{"Replaced", IncrementNone},
	{"Reorganized", IncrementNone},
	{"Styled", IncrementNone},
}

// DefaultVerbTable returns the built-in verb table.
func DefaultVerbTable() *VerbTable {
	t := &VerbTable{
		verbs:  make([]string, 0, len(defaultVerbs)),
		levels: make(map[string]Increment, len(defaultVerbs)),
	}
	for _, e := range defaultVerbs {
		t.verbs = append(t.verbs, e.verb)
		t.levels[e.verb] = e.level
	}
	return t
}

// Extend returns a new table with custom entries applied.
// Custom entries override built-in verbs on collision (keeping the
// original position) and new verbs are appended in sorted key order,
// which keeps suggestion output deterministic.
func (t *VerbTable) Extend(custom map[string]Increment) *VerbTable {
	next := &VerbTable{
		verbs:  append([]string(nil), t.verbs...),
		levels: make(map[string]Increment, len(t.levels)+len(custom)),
	}
	for verb, level := range t.levels {
		next.levels[verb] = level
	}

	added := make([]string, 0, len(custom))
	for verb, level := range custom {
		if _, exists := next.levels[verb]; !exists {
			added = append(added, verb)
		}
		next.levels[verb] = level
	}
	sort.Strings(added)
	next.verbs = append(next.verbs, added...)

	return next
}

// Lookup returns the increment level for a verb.
// The match is exact and case-sensitive.
func (t *VerbTable) Lookup(verb string) (Increment, bool) {
	level, ok := t.levels[verb]
	return level, ok
}

// Has returns true if the verb is an exact key of the table.
func (t *VerbTable) Has(verb string) bool {
	_, ok := t.levels[verb]
	return ok
}

// Len returns the number of verbs in the table.
func (t *VerbTable) Len() int {
	return len(t.verbs)
}

// Verbs returns all verbs in table order.
func (t *VerbTable) Verbs() []string {
	return append([]string(nil), t.verbs...)
}

// ByLevel returns the verbs mapped to a level, sorted alphabetically.
func (t *VerbTable) ByLevel(level Increment) []string {
	var out []string
	for _, verb := range t.verbs {
		if t.levels[verb] == level {
			out = append(out, verb)
		}
	}
	sort.Strings(out)
	return out
}

// Suggest returns every verb whose lowercase form starts with the
// lowercased prefix, in table order. An empty prefix matches all verbs.
func (t *VerbTable) Suggest(prefix string) []string {
	p := strings.ToLower(prefix)
	var out []string
	for _, verb := range t.verbs {
		if strings.HasPrefix(strings.ToLower(verb), p) {
			out = append(out, verb)
		}
	}
	return out
}
