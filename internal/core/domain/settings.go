package domain

// Settings is the raw configuration surface consumed at startup.
// Values are plain strings as loaded from the config file; validation
// and compilation happen when the convention is built, so a bad entry
// aborts initialisation with a descriptive failure instead of being
// silently ignored.
type Settings struct {
	// Verbs maps additional verb keys to increment level names.
	// Entries override built-in verbs on key collision.
	Verbs map[string]string

	// IssuePattern replaces the default issue-id pattern when set.
	IssuePattern string

	// ChangelogStyle selects the changelog embedding template
	// ("prefix" or "suffix").
	ChangelogStyle string
}

// DefaultSettings returns settings with no customisation applied.
func DefaultSettings() Settings {
	return Settings{}
}
