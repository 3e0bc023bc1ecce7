package domain

// MinDescriptionLength is the minimum trimmed length of a commit
// description.
const MinDescriptionLength = 3

// Commit is a raw commit record supplied by a caller.
// Only Message is required; SHA and Author are carried through for
// display purposes when available.
type Commit struct {
	// SHA is the commit hash, if known.
	SHA string

	// Author is the commit author name, if known.
	Author string

	// Message is the full commit message, subject and body.
	Message string
}

// ParsedCommit is a commit message decomposed into its fields.
// A zero IssueID or Verb means the field could not be recognised;
// an unrecognised verb is reclassified as part of the description
// rather than treated as an error.
type ParsedCommit struct {
	// IssueID is the uppercased issue id, or empty if the first line
	// does not open with one.
	IssueID string

	// Verb is the approved action verb, or empty if the first token
	// after the issue id is not in the verb table.
	Verb string

	// Description is the remaining first-line text.
	Description string

	// Body is everything after the first line break, trimmed.
	Body string

	// ManualBump is the override level from a [bump:<level>] directive.
	// Only meaningful when HasManualBump is true.
	ManualBump Increment

	// HasManualBump is true when the message carries an actionable
	// override. A [bump:none] directive does not set it.
	HasManualBump bool
}

// MessageFields are the answers a commit message is rendered from.
type MessageFields struct {
	IssueID     string
	Verb        string
	Description string
	Body        string
}
