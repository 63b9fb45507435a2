package scanner

// Config is the declarative language description driving classification. It
// is read-only for the duration of a run and may be shared across
// concurrent runs.
//
// Keywords and Symbols must be ordered so that, among candidates matching at
// the same position, the longest correct match comes first: the scanner
// picks the first entry that matches and performs no sorting of its own.
// langdef.Load sorts file-loaded definitions this way; hand-built configs
// must uphold the ordering themselves.
type Config struct {
	// Keywords is the ordered keyword list. A keyword only matches when
	// the character following it is not alphanumeric.
	Keywords []string
	// Symbols is the ordered symbol list.
	Symbols []string
	// LineComment starts a comment running to the end of the line.
	// Empty means the language has no single-line comments.
	LineComment string
	// BlockCommentStart and BlockCommentEnd delimit multi-line comments,
	// which may nest. Both must be set for block comments to be scanned.
	BlockCommentStart string
	BlockCommentEnd   string
}
