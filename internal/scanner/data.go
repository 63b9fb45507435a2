package scanner

import (
	"fmt"
	"io"
)

// ScanData is the output record of one run. It retains the decoded source
// and records the emitted tokens in four lockstep slices: Tokens[i] spans
// Source[Starts[i] : Starts[i]+Lengths[i]] and begins on line Lines[i].
// The slices grow one entry per emitted token and always have equal length,
// including after a failed run, so partial results survive a scan error.
type ScanData struct {
	// Source is the complete decoded source, one entry per scalar value.
	Source []rune

	Tokens  []Token
	Starts  []int
	Lengths []int
	Lines   []int
}

// Len returns the number of recorded tokens.
func (d *ScanData) Len() int {
	return len(d.Tokens)
}

// push appends one fully populated entry to all four slices.
func (d *ScanData) push(tok Token, start, length, line int) {
	d.Tokens = append(d.Tokens, tok)
	d.Starts = append(d.Starts, start)
	d.Lengths = append(d.Lengths, length)
	d.Lines = append(d.Lines, line)
}

// Dump writes one human-readable line per recorded token. The format is a
// debugging aid and carries no compatibility contract.
func (d *ScanData) Dump(w io.Writer) {
	for i, tok := range d.Tokens {
		fmt.Fprintf(w, "[#%03d line %d] %s\n", i, d.Lines[i], tok)
	}
}
