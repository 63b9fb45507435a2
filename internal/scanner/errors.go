package scanner

import "fmt"

// ErrorKind classifies scan failures.
type ErrorKind int

const (
	// UnknownToken reports that no classifier matched at the current
	// position.
	UnknownToken ErrorKind = iota
	// UnexpectedEOF reports that the input ended inside an incomplete
	// multi-character token, such as an unterminated string literal.
	UnexpectedEOF
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case UnknownToken:
		return "unknown token"
	case UnexpectedEOF:
		return "unexpected end of file"
	}
	return fmt.Sprintf("unknown error kind (%d)", int(k))
}

// ScanError is the single error a run can return. Line is the 1-based source
// line and Offset the 0-based character index the failure was detected at.
type ScanError struct {
	Kind   ErrorKind
	Line   int
	Offset int
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Offset, e.Kind)
}
