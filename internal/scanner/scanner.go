// Package scanner implements a configurable lexical scanner: it converts raw
// source text into a flat, ordered sequence of classified tokens driven by a
// caller-supplied language description rather than a hard-coded grammar.
//
// Positions and lengths are measured in Unicode scalar values, not bytes.
// A run is a pure in-memory transformation: one Scanner value per run, never
// shared, while the Config may be shared read-only across arbitrarily many
// concurrent runs.
package scanner

import (
	"strings"
	"unicode/utf8"
)

// Scanner holds the cursor state for one run: the start of the token being
// accumulated, the next unconsumed character, and the current line. The zero
// value is ready to use; Run resets it.
type Scanner struct {
	start   int
	current int
	line    int
}

// Run scans source under cfg, appending results to data. On success data
// holds the full token sequence. On failure the first error is returned and
// every token emitted before the failure is still present in data; for an
// unterminated string or block comment the best-effort partial token is
// recorded as well.
func (s *Scanner) Run(source string, cfg *Config, data *ScanData) error {
	data.Source = []rune(source)
	s.start = 0
	s.current = 0
	s.line = 1
	for {
		startLine := s.line
		tok, err := s.scanToken(cfg, data, startLine)
		if err != nil {
			return err
		}
		switch tok.Kind {
		case TokenEOF:
			return nil
		case TokenIgnore, TokenNewline:
			s.start = s.current
		default:
			data.push(tok, s.start, s.current-s.start, startLine)
			s.start = s.current
		}
	}
}

// scanToken classifies the text at the current position. The priority order
// is fixed: comments come before symbols so a comment marker built from
// symbol characters is not split into symbols, and keywords come before
// identifiers with a boundary check so an identifier sharing a keyword's
// prefix is not mis-tokenized.
func (s *Scanner) scanToken(cfg *Config, data *ScanData, startLine int) (Token, error) {
	src := data.Source
	if s.current >= len(src) {
		return Token{Kind: TokenEOF}, nil
	}
	if tok, ok, err := s.scanComment(cfg, data, startLine); ok || err != nil {
		return tok, err
	}
	if tok, ok := s.scanNewline(src); ok {
		return tok, nil
	}
	if tok, ok := s.scanSpace(src); ok {
		return tok, nil
	}
	if tok, ok := s.scanSymbol(src, cfg); ok {
		return tok, nil
	}
	if tok, ok := s.scanKeyword(src, cfg); ok {
		return tok, nil
	}
	if tok, ok, err := s.scanString(data, startLine); ok || err != nil {
		return tok, err
	}
	if tok, ok := s.scanIdentifier(src); ok {
		return tok, nil
	}
	if tok, ok := s.scanNumber(src); ok {
		return tok, nil
	}
	return Token{}, &ScanError{Kind: UnknownToken, Line: s.line, Offset: s.current}
}

func (s *Scanner) scanComment(cfg *Config, data *ScanData, startLine int) (Token, bool, error) {
	src := data.Source
	if cfg.BlockCommentStart != "" && cfg.BlockCommentEnd != "" && s.matches(cfg.BlockCommentStart, src) {
		tok, err := s.scanBlockComment(cfg.BlockCommentStart, cfg.BlockCommentEnd, data, startLine)
		return tok, err == nil, err
	}
	if cfg.LineComment != "" && s.matches(cfg.LineComment, src) {
		return s.scanLineComment(src), true, nil
	}
	return Token{}, false, nil
}

// scanLineComment consumes up to, but not including, the end of the line.
// The newline itself is classified on the next dispatch step, so the
// comment's span and text both exclude it.
func (s *Scanner) scanLineComment(src []rune) Token {
	for s.current < len(src) && src[s.current] != '\n' {
		s.current++
	}
	return Token{Kind: TokenComment, Text: string(src[s.start:s.current])}
}

// scanBlockComment consumes a possibly nested block comment. Start and end
// markers inside a double-quoted string within the comment do not count
// toward the nesting depth; a backslash suppresses the quote toggle for the
// following character. The span covers both delimiters; the emitted text
// excludes the trailing end marker, matching the single-line convention of
// excluding the immediate terminator.
//
// If the input ends before the depth returns to zero, the partial comment is
// recorded and an UnexpectedEOF error returned, mirroring the treatment of
// unterminated strings.
func (s *Scanner) scanBlockComment(start, end string, data *ScanData, startLine int) (Token, error) {
	src := data.Source
	endLen := utf8.RuneCountInString(end)
	depth := 0
	inString := false
	escape := false
	for s.current < len(src) {
		c := src[s.current]
		if c == '\n' {
			s.line++
		} else if c == '\\' && !escape {
			escape = true
		} else {
			if c == '"' && !escape {
				inString = !inString
			} else if !inString {
				if s.matches(end, src) {
					depth--
					s.current += endLen - 1
					if depth == 0 {
						s.current++
						return Token{Kind: TokenComment, Text: string(src[s.start : s.current-endLen])}, nil
					}
				} else if s.matches(start, src) {
					s.current += utf8.RuneCountInString(start) - 1
					depth++
				}
			}
			escape = false
		}
		s.current++
	}
	tok := Token{Kind: TokenComment, Text: string(src[s.start:])}
	data.push(tok, s.start, len(src)-s.start, startLine)
	return Token{}, &ScanError{Kind: UnexpectedEOF, Line: startLine, Offset: s.start}
}

func (s *Scanner) scanNewline(src []rune) (Token, bool) {
	if src[s.current] != '\n' {
		return Token{}, false
	}
	s.current++
	s.line++
	return Token{Kind: TokenNewline}, true
}

func (s *Scanner) scanSpace(src []rune) (Token, bool) {
	start := s.current
	for s.current < len(src) && isSpace(src[s.current]) {
		s.current++
	}
	if start == s.current {
		return Token{}, false
	}
	return Token{Kind: TokenIgnore}, true
}

func (s *Scanner) scanSymbol(src []rune, cfg *Config) (Token, bool) {
	for _, sym := range cfg.Symbols {
		if s.matches(sym, src) {
			s.current += utf8.RuneCountInString(sym)
			return Token{Kind: TokenSymbol, Text: sym}, true
		}
	}
	return Token{}, false
}

func (s *Scanner) scanKeyword(src []rune, cfg *Config) (Token, bool) {
	for _, kw := range cfg.Keywords {
		n := utf8.RuneCountInString(kw)
		if s.matches(kw, src) && (s.current+n >= len(src) || !isAlphanum(src[s.current+n])) {
			s.current += n
			return Token{Kind: TokenKeyword, Text: kw}, true
		}
	}
	return Token{}, false
}

// scanString consumes a double-quoted string literal. \n and \t translate to
// newline and tab; any other escaped character is copied verbatim with the
// backslash dropped. The recorded content excludes the quotes while the span
// includes them.
//
// If the input ends before the closing quote, the partial literal is
// recorded anyway and an UnexpectedEOF error returned, so a caller scanning
// a buffer mid-edit sees both the best-effort token and the failure.
func (s *Scanner) scanString(data *ScanData, startLine int) (Token, bool, error) {
	src := data.Source
	if src[s.current] != '"' {
		return Token{}, false, nil
	}
	s.current++
	escape := false
	var content strings.Builder
	for s.current < len(src) {
		c := src[s.current]
		if c == '\\' && !escape {
			escape = true
		} else {
			if c == '"' && !escape {
				s.current++
				return Token{Kind: TokenString, Text: content.String()}, true, nil
			} else if c == 'n' && escape {
				content.WriteRune('\n')
			} else if c == 't' && escape {
				content.WriteRune('\t')
			} else {
				content.WriteRune(c)
				if c == '\n' {
					s.line++
				}
			}
			escape = false
		}
		s.current++
	}
	// The extra character accounts for the missing closing quote.
	tok := Token{Kind: TokenString, Text: content.String()}
	data.push(tok, s.start, len(src)-s.start+1, startLine)
	return Token{}, false, &ScanError{Kind: UnexpectedEOF, Line: startLine, Offset: s.start}
}

func (s *Scanner) scanIdentifier(src []rune) (Token, bool) {
	if !isAlpha(src[s.current]) {
		return Token{}, false
	}
	start := s.current
	for s.current < len(src) && isAlphanum(src[s.current]) {
		s.current++
	}
	return Token{Kind: TokenIdentifier, Text: string(src[start:s.current])}, true
}

// scanNumber consumes a decimal, hexadecimal or binary literal. Base
// prefixes require a literal leading 0, so "5x" scans as the number 5
// followed by the identifier x.
func (s *Scanner) scanNumber(src []rune) (Token, bool) {
	if !isDigit(src[s.current]) {
		return Token{}, false
	}
	if src[s.current] == '0' && s.current+2 < len(src) {
		switch src[s.current+1] {
		case 'x', 'X':
			s.current += 2
			return s.scanHexNumber(src), true
		case 'b', 'B':
			s.current += 2
			return s.scanBinaryNumber(src), true
		}
	}
	start := s.current
	var number float64
	for s.current < len(src) && isDigit(src[s.current]) {
		number = number*10 + float64(src[s.current]-'0')
		s.current++
	}
	if s.current+1 < len(src) && src[s.current] == '.' && isDigit(src[s.current+1]) {
		s.current++
		div := 1.0
		for s.current < len(src) && isDigit(src[s.current]) {
			number = number*10 + float64(src[s.current]-'0')
			div *= 10
			s.current++
		}
		number /= div
	}
	return Token{Kind: TokenNumber, Text: string(src[start:s.current]), Value: number}, true
}

func (s *Scanner) scanHexNumber(src []rune) Token {
	start := s.current
	var number float64
	for s.current < len(src) {
		d, ok := hexDigit(src[s.current])
		if !ok {
			break
		}
		number = number*16 + d
		s.current++
	}
	return Token{Kind: TokenNumber, Text: "0x" + string(src[start:s.current]), Value: number}
}

func (s *Scanner) scanBinaryNumber(src []rune) Token {
	start := s.current
	var number float64
	for s.current < len(src) && (src[s.current] == '0' || src[s.current] == '1') {
		number = number*2 + float64(src[s.current]-'0')
		s.current++
	}
	return Token{Kind: TokenNumber, Text: "0b" + string(src[start:s.current]), Value: number}
}

// matches reports whether the source at the current position starts with
// pat, comparing character by character with bounds checks.
func (s *Scanner) matches(pat string, src []rune) bool {
	i := 0
	for _, r := range pat {
		if s.current+i >= len(src) || src[s.current+i] != r {
			return false
		}
		i++
	}
	return true
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// isAlpha is deliberately ASCII-only: non-ASCII letters are not identifier
// characters and fall through to the unknown-token path.
func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphanum(c rune) bool {
	return isDigit(c) || isAlpha(c)
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func hexDigit(c rune) (float64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return float64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return float64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return float64(c-'A') + 10, true
	}
	return 0, false
}
