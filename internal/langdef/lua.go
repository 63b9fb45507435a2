package langdef

import "github.com/scanlex/scanlex/internal/scanner"

// Lua returns a Lua-like language configuration. The symbol list is ordered
// longest-first where entries share a prefix ("..." before ".."), as the
// scanner's greedy match requires; keywords rely on the boundary check, so
// plain alphabetical order is fine there.
func Lua() *scanner.Config {
	return &scanner.Config{
		Keywords: []string{
			"and", "break", "do", "else", "elseif", "end", "false", "for",
			"function", "if", "in", "local", "nil", "not", "or", "repeat",
			"return", "then", "true", "until", "while",
		},
		Symbols: []string{
			"...", "..", "==", "~=", "<=", ">=", "+", "-", "*", "/", "%",
			"^", "#", "<", ">", "=", "(", ")", "{", "}", "[", "]", ";",
			":", ",", ".",
		},
		LineComment:       "--",
		BlockCommentStart: "--[[",
		BlockCommentEnd:   "]]",
	}
}
