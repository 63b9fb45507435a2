// Package langdef provides language definitions for the scanner: a built-in
// Lua-like definition and a loader for JSON definition files.
package langdef

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	semver "github.com/Masterminds/semver/v3"

	"github.com/scanlex/scanlex/internal/scanner"
)

// Definition is the on-disk form of a language definition.
type Definition struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	// Engine is an optional semver constraint the running engine version
	// must satisfy, e.g. ">=0.1.0".
	Engine            string   `json:"engine,omitempty"`
	Keywords          []string `json:"keywords"`
	Symbols           []string `json:"symbols"`
	LineComment       string   `json:"line_comment,omitempty"`
	BlockCommentStart string   `json:"block_comment_start,omitempty"`
	BlockCommentEnd   string   `json:"block_comment_end,omitempty"`
}

// Load reads a definition file and builds a scanner configuration from it.
// Keyword and symbol lists are sorted by descending length, so file-sourced
// definitions need not uphold the scanner's greedy-match ordering contract
// themselves.
func Load(path, engineVersion string) (*scanner.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	var def Definition
	if err := json.Unmarshal(b, &def); err != nil {
		return nil, fmt.Errorf("failed to parse definition file: %w", err)
	}
	return def.Config(engineVersion)
}

// Config validates the definition and builds a scanner configuration.
func (def *Definition) Config(engineVersion string) (*scanner.Config, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("definition has no name")
	}
	if def.Version != "" {
		if _, err := semver.NewVersion(def.Version); err != nil {
			return nil, fmt.Errorf("definition %s: invalid version %q: %w", def.Name, def.Version, err)
		}
	}
	if def.Engine != "" {
		c, err := semver.NewConstraint(def.Engine)
		if err != nil {
			return nil, fmt.Errorf("definition %s: invalid engine constraint %q: %w", def.Name, def.Engine, err)
		}
		ev, err := semver.NewVersion(engineVersion)
		if err != nil {
			return nil, fmt.Errorf("invalid engine version %q: %w", engineVersion, err)
		}
		if !c.Check(ev) {
			return nil, fmt.Errorf("definition %s requires engine %s, running %s", def.Name, def.Engine, engineVersion)
		}
	}
	if (def.BlockCommentStart == "") != (def.BlockCommentEnd == "") {
		return nil, fmt.Errorf("definition %s: block comment markers must be set together", def.Name)
	}
	cfg := &scanner.Config{
		Keywords:          sortByLength(def.Keywords),
		Symbols:           sortByLength(def.Symbols),
		LineComment:       def.LineComment,
		BlockCommentStart: def.BlockCommentStart,
		BlockCommentEnd:   def.BlockCommentEnd,
	}
	return cfg, nil
}

// sortByLength returns a copy of list stably sorted by descending character
// count, the order the scanner's first-match-wins lookup needs for greedy
// longest-match behavior.
func sortByLength(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i]) > utf8.RuneCountInString(out[j])
	})
	return out
}
