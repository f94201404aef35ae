// Package diff renders unified diffs of rewritten files.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const contextLines = 3

// Unified returns the unified diff between the previous and rewritten
// content of a file, or "" when they are identical.
func Unified(path string, before, after []byte) (string, error) {
	if string(before) == string(after) {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(before),
		B:        splitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  contextLines,
	})
}

// splitLines keeps the line terminators. A final line without one gets a
// newline so hunks stay line-oriented.
func splitLines(content []byte) []string {
	lines := strings.SplitAfter(string(content), "\n")
	last := len(lines) - 1
	if lines[last] == "" {
		return lines[:last]
	}
	lines[last] += "\n"
	return lines
}
