// Package judge compares candidate program output against expected output,
// ignoring formatting differences that don't change meaning.
package judge

import (
	"regexp"
	"strings"
)

// Verdict classifies a single test case run.
type Verdict string

const (
	VerdictAccepted    Verdict = "Accepted"
	VerdictWrongAnswer Verdict = "Wrong Answer"
)

var (
	newlineRuns    = regexp.MustCompile(`\n+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// Incidental whitespace next to separators and brackets.
	aroundPunct = regexp.MustCompile(`\s*([,.:;()\[\]{}])\s*`)
)

// Normalize produces the canonical form of a program's output. Case is
// preserved intentionally: "Hello" and "hello" stay distinct.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = newlineRuns.ReplaceAllString(s, "\n")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, `"`, "'")
	s = aroundPunct.ReplaceAllString(s, "$1")
	return s
}

// Match reports whether actual output and expected output are equal after
// normalization.
func Match(actual, expected string) bool {
	return Normalize(actual) == Normalize(expected)
}

// Judge classifies a run by comparing its stdout to the expected output.
func Judge(stdout, expected string) Verdict {
	if Match(stdout, expected) {
		return VerdictAccepted
	}
	return VerdictWrongAnswer
}
