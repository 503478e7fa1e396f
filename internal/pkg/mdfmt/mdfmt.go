// Package mdfmt normalizes model output into consistent Markdown. It is a
// best-effort cosmetic rewriter, not a parser: code fences, nested lists and
// link syntax are not understood, and text that coincidentally matches the
// rules (an abbreviation before a capitalized word, say) gets rewritten too.
package mdfmt

import (
	"regexp"
	"strings"
)

var (
	bulletRe   = regexp.MustCompile(`(?m)^\s*\*`)
	emphasisRe = regexp.MustCompile(`-\s*\\(.+?):\\`)
	headingRe  = regexp.MustCompile(`(#+\s[^\n]+)`)
	sentenceRe = regexp.MustCompile(`([.!?])\s+([A-Z])`)
)

// Format applies the rewrite rules in order; later rules see the output of
// earlier ones. Empty input yields empty output.
func Format(text string) string {
	if text == "" {
		return ""
	}

	// Bullets use '-' instead of '*'.
	text = bulletRe.ReplaceAllString(text, "-")

	// Repair the malformed `- \word:\` emphasis pattern.
	text = emphasisRe.ReplaceAllString(text, "- *$1*:")

	// Line break after every heading line.
	text = headingRe.ReplaceAllString(text, "$1\n")

	// Paragraph break after a sentence end followed by a capital letter.
	text = sentenceRe.ReplaceAllString(text, "$1\n\n$2")

	return strings.TrimSpace(text)
}
