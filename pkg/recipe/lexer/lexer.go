// Package lexer classifies recipe source text line by line into typed tokens.
//
// Every input line, blank lines included, produces exactly one token. Rules are
// tried in a fixed priority order and the first match wins:
//
//	# Title            -> KindTitle
//	## Step header     -> KindStepHeader
//	- Ingredient line  -> KindIngredient
//	---                -> KindDivider
//	Category: Bread    -> KindFrontMatter (also Makes:, Serves:)
//	(whitespace only)  -> KindBlank
//	anything else      -> KindProse
package lexer

import (
	"regexp"
	"strings"
)

// Kind is the classification of a single source line.
type Kind string

const (
	KindTitle       Kind = "title"
	KindStepHeader  Kind = "step_header"
	KindIngredient  Kind = "ingredient"
	KindDivider     Kind = "divider"
	KindFrontMatter Kind = "front_matter"
	KindBlank       Kind = "blank"
	KindProse       Kind = "prose"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// Token is one classified source line. Tokens are immutable once produced.
type Token struct {
	// Kind is the line classification.
	Kind Kind

	// Content is the meaningful part of the line: the header text, the
	// ingredient text after "- ", the front matter value, or the verbatim
	// line for prose. Empty for blanks and dividers.
	Content string

	// Key is the front matter key (Category, Makes, Serves). Only set for
	// KindFrontMatter.
	Key string

	// Text is the verbatim source line.
	Text string

	// Line is the 1-based line number.
	Line int
}

type rule struct {
	kind    Kind
	pattern *regexp.Regexp
}

var rules = []rule{
	{KindTitle, regexp.MustCompile(`^# (.+)$`)},
	{KindStepHeader, regexp.MustCompile(`^## (.+)$`)},
	{KindIngredient, regexp.MustCompile(`^- (.+)$`)},
	{KindDivider, regexp.MustCompile(`^---\s*$`)},
	{KindFrontMatter, regexp.MustCompile(`^(Category|Makes|Serves):\s+(.+)$`)},
	{KindBlank, regexp.MustCompile(`^\s*$`)},
}

// Tokenize classifies each line of text. It never fails.
func Tokenize(text string) []Token {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	tokens := make([]Token, 0, len(lines))
	for i, line := range lines {
		tokens = append(tokens, Classify(strings.TrimSuffix(line, "\r"), i+1))
	}
	return tokens
}

// Classify produces the token for a single line.
func Classify(line string, lineNumber int) Token {
	tok := Token{Kind: KindProse, Content: line, Text: line, Line: lineNumber}

	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		tok.Kind = r.kind
		switch r.kind {
		case KindFrontMatter:
			tok.Key = m[1]
			tok.Content = m[2]
		case KindDivider, KindBlank:
			tok.Content = ""
		default:
			tok.Content = m[1]
		}
		return tok
	}
	return tok
}
