// Package textproc normalizes user questions before they are sent to an
// LLM provider: lowercase, strip punctuation, collapse whitespace, tokenize.
package textproc

import "strings"

// punctuation is the fixed ASCII set removed during normalization.
// Characters are removed, not replaced by spaces, so "don't" becomes "dont".
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ProcessedQuestion is an immutable per-request value derived from the raw
// question. Joining Tokens with single spaces always reproduces Normalized.
type ProcessedQuestion struct {
	Original   string
	Normalized string
	Tokens     []string
}

// Normalize runs the full pipeline over any input string. It never fails;
// input with no alphanumeric content yields an empty token sequence.
func Normalize(raw string) ProcessedQuestion {
	lowered := strings.ToLower(raw)
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, lowered)

	// Fields both collapses whitespace runs and drops empty tokens, so the
	// join of the tokens is the canonical normalized form.
	tokens := strings.Fields(stripped)
	return ProcessedQuestion{
		Original:   raw,
		Normalized: strings.Join(tokens, " "),
		Tokens:     tokens,
	}
}
