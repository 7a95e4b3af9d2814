// Package fields applies pattern matchers and a fixed-vocabulary skill
// lookup against extracted resume text.
package fields

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	educationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(Ph\.?D\.?|Doctor of Philosophy)\b`),
		regexp.MustCompile(`(?i)\b(M\.?S\.?|MBA|Master of [A-Za-z]+)\b`),
		regexp.MustCompile(`(?i)\b(B\.?S\.?|B\.?A\.?|Bachelor of [A-Za-z]+)\b`),
		regexp.MustCompile(`(?i)\b(Associate'?s? Degree|A\.?A\.?|A\.?S\.?)\b`),
	}

	tokenEdges = regexp.MustCompile(`^[^\pL\pN]+|[^\pL\pN]+$`)
)

// Email returns the first email-shaped substring, or "" when none exists.
func Email(text string) string {
	return emailPattern.FindString(text)
}

// Phone returns the first phone-shaped substring, or "" when none exists.
// Matching is purely syntactic; no number-plan validation happens here.
func Phone(text string) string {
	return phonePattern.FindString(text)
}

// Skills intersects lowercased tokens with the fixed skill vocabulary and
// returns the matches sorted lexicographically. Token punctuation edges are
// stripped before lookup so "Docker." still counts as docker.
func Skills(tokens []string) []string {
	found := make(map[string]struct{})
	for _, tok := range tokens {
		norm := normalizeToken(tok)
		if norm == "" {
			continue
		}
		if _, ok := skillVocabulary[norm]; ok {
			found[norm] = struct{}{}
		}
	}
	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// Education returns degree mentions with up to 50 characters of surrounding
// context per match.
func Education(text string) []string {
	var out []string
	for _, pattern := range educationPatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			start := loc[0] - 50
			if start < 0 {
				start = 0
			}
			end := loc[1] + 50
			if end > len(text) {
				end = len(text)
			}
			// The window is in bytes; pull both edges back onto rune
			// starts so the slice stays valid UTF-8.
			for start > 0 && !utf8.RuneStart(text[start]) {
				start--
			}
			for end < len(text) && !utf8.RuneStart(text[end]) {
				end--
			}
			out = append(out, strings.TrimSpace(text[start:end]))
		}
	}
	return out
}

func normalizeToken(tok string) string {
	norm := strings.ToLower(strings.TrimSpace(tok))
	return tokenEdges.ReplaceAllString(norm, "")
}
