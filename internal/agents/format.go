package agents

import (
	"strings"
	"unicode"
)

// DefaultMaxLines is the line budget for responder and summary output.
const DefaultMaxLines = 10

// TruncationNotice is appended when output is cut to the line budget.
const TruncationNotice = "[Response limited to summary. Ask for 'details' or 'full details' for complete information]"

var detailKeywords = []string{"detail", "full", "complete", "comprehensive"}

// WantsDetails reports whether the text asks for unabridged output.
func WantsDetails(userInput string, extra ...string) bool {
	lower := strings.ToLower(userInput)
	for _, set := range [][]string{detailKeywords, extra} {
		for _, kw := range set {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// Truncate keeps the first maxLines lines and appends TruncationNotice when
// anything was dropped.
func Truncate(text string, maxLines int) string {
	lines := strings.Split(text, "\n")
	if maxLines <= 0 || len(lines) <= maxLines {
		return text
	}
	return strings.Join(lines[:maxLines], "\n") + "\n" + TruncationNotice
}

// titleWords capitalises each space separated word: "in progress" -> "In Progress".
func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// labelTitle upper-cases every letter that follows a non-letter, so
// "for 100gb" becomes "For 100Gb".
func labelTitle(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

func rule70(ch string) string {
	return strings.Repeat(ch, 70)
}
