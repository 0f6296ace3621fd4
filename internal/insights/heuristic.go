// Package insights derives structured insight records from raw
// document text without a model dependency.
//
// The heuristic parser is the offline path for OCR-degraded documents:
// fully deterministic, identical input always yields identical output.
package insights

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/docintel-labs/docintel/internal/core/domain"
)

// Heuristic bounds. These are the parser's own, tighter limits; the
// shared domain.Insight bounds still apply afterwards.
const (
	summaryLength     = 400
	maxKeyPoints      = 5
	minSentenceLength = 40
	maxSentenceLength = 160
	minEntityWord     = 4
	maxEntities       = 10
)

var (
	// Everything outside this set is OCR noise.
	nonText    = regexp.MustCompile(`[^a-zA-Z0-9.,() ]+`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Parse derives an insight record from raw text using only lexical
// heuristics. Safe on noisy OCR output.
func Parse(documentID, rawText string) *domain.Insight {
	text := strings.ReplaceAll(rawText, "\n", " ")
	text = nonText.ReplaceAllString(text, " ")
	text = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))

	ins := &domain.Insight{
		DocumentID: documentID,
		Summary:    summarise(text),
		KeyPoints:  keyPoints(text),
		Entities:   entities(text),
	}
	return ins.Sanitise()
}

// summarise takes the first summaryLength characters, marking truncation.
func summarise(text string) string {
	if len(text) > summaryLength {
		return text[:summaryLength] + "..."
	}
	return text
}

// keyPoints keeps sentences whose trimmed length falls strictly
// between the sentence bounds, in document order.
func keyPoints(text string) []string {
	var points []string
	for _, s := range strings.Split(text, ".") {
		s = strings.TrimSpace(s)
		if len(s) > minSentenceLength && len(s) < maxSentenceLength {
			points = append(points, s)
			if len(points) == maxKeyPoints {
				break
			}
		}
	}
	return points
}

// entities collects title-case words longer than minEntityWord chars,
// deduplicated in first-occurrence order so the output is stable.
func entities(text string) []string {
	seen := make(map[string]bool)
	var out []string

	for _, w := range strings.Fields(text) {
		if len(w) <= minEntityWord || !isTitleWord(w) || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
		if len(out) == maxEntities {
			break
		}
	}
	return out
}

// isTitleWord reports whether the word is title-case: an upper-case
// letter may only follow an uncased character, a lower-case letter may
// only follow a cased one, and at least one letter is required. Uncased
// characters (digits, punctuation) break a cased run, so "A1b" is not
// title-case while "A1B" is.
func isTitleWord(w string) bool {
	cased := false
	prevCased := false
	for _, r := range w {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}
