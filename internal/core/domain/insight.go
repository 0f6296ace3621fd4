package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Bounds for insight record fields. Applied by Sanitise regardless of
// how the record was produced.
const (
	// MaxSummaryLength is the maximum summary length in characters.
	MaxSummaryLength = 800

	// MaxKeyPoints is the maximum number of key points kept.
	MaxKeyPoints = 6

	// MinKeyPointLength is the minimum trimmed key point length.
	// Shorter entries are discarded as noise.
	MinKeyPointLength = 20

	// MaxEntities is the maximum number of entities kept.
	MaxEntities = 10

	// MinEntityLength and MaxEntityLength bound entity length.
	// Entities must be strictly between these values.
	MinEntityLength = 2
	MaxEntityLength = 40
)

// Insight is the bounded structured summary derived per document.
// Created once per ingested document and replaced wholesale if the
// same document is re-ingested.
type Insight struct {
	// DocumentID links to the Document this insight describes.
	DocumentID string

	// Summary is a short prose summary, at most MaxSummaryLength chars.
	Summary string

	// KeyPoints holds at most MaxKeyPoints salient points.
	KeyPoints []string

	// Entities holds at most MaxEntities unique named entities.
	Entities []string

	// GeneratedAt is when the insight was produced.
	GeneratedAt time.Time
}

// Sanitise enforces the field bounds in place and returns the insight.
// String fields never exceed their stated bounds regardless of how
// large the upstream output was. All bounds are in characters, not
// bytes, so multibyte text is never cut mid-rune.
func (i *Insight) Sanitise() *Insight {
	i.Summary = truncateRunes(i.Summary, MaxSummaryLength)

	points := make([]string, 0, MaxKeyPoints)
	for _, p := range i.KeyPoints {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) <= MinKeyPointLength {
			continue
		}
		points = append(points, p)
		if len(points) == MaxKeyPoints {
			break
		}
	}
	i.KeyPoints = points

	seen := make(map[string]bool)
	entities := make([]string, 0, MaxEntities)
	for _, e := range i.Entities {
		e = strings.TrimSpace(e)
		n := utf8.RuneCountInString(e)
		if n <= MinEntityLength || n >= MaxEntityLength {
			continue
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		entities = append(entities, e)
		if len(entities) == MaxEntities {
			break
		}
	}
	i.Entities = entities

	return i
}

// truncateRunes cuts s to at most limit characters.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
