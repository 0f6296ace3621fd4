package insights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Deterministic(t *testing.T) {
	raw := `DocIntel ingests Documents and builds a Semantic index over their
contents. The extraction Pipeline handles scanned files through Optical
character recognition when the embedded text layer is missing entirely.
Queries are answered by Retrieval augmented generation over the index.`

	first := Parse("doc-1", raw)
	for i := 0; i < 5; i++ {
		again := Parse("doc-1", raw)
		assert.Equal(t, first, again, "identical input must yield identical output")
	}
}

func TestParse_StripsNoise(t *testing.T) {
	ins := Parse("doc-1", "Núm@#ers $and sümbols!! stay\n\nout 42, (kept).")

	assert.NotContains(t, ins.Summary, "@")
	assert.NotContains(t, ins.Summary, "!")
	assert.Contains(t, ins.Summary, "42,")
	assert.Contains(t, ins.Summary, "(kept)")
}

func TestParse_SummaryTruncation(t *testing.T) {
	long := strings.Repeat("abcd ", 200) // ~1000 chars after cleaning
	ins := Parse("doc-1", long)

	assert.Len(t, ins.Summary, summaryLength+len("..."))
	assert.True(t, strings.HasSuffix(ins.Summary, "..."))

	short := "A short document."
	assert.Equal(t, "A short document.", Parse("doc-1", short).Summary)
}

func TestParse_KeyPointSentenceBounds(t *testing.T) {
	tooShort := "Tiny sentence here"
	valid := "This sentence is comfortably inside the forty to one hundred sixty character window"
	tooLong := strings.Repeat("word ", 40)

	raw := tooShort + ". " + valid + ". " + tooLong + "."
	ins := Parse("doc-1", raw)

	require.Len(t, ins.KeyPoints, 1)
	assert.Equal(t, valid, ins.KeyPoints[0])
}

func TestParse_KeyPointCap(t *testing.T) {
	sentence := "Each of these sentences lands inside the accepted length window for key points"
	raw := strings.Repeat(sentence+". ", 9)

	ins := Parse("doc-1", raw)
	assert.Len(t, ins.KeyPoints, maxKeyPoints)
}

func TestParse_Entities(t *testing.T) {
	raw := "Kubernetes orchestrates workloads while Terraform provisions them. " +
		"Kubernetes appears twice and UPPER and lower and MiXed do not count."

	ins := Parse("doc-1", raw)

	assert.ElementsMatch(t, []string{"Kubernetes", "Terraform"}, ins.Entities)
}

func TestParse_EntityDedupAndSetEquality(t *testing.T) {
	// Seven distinct capitalised words longer than four characters,
	// some repeated.
	raw := "Aardvark Basilisk Chimera Direwolf Echidna Falconer Gryphon " +
		"Aardvark Chimera Gryphon"

	ins := Parse("doc-1", raw)

	assert.LessOrEqual(t, len(ins.Entities), maxEntities)
	assert.ElementsMatch(t, []string{
		"Aardvark", "Basilisk", "Chimera", "Direwolf", "Echidna", "Falconer", "Gryphon",
	}, ins.Entities)
}

func TestParse_EntityLengthBound(t *testing.T) {
	ins := Parse("doc-1", "Word Tiny Ab a Abcde")
	// Only words strictly longer than four characters qualify.
	assert.Equal(t, []string{"Abcde"}, ins.Entities)
}

func TestParse_EmptyInput(t *testing.T) {
	ins := Parse("doc-1", "")

	assert.Equal(t, "doc-1", ins.DocumentID)
	assert.Empty(t, ins.Summary)
	assert.Empty(t, ins.KeyPoints)
	assert.Empty(t, ins.Entities)
}

func TestIsTitleWord(t *testing.T) {
	tests := []struct {
		word  string
		title bool
	}{
		{"Hello", true},
		{"(Hello)", true},
		{"Hello,", true},
		{"hello", false},
		{"HELLO", false},
		{"HeLLo", false},
		{"1234", false},
		{"", false},
		// Uncased characters break a cased run.
		{"A1b", false},
		{"A1B", true},
		{"O'Brien", true},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.title, isTitleWord(tt.word))
		})
	}
}
