package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docintel-labs/docintel/internal/core/domain"
)

// wordText builds a text of n distinct words "w0 w1 ... w(n-1)".
func wordText(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(words, " ")
}

func TestChunk_SingleWindow(t *testing.T) {
	chunks, err := Chunk("one two three", "doc-1", 10, 2)
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	assert.Equal(t, "one two three", chunks[0].Content)
	assert.Equal(t, 0, chunks[0].Position)
	assert.Equal(t, "doc-1", chunks[0].DocumentID)
	assert.NotEmpty(t, chunks[0].ID)
}

func TestChunk_BoundariesAndOverlap(t *testing.T) {
	// 1200 words, window 500, overlap 100: exactly three windows at
	// [0:500], [400:900], [800:1200].
	text := wordText(1200)

	chunks, err := Chunk(text, "doc-1", 500, 100)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	words := strings.Fields(text)
	assert.Equal(t, strings.Join(words[0:500], " "), chunks[0].Content)
	assert.Equal(t, strings.Join(words[400:900], " "), chunks[1].Content)
	assert.Equal(t, strings.Join(words[800:1200], " "), chunks[2].Content)
}

func TestChunk_PositionsGaplessFromZero(t *testing.T) {
	chunks, err := Chunk(wordText(95), "doc-1", 10, 3)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	for i, c := range chunks {
		assert.Equal(t, i, c.Position)
	}
}

func TestChunk_ReconstructsWordSequence(t *testing.T) {
	const window, overlap = 10, 4
	text := wordText(53)
	words := strings.Fields(text)

	chunks, err := Chunk(text, "doc-1", window, overlap)
	require.NoError(t, err)

	// Rejoining windows while skipping each window's leading overlap
	// must reproduce the original word sequence.
	var rebuilt []string
	for i, c := range chunks {
		cw := strings.Fields(c.Content)
		assert.NotEmpty(t, cw, "chunk %d must not be empty", i)
		if i == 0 {
			rebuilt = append(rebuilt, cw...)
			continue
		}
		if len(cw) > overlap {
			rebuilt = append(rebuilt, cw[overlap:]...)
		}
	}

	assert.Equal(t, words, rebuilt)
}

func TestChunk_FinalShortWindowEmitted(t *testing.T) {
	chunks, err := Chunk(wordText(12), "doc-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, chunks, 2)

	assert.Len(t, strings.Fields(chunks[1].Content), 2)
}

func TestChunk_NormalisesWhitespace(t *testing.T) {
	chunks, err := Chunk("  alpha \t beta\n\ngamma  ", "doc-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	assert.Equal(t, "alpha beta gamma", chunks[0].Content)
}

func TestChunk_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		chunks, err := Chunk(text, "doc-1", 10, 2)
		require.NoError(t, err)
		assert.Empty(t, chunks)
	}
}

func TestChunk_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		window  int
		overlap int
	}{
		{"overlap equals window", 10, 10},
		{"overlap exceeds window", 10, 15},
		{"zero window", 0, 0},
		{"negative overlap", 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := Chunk(wordText(50), "doc-1", tt.window, tt.overlap)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidChunking)
			assert.Nil(t, chunks)
		})
	}
}

func TestDefaults(t *testing.T) {
	assert.Less(t, DefaultOverlap, DefaultWindowSize)
}
