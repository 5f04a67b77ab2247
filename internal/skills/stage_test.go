package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmarket-engine/internal/domain"
)

func TestExtractorTagsBatch(t *testing.T) {
	vocab := NewVocabulary([]string{"python", "sql", "docker"})
	e := NewExtractor(vocab, nil)

	in := []domain.CanonicalRecord{
		{Title: "a", Description: "python and sql daily"},
		{Title: "b", Description: "managing people"},
		{Title: "c", Description: "docker, docker, docker"},
	}
	out := e.Extract(in)
	require.Len(t, out, 3)

	assert.Equal(t, "python, sql", out[0].Skills)
	assert.Equal(t, "", out[1].Skills) // empty set, not missing
	assert.Equal(t, "docker", out[2].Skills)

	// input untouched, output is a fresh batch
	assert.Empty(t, in[0].Skills)
}

func TestExtractorEmptyBatch(t *testing.T) {
	e := NewExtractor(NewVocabulary(nil), nil)
	assert.Empty(t, e.Extract(nil))
}
