package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchBasic(t *testing.T) {
	vocab := NewVocabulary([]string{"python", "sql"})
	got := Match("Looking for Python and SQL expert", vocab)
	assert.Equal(t, map[string]bool{"python": true, "sql": true}, got)
}

func TestMatchIsCaseAndPunctuationBlind(t *testing.T) {
	vocab := NewVocabulary([]string{"machine learning", "c++"})
	got := Match("Machine-Learning? No. MACHINE LEARNING and C++!", vocab)
	assert.True(t, got["machine learning"])
	assert.True(t, got["c++"])
}

func TestMatchKeepsOverlappingPhrases(t *testing.T) {
	// no longest-match priority: both the substring and the longer phrase fire
	vocab := NewVocabulary([]string{"data", "data science"})
	got := Match("strong data science background", vocab)
	assert.True(t, got["data"])
	assert.True(t, got["data science"])
}

func TestMatchHyphenatedPhrase(t *testing.T) {
	// the normalizer strips hyphens and dots from descriptions; phrases
	// spelled with them still have to match, and still report as configured
	vocab := NewVocabulary([]string{"scikit-learn", "node.js", "power bi"})
	got := Match("Experience with scikit-learn, Node.js and Power BI", vocab)
	assert.True(t, got["scikit-learn"])
	assert.True(t, got["node.js"])
	assert.True(t, got["power bi"])

	assert.Equal(t, "scikit-learn, node.js, power bi", Serialize(got, vocab))
}

func TestMatchNoWordBoundary(t *testing.T) {
	// documented limitation: "r" the language matches inside "research"
	vocab := NewVocabulary([]string{"r"})
	got := Match("research role", vocab)
	assert.True(t, got["r"])
}

func TestMatchEmptyText(t *testing.T) {
	vocab := NewVocabulary([]string{"python"})
	assert.Empty(t, Match("", vocab))
}

func TestSerializeFollowsVocabularyOrder(t *testing.T) {
	vocab := NewVocabulary([]string{"python", "sql", "aws", "docker"})
	set := map[string]bool{"docker": true, "python": true, "aws": true}
	// stable across runs regardless of map iteration order
	for i := 0; i < 20; i++ {
		assert.Equal(t, "python, aws, docker", Serialize(set, vocab))
	}
}

func TestSerializeEmptySet(t *testing.T) {
	vocab := NewVocabulary([]string{"python"})
	assert.Equal(t, "", Serialize(map[string]bool{}, vocab))
}

func TestDeserialize(t *testing.T) {
	assert.Equal(t, []string{"python", "sql"}, Deserialize("python, sql"))
	assert.Equal(t, []string{"python"}, Deserialize("  python  "))
	assert.Nil(t, Deserialize(""))
	assert.Nil(t, Deserialize("   "))
}

func TestSerializeRoundTrip(t *testing.T) {
	vocab := NewVocabulary([]string{"python", "sql", "machine learning"})
	set := Match("python with machine learning and sql", vocab)
	require.Len(t, set, 3)

	back := Deserialize(Serialize(set, vocab))
	got := map[string]bool{}
	for _, s := range back {
		got[s] = true
	}
	assert.Equal(t, set, got)
}

func TestVocabularyDropsBlanksAndDuplicates(t *testing.T) {
	vocab := NewVocabulary([]string{" Python ", "", "python", "SQL"})
	assert.Equal(t, []string{"python", "sql"}, vocab.Phrases())
}

func TestVocabularyDedupesByNormalizedForm(t *testing.T) {
	// "node.js" and "nodejs" normalize to the same needle; first spelling
	// wins. A phrase with nothing matchable left is dropped.
	vocab := NewVocabulary([]string{"node.js", "nodejs", "---"})
	assert.Equal(t, []string{"node.js"}, vocab.Phrases())
}
