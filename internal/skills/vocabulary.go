package skills

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"jobmarket-engine/internal/clean"
)

// Vocabulary is the fixed, ordered list of known skill phrases. Order only
// matters for deterministic iteration and serialization; matching itself is
// order-blind. Immutable after construction.
//
// Matching runs against normalized text, so each phrase is held in two
// forms: the spelling as configured (what reports and serialization show)
// and its normalized needle (what Contains actually tests). Without the
// needle form a phrase like "scikit-learn" could never match, since the
// normalizer strips the hyphen from every description.
type Vocabulary struct {
	phrases []string       // original spellings, lowercased
	needles []string       // normalized forms, parallel to phrases
	index   map[string]int // needle -> position, for dedup
}

func NewVocabulary(phrases []string) *Vocabulary {
	v := &Vocabulary{index: make(map[string]int, len(phrases))}
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		needle := clean.Normalize(p)
		if needle == "" {
			continue
		}
		if _, dup := v.index[needle]; dup {
			continue
		}
		v.index[needle] = len(v.phrases)
		v.phrases = append(v.phrases, p)
		v.needles = append(v.needles, needle)
	}
	return v
}

// LoadVocabulary reads a yaml list of phrases.
func LoadVocabulary(path string) (*Vocabulary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	var phrases []string
	if err := yaml.Unmarshal(b, &phrases); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}
	return NewVocabulary(phrases), nil
}

func (v *Vocabulary) Phrases() []string {
	out := make([]string, len(v.phrases))
	copy(out, v.phrases)
	return out
}

func (v *Vocabulary) Len() int { return len(v.phrases) }

// DefaultPhrases mirrors the stock skill list shipped with the engine.
var DefaultPhrases = []string{
	"python", "java", "c++", "r", "sql",
	"machine learning", "deep learning", "data analysis",
	"data science", "statistics",
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
	"matplotlib", "seaborn", "power bi", "tableau",
	"aws", "azure", "gcp",
	"spark", "hadoop",
	"nlp", "computer vision", "generative ai", "llm",
	"excel", "git", "docker", "kubernetes",
}
