// Package skills matches a fixed vocabulary of skill phrases against job
// descriptions by plain substring containment. Overlapping matches are all
// kept ("data" and "data science" can both fire) and there is no word
// boundary check, so a one-letter phrase like "r" matches inside any word
// containing it. Known limitation, kept for parity with the datasets this
// engine was tuned on.
package skills

import (
	"strings"

	"jobmarket-engine/internal/clean"
)

// Match returns the deduplicated set of vocabulary phrases contained in
// text. Both sides of the containment test are normalized, so punctuation
// and case never block a match; the keys of the result are the phrases
// exactly as the vocabulary spells them.
func Match(text string, vocab *Vocabulary) map[string]bool {
	blob := clean.Normalize(text)
	found := make(map[string]bool)
	if blob == "" {
		return found
	}
	for i, needle := range vocab.needles {
		if strings.Contains(blob, needle) {
			found[vocab.phrases[i]] = true
		}
	}
	return found
}

// Serialize joins a matched set with ", " in vocabulary order, so the stored
// form is identical across runs regardless of map iteration order.
func Serialize(set map[string]bool, vocab *Vocabulary) string {
	if len(set) == 0 {
		return ""
	}
	out := make([]string, 0, len(set))
	for _, phrase := range vocab.phrases {
		if set[phrase] {
			out = append(out, phrase)
		}
	}
	return strings.Join(out, ", ")
}

// Deserialize splits a stored skill field back into individual phrases.
func Deserialize(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
