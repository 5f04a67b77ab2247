package skills

import (
	"go.uber.org/zap"

	"jobmarket-engine/internal/domain"
)

// Extractor tags each record in a batch with the serialized set of
// vocabulary phrases found in its description.
type Extractor struct {
	vocab *Vocabulary
	log   *zap.SugaredLogger
}

func NewExtractor(vocab *Vocabulary, log *zap.SugaredLogger) *Extractor {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Extractor{vocab: vocab, log: log}
}

// Extract returns a new batch with Skills populated. Records whose
// description matches nothing get an empty string, never a missing field.
func (e *Extractor) Extract(batch []domain.CanonicalRecord) []domain.CanonicalRecord {
	out := make([]domain.CanonicalRecord, len(batch))
	tagged := 0
	for i, rec := range batch {
		set := Match(rec.Description, e.vocab)
		rec.Skills = Serialize(set, e.vocab)
		if len(set) > 0 {
			tagged++
		}
		out[i] = rec
	}
	e.log.Infow("skills extracted", "records", len(batch), "tagged", tagged, "vocabulary", e.vocab.Len())
	return out
}
