package clean

import (
	"errors"

	"go.uber.org/zap"

	"jobmarket-engine/internal/domain"
)

// ErrEmptyBatch is returned when a run is handed zero rows; individual bad
// fields never fail a batch, they get sentinel values instead.
var ErrEmptyBatch = errors.New("clean: empty batch")

type Cleaner struct {
	log *zap.SugaredLogger
}

func NewCleaner(log *zap.SugaredLogger) *Cleaner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Cleaner{log: log}
}

// Clean normalizes the text fields of every record, derives city, the
// experience triple, and salary, then drops duplicates by (title, company),
// first occurrence winning. City and salary read the raw field (the
// normalizer would eat commas and currency marks the extractors key on).
func (c *Cleaner) Clean(batch []domain.RawRecord) ([]domain.CanonicalRecord, int, error) {
	if len(batch) == 0 {
		return nil, 0, ErrEmptyBatch
	}

	seen := map[[2]string]bool{}
	out := make([]domain.CanonicalRecord, 0, len(batch))
	dropped := 0

	for _, raw := range batch {
		rec := domain.CanonicalRecord{
			Title:       Normalize(raw.Title),
			Company:     Normalize(raw.Company),
			Location:    Normalize(raw.Location),
			Description: Normalize(raw.Description),
			City:        ExtractCity(raw.Location),
			Salary:      ExtractSalary(raw.Salary),
		}
		rec.ExpMin, rec.ExpMax, rec.ExpYears = ExtractExperience(raw.Experience)

		key := [2]string{rec.Title, rec.Company}
		if seen[key] {
			dropped++
			continue
		}
		seen[key] = true
		out = append(out, rec)
	}

	c.log.Infow("batch cleaned", "in", len(batch), "out", len(out), "duplicates_dropped", dropped)
	return out, dropped, nil
}
