// Package pipeline wires the batch stages end to end: load the raw dataset,
// clean it, tag skills, replace the stored collection, aggregate, and write
// the insight report. One finite in-memory batch per run, no streaming.
package pipeline

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"jobmarket-engine/internal/analyze"
	"jobmarket-engine/internal/clean"
	"jobmarket-engine/internal/config"
	"jobmarket-engine/internal/ingest"
	"jobmarket-engine/internal/insights"
	"jobmarket-engine/internal/skills"
	"jobmarket-engine/internal/store"
)

type Deps struct {
	Cfg    config.Config
	DB     *sql.DB
	Loader *ingest.CachedLoader
	Vocab  *skills.Vocabulary
	Log    *zap.SugaredLogger
}

type Result struct {
	Records           int                        `json:"records"`
	DuplicatesDropped int                        `json:"duplicates_dropped"`
	TopSkills         []analyze.Entry            `json:"top_skills"`
	TopCities         []analyze.Entry            `json:"top_cities"`
	SalaryByExp       []analyze.SalaryPoint      `json:"salary_by_experience"`
	ExperienceDist    []analyze.ExperienceBucket `json:"experience_distribution"`
	SalaryStats       analyze.SalaryStats        `json:"salary_stats"`
	InsightsPath      string                     `json:"insights_path"`
}

// Run executes the whole pipeline under a data-dir lock so two runs can
// never interleave their replace-saves of the jobs collection.
func Run(ctx context.Context, d Deps) (Result, error) {
	log := d.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	lock := flock.New(filepath.Join(d.Cfg.App.DataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return Result{}, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return Result{}, fmt.Errorf("another pipeline run holds the lock")
	}
	defer func() { _ = lock.Unlock() }()

	raw, err := d.Loader.Load(d.Cfg.Ingest.Dataset)
	if err != nil {
		return Result{}, fmt.Errorf("load dataset: %w", err)
	}
	log.Infow("dataset loaded", "path", d.Cfg.Ingest.Dataset, "rows", len(raw))

	cleaner := clean.NewCleaner(log)
	batch, dropped, err := cleaner.Clean(raw)
	if err != nil {
		return Result{}, fmt.Errorf("clean batch: %w", err)
	}

	batch = skills.NewExtractor(d.Vocab, log).Extract(batch)

	if err := store.SaveRecords(ctx, d.DB, store.DefaultCollection, batch); err != nil {
		return Result{}, fmt.Errorf("save batch: %w", err)
	}
	log.Infow("batch saved", "collection", store.DefaultCollection, "records", len(batch))

	res := Result{
		Records:           len(batch),
		DuplicatesDropped: dropped,
		TopSkills:         analyze.TopSkills(batch, d.Cfg.Analyze.TopSkills),
		TopCities:         analyze.CityCounts(batch, d.Cfg.Analyze.TopCities),
		SalaryByExp:       analyze.SalaryByExperience(batch),
		ExperienceDist:    analyze.ExperienceDistribution(batch),
		SalaryStats:       analyze.ComputeSalaryStats(batch),
	}

	summary := insights.Summary(res.TopSkills, res.TopCities, res.SalaryStats)
	path, err := insights.Write(d.Cfg.Ingest.OutputDir, summary)
	if err != nil {
		return Result{}, err
	}
	res.InsightsPath = path
	log.Infow("insights written", "path", path)

	return res, nil
}
