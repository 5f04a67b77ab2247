package config

import (
	"errors"
	"fmt"
	"strings"

	"jobmarket-engine/internal/clean"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if strings.TrimSpace(cfg.Ingest.Dataset) == "" {
		errs = append(errs, "ingest.dataset is required")
	}
	if cfg.Analyze.TopSkills < 0 {
		errs = append(errs, "analyze.top_skills must be >= 0")
	}
	if cfg.Analyze.TopCities < 0 {
		errs = append(errs, "analyze.top_cities must be >= 0")
	}

	for i, phrase := range cfg.Skills.Vocabulary {
		switch {
		case strings.TrimSpace(phrase) == "":
			errs = append(errs, fmt.Sprintf("skills.vocabulary[%d] cannot be empty", i))
		case strings.Contains(phrase, ","):
			// the stored skill field is comma-joined; a comma inside a
			// phrase would shred it on deserialization
			errs = append(errs, fmt.Sprintf("skills.vocabulary[%d] %q may not contain commas", i, phrase))
		case clean.Normalize(phrase) == "":
			errs = append(errs, fmt.Sprintf("skills.vocabulary[%d] %q has no matchable characters", i, phrase))
		}
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not one of debug|info|warn|error", cfg.Logging.Level))
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("logging.format %q is not json or console", cfg.Logging.Format))
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
