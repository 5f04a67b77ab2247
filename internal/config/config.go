// engine/internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Ingest struct {
		Dataset   string `yaml:"dataset"`    // raw CSV path
		OutputDir string `yaml:"output_dir"` // insights report lands here
	} `yaml:"ingest"`

	Analyze struct {
		TopSkills int `yaml:"top_skills"`
		TopCities int `yaml:"top_cities"`
	} `yaml:"analyze"`

	Skills struct {
		// Inline phrase list; falls back to the built-in list when empty.
		Vocabulary []string `yaml:"vocabulary"`
		// Optional yaml file holding the list; wins over the inline form.
		VocabularyFile string `yaml:"vocabulary_file"`
	} `yaml:"skills"`

	Logging struct {
		Level  string `yaml:"level"`  // debug | info | warn | error
		Format string `yaml:"format"` // json | console
	} `yaml:"logging"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return applyDefaults(cfg), err
}

func applyDefaults(cfg Config) Config {
	if cfg.App.Port == 0 {
		cfg.App.Port = 8090
	}
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = "data"
	}
	if cfg.Ingest.OutputDir == "" {
		cfg.Ingest.OutputDir = "outputs"
	}
	if cfg.Analyze.TopSkills == 0 {
		cfg.Analyze.TopSkills = 10
	}
	if cfg.Analyze.TopCities == 0 {
		cfg.Analyze.TopCities = 10
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	return cfg
}
