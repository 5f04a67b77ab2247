package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jobmarket-engine/internal/config"
	"jobmarket-engine/internal/httpapi"
	"jobmarket-engine/internal/ingest"
	"jobmarket-engine/internal/pipeline"
	"jobmarket-engine/internal/skills"
	"jobmarket-engine/internal/store"
)

func main() {
	_ = godotenv.Load()

	runFlag := flag.Bool("run", false, "run the ingestion/analysis pipeline once")
	serveFlag := flag.Bool("serve", false, "serve the viewer API")
	datasetFlag := flag.String("dataset", "", "override ingest.dataset from config")
	flag.Parse()

	if !*runFlag && !*serveFlag {
		*runFlag = true
	}

	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("JOBMARKET_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config bootstrap failed: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed (%s): %v\n", userCfgPath, err)
		os.Exit(1)
	}
	cfg.App.DataDir = dataDir
	if *datasetFlag != "" {
		cfg.Ingest.Dataset = *datasetFlag
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := newLogger(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()
	sugar := log.Sugar()

	vocab, err := loadVocabulary(cfg)
	if err != nil {
		sugar.Fatalw("vocabulary load failed", "err", err)
	}

	db, err := store.Open(filepath.Join(dataDir, "jobmarket.db"))
	if err != nil {
		sugar.Fatalw("db open failed", "err", err)
	}
	defer db.Close()

	deps := pipeline.Deps{
		Cfg:    cfg,
		DB:     db.Pool,
		Loader: ingest.NewCachedLoader(),
		Vocab:  vocab,
		Log:    sugar,
	}

	if *runFlag {
		res, err := pipeline.Run(context.Background(), deps)
		if err != nil {
			sugar.Fatalw("pipeline failed", "err", err)
		}
		sugar.Infow("pipeline complete",
			"records", res.Records,
			"duplicates_dropped", res.DuplicatesDropped,
			"insights", res.InsightsPath,
		)
	}

	if !*serveFlag {
		return
	}

	mux := httpapi.NewMux(httpapi.Deps{
		DB:  db.Pool,
		Cfg: cfg,
		Log: sugar,
		RunPipeline: func(ctx context.Context) (pipeline.Result, error) {
			return pipeline.Run(ctx, deps)
		},
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover(sugar),
		httpapi.AccessLog(sugar),
		httpapi.RateLimit(20, 40),
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		sugar.Fatalw("listen failed", "addr", addr, "err", err)
	}
	sugar.Infow("engine listening", "addr", "http://"+addr, "data_dir", dataDir)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	sugar.Fatalw("server stopped", "err", srv.Serve(ln))
}

func newLogger(level, format string) *zap.Logger {
	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	var zcfg zap.Config
	if format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, _ := zcfg.Build()
	return logger
}

func loadVocabulary(cfg config.Config) (*skills.Vocabulary, error) {
	if cfg.Skills.VocabularyFile != "" {
		return skills.LoadVocabulary(cfg.Skills.VocabularyFile)
	}
	if len(cfg.Skills.Vocabulary) > 0 {
		return skills.NewVocabulary(cfg.Skills.Vocabulary), nil
	}
	return skills.NewVocabulary(skills.DefaultPhrases), nil
}
