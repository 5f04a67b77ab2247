package httpapi

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"jobmarket-engine/internal/config"
	"jobmarket-engine/internal/pipeline"
)

type Deps struct {
	DB  *sql.DB
	Cfg config.Config
	Log *zap.SugaredLogger

	// Pipeline entrypoint (inject for testability)
	RunPipeline func(ctx context.Context) (pipeline.Result, error)
}
