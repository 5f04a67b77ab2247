package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"jobmarket-engine/internal/pipeline"
	"jobmarket-engine/internal/store"
)

type RecordsHandler struct {
	DB *sql.DB
}

func (h RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	batch, err := store.LoadRecords(r.Context(), h.DB, store.DefaultCollection)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteError(w, r, http.StatusNotFound, "not_found",
				"no analyzed dataset yet; run the pipeline first")
			return
		}
		WriteError(w, r, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	limit := queryInt(r, "limit", 0)
	if limit > 0 && len(batch) > limit {
		batch = batch[:limit]
	}
	WriteJSON(w, http.StatusOK, batch)
}

type PipelineHandler struct {
	RunPipeline func(ctx context.Context) (pipeline.Result, error)
}

func (h PipelineHandler) Run(w http.ResponseWriter, r *http.Request) {
	res, err := h.RunPipeline(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "pipeline_error", err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, res)
}
