package httpapi

import (
	"database/sql"
	"errors"
	"net/http"

	"jobmarket-engine/internal/analyze"
	"jobmarket-engine/internal/config"
	"jobmarket-engine/internal/domain"
	"jobmarket-engine/internal/store"
)

// StatsHandler serves the aggregate views the viewer renders. Everything is
// computed from the stored collection on demand; the handler never mutates.
type StatsHandler struct {
	DB  *sql.DB
	Cfg config.Config
}

func (h StatsHandler) load(w http.ResponseWriter, r *http.Request) ([]domain.CanonicalRecord, bool) {
	batch, err := store.LoadRecords(r.Context(), h.DB, store.DefaultCollection)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteError(w, r, http.StatusNotFound, "not_found",
				"no analyzed dataset yet; run the pipeline first")
			return nil, false
		}
		WriteError(w, r, http.StatusInternalServerError, "storage_error", err.Error())
		return nil, false
	}
	return batch, true
}

func (h StatsHandler) TopSkills(w http.ResponseWriter, r *http.Request) {
	batch, ok := h.load(w, r)
	if !ok {
		return
	}
	n := queryInt(r, "n", h.Cfg.Analyze.TopSkills)
	WriteJSON(w, http.StatusOK, analyze.TopSkills(batch, n))
}

func (h StatsHandler) Cities(w http.ResponseWriter, r *http.Request) {
	batch, ok := h.load(w, r)
	if !ok {
		return
	}
	n := queryInt(r, "n", h.Cfg.Analyze.TopCities)
	WriteJSON(w, http.StatusOK, analyze.CityCounts(batch, n))
}

func (h StatsHandler) SalaryByExperience(w http.ResponseWriter, r *http.Request) {
	batch, ok := h.load(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, analyze.SalaryByExperience(batch))
}

func (h StatsHandler) ExperienceDistribution(w http.ResponseWriter, r *http.Request) {
	batch, ok := h.load(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, analyze.ExperienceDistribution(batch))
}

func (h StatsHandler) Salary(w http.ResponseWriter, r *http.Request) {
	batch, ok := h.load(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, analyze.ComputeSalaryStats(batch))
}
