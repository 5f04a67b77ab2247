package httpapi

import (
	"net/http"
	"time"
)

// NewMux returns the raw mux so main() can wrap it in middleware.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "time": time.Now().Format(time.RFC3339)})
		},
	}))

	// Aggregate views
	sh := StatsHandler{DB: d.DB, Cfg: d.Cfg}
	mux.HandleFunc("/stats/skills", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.TopSkills,
	}))
	mux.HandleFunc("/stats/cities", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Cities,
	}))
	mux.HandleFunc("/stats/salary-by-experience", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.SalaryByExperience,
	}))
	mux.HandleFunc("/stats/experience", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.ExperienceDistribution,
	}))
	mux.HandleFunc("/stats/salary", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Salary,
	}))

	// Records
	rh := RecordsHandler{DB: d.DB}
	mux.HandleFunc("/records", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.List,
	}))

	// Pipeline trigger
	ph := PipelineHandler{RunPipeline: d.RunPipeline}
	mux.HandleFunc("/pipeline/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ph.Run,
	}))

	return mux
}
