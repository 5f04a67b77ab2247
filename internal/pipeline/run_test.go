package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmarket-engine/internal/config"
	"jobmarket-engine/internal/ingest"
	"jobmarket-engine/internal/skills"
	"jobmarket-engine/internal/store"
)

const testCSV = `job_title,company_name,job_location,experience_required,salary_range,skills_required
Data Scientist,Acme,"Bangalore, India",3-5 years,"₹12,00,000","Python, SQL and machine learning"
Data Scientist,Acme,"Delhi, India",1 year,negotiable,duplicate of the first row
ML Engineer,Beta,"Pune, India",2-4 years,"₹9,00,000",Python and Docker
Analyst,Gamma,,,,spreadsheets all day
`

func testDeps(t *testing.T) Deps {
	t.Helper()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "jobs_raw.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testCSV), 0o644))

	db, err := store.Open(filepath.Join(dir, "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{}
	cfg.App.DataDir = dir
	cfg.Ingest.Dataset = csvPath
	cfg.Ingest.OutputDir = filepath.Join(dir, "outputs")
	cfg.Analyze.TopSkills = 10
	cfg.Analyze.TopCities = 10

	return Deps{
		Cfg:    cfg,
		DB:     db.Pool,
		Loader: ingest.NewCachedLoader(),
		Vocab:  skills.NewVocabulary([]string{"python", "sql", "machine learning", "docker"}),
	}
}

func TestRunEndToEnd(t *testing.T) {
	d := testDeps(t)
	res, err := Run(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Records)
	assert.Equal(t, 1, res.DuplicatesDropped)

	// python appears in two descriptions and ranks first
	require.NotEmpty(t, res.TopSkills)
	assert.Equal(t, "python", res.TopSkills[0].Key)
	assert.Equal(t, 2, res.TopSkills[0].Count)

	// the record with no location counts under the sentinel city
	cities := map[string]int{}
	for _, e := range res.TopCities {
		cities[e.Key] = e.Count
	}
	assert.Equal(t, 1, cities["bangalore"])
	assert.Equal(t, 1, cities["unknown"])

	// salary-less groups are absent from the curve
	for _, p := range res.SalaryByExp {
		assert.NotZero(t, p.MeanSalary)
	}

	require.NotNil(t, res.SalaryStats.Mean)
	assert.InDelta(t, (1200000+900000)/2.0, *res.SalaryStats.Mean, 1e-6)

	// insights file landed
	b, err := os.ReadFile(res.InsightsPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Top skill: python")

	// batch was persisted and is loadable
	batch, err := store.LoadRecords(context.Background(), d.DB, store.DefaultCollection)
	require.NoError(t, err)
	assert.Len(t, batch, 3)
}

func TestRunIsRepeatable(t *testing.T) {
	d := testDeps(t)
	first, err := Run(context.Background(), d)
	require.NoError(t, err)

	second, err := Run(context.Background(), d)
	require.NoError(t, err)

	// whole-dataset re-processing each run: the replace-save keeps results stable
	assert.Equal(t, first.Records, second.Records)
	assert.Equal(t, first.TopSkills, second.TopSkills)
	assert.Equal(t, first.TopCities, second.TopCities)
}

func TestRunMissingDataset(t *testing.T) {
	d := testDeps(t)
	d.Cfg.Ingest.Dataset = filepath.Join(t.TempDir(), "missing.csv")
	_, err := Run(context.Background(), d)
	assert.Error(t, err)
}
