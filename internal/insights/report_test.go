package insights

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmarket-engine/internal/analyze"
)

func TestSummary(t *testing.T) {
	mean := 84000.0
	got := Summary(
		[]analyze.Entry{{Key: "python", Count: 12}},
		[]analyze.Entry{{Key: "bangalore", Count: 9}},
		analyze.SalaryStats{Mean: &mean},
	)
	assert.Equal(t, "Top skill: python\nTop hiring city: bangalore\nAverage salary: 84000.00", got)
}

func TestSummaryMissingEverything(t *testing.T) {
	got := Summary(nil, nil, analyze.SalaryStats{})
	assert.Equal(t, "Top skill: n/a\nTop hiring city: n/a\nAverage salary: n/a", got)
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := Write(dir, "Top skill: sql")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "insights.txt"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Top skill: sql\n", string(b))
}
