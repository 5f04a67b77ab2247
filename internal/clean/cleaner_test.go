package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmarket-engine/internal/domain"
)

func TestCleanDerivesFields(t *testing.T) {
	c := NewCleaner(nil)
	out, dropped, err := c.Clean([]domain.RawRecord{{
		Title:       "Data Scientist (NLP)",
		Company:     "Acme Corp.",
		Location:    "Bangalore, India",
		Experience:  "3-5 years",
		Salary:      "₹12,00,000",
		Description: "Python, SQL & Machine-Learning!",
	}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Zero(t, dropped)

	rec := out[0]
	assert.Equal(t, "data scientist nlp", rec.Title)
	assert.Equal(t, "acme corp", rec.Company)
	assert.Equal(t, "bangalore india", rec.Location)
	assert.Equal(t, "python sql machinelearning", rec.Description)
	assert.Equal(t, "bangalore", rec.City)
	assert.Equal(t, 3, rec.ExpMin)
	assert.Equal(t, 5, rec.ExpMax)
	assert.InDelta(t, 4.0, rec.ExpYears, 1e-9)
	require.NotNil(t, rec.Salary)
	assert.InDelta(t, 1200000, *rec.Salary, 1e-9)
	assert.Empty(t, rec.Skills)
}

func TestCleanSentinelsForMissingFields(t *testing.T) {
	c := NewCleaner(nil)
	out, _, err := c.Clean([]domain.RawRecord{{Title: "Analyst", Company: "X"}})
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0]
	assert.Equal(t, domain.UnknownCity, rec.City)
	assert.Zero(t, rec.ExpMin)
	assert.Zero(t, rec.ExpMax)
	assert.Zero(t, rec.ExpYears)
	assert.Nil(t, rec.Salary)
}

func TestCleanDeduplicatesByTitleCompany(t *testing.T) {
	c := NewCleaner(nil)
	out, dropped, err := c.Clean([]domain.RawRecord{
		{Title: "ML Engineer", Company: "Acme", Location: "Pune, India"},
		{Title: "ML Engineer", Company: "Acme", Location: "Delhi, India"}, // dup, different elsewhere
		{Title: "ML Engineer", Company: "Other", Location: "Delhi, India"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	require.Len(t, out, 2)
	// first occurrence wins
	assert.Equal(t, "pune", out[0].City)
	assert.Equal(t, "delhi", out[1].City)
}

func TestCleanDeduplicatesAfterNormalization(t *testing.T) {
	c := NewCleaner(nil)
	out, dropped, err := c.Clean([]domain.RawRecord{
		{Title: "Data Engineer", Company: "Beta Labs"},
		{Title: "  DATA engineer!", Company: "beta labs."},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	assert.Len(t, out, 1)
}

func TestCleanEmptyBatch(t *testing.T) {
	c := NewCleaner(nil)
	_, _, err := c.Clean(nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)
}
