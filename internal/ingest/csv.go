package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobmarket-engine/internal/domain"
)

// Column aliases seen across exported datasets; applied after headers are
// lowercased, trimmed, and space-joined with underscores.
var headerAliases = map[string]string{
	"job_location":    "location",
	"salary_range":    "salary",
	"skills_required": "job_description",
	"company_name":    "company",
}

var requiredColumns = []string{"job_title", "company"}

// SchemaError reports columns the dataset is missing after alias mapping.
// Validation happens once here so downstream consumers never re-check.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("ingest: dataset missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ReadCSV loads a raw dataset. Headers are canonicalized and alias-mapped;
// unknown columns are ignored; rows shorter than the header are padded with
// empty fields rather than rejected.
func ReadCSV(path string) ([]domain.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return readCSV(f)
}

func readCSV(r io.Reader) ([]domain.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := map[string]int{}
	for i, h := range header {
		cols[canonicalHeader(h)] = i
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []domain.RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		out = append(out, domain.RawRecord{
			Title:       field(row, "job_title"),
			Company:     field(row, "company"),
			Location:    field(row, "location"),
			Experience:  field(row, "experience_required"),
			Salary:      field(row, "salary"),
			Description: StripHTML(field(row, "job_description")),
		})
	}
	return out, nil
}

func canonicalHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.Join(strings.Fields(h), "_")
	if mapped, ok := headerAliases[h]; ok {
		return mapped
	}
	return h
}

// StripHTML flattens markup-bearing description fields to plain text; plain
// strings pass through untouched.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
