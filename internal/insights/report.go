// Package insights renders the short textual summary the report collaborator
// consumes: top skill, top hiring city, and the average salary.
package insights

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jobmarket-engine/internal/analyze"
)

// Summary builds the report text. Entries may be empty and every stat may be
// missing; absent data reads as "n/a" rather than a fabricated zero.
func Summary(topSkills, topCities []analyze.Entry, stats analyze.SalaryStats) string {
	var lines []string

	if len(topSkills) > 0 {
		lines = append(lines, fmt.Sprintf("Top skill: %s", topSkills[0].Key))
	} else {
		lines = append(lines, "Top skill: n/a")
	}

	if len(topCities) > 0 {
		lines = append(lines, fmt.Sprintf("Top hiring city: %s", topCities[0].Key))
	} else {
		lines = append(lines, "Top hiring city: n/a")
	}

	if stats.Mean != nil {
		lines = append(lines, fmt.Sprintf("Average salary: %.2f", *stats.Mean))
	} else {
		lines = append(lines, "Average salary: n/a")
	}

	return strings.Join(lines, "\n")
}

// Write saves the summary under dir/insights.txt, creating dir if needed.
func Write(dir string, summary string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, "insights.txt")
	if err := os.WriteFile(path, []byte(summary+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write insights: %w", err)
	}
	return path, nil
}
