// Package analyze turns a cleaned, skill-tagged batch into the ranked views
// and scalar statistics the viewer and report consume. Every function is
// read-only over its input.
package analyze

import (
	"sort"

	"jobmarket-engine/internal/domain"
	"jobmarket-engine/internal/skills"
)

// Entry is one row of a ranked frequency view.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// SalaryPoint is one point on the mean-salary-by-experience curve.
type SalaryPoint struct {
	ExperienceYears float64 `json:"experience_years"`
	MeanSalary      float64 `json:"mean_salary"`
}

// ExperienceBucket is one row of the experience distribution.
type ExperienceBucket struct {
	ExperienceYears float64 `json:"experience_years"`
	Count           int     `json:"count"`
}

// SalaryStats are computed over non-missing salaries only. All fields are
// nil when no record carries a salary; rendering that as 0 is the consumer's
// call, not ours.
type SalaryStats struct {
	Mean   *float64 `json:"mean"`
	Median *float64 `json:"median"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
}

// rankCounts builds a frequency view over keys in arrival order, sorted by
// count descending. Ties keep first-seen order: the sort is stable and the
// input order is the encounter order, which kills a whole class of
// run-to-run nondeterminism in the rankings.
func rankCounts(keys []string, n int) []Entry {
	counts := map[string]int{}
	var order []string
	for _, k := range keys {
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	entries := make([]Entry, 0, len(order))
	for _, k := range order {
		entries = append(entries, Entry{Key: k, Count: counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// TopSkills flattens every record's skill set and ranks phrase frequency.
// A record with k skills contributes k entries. Top n, or fewer if the
// batch has fewer distinct skills.
func TopSkills(batch []domain.CanonicalRecord, n int) []Entry {
	var all []string
	for _, rec := range batch {
		all = append(all, skills.Deserialize(rec.Skills)...)
	}
	return rankCounts(all, n)
}

// CityCounts ranks hiring cities; the "unknown" sentinel counts as a city.
func CityCounts(batch []domain.CanonicalRecord, n int) []Entry {
	cities := make([]string, 0, len(batch))
	for _, rec := range batch {
		cities = append(cities, rec.City)
	}
	return rankCounts(cities, n)
}

// SalaryByExperience groups records by exact ExpYears value and averages the
// salaries inside each group, skipping missing ones. A group where every
// salary is missing contributes no point at all. Ascending by experience.
func SalaryByExperience(batch []domain.CanonicalRecord) []SalaryPoint {
	type acc struct {
		sum float64
		n   int
	}
	groups := map[float64]*acc{}
	for _, rec := range batch {
		if rec.Salary == nil {
			continue
		}
		a := groups[rec.ExpYears]
		if a == nil {
			a = &acc{}
			groups[rec.ExpYears] = a
		}
		a.sum += *rec.Salary
		a.n++
	}

	out := make([]SalaryPoint, 0, len(groups))
	for years, a := range groups {
		out = append(out, SalaryPoint{ExperienceYears: years, MeanSalary: a.sum / float64(a.n)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ExperienceYears < out[j].ExperienceYears
	})
	return out
}

// ExperienceDistribution counts records per exact ExpYears value, ascending.
func ExperienceDistribution(batch []domain.CanonicalRecord) []ExperienceBucket {
	counts := map[float64]int{}
	for _, rec := range batch {
		counts[rec.ExpYears]++
	}
	out := make([]ExperienceBucket, 0, len(counts))
	for years, n := range counts {
		out = append(out, ExperienceBucket{ExperienceYears: years, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ExperienceYears < out[j].ExperienceYears
	})
	return out
}

// ComputeSalaryStats reports mean, median, min, max over present salaries.
func ComputeSalaryStats(batch []domain.CanonicalRecord) SalaryStats {
	var vals []float64
	for _, rec := range batch {
		if rec.Salary != nil {
			vals = append(vals, *rec.Salary)
		}
	}
	if len(vals) == 0 {
		return SalaryStats{}
	}

	sort.Float64s(vals)
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))

	var median float64
	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		median = vals[mid]
	} else {
		median = (vals[mid-1] + vals[mid]) / 2
	}

	lo, hi := vals[0], vals[len(vals)-1]
	return SalaryStats{Mean: &mean, Median: &median, Min: &lo, Max: &hi}
}
