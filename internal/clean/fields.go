package clean

import (
	"regexp"
	"strconv"
	"strings"

	"jobmarket-engine/internal/domain"
)

var (
	digitRuns = regexp.MustCompile(`\d+`)
	numToken  = regexp.MustCompile(`\d+\.?\d*`)
)

// ExtractCity takes the segment before the first comma, trimmed and
// lowercased. Works on the raw location: normalization strips commas, so it
// must run first. Missing location maps to the "unknown" sentinel.
func ExtractCity(location string) string {
	if strings.TrimSpace(location) == "" {
		return domain.UnknownCity
	}
	city, _, _ := strings.Cut(location, ",")
	return strings.ToLower(strings.TrimSpace(city))
}

// ExtractExperience reads the first two digit runs out of a free-text
// requirement like "3-5 years". One number yields (v, v, v); two yield the
// pair plus their mean; none yields zeros. Runs past the second are ignored.
func ExtractExperience(text string) (min, max int, years float64) {
	nums := digitRuns.FindAllString(text, 2)
	switch len(nums) {
	case 0:
		return 0, 0, 0
	case 1:
		v, _ := strconv.Atoi(nums[0])
		return v, v, float64(v)
	default:
		min, _ = strconv.Atoi(nums[0])
		max, _ = strconv.Atoi(nums[1])
		return min, max, float64(min+max) / 2
	}
}

// ExtractSalary pulls the first numeric token (digits, optional decimal part)
// out of currency-formatted text, with thousands separators removed.
// "negotiable" and friends come back nil rather than erroring.
func ExtractSalary(text string) *float64 {
	text = strings.ReplaceAll(text, ",", "")
	tok := numToken.FindString(text)
	if tok == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "."), 64)
	if err != nil {
		return nil
	}
	return &v
}
