package well

import "strings"

// FilterSummaries returns the directory entries matching the query. The
// match is a case-insensitive substring test against any of id, name,
// location, or status label; a blank query returns the full list. Original
// order is preserved: this filters, it never sorts.
func FilterSummaries(list []Summary, query string) []Summary {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := make([]Summary, 0, len(list))
	for _, s := range list {
		if summaryMatches(s, q) {
			out = append(out, s)
		}
	}
	return out
}

func summaryMatches(s Summary, q string) bool {
	fields := []string{
		s.ID,
		s.Name,
		s.Location,
		Classify(s.Status).Label,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
