package leave

import "sort"

// FilterByStatus returns the requests matching status, preserving their
// stored relative order.
func FilterByStatus(requests []Request, status string) []Request {
	var out []Request
	for _, req := range requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out
}

// CountByStatus tallies requests per status.
func CountByStatus(requests []Request) map[string]int {
	counts := make(map[string]int)
	for _, req := range requests {
		counts[req.Status]++
	}
	return counts
}

// SortByAppliedOnDesc returns a copy ordered newest application first.
// Ties keep their stored order.
func SortByAppliedOnDesc(requests []Request) []Request {
	out := make([]Request, len(requests))
	copy(out, requests)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppliedOn > out[j].AppliedOn
	})
	return out
}
