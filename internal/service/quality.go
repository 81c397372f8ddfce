package service

import "fmt"

// QualityReport counts the rows the normalizer could not use. These are
// surfaced to callers as data-quality signals; the engine itself never sees
// them.
type QualityReport struct {
	MalformedTeams        int `json:"malformed_teams"`
	DuplicateTeams        int `json:"duplicate_teams"`
	MalformedFixtures     int `json:"malformed_fixtures"`
	MalformedParticipants int `json:"malformed_participants"`
	MalformedStats        int `json:"malformed_stats"`
}

// Total returns the total number of dropped rows.
func (q QualityReport) Total() int {
	return q.MalformedTeams + q.DuplicateTeams + q.MalformedFixtures +
		q.MalformedParticipants + q.MalformedStats
}

// Issues renders the non-zero counts as human-readable strings.
func (q QualityReport) Issues() []string {
	var issues []string
	add := func(count int, label string) {
		if count > 0 {
			issues = append(issues, fmt.Sprintf("%d %s", count, label))
		}
	}
	add(q.MalformedTeams, "malformed team rows")
	add(q.DuplicateTeams, "duplicate team codes")
	add(q.MalformedFixtures, "malformed fixture rows")
	add(q.MalformedParticipants, "malformed participant rows")
	add(q.MalformedStats, "malformed stat rows")
	return issues
}
