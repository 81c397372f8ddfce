package models

import "fmt"

// TeamRecord is the canonical team entity built once from the teams table.
// All other entities join through its ID. Exactly one TeamRecord exists per
// distinct short code.
type TeamRecord struct {
	ID        int    `json:"id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
	ShortCode string `json:"short_code" validate:"required"`
}

// TeamIndex is the canonical team set used to resolve record references.
type TeamIndex struct {
	byID  map[int]TeamRecord
	teams []TeamRecord
}

// NewTeamIndex builds an index from a team list. Later duplicates of a short
// code are dropped so the one-record-per-code invariant holds.
func NewTeamIndex(teams []TeamRecord) *TeamIndex {
	idx := &TeamIndex{
		byID:  make(map[int]TeamRecord, len(teams)),
		teams: make([]TeamRecord, 0, len(teams)),
	}
	seen := make(map[string]bool, len(teams))
	for _, t := range teams {
		if seen[t.ShortCode] {
			continue
		}
		seen[t.ShortCode] = true
		idx.byID[t.ID] = t
		idx.teams = append(idx.teams, t)
	}
	return idx
}

// Resolve looks a team up by canonical id. Unknown ids return
// ErrUnresolvedReference so callers can skip and count the record.
func (i *TeamIndex) Resolve(id int) (TeamRecord, error) {
	t, ok := i.byID[id]
	if !ok {
		return TeamRecord{}, fmt.Errorf("team %d: %w", id, ErrUnresolvedReference)
	}
	return t, nil
}

// Teams returns the canonical team list in input order, duplicates removed.
func (i *TeamIndex) Teams() []TeamRecord {
	return i.teams
}

// Len returns the number of indexed teams.
func (i *TeamIndex) Len() int {
	return len(i.teams)
}
