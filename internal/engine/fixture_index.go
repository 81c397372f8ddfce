package engine

import "github.com/yourusername/fixture-scout/internal/models"

// FixtureIndex is a per-team, per-period lookup of fixture projections.
type FixtureIndex struct {
	byTeam map[int]map[int]models.PerTeamFixture
}

// BuildFixtureIndex projects a flat fixture list into per-team per-period
// lookups. A team has at most one fixture per period; later duplicates are
// dropped.
func BuildFixtureIndex(fixtures []models.FixtureRecord) *FixtureIndex {
	idx := &FixtureIndex{byTeam: make(map[int]map[int]models.PerTeamFixture)}
	for _, f := range fixtures {
		if f.Period <= 0 || f.HomeTeamID <= 0 || f.AwayTeamID <= 0 {
			continue
		}
		home, away := f.Sides()
		idx.add(f.HomeTeamID, f.Period, home)
		idx.add(f.AwayTeamID, f.Period, away)
	}
	return idx
}

func (i *FixtureIndex) add(teamID, period int, ptf models.PerTeamFixture) {
	periods, ok := i.byTeam[teamID]
	if !ok {
		periods = make(map[int]models.PerTeamFixture)
		i.byTeam[teamID] = periods
	}
	if _, exists := periods[period]; exists {
		return
	}
	periods[period] = ptf
}

// Lookup returns the fixture a team played (or will play) in a period.
func (i *FixtureIndex) Lookup(teamID, period int) (models.PerTeamFixture, bool) {
	periods, ok := i.byTeam[teamID]
	if !ok {
		return models.PerTeamFixture{}, false
	}
	ptf, ok := periods[period]
	return ptf, ok
}

// TeamIDs returns every team present in the index.
func (i *FixtureIndex) TeamIDs() []int {
	ids := make([]int, 0, len(i.byTeam))
	for id := range i.byTeam {
		ids = append(ids, id)
	}
	return ids
}

// Periods returns the period keys known for a team.
func (i *FixtureIndex) Periods(teamID int) []int {
	periods, ok := i.byTeam[teamID]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(periods))
	for p := range periods {
		out = append(out, p)
	}
	return out
}
