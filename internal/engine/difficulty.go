package engine

import "github.com/yourusername/fixture-scout/internal/models"

// NeutralDifficulty is assigned when no historical goals data exists for an
// opponent at the relevant venue.
const NeutralDifficulty = 3.0

// DifficultyWeights blends the opponent's defensive solidity against their
// attacking threat.
type DifficultyWeights struct {
	Concede float64
	Attack  float64
}

// DefaultDifficultyWeights returns the production blend.
func DefaultDifficultyWeights() DifficultyWeights {
	return DifficultyWeights{Concede: 0.7, Attack: 0.3}
}

// Difficulty converts an opponent's per-match attack and concede rates into
// a 1-5 fixture difficulty. Opponents who concede little are harder to score
// against; opponents who score a lot are a bigger defensive threat. Always
// clamped to [1,5].
func Difficulty(attackRate, concedeRate float64, w DifficultyWeights) float64 {
	raw := (5-concedeRate)*w.Concede + attackRate*w.Attack
	if raw < 1 {
		return 1
	}
	if raw > 5 {
		return 5
	}
	return raw
}

type goalTally struct {
	goalsFor     int
	goalsAgainst int
	games        int
}

// GoalRates holds per-team, per-venue scoring and conceding averages built
// from finished fixtures only.
type GoalRates struct {
	byTeam map[int]map[models.Venue]goalTally
}

// BuildGoalRates accumulates goals for/against per team and venue across all
// finished fixtures.
func BuildGoalRates(fixtures []models.FixtureRecord) *GoalRates {
	r := &GoalRates{byTeam: make(map[int]map[models.Venue]goalTally)}
	for _, f := range fixtures {
		if !f.Finished {
			continue
		}
		r.add(f.HomeTeamID, models.VenueHome, f.HomeScore, f.AwayScore)
		r.add(f.AwayTeamID, models.VenueAway, f.AwayScore, f.HomeScore)
	}
	return r
}

func (r *GoalRates) add(teamID int, venue models.Venue, scored, conceded int) {
	venues, ok := r.byTeam[teamID]
	if !ok {
		venues = make(map[models.Venue]goalTally)
		r.byTeam[teamID] = venues
	}
	for _, v := range []models.Venue{venue, models.VenueOverall} {
		t := venues[v]
		t.goalsFor += scored
		t.goalsAgainst += conceded
		t.games++
		venues[v] = t
	}
}

// Rates returns a team's per-match attack and concede rates at a venue,
// falling back to the venue-agnostic rates. The second return is false when
// no finished fixtures exist for the team at all.
func (r *GoalRates) Rates(teamID int, venue models.Venue) (attack, concede float64, ok bool) {
	venues, found := r.byTeam[teamID]
	if !found {
		return 0, 0, false
	}
	t, found := venues[venue]
	if !found || t.games == 0 {
		t, found = venues[models.VenueOverall]
		if !found || t.games == 0 {
			return 0, 0, false
		}
	}
	return float64(t.goalsFor) / float64(t.games), float64(t.goalsAgainst) / float64(t.games), true
}

// BuildDifficultyTable scores every future, unfinished fixture in the period
// window for every team. Finished fixtures are excluded: difficulty is a
// forward-looking measure. The opponent's rates at the opponent's own venue
// drive the score; teams with no goals history get the neutral score.
func BuildDifficultyTable(fixtures *FixtureIndex, rates *GoalRates, startPeriod, endPeriod int, w DifficultyWeights) map[int]models.TeamDifficulty {
	table := make(map[int]models.TeamDifficulty)
	for _, teamID := range fixtures.TeamIDs() {
		entries := make(map[int]models.FixtureDifficultyEntry)
		sum := 0.0
		for period := startPeriod; period <= endPeriod; period++ {
			ptf, ok := fixtures.Lookup(teamID, period)
			if !ok || ptf.Finished {
				continue
			}
			opponentVenue := models.VenueHome
			teamVenue := models.VenueAway
			if ptf.WasHome {
				opponentVenue = models.VenueAway
				teamVenue = models.VenueHome
			}
			score := NeutralDifficulty
			if attack, concede, ok := rates.Rates(ptf.OpponentID, opponentVenue); ok {
				score = Difficulty(attack, concede, w)
			}
			entries[period] = models.FixtureDifficultyEntry{
				OpponentID: ptf.OpponentID,
				Venue:      teamVenue,
				Difficulty: score,
			}
			sum += score
		}
		if len(entries) == 0 {
			continue
		}
		table[teamID] = models.TeamDifficulty{
			Fixtures:      entries,
			AvgDifficulty: sum / float64(len(entries)),
		}
	}
	return table
}
