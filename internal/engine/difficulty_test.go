package engine

import (
	"math"
	"testing"

	"github.com/yourusername/fixture-scout/internal/models"
)

func TestDifficultyFormula(t *testing.T) {
	// (5-1.0)*0.7 + 1.5*0.3 = 3.25
	got := Difficulty(1.5, 1.0, DefaultDifficultyWeights())
	if math.Abs(got-3.25) > 1e-9 {
		t.Fatalf("expected 3.25, got %v", got)
	}
}

func TestDifficultyClamped(t *testing.T) {
	w := DefaultDifficultyWeights()
	if got := Difficulty(0, 100, w); got != 1 {
		t.Fatalf("heavy conceders should floor at 1, got %v", got)
	}
	if got := Difficulty(100, 0, w); got != 5 {
		t.Fatalf("extreme attack rates should cap at 5, got %v", got)
	}
}

func TestBuildDifficultyTableOnlyUnfinishedFixtures(t *testing.T) {
	fixtures := []models.FixtureRecord{
		// history feeding goal rates
		{HomeTeamID: 3, AwayTeamID: 4, Period: 1, Finished: true, HomeScore: 2, AwayScore: 2},
		// identical upcoming fixtures, one already finished
		{HomeTeamID: 1, AwayTeamID: 3, Period: 5, Finished: true, HomeScore: 1, AwayScore: 0},
		{HomeTeamID: 2, AwayTeamID: 4, Period: 5, Finished: false},
	}
	idx := BuildFixtureIndex(fixtures)
	rates := BuildGoalRates(fixtures)
	table := BuildDifficultyTable(idx, rates, 5, 5, DefaultDifficultyWeights())

	if _, ok := table[1]; ok {
		t.Fatalf("finished fixtures must not be scored")
	}
	td, ok := table[2]
	if !ok {
		t.Fatalf("unfinished fixture should be scored")
	}
	entry, ok := td.Fixtures[5]
	if !ok || entry.OpponentID != 4 || entry.Venue != models.VenueHome {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Difficulty < 1 || entry.Difficulty > 5 {
		t.Fatalf("difficulty out of range: %v", entry.Difficulty)
	}
}

func TestBuildDifficultyTableNeutralWithoutHistory(t *testing.T) {
	fixtures := []models.FixtureRecord{
		{HomeTeamID: 1, AwayTeamID: 2, Period: 7, Finished: false},
	}
	idx := BuildFixtureIndex(fixtures)
	rates := BuildGoalRates(fixtures)
	table := BuildDifficultyTable(idx, rates, 1, 10, DefaultDifficultyWeights())

	entry := table[1].Fixtures[7]
	if entry.Difficulty != NeutralDifficulty {
		t.Fatalf("no goals history should default to neutral 3, got %v", entry.Difficulty)
	}
	if table[1].AvgDifficulty != NeutralDifficulty {
		t.Fatalf("window average over one neutral fixture should be 3, got %v", table[1].AvgDifficulty)
	}
}

func TestGoalRatesVenueFallback(t *testing.T) {
	fixtures := []models.FixtureRecord{
		{HomeTeamID: 1, AwayTeamID: 2, Period: 1, Finished: true, HomeScore: 3, AwayScore: 1},
	}
	rates := BuildGoalRates(fixtures)

	attack, concede, ok := rates.Rates(1, models.VenueHome)
	if !ok || attack != 3 || concede != 1 {
		t.Fatalf("unexpected home rates: %v %v %v", attack, concede, ok)
	}
	// No away games for team 1: falls back to overall.
	attack, concede, ok = rates.Rates(1, models.VenueAway)
	if !ok || attack != 3 || concede != 1 {
		t.Fatalf("expected overall fallback, got %v %v %v", attack, concede, ok)
	}
	if _, _, ok := rates.Rates(9, models.VenueHome); ok {
		t.Fatalf("unknown team should report no data")
	}
}
