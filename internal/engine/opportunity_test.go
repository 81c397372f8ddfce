package engine

import (
	"testing"

	"github.com/yourusername/fixture-scout/internal/models"
)

func difficultyTable(entries map[int]map[int]float64) map[int]models.TeamDifficulty {
	table := make(map[int]models.TeamDifficulty)
	for teamID, periods := range entries {
		fixtures := make(map[int]models.FixtureDifficultyEntry)
		sum := 0.0
		for period, d := range periods {
			fixtures[period] = models.FixtureDifficultyEntry{OpponentID: 99, Venue: models.VenueHome, Difficulty: d}
			sum += d
		}
		table[teamID] = models.TeamDifficulty{Fixtures: fixtures, AvgDifficulty: sum / float64(len(periods))}
	}
	return table
}

func TestBestSinglePeriodExcludesOwned(t *testing.T) {
	table := difficultyTable(map[int]map[int]float64{
		1: {5: 2.0, 6: 4.0},
		2: {5: 2.2, 6: 2.0},
		3: {5: 4.0, 6: 2.1},
	})
	owned := OwnedSet{2: true}

	got := BestSinglePeriod(table, owned, 5, 6)
	// Period 5: team 1 easy (team 2 owned). Period 6: team 3 easy. Tie broken
	// by the earlier period.
	if got.BestPeriod != 5 {
		t.Fatalf("expected period 5 on tie, got %d", got.BestPeriod)
	}
	if got.SupportingCounts != 1 {
		t.Fatalf("expected 1 supporting fixture, got %d", got.SupportingCounts)
	}
	if got.Confidence != 1.0/8.0 {
		t.Fatalf("expected confidence 1/8, got %v", got.Confidence)
	}
}

func TestBestSinglePeriodConfidenceCapped(t *testing.T) {
	entries := make(map[int]map[int]float64)
	for teamID := 1; teamID <= 20; teamID++ {
		entries[teamID] = map[int]float64{3: 1.5}
	}
	got := BestSinglePeriod(difficultyTable(entries), nil, 3, 3)
	if got.Confidence != 1 {
		t.Fatalf("confidence should cap at 1, got %v", got.Confidence)
	}
}

func TestBestLookaheadWindow(t *testing.T) {
	table := difficultyTable(map[int]map[int]float64{
		1: {1: 5.0, 2: 2.0, 3: 2.0, 4: 2.0, 5: 2.0},
		2: {1: 5.0, 2: 2.5, 3: 2.5, 4: 2.5, 5: 2.5},
	})
	got := BestLookaheadWindow(table, 1, 2)
	// Pivot 1 averages include the 5.0 fixtures; pivot 2 covers periods 2-5
	// where both teams average under 2.8.
	if got.BestPeriod != 2 {
		t.Fatalf("expected pivot 2, got %d", got.BestPeriod)
	}
	if got.SupportingCounts != 2 {
		t.Fatalf("expected 2 teams under cutoff, got %d", got.SupportingCounts)
	}
	if got.Confidence != 2.0/12.0 {
		t.Fatalf("expected confidence 2/12, got %v", got.Confidence)
	}
}

func TestBestOwnedCoverage(t *testing.T) {
	table := difficultyTable(map[int]map[int]float64{
		1: {5: 2.0, 6: 2.9},
		2: {5: 2.5, 6: 2.8},
		3: {5: 1.0, 6: 1.0}, // not owned, must not count
	})
	owned := OwnedSet{1: true, 2: true}

	got := BestOwnedCoverage(table, owned, 5, 6)
	// Both periods cover both owned teams; period 5 has the lower mean.
	if got.BestPeriod != 5 {
		t.Fatalf("expected tie broken by lower mean difficulty, got period %d", got.BestPeriod)
	}
	if got.SupportingCounts != 2 {
		t.Fatalf("expected 2 covered teams, got %d", got.SupportingCounts)
	}
	if got.Confidence != 1 {
		t.Fatalf("expected confidence 2/2, got %v", got.Confidence)
	}
}

func TestBestOwnedCoverageEmptySet(t *testing.T) {
	table := difficultyTable(map[int]map[int]float64{
		1: {5: 2.0},
	})
	got := BestOwnedCoverage(table, OwnedSet{}, 5, 8)
	if got.Confidence != 0 {
		t.Fatalf("empty owned set must yield confidence 0, got %v", got.Confidence)
	}
	if got.SupportingCounts != 0 {
		t.Fatalf("empty owned set should support nothing, got %d", got.SupportingCounts)
	}
}
