package engine

import (
	"sort"

	"github.com/yourusername/fixture-scout/internal/models"
)

// Opportunity scoring cut points and normalizers.
const (
	easyFixtureCutoff   = 2.5
	lookaheadAvgCutoff  = 2.8
	ownedCoverageCutoff = 3.0
	lookaheadSpan       = 4
	singlePeriodDivisor = 8.0
	lookaheadDivisor    = 12.0
)

// OwnedSet is the caller's currently owned teams.
type OwnedSet map[int]bool

// BestSinglePeriod recommends the period with the most easy fixtures among
// teams the caller does not own. Ties go to the earliest period.
func BestSinglePeriod(table map[int]models.TeamDifficulty, owned OwnedSet, startPeriod, endPeriod int) models.OpportunityRecommendation {
	best := models.OpportunityRecommendation{BestPeriod: startPeriod}
	for period := startPeriod; period <= endPeriod; period++ {
		count := 0
		for _, teamID := range sortedTeamIDs(table) {
			if owned[teamID] {
				continue
			}
			entry, ok := table[teamID].Fixtures[period]
			if ok && entry.Difficulty < easyFixtureCutoff {
				count++
			}
		}
		if count > best.SupportingCounts {
			best.BestPeriod = period
			best.SupportingCounts = count
		}
	}
	best.Confidence = capAt1(float64(best.SupportingCounts) / singlePeriodDivisor)
	return best
}

// BestLookaheadWindow recommends the pivot period from which the following
// four periods look easiest on average, counting teams whose windowed mean
// difficulty clears the cutoff.
func BestLookaheadWindow(table map[int]models.TeamDifficulty, startPeriod, endPeriod int) models.OpportunityRecommendation {
	best := models.OpportunityRecommendation{BestPeriod: startPeriod}
	for pivot := startPeriod; pivot <= endPeriod; pivot++ {
		count := 0
		for _, teamID := range sortedTeamIDs(table) {
			avg, ok := windowAverage(table[teamID], pivot, lookaheadSpan)
			if ok && avg < lookaheadAvgCutoff {
				count++
			}
		}
		if count > best.SupportingCounts {
			best.BestPeriod = pivot
			best.SupportingCounts = count
		}
	}
	best.Confidence = capAt1(float64(best.SupportingCounts) / lookaheadDivisor)
	return best
}

// BestOwnedCoverage recommends the period where the most owned teams have a
// favorable fixture, breaking count ties by the lower mean difficulty across
// owned teams. An empty owned set yields confidence 0, never NaN.
func BestOwnedCoverage(table map[int]models.TeamDifficulty, owned OwnedSet, startPeriod, endPeriod int) models.OpportunityRecommendation {
	best := models.OpportunityRecommendation{BestPeriod: startPeriod}
	bestMean := 0.0
	ownedIDs := sortedOwnedIDs(owned)

	for period := startPeriod; period <= endPeriod; period++ {
		count := 0
		sum := 0.0
		scored := 0
		for _, teamID := range ownedIDs {
			entry, ok := table[teamID].Fixtures[period]
			if !ok {
				continue
			}
			scored++
			sum += entry.Difficulty
			if entry.Difficulty < ownedCoverageCutoff {
				count++
			}
		}
		mean := NeutralDifficulty
		if scored > 0 {
			mean = sum / float64(scored)
		}
		if count > best.SupportingCounts || (count == best.SupportingCounts && count > 0 && mean < bestMean) {
			best.BestPeriod = period
			best.SupportingCounts = count
			bestMean = mean
		}
	}

	if len(ownedIDs) == 0 {
		best.Confidence = 0
		return best
	}
	best.Confidence = capAt1(float64(best.SupportingCounts) / float64(len(ownedIDs)))
	return best
}

// windowAverage averages a team's difficulty over the span of periods
// starting at pivot. Returns false when no fixtures fall in the window.
func windowAverage(td models.TeamDifficulty, pivot, span int) (float64, bool) {
	sum := 0.0
	n := 0
	for period := pivot; period < pivot+span; period++ {
		if entry, ok := td.Fixtures[period]; ok {
			sum += entry.Difficulty
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func sortedTeamIDs(table map[int]models.TeamDifficulty) []int {
	ids := make([]int, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func sortedOwnedIDs(owned OwnedSet) []int {
	ids := make([]int, 0, len(owned))
	for id, ok := range owned {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

func capAt1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
