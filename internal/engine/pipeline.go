package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/fixture-scout/internal/models"
)

// Params holds every tunable of the pipeline. Zero values are replaced with
// the production defaults.
type Params struct {
	Thresholds        Thresholds
	Priors            Priors
	DifficultyWeights DifficultyWeights
	StartPeriod       int
	EndPeriod         int
}

// DefaultParams returns the production tuning over a full-season window.
func DefaultParams() Params {
	return Params{
		Thresholds:        DefaultThresholds(),
		Priors:            DefaultPriors(),
		DifficultyWeights: DefaultDifficultyWeights(),
		StartPeriod:       1,
		EndPeriod:         38,
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.Thresholds.Defense == 0 {
		p.Thresholds.Defense = d.Thresholds.Defense
	}
	if p.Thresholds.Attack == 0 {
		p.Thresholds.Attack = d.Thresholds.Attack
	}
	if p.Priors.Strength == 0 {
		p.Priors.Strength = d.Priors.Strength
	}
	if p.Priors.Baseline == 0 {
		p.Priors.Baseline = d.Priors.Baseline
	}
	if p.DifficultyWeights.Concede == 0 && p.DifficultyWeights.Attack == 0 {
		p.DifficultyWeights = d.DifficultyWeights
	}
	if p.StartPeriod == 0 {
		p.StartPeriod = d.StartPeriod
	}
	if p.EndPeriod == 0 {
		p.EndPeriod = d.EndPeriod
	}
	return p
}

// Inputs is the full historical input set for one pipeline run. All entities
// are rebuilt from scratch on every invocation; nothing is mutated.
type Inputs struct {
	Teams        []models.TeamRecord
	Fixtures     []models.FixtureRecord
	Participants []models.Participant
	Stats        []models.EventStatRecord
	Overrides    models.OverrideTable
	Owned        OwnedSet
}

// scoredArchetypes are the archetypes that can appear in probability output.
// Goalkeepers are filtered upstream and never bucketed.
var scoredArchetypes = []models.Archetype{
	models.ArchetypeCenterBack,
	models.ArchetypeLeftBack,
	models.ArchetypeRightBack,
	models.ArchetypeMidfielder,
	models.ArchetypeForward,
}

// Run executes the full pipeline: index fixtures, aggregate hit/trial
// buckets, smooth probabilities, rate fixture difficulty, and score
// opportunities. Pure apart from the report id and timestamp.
func Run(in Inputs, params Params) models.AnalysisReport {
	params = params.withDefaults()

	teams := models.NewTeamIndex(in.Teams)
	fixtureIndex := BuildFixtureIndex(in.Fixtures)
	participants := make(map[int]models.Participant, len(in.Participants))
	for _, p := range in.Participants {
		participants[p.ID] = p
	}

	buckets, counts := Aggregate(in.Stats, participants, teams, fixtureIndex, in.Overrides, params.Thresholds)
	probabilities := buildProbabilityTable(buckets, params.Priors)

	rates := BuildGoalRates(in.Fixtures)
	difficulty := BuildDifficultyTable(fixtureIndex, rates, params.StartPeriod, params.EndPeriod, params.DifficultyWeights)

	opportunities := map[string]models.OpportunityRecommendation{
		"single_period":  BestSinglePeriod(difficulty, in.Owned, params.StartPeriod, params.EndPeriod),
		"lookahead":      BestLookaheadWindow(difficulty, params.StartPeriod, params.EndPeriod),
		"owned_coverage": BestOwnedCoverage(difficulty, in.Owned, params.StartPeriod, params.EndPeriod),
	}

	return models.AnalysisReport{
		ID:             uuid.New(),
		GeneratedAt:    time.Now().UTC(),
		Probabilities:  probabilities,
		Difficulty:     difficulty,
		Opportunities:  opportunities,
		RecordsSeen:    counts.Seen,
		RecordsSkipped: counts.Skipped(),
	}
}

// buildProbabilityTable renders the smoothed probability for every observed
// opponent at both venues and every scored archetype.
func buildProbabilityTable(buckets *BucketSet, priors Priors) models.ProbabilityTable {
	table := make(models.ProbabilityTable, len(buckets.Opponents))
	for opponentID := range buckets.Opponents {
		venues := make(map[string]map[models.Archetype]float64, len(models.Venues))
		for _, venue := range models.Venues {
			byArchetype := make(map[models.Archetype]float64, len(scoredArchetypes))
			for _, a := range scoredArchetypes {
				byArchetype[a] = Estimate(buckets, opponentID, venue, a, priors).Value
			}
			venues[venue.OutputKey()] = byArchetype
		}
		table[opponentID] = venues
	}
	return table
}
