package models

import (
	"time"

	"github.com/google/uuid"
)

// ProbabilityTable is the rendered probability lookup consumed by downstream
// tooling: opponent team id -> venue output key ("true" = opponent at home)
// -> archetype -> smoothed probability value.
type ProbabilityTable map[int]map[string]map[Archetype]float64

// AnalysisReport is the full output of one pipeline run.
type AnalysisReport struct {
	ID             uuid.UUID                            `json:"id"`
	GeneratedAt    time.Time                            `json:"generated_at"`
	Probabilities  ProbabilityTable                     `json:"probabilities"`
	Difficulty     map[int]TeamDifficulty               `json:"fixture_difficulty"`
	Opportunities  map[string]OpportunityRecommendation `json:"opportunities"`
	RecordsSeen    int                                  `json:"records_seen"`
	RecordsSkipped int                                  `json:"records_skipped"`
}
