package engine

import (
	"math"

	"github.com/yourusername/fixture-scout/internal/models"
)

// Default hit thresholds, in combined defensive actions per match.
const (
	DefenseThreshold = 10.0
	AttackThreshold  = 12.0
)

// ActionScore computes the weighted defensive-action score for one stat
// record under one archetype. Defenders sum interceptions, clearances,
// blocks and tackles; midfielders and forwards sum interceptions, recoveries
// and tackles. Goalkeepers and unclassified participants score 0.
func ActionScore(rec models.EventStatRecord, archetype models.Archetype) float64 {
	if archetype == models.ArchetypeGoalkeeper {
		return 0
	}
	var score float64
	switch archetype.Group() {
	case models.GroupDefense:
		score = rec.Interceptions + rec.Clearances + rec.Blocks + rec.Tackles
	case models.GroupAttack:
		score = rec.Interceptions + rec.Recoveries + rec.Tackles
	default:
		return 0
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return score
}

// Thresholds holds the per-group hit cutoffs.
type Thresholds struct {
	Defense float64
	Attack  float64
}

// DefaultThresholds returns the production cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Defense: DefenseThreshold, Attack: AttackThreshold}
}

// IsHit reports whether the record clears the archetype's threshold.
// Goalkeepers are never hits; zero-minute records are never hits.
func IsHit(rec models.EventStatRecord, archetype models.Archetype, t Thresholds) bool {
	if !rec.Played() || archetype == models.ArchetypeGoalkeeper {
		return false
	}
	score := ActionScore(rec, archetype)
	switch archetype.Group() {
	case models.GroupDefense:
		return score >= t.Defense
	case models.GroupAttack:
		return score >= t.Attack
	}
	return false
}
