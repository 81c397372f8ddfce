package engine

import (
	"testing"

	"github.com/yourusername/fixture-scout/internal/models"
)

func TestActionScoreDefense(t *testing.T) {
	rec := models.EventStatRecord{
		Minutes: 90, Interceptions: 3, Clearances: 4, Blocks: 2, Tackles: 1, Recoveries: 9,
	}
	if got := ActionScore(rec, models.ArchetypeCenterBack); got != 10 {
		t.Fatalf("defense score should sum interceptions+clearances+blocks+tackles, got %v", got)
	}
}

func TestActionScoreAttackExcludesClearancesAndBlocks(t *testing.T) {
	rec := models.EventStatRecord{
		Minutes: 90, Interceptions: 2, Clearances: 7, Blocks: 5, Tackles: 3, Recoveries: 6,
	}
	if got := ActionScore(rec, models.ArchetypeMidfielder); got != 11 {
		t.Fatalf("attack score should sum interceptions+recoveries+tackles, got %v", got)
	}
}

func TestIsHitThresholds(t *testing.T) {
	thresholds := DefaultThresholds()

	defender := models.EventStatRecord{Minutes: 90, Interceptions: 4, Clearances: 4, Tackles: 2}
	if !IsHit(defender, models.ArchetypeCenterBack, thresholds) {
		t.Fatalf("score 10 should be a hit for a defender")
	}
	defender.Tackles = 1
	if IsHit(defender, models.ArchetypeCenterBack, thresholds) {
		t.Fatalf("score 9 should not be a hit for a defender")
	}

	mid := models.EventStatRecord{Minutes: 90, Interceptions: 4, Recoveries: 6, Tackles: 2}
	if !IsHit(mid, models.ArchetypeMidfielder, thresholds) {
		t.Fatalf("score 12 should be a hit for a midfielder")
	}
	mid.Recoveries = 5
	if IsHit(mid, models.ArchetypeMidfielder, thresholds) {
		t.Fatalf("score 11 should not be a hit for a midfielder")
	}
}

func TestIsHitGoalkeeperNeverScored(t *testing.T) {
	rec := models.EventStatRecord{Minutes: 90, Interceptions: 20, Clearances: 20, Blocks: 20, Tackles: 20}
	if ActionScore(rec, models.ArchetypeGoalkeeper) != 0 {
		t.Fatalf("goalkeepers should never produce an action score")
	}
	if IsHit(rec, models.ArchetypeGoalkeeper, DefaultThresholds()) {
		t.Fatalf("goalkeepers should never be hits")
	}
}

func TestIsHitZeroMinutes(t *testing.T) {
	rec := models.EventStatRecord{Minutes: 0, Interceptions: 10, Clearances: 10, Tackles: 10}
	if IsHit(rec, models.ArchetypeCenterBack, DefaultThresholds()) {
		t.Fatalf("a record with zero minutes is not a hit")
	}
}
