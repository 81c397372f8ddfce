package engine

import (
	"github.com/yourusername/fixture-scout/internal/config"
	"github.com/yourusername/fixture-scout/internal/models"
)

// FromConfig builds pipeline params from the application configuration.
// Unset values keep the engine defaults.
func FromConfig(cfg *config.EngineConfig) Params {
	p := Params{
		Thresholds: Thresholds{
			Defense: cfg.DefenseThreshold,
			Attack:  cfg.AttackThreshold,
		},
		Priors: Priors{
			Strength: cfg.PriorStrength,
			Baseline: cfg.LeagueBaseline,
		},
		DifficultyWeights: DifficultyWeights{
			Concede: cfg.ConcedeWeight,
			Attack:  cfg.AttackWeight,
		},
		StartPeriod: cfg.StartPeriod,
		EndPeriod:   cfg.EndPeriod,
	}
	return p.withDefaults()
}

// OverridesFromConfig converts the configured override table.
func OverridesFromConfig(cfg *config.EngineConfig) models.OverrideTable {
	if len(cfg.Overrides) == 0 {
		return nil
	}
	out := make(models.OverrideTable, len(cfg.Overrides))
	for id, label := range cfg.Overrides {
		out[id] = label
	}
	return out
}

// OwnedFromConfig converts the configured owned-team list.
func OwnedFromConfig(cfg *config.EngineConfig) OwnedSet {
	if len(cfg.OwnedTeams) == 0 {
		return nil
	}
	owned := make(OwnedSet, len(cfg.OwnedTeams))
	for _, id := range cfg.OwnedTeams {
		owned[id] = true
	}
	return owned
}
