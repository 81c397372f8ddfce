// Package engine implements the event-probability estimation pipeline:
// archetype classification, hit detection, hit/trial aggregation, empirical
// Bayes smoothing, fixture difficulty and opportunity scoring. Every stage is
// a pure function over immutable inputs; re-running with identical inputs
// yields identical outputs.
package engine

import (
	"strings"

	"github.com/yourusername/fixture-scout/internal/models"
)

// Classify resolves a participant's tactical archetype. Resolution order:
// manual override, detailed role token, coarse position prefix. Generic
// defenders with unknown role are treated as center-backs for probability
// purposes. Returns ArchetypeUnknown when nothing matches; callers must skip
// such participants.
func Classify(p models.Participant, overrides models.OverrideTable) models.Archetype {
	if overrides != nil {
		if label, ok := overrides[p.ID]; ok {
			if a := archetypeFromOverride(label); a != models.ArchetypeUnknown {
				return a
			}
		}
	}
	if a := archetypeFromRole(p.DetailedRole); a != models.ArchetypeUnknown {
		return a
	}
	return archetypeFromPosition(p.Position)
}

func archetypeFromOverride(label string) models.Archetype {
	switch normalizeToken(label) {
	case "leftback", "lb":
		return models.ArchetypeLeftBack
	case "rightback", "rb":
		return models.ArchetypeRightBack
	case "centerback", "centreback", "cb":
		return models.ArchetypeCenterBack
	case "defensivemidfielder", "midfielder", "dm", "cm":
		return models.ArchetypeMidfielder
	case "forward", "striker", "fw":
		return models.ArchetypeForward
	case "goalkeeper", "gk":
		return models.ArchetypeGoalkeeper
	}
	return models.ArchetypeUnknown
}

func archetypeFromRole(role string) models.Archetype {
	switch normalizeToken(role) {
	case "leftback", "leftwingback", "lwb", "lb":
		return models.ArchetypeLeftBack
	case "rightback", "rightwingback", "rwb", "rb":
		return models.ArchetypeRightBack
	case "centerback", "centreback", "centraldefender", "cb":
		return models.ArchetypeCenterBack
	case "defensivemidfielder", "centralmidfielder", "attackingmidfielder",
		"leftmidfielder", "rightmidfielder", "winger", "leftwinger", "rightwinger",
		"dm", "cm", "am":
		return models.ArchetypeMidfielder
	case "striker", "centerforward", "centreforward", "secondstriker", "cf", "st":
		return models.ArchetypeForward
	case "goalkeeper", "gk":
		return models.ArchetypeGoalkeeper
	}
	return models.ArchetypeUnknown
}

func archetypeFromPosition(position string) models.Archetype {
	pos := strings.ToLower(strings.TrimSpace(position))
	switch {
	case strings.HasPrefix(pos, "goalkeeper"), pos == "gkp", pos == "gk":
		return models.ArchetypeGoalkeeper
	case strings.HasPrefix(pos, "defender"), pos == "def":
		// Unknown footedness/role: treated as center-back.
		return models.ArchetypeCenterBack
	case strings.HasPrefix(pos, "midfielder"), pos == "mid":
		return models.ArchetypeMidfielder
	case strings.HasPrefix(pos, "forward"), strings.HasPrefix(pos, "striker"), pos == "fwd":
		return models.ArchetypeForward
	}
	return models.ArchetypeUnknown
}

// normalizeToken lowercases and strips separators so "Left-Back", "left back"
// and "LeftBack" compare equal.
func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer(" ", "", "-", "", "_", "")
	return replacer.Replace(s)
}
