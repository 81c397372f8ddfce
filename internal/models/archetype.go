package models

// Archetype is the tactical role classification of a participant.
// It is always derived from the participant's raw position fields plus the
// override table, never stored as ground truth.
type Archetype string

const (
	ArchetypeCenterBack Archetype = "center_back"
	ArchetypeLeftBack   Archetype = "left_back"
	ArchetypeRightBack  Archetype = "right_back"
	ArchetypeMidfielder Archetype = "midfielder"
	ArchetypeForward    Archetype = "forward"
	ArchetypeGoalkeeper Archetype = "goalkeeper"

	// ArchetypeUnknown is returned when no classification rule matches.
	// Callers must skip unknown participants rather than guessing.
	ArchetypeUnknown Archetype = ""
)

// Valid reports whether the archetype is one of the six known roles.
func (a Archetype) Valid() bool {
	switch a {
	case ArchetypeCenterBack, ArchetypeLeftBack, ArchetypeRightBack,
		ArchetypeMidfielder, ArchetypeForward, ArchetypeGoalkeeper:
		return true
	}
	return false
}

// PositionGroup is the coarser grouping used for aggregation when archetype
// granularity is unavailable.
type PositionGroup string

const (
	GroupDefense PositionGroup = "defense"
	GroupAttack  PositionGroup = "attack"
	GroupNone    PositionGroup = ""
)

// Group maps an archetype to its position group. Goalkeepers and the three
// defender archetypes belong to the defense group, midfielders and forwards
// to the attack group.
func (a Archetype) Group() PositionGroup {
	switch a {
	case ArchetypeGoalkeeper, ArchetypeCenterBack, ArchetypeLeftBack, ArchetypeRightBack:
		return GroupDefense
	case ArchetypeMidfielder, ArchetypeForward:
		return GroupAttack
	}
	return GroupNone
}

// Venue identifies which side of a fixture a bucket refers to, from the
// opponent's perspective.
type Venue string

const (
	VenueHome    Venue = "home"
	VenueAway    Venue = "away"
	VenueOverall Venue = "overall"
)

// Venues lists the two concrete venues, excluding the venue-agnostic overall.
var Venues = []Venue{VenueHome, VenueAway}

// OutputKey returns the venue key used in rendered probability lookups:
// "true" when the opponent was at home, "false" otherwise.
func (v Venue) OutputKey() string {
	if v == VenueHome {
		return "true"
	}
	return "false"
}
