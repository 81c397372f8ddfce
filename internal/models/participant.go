package models

// Participant is one tracked player within an input batch. Raw position
// fields come straight from the upstream snapshot; the archetype is never
// stored here, it is recomputed from these fields plus the override table.
type Participant struct {
	ID           int    `json:"id" validate:"required,gt=0"`
	Name         string `json:"name" validate:"required"`
	TeamID       int    `json:"team_id" validate:"required,gt=0"`
	Position     string `json:"position"`
	DetailedRole string `json:"detailed_role"`
}

// OverrideTable maps participant ids to manually curated role labels, used
// ahead of any automatic classification.
type OverrideTable map[int]string

// EventStatRecord is one participant's raw counted actions for one period.
type EventStatRecord struct {
	ParticipantID int     `json:"participant_id" validate:"required,gt=0"`
	Period        int     `json:"period" validate:"required,gt=0"`
	Minutes       int     `json:"minutes" validate:"gte=0"`
	Interceptions float64 `json:"interceptions"`
	Clearances    float64 `json:"clearances"`
	Blocks        float64 `json:"blocks"`
	Tackles       float64 `json:"tackles"`
	Recoveries    float64 `json:"recoveries"`
	Goals         int     `json:"goals"`
}

// Played reports whether the record represents actual participation.
// Zero-minute records are excluded from scoring and aggregation.
func (r EventStatRecord) Played() bool {
	return r.Minutes > 0
}
