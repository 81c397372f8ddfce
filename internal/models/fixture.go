package models

// FixtureRecord is one scheduled or finished match between two teams in a
// given period ("gameweek").
type FixtureRecord struct {
	HomeTeamID int  `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int  `json:"away_team_id" validate:"required,gt=0"`
	Period     int  `json:"period" validate:"required,gt=0"`
	Finished   bool `json:"finished"`
	HomeScore  int  `json:"home_score" validate:"gte=0"`
	AwayScore  int  `json:"away_score" validate:"gte=0"`
}

// PerTeamFixture is the per-side projection of a FixtureRecord: the fixture
// as seen by one of the two teams.
type PerTeamFixture struct {
	OpponentID   int  `json:"opponent_id"`
	WasHome      bool `json:"was_home"`
	Finished     bool `json:"finished"`
	GoalsFor     int  `json:"goals_for"`
	GoalsAgainst int  `json:"goals_against"`
}

// Sides returns the two per-team projections of the fixture, home side first.
func (f FixtureRecord) Sides() (home PerTeamFixture, away PerTeamFixture) {
	home = PerTeamFixture{
		OpponentID:   f.AwayTeamID,
		WasHome:      true,
		Finished:     f.Finished,
		GoalsFor:     f.HomeScore,
		GoalsAgainst: f.AwayScore,
	}
	away = PerTeamFixture{
		OpponentID:   f.HomeTeamID,
		WasHome:      false,
		Finished:     f.Finished,
		GoalsFor:     f.AwayScore,
		GoalsAgainst: f.HomeScore,
	}
	return home, away
}
