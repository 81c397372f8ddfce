package schema

// Declared field tables for each upstream entity. Every schema variant seen
// in the wild is listed here once; nothing else in the codebase does ad hoc
// key fallbacks.
var (
	// Teams table
	TeamID    = NewField("team_id", "id", "team_id", "code")
	TeamName  = NewField("team_name", "name", "team_name", "full_name")
	TeamShort = NewField("team_short", "short_name", "short_code", "abbreviation")

	// Fixtures table
	FixtureHomeTeam  = NewField("home_team", "home_team", "team_h", "home_team_id")
	FixtureAwayTeam  = NewField("away_team", "away_team", "team_a", "away_team_id")
	FixturePeriod    = NewField("period", "event", "gameweek", "round", "gw")
	FixtureFinished  = NewField("finished", "finished", "is_finished", "complete")
	FixtureHomeScore = NewField("home_score", "team_h_score", "home_score", "home_goals")
	FixtureAwayScore = NewField("away_score", "team_a_score", "away_score", "away_goals")

	// Participants table
	ParticipantID       = NewField("participant_id", "id", "player_id", "element")
	ParticipantName     = NewField("participant_name", "web_name", "name", "player_name")
	ParticipantTeam     = NewField("participant_team", "team", "team_id", "team_code")
	ParticipantPosition = NewField("position", "position", "element_type_name", "pos")
	ParticipantRole     = NewField("detailed_role", "detailed_position", "role", "sub_position")

	// Per-period stat rows
	StatParticipant   = NewField("stat_participant", "element", "player_id", "id")
	StatPeriod        = NewField("stat_period", "event", "gameweek", "round", "gw")
	StatMinutes       = NewField("minutes", "minutes", "mins", "minutes_played")
	StatInterceptions = NewField("interceptions", "interceptions", "ints")
	StatClearances    = NewField("clearances", "clearances", "clearances_total", "clr")
	StatBlocks        = NewField("blocks", "blocks", "blocked_shots", "blk")
	StatTackles       = NewField("tackles", "tackles", "tackles_won", "tkl")
	StatRecoveries    = NewField("recoveries", "recoveries", "ball_recoveries", "rec")
	StatGoals         = NewField("goals", "goals_scored", "goals", "g")
)
