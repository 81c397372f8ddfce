package models

// FixtureDifficultyEntry scores one upcoming fixture for one team.
type FixtureDifficultyEntry struct {
	OpponentID int     `json:"opponent_id"`
	Venue      Venue   `json:"venue"`
	Difficulty float64 `json:"difficulty" validate:"gte=1,lte=5"`
}

// TeamDifficulty is a team's forward-looking difficulty table over a period
// window, keyed by period, plus the window average.
type TeamDifficulty struct {
	Fixtures      map[int]FixtureDifficultyEntry `json:"fixtures"`
	AvgDifficulty float64                        `json:"avg_difficulty"`
}

// OpportunityRecommendation is the outcome of one opportunity scoring mode.
type OpportunityRecommendation struct {
	BestPeriod       int     `json:"best_period"`
	Confidence       float64 `json:"confidence" validate:"gte=0,lte=1"`
	SupportingCounts int     `json:"supporting_counts"`
}
