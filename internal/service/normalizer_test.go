package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/fixture-scout/internal/datasource"
	"github.com/yourusername/fixture-scout/internal/schema"
)

func TestNormalizeTeams(t *testing.T) {
	n := NewNormalizer(nil)
	snap := &datasource.Snapshot{
		Teams: []schema.Record{
			{"id": 1, "name": "Arsenal", "short_name": "ARS"},
			{"id": 2, "name": "Duplicate", "short_name": "ARS"},
			{"name": "No ID", "short_name": "XXX"},
		},
	}

	inputs, quality := n.Normalize(snap)

	require.Len(t, inputs.Teams, 1)
	assert.Equal(t, "ARS", inputs.Teams[0].ShortCode)
	assert.Equal(t, 1, quality.DuplicateTeams)
	assert.Equal(t, 1, quality.MalformedTeams)
}

func TestNormalizeFixturesSchemaVariants(t *testing.T) {
	n := NewNormalizer(nil)
	snap := &datasource.Snapshot{
		Fixtures: []schema.Record{
			{"team_h": 1, "team_a": 2, "event": 3, "finished": "yes", "team_h_score": 2, "team_a_score": 1},
			{"home_team": 4, "away_team": 5, "gameweek": 6, "is_finished": 1, "home_goals": 0, "away_goals": 0},
			{"team_h": 1, "team_a": 2}, // missing period
		},
	}

	inputs, quality := n.Normalize(snap)

	require.Len(t, inputs.Fixtures, 2)
	assert.True(t, inputs.Fixtures[0].Finished)
	assert.Equal(t, 2, inputs.Fixtures[0].HomeScore)
	assert.Equal(t, 6, inputs.Fixtures[1].Period)
	assert.Equal(t, 1, quality.MalformedFixtures)
}

func TestNormalizeParticipantsElementType(t *testing.T) {
	n := NewNormalizer(nil)
	snap := &datasource.Snapshot{
		Participants: []schema.Record{
			{"id": 10, "web_name": "Raya", "team": 1, "element_type": 1},
			{"id": 11, "web_name": "Saliba", "team": 1, "element_type": 2},
			{"id": 12, "web_name": "Named", "team": 1, "position": "Midfielder"},
		},
	}

	inputs, _ := n.Normalize(snap)

	require.Len(t, inputs.Participants, 3)
	assert.Equal(t, "Goalkeeper", inputs.Participants[0].Position)
	assert.Equal(t, "Defender", inputs.Participants[1].Position)
	assert.Equal(t, "Midfielder", inputs.Participants[2].Position)
}

func TestNormalizeStatsMalformedNumerics(t *testing.T) {
	n := NewNormalizer(nil)
	snap := &datasource.Snapshot{
		Stats: []schema.Record{
			{"element": 10, "event": 1, "minutes": "90", "tackles": "junk", "interceptions": 3},
			{"event": 1, "minutes": 90}, // missing participant
		},
	}

	inputs, quality := n.Normalize(snap)

	require.Len(t, inputs.Stats, 1)
	rec := inputs.Stats[0]
	assert.Equal(t, 90, rec.Minutes)
	assert.Equal(t, 0.0, rec.Tackles, "malformed numerics default to 0")
	assert.Equal(t, 3.0, rec.Interceptions)
	assert.Equal(t, 1, quality.MalformedStats)
}

func TestQualityReportIssues(t *testing.T) {
	q := QualityReport{MalformedFixtures: 2, MalformedStats: 5}
	assert.Equal(t, 7, q.Total())
	assert.Len(t, q.Issues(), 2)

	empty := QualityReport{}
	assert.Zero(t, empty.Total())
	assert.Empty(t, empty.Issues())
}
