package service

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/fixture-scout/internal/datasource"
	"github.com/yourusername/fixture-scout/internal/engine"
	"github.com/yourusername/fixture-scout/internal/models"
	"github.com/yourusername/fixture-scout/internal/schema"
)

// Normalizer converts raw snapshot records into typed engine inputs through
// the schema adapter. Malformed rows are skipped and counted, never fatal.
type Normalizer struct {
	logger *logrus.Logger
}

// NewNormalizer creates a new normalizer
func NewNormalizer(logger *logrus.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// elementTypePosition maps the numeric position code some snapshots carry
// instead of a position string.
var elementTypeField = schema.NewField("element_type", "element_type")

func positionFromElementType(code int) string {
	switch code {
	case 1:
		return "Goalkeeper"
	case 2:
		return "Defender"
	case 3:
		return "Midfielder"
	case 4:
		return "Forward"
	}
	return ""
}

// Normalize builds typed engine inputs from a snapshot, reporting quality
// counts alongside.
func (n *Normalizer) Normalize(snap *datasource.Snapshot) (engine.Inputs, QualityReport) {
	var quality QualityReport
	inputs := engine.Inputs{
		Teams:        n.teams(snap.Teams, &quality),
		Fixtures:     n.fixtures(snap.Fixtures, &quality),
		Participants: n.participants(snap.Participants, &quality),
		Stats:        n.stats(snap.Stats, &quality),
	}
	return inputs, quality
}

func (n *Normalizer) teams(records []schema.Record, q *QualityReport) []models.TeamRecord {
	raw := make([]models.TeamRecord, 0, len(records))
	for _, r := range records {
		team := models.TeamRecord{
			ID:        schema.TeamID.Int(r),
			Name:      schema.TeamName.String(r),
			ShortCode: schema.TeamShort.String(r),
		}
		if team.ID <= 0 || team.ShortCode == "" {
			q.MalformedTeams++
			n.debugSkip("team", r)
			continue
		}
		raw = append(raw, team)
	}
	idx := models.NewTeamIndex(raw)
	q.DuplicateTeams += len(raw) - idx.Len()
	return idx.Teams()
}

func (n *Normalizer) fixtures(records []schema.Record, q *QualityReport) []models.FixtureRecord {
	out := make([]models.FixtureRecord, 0, len(records))
	for _, r := range records {
		fixture := models.FixtureRecord{
			HomeTeamID: schema.FixtureHomeTeam.Int(r),
			AwayTeamID: schema.FixtureAwayTeam.Int(r),
			Period:     schema.FixturePeriod.Int(r),
			Finished:   schema.FixtureFinished.Bool(r),
			HomeScore:  schema.FixtureHomeScore.Int(r),
			AwayScore:  schema.FixtureAwayScore.Int(r),
		}
		if fixture.HomeTeamID <= 0 || fixture.AwayTeamID <= 0 || fixture.Period <= 0 {
			q.MalformedFixtures++
			n.debugSkip("fixture", r)
			continue
		}
		out = append(out, fixture)
	}
	return out
}

func (n *Normalizer) participants(records []schema.Record, q *QualityReport) []models.Participant {
	out := make([]models.Participant, 0, len(records))
	for _, r := range records {
		p := models.Participant{
			ID:           schema.ParticipantID.Int(r),
			Name:         schema.ParticipantName.String(r),
			TeamID:       schema.ParticipantTeam.Int(r),
			Position:     schema.ParticipantPosition.String(r),
			DetailedRole: schema.ParticipantRole.String(r),
		}
		if p.Position == "" {
			p.Position = positionFromElementType(elementTypeField.Int(r))
		}
		if p.ID <= 0 || p.TeamID <= 0 {
			q.MalformedParticipants++
			n.debugSkip("participant", r)
			continue
		}
		out = append(out, p)
	}
	return out
}

func (n *Normalizer) stats(records []schema.Record, q *QualityReport) []models.EventStatRecord {
	out := make([]models.EventStatRecord, 0, len(records))
	for _, r := range records {
		rec := models.EventStatRecord{
			ParticipantID: schema.StatParticipant.Int(r),
			Period:        schema.StatPeriod.Int(r),
			Minutes:       schema.StatMinutes.Int(r),
			Interceptions: schema.StatInterceptions.Float(r),
			Clearances:    schema.StatClearances.Float(r),
			Blocks:        schema.StatBlocks.Float(r),
			Tackles:       schema.StatTackles.Float(r),
			Recoveries:    schema.StatRecoveries.Float(r),
			Goals:         schema.StatGoals.Int(r),
		}
		if rec.ParticipantID <= 0 || rec.Period <= 0 {
			q.MalformedStats++
			n.debugSkip("stat", r)
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (n *Normalizer) debugSkip(kind string, r schema.Record) {
	if n.logger != nil {
		n.logger.WithField("record", r).Debugf("Skipping malformed %s row", kind)
	}
}
