package engine

import (
	"reflect"
	"testing"

	"github.com/yourusername/fixture-scout/internal/models"
)

func pipelineInputs() Inputs {
	return Inputs{
		Teams: []models.TeamRecord{
			{ID: 1, Name: "Arsenal", ShortCode: "ARS"},
			{ID: 2, Name: "Brighton", ShortCode: "BHA"},
			{ID: 3, Name: "Chelsea", ShortCode: "CHE"},
			{ID: 4, Name: "Everton", ShortCode: "EVE"},
		},
		Fixtures: []models.FixtureRecord{
			{HomeTeamID: 1, AwayTeamID: 2, Period: 1, Finished: true, HomeScore: 2, AwayScore: 1},
			{HomeTeamID: 3, AwayTeamID: 4, Period: 1, Finished: true, HomeScore: 0, AwayScore: 0},
			{HomeTeamID: 2, AwayTeamID: 3, Period: 2, Finished: true, HomeScore: 1, AwayScore: 3},
			{HomeTeamID: 4, AwayTeamID: 1, Period: 2, Finished: true, HomeScore: 1, AwayScore: 1},
			{HomeTeamID: 1, AwayTeamID: 3, Period: 3, Finished: false},
			{HomeTeamID: 2, AwayTeamID: 4, Period: 3, Finished: false},
			{HomeTeamID: 3, AwayTeamID: 2, Period: 4, Finished: false},
			{HomeTeamID: 4, AwayTeamID: 3, Period: 5, Finished: false},
		},
		Participants: []models.Participant{
			{ID: 10, Name: "cb1", TeamID: 1, Position: "Defender"},
			{ID: 11, Name: "lb1", TeamID: 1, Position: "Defender", DetailedRole: "Left Back"},
			{ID: 12, Name: "mid1", TeamID: 2, Position: "Midfielder"},
			{ID: 13, Name: "fwd1", TeamID: 3, Position: "Forward"},
			{ID: 14, Name: "gk1", TeamID: 4, Position: "Goalkeeper"},
		},
		Stats: []models.EventStatRecord{
			{ParticipantID: 10, Period: 1, Minutes: 90, Interceptions: 4, Clearances: 5, Blocks: 1, Tackles: 2},
			{ParticipantID: 11, Period: 1, Minutes: 90, Interceptions: 2, Clearances: 3, Tackles: 1},
			{ParticipantID: 12, Period: 1, Minutes: 90, Interceptions: 3, Recoveries: 8, Tackles: 2},
			{ParticipantID: 13, Period: 1, Minutes: 70, Interceptions: 1, Recoveries: 4},
			{ParticipantID: 14, Period: 1, Minutes: 90, Clearances: 6},
			{ParticipantID: 10, Period: 2, Minutes: 90, Interceptions: 2, Clearances: 2, Tackles: 1},
			{ParticipantID: 12, Period: 2, Minutes: 0, Recoveries: 20},
			{ParticipantID: 13, Period: 2, Minutes: 88, Interceptions: 5, Recoveries: 6, Tackles: 3},
		},
		Owned: OwnedSet{1: true},
	}
}

func reversedInputs(in Inputs) Inputs {
	out := in
	out.Fixtures = reverseSlice(in.Fixtures)
	out.Participants = reverseSlice(in.Participants)
	out.Stats = reverseSlice(in.Stats)
	return out
}

func reverseSlice[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

func TestRunIdempotentAcrossRowOrder(t *testing.T) {
	params := Params{StartPeriod: 1, EndPeriod: 5}
	first := Run(pipelineInputs(), params)
	second := Run(reversedInputs(pipelineInputs()), params)

	if !reflect.DeepEqual(first.Probabilities, second.Probabilities) {
		t.Fatalf("probability table differs across input row order")
	}
	if !reflect.DeepEqual(first.Difficulty, second.Difficulty) {
		t.Fatalf("difficulty table differs across input row order")
	}
	if !reflect.DeepEqual(first.Opportunities, second.Opportunities) {
		t.Fatalf("opportunity recommendations differ across input row order")
	}
	if first.RecordsSeen != second.RecordsSeen || first.RecordsSkipped != second.RecordsSkipped {
		t.Fatalf("record counts differ across input row order")
	}
}

func TestRunProbabilitiesBounded(t *testing.T) {
	report := Run(pipelineInputs(), Params{StartPeriod: 1, EndPeriod: 5})
	if len(report.Probabilities) == 0 {
		t.Fatalf("expected probability output")
	}
	for opponentID, venues := range report.Probabilities {
		for key, archetypes := range venues {
			if key != "true" && key != "false" {
				t.Fatalf("unexpected venue output key %q", key)
			}
			for a, v := range archetypes {
				if v < 0 || v > 1 {
					t.Fatalf("probability out of range for opponent %d %s %s: %v", opponentID, key, a, v)
				}
				if a == models.ArchetypeGoalkeeper {
					t.Fatalf("goalkeeper must not appear in probability output")
				}
			}
		}
	}
}

func TestRunDifficultyScoresFutureOnly(t *testing.T) {
	report := Run(pipelineInputs(), Params{StartPeriod: 1, EndPeriod: 5})
	for teamID, td := range report.Difficulty {
		for period, entry := range td.Fixtures {
			if period <= 2 {
				t.Fatalf("finished period %d scored for team %d", period, teamID)
			}
			if entry.Difficulty < 1 || entry.Difficulty > 5 {
				t.Fatalf("difficulty out of range: %v", entry.Difficulty)
			}
		}
	}
}

func TestRunSkipCounts(t *testing.T) {
	report := Run(pipelineInputs(), Params{StartPeriod: 1, EndPeriod: 5})
	if report.RecordsSeen != 8 {
		t.Fatalf("expected 8 records seen, got %d", report.RecordsSeen)
	}
	// One goalkeeper record and one zero-minute record are excluded.
	if report.RecordsSkipped != 2 {
		t.Fatalf("expected 2 skipped records, got %d", report.RecordsSkipped)
	}
}
