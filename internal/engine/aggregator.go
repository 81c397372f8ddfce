package engine

import "github.com/yourusername/fixture-scout/internal/models"

// BucketSet holds the full aggregation result: per-opponent buckets keyed by
// venue and archetype, plus league-wide totals used as the smoothing prior.
type BucketSet struct {
	Opponents map[int]map[models.Venue]map[models.Archetype]*models.Bucket
	League    map[models.Venue]map[models.Archetype]*models.Bucket
}

// NewBucketSet returns an empty aggregation result.
func NewBucketSet() *BucketSet {
	return &BucketSet{
		Opponents: make(map[int]map[models.Venue]map[models.Archetype]*models.Bucket),
		League:    make(map[models.Venue]map[models.Archetype]*models.Bucket),
	}
}

// Opponent returns the bucket for an opponent+venue+archetype, creating it
// on first use.
func (s *BucketSet) Opponent(opponentID int, venue models.Venue, a models.Archetype) *models.Bucket {
	venues, ok := s.Opponents[opponentID]
	if !ok {
		venues = make(map[models.Venue]map[models.Archetype]*models.Bucket)
		s.Opponents[opponentID] = venues
	}
	return bucketIn(venues, venue, a)
}

// LeagueBucket returns the league-wide bucket for a venue+archetype.
func (s *BucketSet) LeagueBucket(venue models.Venue, a models.Archetype) *models.Bucket {
	return bucketIn(s.League, venue, a)
}

func bucketIn(m map[models.Venue]map[models.Archetype]*models.Bucket, venue models.Venue, a models.Archetype) *models.Bucket {
	archetypes, ok := m[venue]
	if !ok {
		archetypes = make(map[models.Archetype]*models.Bucket)
		m[venue] = archetypes
	}
	b, ok := archetypes[a]
	if !ok {
		b = &models.Bucket{}
		archetypes[a] = b
	}
	return b
}

// AggregateCounts reports how many stat records were consumed and how many
// were skipped, by reason. Skips are data-quality signals, never errors.
type AggregateCounts struct {
	Seen               int
	SkippedNoMinutes   int
	SkippedNoArchetype int
	SkippedGoalkeeper  int
	SkippedUnresolved  int
}

// Skipped returns the total number of records excluded from aggregation.
func (c AggregateCounts) Skipped() int {
	return c.SkippedNoMinutes + c.SkippedNoArchetype + c.SkippedGoalkeeper + c.SkippedUnresolved
}

// Aggregate accumulates hit/trial counts per opponent, venue and archetype.
// Venue is recorded from the opponent's perspective: a participant whose
// team played at home contributes to the opponent's Away bucket. Each record
// also lands in the opponent's venue-agnostic Overall bucket and in the
// league-wide totals. Records that cannot be resolved to a canonical team or
// fixture are skipped and counted.
func Aggregate(
	stats []models.EventStatRecord,
	participants map[int]models.Participant,
	teams *models.TeamIndex,
	fixtures *FixtureIndex,
	overrides models.OverrideTable,
	thresholds Thresholds,
) (*BucketSet, AggregateCounts) {
	set := NewBucketSet()
	var counts AggregateCounts

	for _, rec := range stats {
		counts.Seen++
		if !rec.Played() {
			counts.SkippedNoMinutes++
			continue
		}
		participant, ok := participants[rec.ParticipantID]
		if !ok {
			counts.SkippedUnresolved++
			continue
		}
		if _, err := teams.Resolve(participant.TeamID); err != nil {
			counts.SkippedUnresolved++
			continue
		}
		archetype := Classify(participant, overrides)
		if archetype == models.ArchetypeUnknown {
			counts.SkippedNoArchetype++
			continue
		}
		if archetype == models.ArchetypeGoalkeeper {
			counts.SkippedGoalkeeper++
			continue
		}
		ptf, ok := fixtures.Lookup(participant.TeamID, rec.Period)
		if !ok {
			counts.SkippedUnresolved++
			continue
		}
		if _, err := teams.Resolve(ptf.OpponentID); err != nil {
			counts.SkippedUnresolved++
			continue
		}

		venue := models.VenueHome
		if ptf.WasHome {
			venue = models.VenueAway
		}
		hit := IsHit(rec, archetype, thresholds)

		set.Opponent(ptf.OpponentID, venue, archetype).Add(hit)
		set.Opponent(ptf.OpponentID, models.VenueOverall, archetype).Add(hit)
		set.LeagueBucket(venue, archetype).Add(hit)
		set.LeagueBucket(models.VenueOverall, archetype).Add(hit)
	}

	return set, counts
}
