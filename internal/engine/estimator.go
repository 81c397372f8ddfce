package engine

import (
	"math"

	"github.com/yourusername/fixture-scout/internal/models"
)

// Smoothing defaults: six virtual games of prior weight, and the league-wide
// historical hit rate used when no league data exists at all.
const (
	DefaultPriorStrength  = 6.0
	DefaultLeagueBaseline = 0.28
)

// Priors configures the Beta-Binomial smoothing.
type Priors struct {
	Strength float64
	Baseline float64
}

// DefaultPriors returns the production smoothing parameters.
func DefaultPriors() Priors {
	return Priors{Strength: DefaultPriorStrength, Baseline: DefaultLeagueBaseline}
}

// Shrink applies the Beta-Binomial conjugate update: with prior mean p0 and
// prior strength k, alpha0 = p0*k and beta0 = (1-p0)*k, and the posterior
// mean is (alpha0 + hits) / (k + trials). An empty bucket returns exactly p0;
// a large bucket converges to the raw hit rate.
func Shrink(b models.Bucket, priorMean, priorStrength float64) models.SmoothedProbability {
	alpha := priorMean * priorStrength
	value := (alpha + float64(b.Hits)) / (priorStrength + float64(b.Trials))
	return models.SmoothedProbability{
		Value:      clamp01(value),
		SampleSize: b.Trials,
	}
}

// estimationStep is one level of the fallback chain. It reports whether it
// could produce an estimate for the requested bucket.
type estimationStep func(s *BucketSet, opponentID int, venue models.Venue, a models.Archetype, p Priors) (models.SmoothedProbability, bool)

// fallbackChain is evaluated in order: venue-specific bucket, venue-agnostic
// overall bucket, then the bare league baseline. The last step always
// succeeds.
var fallbackChain = []estimationStep{
	estimateVenueBucket,
	estimateOverallBucket,
	estimateLeagueBaseline,
}

// Estimate produces the smoothed probability for one opponent, venue and
// archetype by walking the fallback chain.
func Estimate(s *BucketSet, opponentID int, venue models.Venue, a models.Archetype, p Priors) models.SmoothedProbability {
	for _, step := range fallbackChain {
		if est, ok := step(s, opponentID, venue, a, p); ok {
			return est
		}
	}
	// Unreachable: the baseline step always succeeds.
	return models.SmoothedProbability{Value: p.Baseline}
}

func estimateVenueBucket(s *BucketSet, opponentID int, venue models.Venue, a models.Archetype, p Priors) (models.SmoothedProbability, bool) {
	bucket, ok := lookupBucket(s.Opponents[opponentID], venue, a)
	if !ok || bucket.Trials == 0 {
		return models.SmoothedProbability{}, false
	}
	return Shrink(bucket, s.LeagueBaseline(venue, a, p), p.Strength), true
}

func estimateOverallBucket(s *BucketSet, opponentID int, venue models.Venue, a models.Archetype, p Priors) (models.SmoothedProbability, bool) {
	_ = venue
	bucket, ok := lookupBucket(s.Opponents[opponentID], models.VenueOverall, a)
	if !ok || bucket.Trials == 0 {
		return models.SmoothedProbability{}, false
	}
	return Shrink(bucket, s.LeagueBaseline(models.VenueOverall, a, p), p.Strength), true
}

func estimateLeagueBaseline(s *BucketSet, opponentID int, venue models.Venue, a models.Archetype, p Priors) (models.SmoothedProbability, bool) {
	_ = opponentID
	return models.SmoothedProbability{Value: clamp01(s.LeagueBaseline(venue, a, p)), SampleSize: 0}, true
}

// LeagueBaseline is the raw league-wide hit rate for a venue and archetype.
// Falls back to the venue-agnostic league rate, then to the configured
// default constant, when the denominator is zero.
func (s *BucketSet) LeagueBaseline(venue models.Venue, a models.Archetype, p Priors) float64 {
	if b, ok := lookupBucket(s.League, venue, a); ok && b.Trials > 0 {
		return b.Rate()
	}
	if venue != models.VenueOverall {
		if b, ok := lookupBucket(s.League, models.VenueOverall, a); ok && b.Trials > 0 {
			return b.Rate()
		}
	}
	return p.Baseline
}

func lookupBucket(m map[models.Venue]map[models.Archetype]*models.Bucket, venue models.Venue, a models.Archetype) (models.Bucket, bool) {
	if m == nil {
		return models.Bucket{}, false
	}
	archetypes, ok := m[venue]
	if !ok {
		return models.Bucket{}, false
	}
	b, ok := archetypes[a]
	if !ok || b == nil {
		return models.Bucket{}, false
	}
	return *b, true
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
