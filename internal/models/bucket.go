package models

// Bucket is a hits/trials counter for one opponent, venue and archetype.
// Invariant: 0 <= Hits <= Trials.
type Bucket struct {
	Hits   int `json:"hits" validate:"gte=0"`
	Trials int `json:"trials" validate:"gte=0"`
}

// Add records one trial, and one hit when hit is true.
func (b *Bucket) Add(hit bool) {
	b.Trials++
	if hit {
		b.Hits++
	}
}

// Rate returns the raw hit rate, or 0 when the bucket is empty.
func (b Bucket) Rate() float64 {
	if b.Trials == 0 {
		return 0
	}
	return float64(b.Hits) / float64(b.Trials)
}

// SmoothedProbability is an empirical-Bayes estimate for one bucket.
// Recomputed on every full pass, never mutated in place.
type SmoothedProbability struct {
	Value      float64 `json:"value" validate:"gte=0,lte=1"`
	SampleSize int     `json:"sample_size" validate:"gte=0"`
}
