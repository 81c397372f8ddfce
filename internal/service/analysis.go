package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fixture-scout/internal/datasource"
	"github.com/yourusername/fixture-scout/internal/engine"
	"github.com/yourusername/fixture-scout/internal/logger"
	"github.com/yourusername/fixture-scout/internal/metrics"
	"github.com/yourusername/fixture-scout/internal/models"
)

// AnalysisService orchestrates one full analysis: fetch a snapshot,
// normalize it, run the engine, and record observability signals.
type AnalysisService struct {
	source     datasource.DataSource
	normalizer *Normalizer
	params     engine.Params
	overrides  models.OverrideTable
	owned      engine.OwnedSet
	log        *logrus.Logger
	audit      *logger.AnalysisLogger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	source datasource.DataSource,
	params engine.Params,
	overrides models.OverrideTable,
	owned engine.OwnedSet,
	log *logrus.Logger,
) *AnalysisService {
	return &AnalysisService{
		source:     source,
		normalizer: NewNormalizer(log),
		params:     params,
		overrides:  overrides,
		owned:      owned,
		log:        log,
		audit:      logger.NewAnalysisLogger(log),
	}
}

// Run executes the full analysis and returns the report with its quality
// counts.
func (s *AnalysisService) Run(ctx context.Context) (*models.AnalysisReport, QualityReport, error) {
	fetchStart := time.Now()
	snap, err := s.source.FetchSnapshot(ctx)
	metrics.RecordSnapshotFetch(time.Since(fetchStart).Seconds(), err)
	if err != nil {
		return nil, QualityReport{}, fmt.Errorf("fetching snapshot from %s: %w", s.source.Name(), err)
	}
	if snap.Empty() {
		return nil, QualityReport{}, models.ErrEmptySnapshot
	}

	s.audit.LogSnapshotLoaded(s.source.Name(),
		len(snap.Teams), len(snap.Fixtures), len(snap.Participants), len(snap.Stats),
		snap.FetchedAt)

	inputs, quality := s.normalizer.Normalize(snap)
	inputs.Overrides = s.overrides
	inputs.Owned = s.owned
	for _, issue := range quality.Issues() {
		s.audit.LogDataQualityIssue("malformed_row", quality.Total(), issue)
	}
	if len(inputs.Stats) == 0 {
		// Early in a season the feed has teams and fixtures but no finished
		// periods yet; there is nothing to estimate from.
		return nil, quality, fmt.Errorf("no completed periods in snapshot from %s: %w", s.source.Name(), models.ErrNoData)
	}

	runStart := time.Now()
	report := engine.Run(inputs, s.params)
	duration := time.Since(runStart)

	metrics.RecordPipelineRun(duration.Seconds(), len(report.Probabilities))
	metrics.RecordSkippedRecords("aggregation", report.RecordsSkipped)
	s.audit.LogPipelineRun(report.ID.String(),
		report.RecordsSeen, report.RecordsSkipped, len(report.Probabilities), duration)

	return &report, quality, nil
}
