// Package logger provides audit logging for analysis runs.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AnalysisLogger provides a dedicated audit trail for pipeline runs.
type AnalysisLogger struct {
	*logrus.Entry
}

// NewAnalysisLogger creates a new analysis audit logger.
func NewAnalysisLogger(baseLogger *logrus.Logger) *AnalysisLogger {
	return &AnalysisLogger{
		Entry: baseLogger.WithField("component", "analysis"),
	}
}

// LogSnapshotLoaded records a snapshot load with its table sizes.
func (al *AnalysisLogger) LogSnapshotLoaded(source string, teams, fixtures, participants, statRows int, fetchedAt time.Time) {
	al.WithFields(logrus.Fields{
		"source":       source,
		"teams":        teams,
		"fixtures":     fixtures,
		"participants": participants,
		"stat_rows":    statRows,
		"fetched_at":   fetchedAt.Unix(),
	}).Info("Snapshot loaded")
}

// LogPipelineRun records a completed pipeline run.
func (al *AnalysisLogger) LogPipelineRun(reportID string, recordsSeen, recordsSkipped, opponents int, duration time.Duration) {
	al.WithFields(logrus.Fields{
		"report_id":       reportID,
		"records_seen":    recordsSeen,
		"records_skipped": recordsSkipped,
		"opponents":       opponents,
		"duration_ms":     duration.Milliseconds(),
	}).Info("Pipeline run completed")
}

// LogDataQualityIssue records a non-fatal data quality signal.
func (al *AnalysisLogger) LogDataQualityIssue(issueType string, count int, detail string) {
	al.WithFields(logrus.Fields{
		"issue_type": issueType,
		"count":      count,
		"detail":     detail,
	}).Warn("Data quality issue detected")
}
