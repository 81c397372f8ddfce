package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerLevels(t *testing.T) {
	log := NewLogger("debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = NewLogger("nonsense")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestAnalysisLoggerSnapshotLoaded(t *testing.T) {
	log, buf := setupTestLogger()
	al := NewAnalysisLogger(log)

	al.LogSnapshotLoaded("snapshot", 20, 380, 600, 12000, time.Unix(1700000000, 0))

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "analysis", logEntry["component"])
	assert.Equal(t, "snapshot", logEntry["source"])
	assert.Equal(t, float64(380), logEntry["fixtures"])
}

func TestAnalysisLoggerPipelineRun(t *testing.T) {
	log, buf := setupTestLogger()
	al := NewAnalysisLogger(log)

	al.LogPipelineRun("report-1", 12000, 42, 20, 150*time.Millisecond)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "report-1", logEntry["report_id"])
	assert.Equal(t, float64(42), logEntry["records_skipped"])
	assert.Equal(t, float64(150), logEntry["duration_ms"])
}

func TestAnalysisLoggerDataQuality(t *testing.T) {
	log, buf := setupTestLogger()
	al := NewAnalysisLogger(log)

	al.LogDataQualityIssue("unresolved_reference", 7, "unmapped team codes")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "unresolved_reference", logEntry["issue_type"])
	assert.Equal(t, "warning", logEntry["level"])
}
