package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fixture-scout/internal/schema"
)

// Table file names expected inside a snapshot directory. The overrides and
// stats tables are optional; teams and fixtures are not.
const (
	teamsFile        = "teams.json"
	fixturesFile     = "fixtures.json"
	participantsFile = "players.json"
	statsFile        = "stats.json"
)

// SnapshotFileSource loads a snapshot from a directory of JSON table dumps.
type SnapshotFileSource struct {
	dir    string
	logger *logrus.Logger
}

// NewSnapshotFileSource creates a source reading from dir.
func NewSnapshotFileSource(dir string, logger *logrus.Logger) *SnapshotFileSource {
	return &SnapshotFileSource{dir: dir, logger: logger}
}

// Name returns the source name.
func (s *SnapshotFileSource) Name() string {
	return "snapshot"
}

// FetchSnapshot reads every table file from the snapshot directory.
func (s *SnapshotFileSource) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	teams, err := s.readTable(teamsFile, true)
	if err != nil {
		return nil, err
	}
	fixtures, err := s.readTable(fixturesFile, true)
	if err != nil {
		return nil, err
	}
	participants, err := s.readTable(participantsFile, false)
	if err != nil {
		return nil, err
	}
	stats, err := s.readTable(statsFile, false)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Teams:        teams,
		Fixtures:     fixtures,
		Participants: participants,
		Stats:        stats,
		FetchedAt:    time.Now().UTC(),
	}, nil
}

func (s *SnapshotFileSource) readTable(name string, required bool) ([]schema.Record, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			if s.logger != nil {
				s.logger.Debugf("Optional table %s missing, continuing", name)
			}
			return nil, nil
		}
		return nil, DataSourceError{
			Source:  s.Name(),
			Code:    ErrCodeNotFound,
			Message: fmt.Sprintf("reading %s", path),
			Err:     err,
		}
	}

	var records []schema.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, DataSourceError{
			Source:  s.Name(),
			Code:    ErrCodeDecodeFailed,
			Message: fmt.Sprintf("parsing %s", path),
			Err:     err,
		}
	}
	return records, nil
}
