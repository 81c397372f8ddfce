package datasource

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fixture-scout/internal/schema"
)

// FPLAPISource fetches snapshots from a fantasy Premier League style API:
// a bootstrap document with teams and players, a fixtures list, and
// per-gameweek live stat feeds.
type FPLAPISource struct {
	baseURL string
	client  *RateLimitedHTTPClient
	logger  *logrus.Logger
}

// NewFPLAPISource creates an API-backed source.
func NewFPLAPISource(baseURL string, client *RateLimitedHTTPClient, logger *logrus.Logger) *FPLAPISource {
	return &FPLAPISource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// Name returns the source name.
func (s *FPLAPISource) Name() string {
	return "fpl_api"
}

type bootstrapDoc struct {
	Teams    []schema.Record `json:"teams"`
	Elements []schema.Record `json:"elements"`
	Events   []schema.Record `json:"events"`
}

type liveDoc struct {
	Elements []struct {
		ID    int           `json:"id"`
		Stats schema.Record `json:"stats"`
	} `json:"elements"`
}

var (
	eventID       = schema.NewField("event_id", "id")
	eventFinished = schema.NewField("event_finished", "finished", "data_checked")
)

// FetchSnapshot pulls the bootstrap document, the fixture list, and the live
// stat feed of every finished gameweek.
func (s *FPLAPISource) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	var bootstrap bootstrapDoc
	if err := s.client.GetJSON(ctx, s.baseURL+"/bootstrap-static/", &bootstrap); err != nil {
		return nil, DataSourceError{Source: s.Name(), Code: ErrCodeUnavailable, Message: "fetching bootstrap", Err: err}
	}

	var fixtures []schema.Record
	if err := s.client.GetJSON(ctx, s.baseURL+"/fixtures/", &fixtures); err != nil {
		return nil, DataSourceError{Source: s.Name(), Code: ErrCodeUnavailable, Message: "fetching fixtures", Err: err}
	}

	stats := make([]schema.Record, 0)
	for _, event := range bootstrap.Events {
		if !eventFinished.Bool(event) {
			continue
		}
		gw := eventID.Int(event)
		rows, err := s.fetchLiveStats(ctx, gw)
		if err != nil {
			// A missing gameweek feed narrows the sample, it does not abort
			// the snapshot.
			if s.logger != nil {
				s.logger.WithField("gameweek", gw).Warnf("Skipping live stats: %v", err)
			}
			continue
		}
		stats = append(stats, rows...)
	}

	return &Snapshot{
		Teams:        bootstrap.Teams,
		Fixtures:     fixtures,
		Participants: bootstrap.Elements,
		Stats:        stats,
		FetchedAt:    time.Now().UTC(),
	}, nil
}

func (s *FPLAPISource) fetchLiveStats(ctx context.Context, gameweek int) ([]schema.Record, error) {
	var live liveDoc
	url := fmt.Sprintf("%s/event/%d/live/", s.baseURL, gameweek)
	if err := s.client.GetJSON(ctx, url, &live); err != nil {
		return nil, err
	}

	rows := make([]schema.Record, 0, len(live.Elements))
	for _, el := range live.Elements {
		row := make(schema.Record, len(el.Stats)+2)
		for k, v := range el.Stats {
			row[k] = v
		}
		row["element"] = el.ID
		row["event"] = gameweek
		rows = append(rows, row)
	}
	return rows, nil
}
