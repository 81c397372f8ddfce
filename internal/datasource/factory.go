package datasource

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fixture-scout/internal/config"
)

// New creates the configured data source, wrapped with snapshot caching when
// a TTL is set.
func New(cfg config.DataConfig, logger *logrus.Logger) (DataSource, error) {
	var source DataSource

	switch cfg.Source {
	case "snapshot":
		if cfg.SnapshotDir == "" {
			return nil, fmt.Errorf("snapshot source requires snapshot_dir")
		}
		source = NewSnapshotFileSource(cfg.SnapshotDir, logger)

	case "fpl_api":
		if cfg.APIBaseURL == "" {
			return nil, fmt.Errorf("fpl_api source requires api_base_url")
		}
		httpCfg := DefaultHTTPClientConfig()
		httpCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		httpCfg.MaxRetries = cfg.MaxRetries
		if cfg.RateLimit > 0 {
			httpCfg.RateLimit = cfg.RateLimit
		}
		source = NewFPLAPISource(cfg.APIBaseURL, NewRateLimitedHTTPClient(httpCfg, logger), logger)

	default:
		return nil, fmt.Errorf("unknown data source: %s", cfg.Source)
	}

	return NewCachedSource(source, time.Duration(cfg.CacheTTLSeconds)*time.Second), nil
}
