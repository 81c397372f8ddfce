package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "fixture-scout", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "snapshot", cfg.Data.Source)
	assert.Equal(t, 10.0, cfg.Engine.DefenseThreshold)
	assert.Equal(t, 6.0, cfg.Engine.PriorStrength)
	assert.Equal(t, []int{1, 7}, cfg.Engine.OwnedTeams)
}

func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent_config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadConfigEnvExpansion(t *testing.T) {
	t.Setenv("FIXTURE_SCOUT_TEST_NAME", "expanded-name")

	cfg, err := Load("testdata/expansion_config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "expanded-name", cfg.App.Name)
}

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("FIXTURE_SCOUT_TEST_NAME")
	cfg, err := Load("testdata/expansion_config.yaml")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Data.MaxRetries)
	assert.Equal(t, 5.0, cfg.Data.RateLimit)
	assert.Equal(t, ":8090", cfg.Refresh.ListenAddress)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	require.NoError(t, err)

	cfg.App.LogLevel = "loud"
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loglevel")
}

func TestValidateRejectsInvertedWindow(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	require.NoError(t, err)

	cfg.Engine.StartPeriod = 20
	cfg.Engine.EndPeriod = 10
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_period")
}

func TestValidateRejectsBadWeights(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	require.NoError(t, err)

	cfg.Engine.ConcedeWeight = 0.7
	cfg.Engine.AttackWeight = 0.7
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights")
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	require.NoError(t, err)
	assert.NoError(t, Validate(cfg))
}
