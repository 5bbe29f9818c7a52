package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joripage/feedhandler/pkg/logging"
	"github.com/joripage/feedhandler/pkg/orderbook"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var errInvalidSnapshotEvery = errors.New("snapshot_every must not be negative")

type EngineConfig struct {
	MatchPolicy string `yaml:"match_policy"`
}

type FeedConfig struct {
	SnapshotEvery    int  `yaml:"snapshot_every"`
	SnapshotToStderr bool `yaml:"snapshot_to_stderr"`
}

type AppConfig struct {
	ServiceName string          `yaml:"service_name"`
	Log         *logging.Config `yaml:"log"`
	Engine      *EngineConfig   `yaml:"engine"`
	Feed        *FeedConfig     `yaml:"feed"`
}

// Default returns the configuration used when no file is given.
func Default() *AppConfig {
	return &AppConfig{
		ServiceName: "feedhandler",
		Log:         &logging.Config{Level: "info"},
		Engine:      &EngineConfig{MatchPolicy: string(orderbook.PolicyFeed)},
		Feed:        &FeedConfig{SnapshotEvery: 10, SnapshotToStderr: true},
	}
}

// Load load config from file and environment variables. With no file path and
// no CONFIG_FILE the defaults are returned.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	cfg := Default()
	if len(filePath) == 0 {
		return cfg, nil
	}

	sugar := zap.S().With("func", "config.Load", "filePath", filePath)
	sugar.Debug("Load config...")

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		sugar.Error("Invalid config")
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}

// validate fills sections left out of the file and checks values.
func (c *AppConfig) validate() error {
	def := Default()
	if c.Log == nil {
		c.Log = def.Log
	}
	if c.Engine == nil {
		c.Engine = def.Engine
	}
	if c.Feed == nil {
		c.Feed = def.Feed
	}

	if _, err := orderbook.ParseMatchPolicy(c.Engine.MatchPolicy); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if c.Feed.SnapshotEvery < 0 {
		return errInvalidSnapshotEvery
	}
	return nil
}

// MatchPolicy returns the validated engine match policy.
func (c *AppConfig) MatchPolicy() orderbook.MatchPolicy {
	p, _ := orderbook.ParseMatchPolicy(c.Engine.MatchPolicy)
	return p
}
