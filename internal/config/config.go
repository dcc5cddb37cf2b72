// Package config defines service configuration and its loading.
package config

import (
	"fmt"
	"math"
	"runtime"
	"strings"
)

// ScoreWeights are the performance sub-score weights; they must sum to 1.
type ScoreWeights struct {
	Project float64 `koanf:"project"`
	Task    float64 `koanf:"task"`
	Skill   float64 `koanf:"skill"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetPath points at a roster YAML file; empty uses the built-in sample.
	DatasetPath string `koanf:"dataset_path"`

	// EvaluationPeriod is the default period label attached to scores.
	EvaluationPeriod string `koanf:"evaluation_period"`

	// QueueSize bounds the archive job queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of archive workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize bounds the archive seen-set.
	DedupeSize int `koanf:"dedupe_size"`

	ShutdownTimeoutSec int `koanf:"shutdown_timeout_sec"`

	AnthropicAPIKey string `koanf:"anthropic_api_key"`
	AnthropicModel  string `koanf:"anthropic_model"`

	NotionAPIKey     string `koanf:"notion_api_key"`
	NotionDatabaseID string `koanf:"notion_database_id"`
	NotionBaseURL    string `koanf:"notion_base_url"`

	// LocalArchivePath is the JSON-lines file used when Notion is unavailable.
	LocalArchivePath string `koanf:"local_archive_path"`

	// Neo4j projection is disabled while Neo4jURI is empty.
	Neo4jURI      string `koanf:"neo4j_uri"`
	Neo4jUser     string `koanf:"neo4j_user"`
	Neo4jPassword string `koanf:"neo4j_password"`
	Neo4jDatabase string `koanf:"neo4j_database"`

	ScoreWeights ScoreWeights `koanf:"score_weights"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		EvaluationPeriod:   "2025-Q4",
		QueueSize:          1024,
		WorkerCount:        runtime.NumCPU(),
		DedupeSize:         10_000,
		ShutdownTimeoutSec: 10,
		AnthropicModel:     "claude-haiku-4-5-20251001",
		NotionBaseURL:      "https://api.notion.com",
		LocalArchivePath:   "archive.jsonl",
		Neo4jUser:          "neo4j",
		Neo4jDatabase:      "neo4j",
		ScoreWeights:       ScoreWeights{Project: 0.40, Task: 0.35, Skill: 0.25},
	}
}

// Validate checks the values that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.QueueSize <= 0:
		return fmt.Errorf("%w: queue_size must be positive", ErrInvalidConfig)
	case c.WorkerCount <= 0:
		return fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	case c.ShutdownTimeoutSec <= 0:
		return fmt.Errorf("%w: shutdown_timeout_sec must be positive", ErrInvalidConfig)
	}
	w := c.ScoreWeights
	if w.Project < 0 || w.Task < 0 || w.Skill < 0 || math.Abs(w.Project+w.Task+w.Skill-1) > 1e-6 {
		return fmt.Errorf("%w: score_weights must be non-negative and sum to 1", ErrInvalidConfig)
	}
	return nil
}

// NotionEnabled reports whether Notion credentials are configured.
func (c *Config) NotionEnabled() bool {
	return c.NotionAPIKey != "" && c.NotionDatabaseID != ""
}

// String renders the config with secrets masked, for logging.
func (c Config) String() string {
	return fmt.Sprintf("Config{Addr:%s, LogLevel:%s, DatasetPath:%q, QueueSize:%d, WorkerCount:%d, "+
		"AnthropicAPIKey:%s, AnthropicModel:%s, NotionAPIKey:%s, NotionDatabaseID:%s, Neo4jURI:%s, Neo4jPassword:%s}",
		c.Addr, c.LogLevel, c.DatasetPath, c.QueueSize, c.WorkerCount,
		mask(c.AnthropicAPIKey), c.AnthropicModel, mask(c.NotionAPIKey), c.NotionDatabaseID, c.Neo4jURI, mask(c.Neo4jPassword))
}

// mask keeps the first and last four characters of a secret.
func mask(secret string) string {
	const visible = 4
	if secret == "" {
		return ""
	}
	if len(secret) <= visible*2 {
		return "***"
	}
	return secret[:visible] + strings.Repeat("*", len(secret)-visible*2) + secret[len(secret)-visible:]
}
