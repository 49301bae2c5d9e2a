package config

import (
	"time"

	"github.com/gaze-network/inscription-indexer/internal/postgres"
)

type Config struct {
	Database        string          `mapstructure:"database"` // Database to store inscription data. e.g. `badger` | `postgres`
	Badger          BadgerConfig    `mapstructure:"badger"`
	Postgres        postgres.Config `mapstructure:"postgres"`
	FilterFile      string          `mapstructure:"filter_file"`      // Path to the inscribe filter JSON file. Empty uses the built-in filter.
	PollingInterval time.Duration   `mapstructure:"polling_interval"` // Wait time when there is no processable block. Default is 3s.
	TxCacheSize     int             `mapstructure:"tx_cache_size"`    // Number of verified inscriptions kept in memory by tx hash.
	APIHandlers     []string        `mapstructure:"api_handlers"`     // List of API handlers to enable. (e.g. `http`)
}

type BadgerConfig struct {
	Path           string `mapstructure:"path"`
	InMemory       bool   `mapstructure:"in_memory"`
	SyncWrites     bool   `mapstructure:"sync_writes"`
	MemTableSize   int64  `mapstructure:"mem_table_size"`  // One block commits in one transaction, which is limited to ~15% of this. Default is 128MB.
	ValueThreshold int64  `mapstructure:"value_threshold"` // Values of this size or larger go to the value log. Default is 1KB. Ignored in memory.
}
