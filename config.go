package menucache

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultStorePrefix = "menu"

	// Slots only need to survive until the date marker rolls over, so the
	// default TTL is generous and staleness is decided by the marker.
	defaultStoreTTL = 48 * time.Hour

	defaultMemoryCleanupInterval = time.Hour
)

func defaultFileDir() string {
	return filepath.Join(os.TempDir(), "menucache")
}

// StoreConfig controls how a Store is constructed.
type StoreConfig struct {
	Driver Driver

	// DefaultTTL is used when a call provides ttl <= 0.
	DefaultTTL time.Duration

	// MemoryCleanupInterval controls in-process store eviction.
	MemoryCleanupInterval time.Duration

	// Prefix scopes keys on shared backends (redis, sql, dynamo, nats).
	Prefix string

	// FileDir controls where the file driver stores entries.
	FileDir string

	// RedisClient is required when DriverRedis is used.
	RedisClient RedisClient

	// SQLDriverName and SQLDSN are required when DriverSQL is used.
	// Supported driver names: sqlite, mysql, pgx.
	SQLDriverName string
	SQLDSN        string
	SQLTable      string

	// DynamoClient may be provided directly; otherwise a client is built
	// from DynamoRegion/DynamoEndpoint.
	DynamoClient   DynamoAPI
	DynamoTable    string
	DynamoRegion   string
	DynamoEndpoint string

	// NATSKeyValue is required when DriverNATS is used. NATSBucketTTL
	// signals the bucket itself expires keys, skipping envelope expiry.
	NATSKeyValue  NATSKeyValue
	NATSBucketTTL bool
}

func (c StoreConfig) withDefaults() StoreConfig {
	if c.Driver == "" {
		c.Driver = DriverMemory
	}
	if c.DefaultTTL <= 0 {
		c.DefaultTTL = defaultStoreTTL
	}
	if c.MemoryCleanupInterval <= 0 {
		c.MemoryCleanupInterval = defaultMemoryCleanupInterval
	}
	if c.Prefix == "" {
		c.Prefix = defaultStorePrefix
	}
	if c.FileDir == "" {
		c.FileDir = defaultFileDir()
	}
	if c.SQLTable == "" {
		c.SQLTable = "menu_cache"
	}
	if c.DynamoTable == "" {
		c.DynamoTable = "menu_cache"
	}
	return c
}
