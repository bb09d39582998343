package menucache

import "time"

// StoreOption mutates StoreConfig when constructing a store.
type StoreOption func(StoreConfig) StoreConfig

// WithDefaultTTL overrides the fallback TTL used when ttl <= 0.
func WithDefaultTTL(ttl time.Duration) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.DefaultTTL = ttl
		return cfg
	}
}

// WithMemoryCleanupInterval overrides the sweep interval for the memory driver.
func WithMemoryCleanupInterval(interval time.Duration) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.MemoryCleanupInterval = interval
		return cfg
	}
}

// WithPrefix sets the key prefix for shared backends.
func WithPrefix(prefix string) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.Prefix = prefix
		return cfg
	}
}

// WithFileDir sets the directory used by the file driver.
func WithFileDir(dir string) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.FileDir = dir
		return cfg
	}
}

// WithRedisClient sets the redis client; required when using DriverRedis.
func WithRedisClient(client RedisClient) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.RedisClient = client
		return cfg
	}
}

// WithSQL sets the database/sql driver name and DSN; required for DriverSQL.
func WithSQL(driverName, dsn string) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.SQLDriverName = driverName
		cfg.SQLDSN = dsn
		return cfg
	}
}

// WithSQLTable overrides the table used by the sql driver.
func WithSQLTable(table string) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.SQLTable = table
		return cfg
	}
}

// WithDynamoClient sets a pre-built DynamoDB client.
func WithDynamoClient(client DynamoAPI) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.DynamoClient = client
		return cfg
	}
}

// WithDynamoTable overrides the table used by the dynamodb driver.
func WithDynamoTable(table string) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.DynamoTable = table
		return cfg
	}
}

// WithDynamoRegion sets the region used when building a DynamoDB client.
func WithDynamoRegion(region string) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.DynamoRegion = region
		return cfg
	}
}

// WithDynamoEndpoint points the dynamodb driver at a custom endpoint
// (e.g. a local emulator).
func WithDynamoEndpoint(endpoint string) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.DynamoEndpoint = endpoint
		return cfg
	}
}

// WithNATSKeyValue sets the JetStream key-value bucket; required for DriverNATS.
func WithNATSKeyValue(kv NATSKeyValue) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.NATSKeyValue = kv
		return cfg
	}
}

// WithNATSBucketTTL marks the bucket as owning expiry, disabling envelopes.
func WithNATSBucketTTL(enabled bool) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.NATSBucketTTL = enabled
		return cfg
	}
}
