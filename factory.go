package menucache

import "context"

// NewStore returns a concrete store for the requested driver. Drivers whose
// construction can fail (sql, dynamodb) fall back to an error store that
// reports the failure on every call.
//
// Example: select driver explicitly
//
//	store := menucache.NewStore(ctx, menucache.StoreConfig{
//		Driver: menucache.DriverMemory,
//	})
//	fmt.Println(store.Driver()) // memory
func NewStore(ctx context.Context, cfg StoreConfig) Store {
	cfg = cfg.withDefaults()
	switch cfg.Driver {
	case DriverNull:
		return newNullStore()
	case DriverRedis:
		return newRedisStore(cfg.RedisClient, cfg.DefaultTTL, cfg.Prefix)
	case DriverFile:
		return newFileStore(cfg.FileDir, cfg.DefaultTTL)
	case DriverSQL:
		store, err := newSQLStore(cfg)
		if err != nil {
			return &errorStore{driver: DriverSQL, err: err}
		}
		return store
	case DriverDynamo:
		store, err := newDynamoStore(ctx, cfg)
		if err != nil {
			return &errorStore{driver: DriverDynamo, err: err}
		}
		return store
	case DriverNATS:
		return newNATSStore(cfg.NATSKeyValue, cfg.DefaultTTL, cfg.Prefix, cfg.NATSBucketTTL)
	default:
		return newMemoryStore(cfg.DefaultTTL, cfg.MemoryCleanupInterval)
	}
}

// NewStoreWith builds a store using a driver and a set of functional options.
// Required data (e.g. the redis client) must be provided via options.
func NewStoreWith(ctx context.Context, driver Driver, opts ...StoreOption) Store {
	cfg := StoreConfig{Driver: driver}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return NewStore(ctx, cfg)
}

// NewMemoryStore is a convenience for an in-process session store.
func NewMemoryStore(ctx context.Context, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverMemory, opts...)
}

// NewFileStore is a convenience for a filesystem-backed store, which lets
// the day cache survive process restarts within the same day.
func NewFileStore(ctx context.Context, dir string, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverFile, append([]StoreOption{WithFileDir(dir)}, opts...)...)
}

// NewRedisStore is a convenience for a redis-backed store. Client is required.
func NewRedisStore(ctx context.Context, client RedisClient, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverRedis, append([]StoreOption{WithRedisClient(client)}, opts...)...)
}

// NewSQLStore is a convenience for a database/sql-backed store.
// Supported driver names: sqlite, mysql, pgx.
func NewSQLStore(ctx context.Context, driverName, dsn string, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverSQL, append([]StoreOption{WithSQL(driverName, dsn)}, opts...)...)
}

// NewDynamoStore is a convenience for a DynamoDB-backed store.
func NewDynamoStore(ctx context.Context, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverDynamo, opts...)
}

// NewNATSStore is a convenience for a JetStream key-value backed store.
func NewNATSStore(ctx context.Context, kv NATSKeyValue, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverNATS, append([]StoreOption{WithNATSKeyValue(kv)}, opts...)...)
}

// NewNullStore is a convenience for a store that drops every write, which
// forces a network fetch on every read.
func NewNullStore(ctx context.Context) Store {
	return NewStoreWith(ctx, DriverNull)
}
