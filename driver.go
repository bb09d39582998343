package menucache

// Driver identifies the backend a store writes to.
type Driver string

const (
	DriverNull   Driver = "null"
	DriverMemory Driver = "memory"
	DriverFile   Driver = "file"
	DriverRedis  Driver = "redis"
	DriverSQL    Driver = "sql"
	DriverDynamo Driver = "dynamodb"
	DriverNATS   Driver = "nats"
)
