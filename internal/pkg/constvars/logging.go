package constvars

const (
	LoggingTableKey    = "table"
	LoggingRowsKey     = "rows"
	LoggingBatchKey    = "batch"
	LoggingQueryKey    = "query"
	LoggingDriverKey   = "driver"
	LoggingSuiteKey    = "suite"
	LoggingDurationKey = "duration"
	LoggingDatabaseKey = "database"
	LoggingServerKey   = "server"
	LoggingCountKey    = "count"
	LoggingPathKey     = "path"
	LoggingDateKey     = "date"
)
