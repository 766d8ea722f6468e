package config

import "time"

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultEnv             = "development"
	defaultDriver          = DriverMySQL
	defaultDBHost          = "127.0.0.1"
	defaultMySQLPort       = 3306
	defaultPostgresPort    = 5432
	defaultDBUser          = "root"
	defaultDBPassword      = "password"
	defaultDBName          = "djangoblog"
	defaultDBCharset       = "utf8mb4"
	defaultDBLoc           = "Local"
	defaultPostgresSSLMode = "disable"
	defaultSQLitePath      = "blog.db"
	sqliteBusyTimeoutMS    = 5000
	defaultRedisHost       = "localhost"
	defaultRedisPort       = 6379
	defaultRedisDB         = 0
	defaultSettingCacheTTL = 10 * time.Minute
	defaultCacheKeyPrefix  = "blog:"
)
