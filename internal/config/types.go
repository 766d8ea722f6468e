package config

import "time"

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Env             string                `yaml:"env"` // "development" | "production"
	DSN             string                `yaml:"dsn"`
	RedisURL        string                `yaml:"redis_url"`
	Database        DatabaseRuntimeConfig `yaml:"database"`
	Redis           RedisRuntimeConfig    `yaml:"redis"`
	Paths           RuntimePathsConfig    `yaml:"paths"`
	SettingCacheTTL time.Duration         `yaml:"setting_cache_ttl"`
	CacheKeyPrefix  string                `yaml:"cache_key_prefix"`
}

type DatabaseRuntimeConfig struct {
	Driver    string            `yaml:"driver"`
	DSN       string            `yaml:"dsn"`
	Host      string            `yaml:"host"`
	Port      int               `yaml:"port"`
	User      string            `yaml:"user"`
	Password  string            `yaml:"password"`
	Name      string            `yaml:"name"`
	Charset   string            `yaml:"charset"`
	ParseTime bool              `yaml:"parse_time"`
	Loc       string            `yaml:"loc"`
	SSLMode   string            `yaml:"sslmode"`
	Path      string            `yaml:"path"`
	Params    map[string]string `yaml:"params"`
}

type RedisRuntimeConfig struct {
	Enable   bool              `yaml:"enable"`
	URL      string            `yaml:"url"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	Username string            `yaml:"username"`
	Password string            `yaml:"password"`
	DB       int               `yaml:"db"`
	TLS      bool              `yaml:"tls"`
	Scheme   string            `yaml:"scheme"`
	Params   map[string]string `yaml:"params"`
}

type RuntimePathsConfig struct {
	Logs string `yaml:"logs"`
}

// rawAppConfig accepts the nested layout plus the flat aliases older config files use.
type rawAppConfig struct {
	Env             string            `yaml:"env"`
	NodeEnv         string            `yaml:"node_env"`
	DSN             string            `yaml:"dsn"`
	DatabaseURL     string            `yaml:"database_url"`
	RedisURL        string            `yaml:"redis_url"`
	Database        rawDatabaseConfig `yaml:"database"`
	Redis           rawRedisConfig    `yaml:"redis"`
	DBDriver        string            `yaml:"db_driver"`
	DBHost          string            `yaml:"db_host"`
	DBPort          int               `yaml:"db_port"`
	DBUser          string            `yaml:"db_user"`
	DBPassword      string            `yaml:"db_password"`
	DBName          string            `yaml:"db_name"`
	Paths           rawPathsConfig    `yaml:"paths"`
	LogDir          string            `yaml:"log_dir"`
	SettingCacheTTL *time.Duration    `yaml:"setting_cache_ttl"`
	CacheKeyPrefix  string            `yaml:"cache_key_prefix"`
}

type rawDatabaseConfig struct {
	Driver    string            `yaml:"driver"`
	DSN       string            `yaml:"dsn"`
	URL       string            `yaml:"url"`
	Host      string            `yaml:"host"`
	Port      int               `yaml:"port"`
	User      string            `yaml:"user"`
	Username  string            `yaml:"username"`
	Password  string            `yaml:"password"`
	Name      string            `yaml:"name"`
	DBName    string            `yaml:"db_name"`
	Charset   string            `yaml:"charset"`
	ParseTime *bool             `yaml:"parse_time"`
	Loc       string            `yaml:"loc"`
	SSLMode   string            `yaml:"sslmode"`
	Path      string            `yaml:"path"`
	Params    map[string]string `yaml:"params"`
}

type rawRedisConfig struct {
	Enable   *bool             `yaml:"enable"`
	URL      string            `yaml:"url"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	Username string            `yaml:"username"`
	Password string            `yaml:"password"`
	DB       *int              `yaml:"db"`
	TLS      *bool             `yaml:"tls"`
	Scheme   string            `yaml:"scheme"`
	Params   map[string]string `yaml:"params"`
}

type rawPathsConfig struct {
	Logs string `yaml:"logs"`
}
