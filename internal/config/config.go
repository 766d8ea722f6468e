package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at configPath. Missing keys fall back to defaults.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML content into an AppConfig and validates it.
func Parse(content []byte) (*AppConfig, error) {
	cfg := Default()
	raw := rawAppConfig{}
	if len(bytes.TrimSpace(content)) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyRawAppConfig(&cfg, raw)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file overrides anything.
func Default() AppConfig {
	cfg := AppConfig{
		Env: defaultEnv,
		Database: DatabaseRuntimeConfig{
			Driver:    defaultDriver,
			Host:      defaultDBHost,
			User:      defaultDBUser,
			Password:  defaultDBPassword,
			Name:      defaultDBName,
			Charset:   defaultDBCharset,
			ParseTime: true,
			Loc:       defaultDBLoc,
		},
		Redis: RedisRuntimeConfig{
			Host: defaultRedisHost,
			Port: defaultRedisPort,
			DB:   defaultRedisDB,
		},
		SettingCacheTTL: defaultSettingCacheTTL,
		CacheKeyPrefix:  defaultCacheKeyPrefix,
	}
	cfg.Database = normalizeDatabaseConfig(cfg.Database)
	cfg.Redis = normalizeRedisConfig(cfg.Redis)
	cfg.DSN = cfg.Database.DSNValue()
	cfg.RedisURL = cfg.Redis.URLValue()
	return cfg
}

func (c *AppConfig) validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database.driver %q, expected mysql, postgres or sqlite", c.Database.Driver)
	}
	if c.Database.Driver != DriverSQLite && (c.Database.Port < 1 || c.Database.Port > 65535) {
		return fmt.Errorf("invalid database.port %d, expected 1-65535", c.Database.Port)
	}
	if c.Redis.Port < 1 || c.Redis.Port > 65535 {
		return fmt.Errorf("invalid redis.port %d, expected 1-65535", c.Redis.Port)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("invalid redis.db %d, expected >= 0", c.Redis.DB)
	}
	if c.SettingCacheTTL < 0 {
		return fmt.Errorf("invalid setting_cache_ttl %s, expected >= 0", c.SettingCacheTTL)
	}
	return nil
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.NodeEnv); v != "" {
		cfg.Env = v
	}
	cfg.Database = applyRawDatabaseConfig(cfg.Database, raw)
	cfg.Redis = applyRawRedisConfig(cfg.Redis, raw)

	if v := strings.TrimSpace(raw.Paths.Logs); v != "" {
		cfg.Paths.Logs = v
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.Paths.Logs = v
	}
	if raw.SettingCacheTTL != nil {
		cfg.SettingCacheTTL = *raw.SettingCacheTTL
	}
	if v := strings.TrimSpace(raw.CacheKeyPrefix); v != "" {
		cfg.CacheKeyPrefix = v
	}

	cfg.DSN = cfg.Database.DSNValue()
	cfg.RedisURL = cfg.Redis.URLValue()
	cfg.Paths = normalizeRuntimePaths(cfg.Paths)
	cfg.Env = normalizeEnv(cfg.Env)
}

func applyRawDatabaseConfig(current DatabaseRuntimeConfig, raw rawAppConfig) DatabaseRuntimeConfig {
	cfg := current
	driverChanged := false

	if v := strings.TrimSpace(raw.Database.Driver); v != "" {
		cfg.Driver = v
		driverChanged = true
	}
	if v := strings.TrimSpace(raw.DBDriver); v != "" {
		cfg.Driver = v
		driverChanged = true
	}
	if driverChanged {
		// The port default depends on the driver; let normalize pick it again.
		cfg.Port = 0
	}
	if v := strings.TrimSpace(raw.Database.DSN); v != "" {
		cfg.DSN = v
	}
	if v := strings.TrimSpace(raw.Database.URL); v != "" {
		cfg.DSN = v
	}
	if v := strings.TrimSpace(raw.DSN); v != "" {
		cfg.DSN = v
	}
	if v := strings.TrimSpace(raw.DatabaseURL); v != "" {
		cfg.DSN = v
	}
	if v := strings.TrimSpace(raw.Database.Host); v != "" {
		cfg.Host = v
	}
	if v := strings.TrimSpace(raw.DBHost); v != "" {
		cfg.Host = v
	}
	if raw.Database.Port != 0 {
		cfg.Port = raw.Database.Port
	}
	if raw.DBPort != 0 {
		cfg.Port = raw.DBPort
	}
	if v := strings.TrimSpace(raw.Database.User); v != "" {
		cfg.User = v
	}
	if v := strings.TrimSpace(raw.Database.Username); v != "" {
		cfg.User = v
	}
	if v := strings.TrimSpace(raw.DBUser); v != "" {
		cfg.User = v
	}
	if v := strings.TrimSpace(raw.Database.Password); v != "" {
		cfg.Password = v
	}
	if v := strings.TrimSpace(raw.DBPassword); v != "" {
		cfg.Password = v
	}
	if v := strings.TrimSpace(raw.Database.Name); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(raw.Database.DBName); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(raw.DBName); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(raw.Database.Charset); v != "" {
		cfg.Charset = v
	}
	if raw.Database.ParseTime != nil {
		cfg.ParseTime = *raw.Database.ParseTime
	}
	if v := strings.TrimSpace(raw.Database.Loc); v != "" {
		cfg.Loc = v
	}
	if v := strings.TrimSpace(raw.Database.SSLMode); v != "" {
		cfg.SSLMode = v
	}
	if v := strings.TrimSpace(raw.Database.Path); v != "" {
		cfg.Path = v
	}
	if raw.Database.Params != nil {
		cfg.Params = copyStringMap(raw.Database.Params)
	}

	return normalizeDatabaseConfig(cfg)
}

func applyRawRedisConfig(current RedisRuntimeConfig, raw rawAppConfig) RedisRuntimeConfig {
	cfg := current

	if raw.Redis.Enable != nil {
		cfg.Enable = *raw.Redis.Enable
	}
	if v := strings.TrimSpace(raw.Redis.URL); v != "" {
		cfg.URL = v
		if raw.Redis.Enable == nil {
			cfg.Enable = true
		}
	}
	if v := strings.TrimSpace(raw.RedisURL); v != "" {
		cfg.URL = v
		if raw.Redis.Enable == nil {
			cfg.Enable = true
		}
	}
	if v := strings.TrimSpace(raw.Redis.Host); v != "" {
		cfg.Host = v
	}
	if raw.Redis.Port != 0 {
		cfg.Port = raw.Redis.Port
	}
	if v := strings.TrimSpace(raw.Redis.Username); v != "" {
		cfg.Username = v
	}
	if v := strings.TrimSpace(raw.Redis.Password); v != "" {
		cfg.Password = v
	}
	if raw.Redis.DB != nil {
		cfg.DB = *raw.Redis.DB
	}
	if raw.Redis.TLS != nil {
		cfg.TLS = *raw.Redis.TLS
	}
	if v := strings.TrimSpace(raw.Redis.Scheme); v != "" {
		cfg.Scheme = v
	}
	if raw.Redis.Params != nil {
		cfg.Params = copyStringMap(raw.Redis.Params)
	}

	return normalizeRedisConfig(cfg)
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}

// LogDir returns the configured log directory, or "" to let the logger pick its fallback.
func (c *AppConfig) LogDir() string {
	if c == nil {
		return ""
	}
	return c.Paths.Logs
}
