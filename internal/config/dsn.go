package config

import (
	"net"
	neturl "net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// DSNValue returns the explicit DSN when set, otherwise one assembled for the configured driver.
func (c DatabaseRuntimeConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}
	switch c.Driver {
	case DriverPostgres:
		return c.postgresDSN()
	case DriverSQLite:
		return c.sqliteDSN()
	default:
		return c.mysqlDSN()
	}
}

func (c DatabaseRuntimeConfig) mysqlDSN() string {
	port := c.Port
	if port == 0 {
		port = defaultMySQLPort
	}

	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(port))
	mc.DBName = c.Name
	mc.ParseTime = c.ParseTime
	if loc, err := loadLocation(c.Loc); err == nil {
		mc.Loc = loc
	}
	mc.Params = map[string]string{}
	for key, value := range c.Params {
		k := strings.TrimSpace(key)
		v := strings.TrimSpace(value)
		if k != "" && v != "" {
			mc.Params[k] = v
		}
	}
	if _, ok := mc.Params["charset"]; !ok && c.Charset != "" {
		mc.Params["charset"] = c.Charset
	}
	return mc.FormatDSN()
}

func (c DatabaseRuntimeConfig) postgresDSN() string {
	port := c.Port
	if port == 0 {
		port = defaultPostgresPort
	}

	query := neturl.Values{}
	for key, value := range c.Params {
		k := strings.TrimSpace(key)
		v := strings.TrimSpace(value)
		if k != "" && v != "" {
			query.Set(k, v)
		}
	}
	if query.Get("sslmode") == "" {
		query.Set("sslmode", c.SSLMode)
	}

	u := &neturl.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(port)),
		Path:     "/" + c.Name,
		RawQuery: query.Encode(),
	}
	if c.Password != "" {
		u.User = neturl.UserPassword(c.User, c.Password)
	} else if c.User != "" {
		u.User = neturl.User(c.User)
	}
	return u.String()
}

// sqliteDSN enables foreign keys on every pooled connection, without which cascades are ignored,
// and makes concurrent writers wait for the lock instead of failing with SQLITE_BUSY.
func (c DatabaseRuntimeConfig) sqliteDSN() string {
	path := c.Path
	if path == "" {
		path = defaultSQLitePath
	}
	query := neturl.Values{}
	for key, value := range c.Params {
		k := strings.TrimSpace(key)
		v := strings.TrimSpace(value)
		if k != "" && v != "" {
			query.Set(k, v)
		}
	}
	query.Add("_pragma", "foreign_keys(1)")
	query.Add("_pragma", "busy_timeout("+strconv.Itoa(sqliteBusyTimeoutMS)+")")
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + query.Encode()
}

func loadLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

func (c RedisRuntimeConfig) URLValue() string {
	if u := normalizeRedisRawURL(c.URL); u != "" {
		return u
	}

	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = defaultRedisHost
	}
	port := c.Port
	if port == 0 {
		port = defaultRedisPort
	}
	db := c.DB
	if db < 0 {
		db = defaultRedisDB
	}

	// An unset scheme follows the tls flag.
	scheme := strings.ToLower(strings.TrimSpace(c.Scheme))
	if scheme != "redis" && scheme != "rediss" {
		scheme = "redis"
		if c.TLS {
			scheme = "rediss"
		}
	}

	u := &neturl.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/" + strconv.Itoa(db),
	}
	username := strings.TrimSpace(c.Username)
	password := strings.TrimSpace(c.Password)
	if username != "" {
		if password != "" {
			u.User = neturl.UserPassword(username, password)
		} else {
			u.User = neturl.User(username)
		}
	} else if password != "" {
		u.User = neturl.UserPassword("", password)
	}

	if len(c.Params) > 0 {
		query := neturl.Values{}
		for key, value := range c.Params {
			k := strings.TrimSpace(key)
			v := strings.TrimSpace(value)
			if k != "" && v != "" {
				query.Set(k, v)
			}
		}
		if len(query) > 0 {
			u.RawQuery = query.Encode()
		}
	}

	return u.String()
}
