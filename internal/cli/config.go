package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Cache backends selectable in the config file.
const (
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendNone  = "none"
)

// Store backends selectable in the config file.
const (
	storeBackendMemory = "memory"
	storeBackendMongo  = "mongo"
)

// Config is the TOML configuration for the serve command.
//
// Example:
//
//	[server]
//	addr = ":8080"
//	request_timeout = 30
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
//	mongo_database = "adproof"
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr           string `toml:"addr"`
	RequestTimeout int    `toml:"request_timeout"` // seconds
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`       // file backend; defaults to the XDG cache dir
	RedisURL string `toml:"redis_url"` // redis backend
}

// StoreConfig selects the creative store backend.
type StoreConfig struct {
	Backend         string `toml:"backend"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// DefaultConfig returns the configuration used when no file is given:
// a memory store and a file cache under the XDG cache directory.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080", RequestTimeout: 30},
		Cache:  CacheConfig{Backend: cacheBackendFile},
		Store:  StoreConfig{Backend: storeBackendMemory},
	}
}

// LoadConfig reads a TOML config file and fills unset fields with
// defaults. An empty path loads the default config file location if it
// exists, otherwise returns DefaultConfig. A non-empty path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		if _, err := os.Stat(p); err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// validate checks backend names and required backend settings.
func (c Config) validate() error {
	switch c.Cache.Backend {
	case cacheBackendFile, cacheBackendNone, "":
	case cacheBackendRedis:
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("cache backend %q requires redis_url", c.Cache.Backend)
		}
	default:
		return fmt.Errorf("unknown cache backend: %s (must be 'file', 'redis', or 'none')", c.Cache.Backend)
	}

	switch c.Store.Backend {
	case storeBackendMemory, "":
	case storeBackendMongo:
		if c.Store.MongoURI == "" {
			return fmt.Errorf("store backend %q requires mongo_uri", c.Store.Backend)
		}
	default:
		return fmt.Errorf("unknown store backend: %s (must be 'memory' or 'mongo')", c.Store.Backend)
	}
	return nil
}

// RequestTimeoutDuration returns the request timeout as a duration.
func (c ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// defaultConfigPath returns the config file location using XDG standard
// (~/.config/adproof/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
