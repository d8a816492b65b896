package cli

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Cache backend names accepted in the config file and LSYS_CACHE_BACKEND.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Config is the on-disk tool configuration, read from
// ~/.config/lsys/config.toml. Every field has a working default, so a
// missing file means a default configuration, never an error.
type Config struct {
	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the derivation cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "mongo", "none". Defaults to "file".
	Backend string `toml:"backend"`

	// Prefix namespaces all cache keys, so independent deployments can
	// share one redis or mongo instance. Empty means no namespacing.
	Prefix string `toml:"prefix"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongodb cache backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Backend: BackendFile,
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "lsys",
				Collection: "derivations",
			},
		},
	}
}

// LoadConfig reads the config file and applies environment overrides.
// A missing or unreadable file yields the defaults; a malformed file is
// also tolerated so a broken config never bricks the CLI.
func LoadConfig() *Config {
	cfg := defaultConfig()

	if path, err := configPath(); err == nil {
		if data, err := os.ReadFile(path); err == nil {
			// Ignore parse errors and keep whatever decoded cleanly.
			_, _ = toml.Decode(string(data), cfg)
		}
	}

	applyEnvOverrides(cfg)
	return cfg
}

// configPath returns the full path to the config file.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// applyEnvOverrides lets environment variables override file settings,
// which is the usual way to point a container at redis or mongo.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LSYS_CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("LSYS_CACHE_PREFIX"); v != "" {
		cfg.Cache.Prefix = v
	}
	if v := os.Getenv("LSYS_REDIS_ADDR"); v != "" {
		cfg.Cache.Redis.Addr = v
	}
	if v := os.Getenv("LSYS_REDIS_PASSWORD"); v != "" {
		cfg.Cache.Redis.Password = v
	}
	if v := os.Getenv("LSYS_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Cache.Redis.DB = db
		}
	}
	if v := os.Getenv("LSYS_MONGO_URI"); v != "" {
		cfg.Cache.Mongo.URI = v
	}
}
