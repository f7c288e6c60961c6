// Package config loads flierkit settings from a TOML file and the
// environment.
//
// Settings are resolved in order, later sources winning:
//
//  1. built-in defaults ([Default])
//  2. $XDG_CONFIG_HOME/flierkit/config.toml (or ~/.config/flierkit/config.toml)
//  3. FLIERKIT_* environment variables
//
// Command-line flags are applied on top by the caller.
//
// A minimal file:
//
//	backend_url = "https://flyers.example.com"
//	timeout = "45s"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/flierkit/pkg/cache"
	"github.com/matzehuels/flierkit/pkg/errors"
)

const appName = "flierkit"

// Environment variables that override file settings.
const (
	EnvBackendURL = "FLIERKIT_BACKEND_URL"
	EnvRedisAddr  = "FLIERKIT_REDIS_ADDR"
	EnvMongoURI   = "FLIERKIT_MONGO_URI"
)

// Defaults.
const (
	DefaultBackendURL     = "http://localhost:8081"
	DefaultTimeout        = 30 * time.Second
	DefaultContainerWidth = 800.0
	DefaultServerAddr     = ":8080"
	DefaultMongoDatabase  = "flierkit"
	DefaultMemoryEntries  = 1024
)

// Config holds every setting.
type Config struct {
	BackendURL     string       `toml:"backend_url"`
	Timeout        Duration     `toml:"timeout"`
	ContainerWidth float64      `toml:"container_width"`
	Cache          CacheConfig  `toml:"cache"`
	Server         ServerConfig `toml:"server"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	MemoryEntries int    `toml:"memory_entries"`
	RedisAddr     string `toml:"redis_addr"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
	// Prefix scopes every key, so several deployments can share a redis or
	// mongo backend.
	Prefix string `toml:"prefix"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a string such as "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BackendURL:     DefaultBackendURL,
		Timeout:        Duration{DefaultTimeout},
		ContainerWidth: DefaultContainerWidth,
		Cache: CacheConfig{
			Backend:       cache.BackendFile,
			MemoryEntries: DefaultMemoryEntries,
			MongoDatabase: DefaultMongoDatabase,
		},
		Server: ServerConfig{Addr: DefaultServerAddr},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the default file cache directory (~/.cache/flierkit/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads settings from path, or from [Path] when path is empty.
// A missing default file is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case err == nil:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return Config{}, errors.New(errors.ErrCodeInvalidInput,
					"config %s: unknown key %q", path, undecoded[0].String())
			}
		case os.IsNotExist(err) && !explicit:
		default:
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	}

	cfg.applyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvBackendURL); ok && v != "" {
		c.BackendURL = v
	}
	if v, ok := lookup(EnvRedisAddr); ok && v != "" {
		c.Cache.RedisAddr = v
	}
	if v, ok := lookup(EnvMongoURI); ok && v != "" {
		c.Cache.MongoURI = v
	}
}

// Validate checks settings that would otherwise fail late.
func (c Config) Validate() error {
	if c.BackendURL != "" {
		if err := errors.ValidateURL(c.BackendURL); err != nil {
			return fmt.Errorf("backend_url: %w", err)
		}
	}
	if c.Timeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout must not be negative")
	}
	if c.ContainerWidth < 0 {
		return errors.New(errors.ErrCodeInvalidLayoutParameter, "container_width must be positive")
	}
	switch c.Cache.Backend {
	case "", cache.BackendFile, cache.BackendMemory, cache.BackendNone:
	case cache.BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache.redis_addr is required for the redis backend")
		}
	case cache.BackendMongo:
		if c.Cache.MongoURI == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache.mongo_uri is required for the mongo backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}

// Keyer returns the cache keyer, scoped by cache.prefix when it is set.
func (c Config) Keyer() cache.Keyer {
	if c.Cache.Prefix == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(nil, c.Cache.Prefix)
}

// CacheOptions returns the options for [cache.Open]. The file backend
// falls back to [CacheDir] when no directory is set.
func (c Config) CacheOptions() (cache.Options, error) {
	opts := cache.Options{
		Backend:       c.Cache.Backend,
		Dir:           c.Cache.Dir,
		MemoryEntries: c.Cache.MemoryEntries,
		RedisAddr:     c.Cache.RedisAddr,
		MongoURI:      c.Cache.MongoURI,
		MongoDatabase: c.Cache.MongoDatabase,
	}
	if (opts.Backend == "" || opts.Backend == cache.BackendFile) && opts.Dir == "" {
		dir, err := CacheDir()
		if err != nil {
			return opts, fmt.Errorf("cache dir: %w", err)
		}
		opts.Dir = dir
	}
	return opts, nil
}
