package cli

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/linguist/pkg/errors"
	lingclient "github.com/matzehuels/linguist/pkg/integrations/linguist"
)

// Cache backends accepted in [cache].backend.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the on-disk configuration (config.toml).
type Config struct {
	Dataset DatasetConfig `toml:"dataset"`
	Cache   CacheConfig   `toml:"cache"`
	Server  ServerConfig  `toml:"server"`
	Mongo   MongoConfig   `toml:"mongo"`
}

type DatasetConfig struct {
	Path string `toml:"path"`
	URL  string `toml:"url"`
	TTL  string `toml:"ttl"`
}

// TTLDuration parses TTL; an empty value means no expiry.
func (d DatasetConfig) TTLDuration() (time.Duration, error) {
	if d.TTL == "" {
		return 0, nil
	}
	ttl, err := time.ParseDuration(d.TTL)
	if err != nil || ttl < 0 {
		return 0, errs.New(errs.ErrCodeInvalidInput, "dataset.ttl: invalid duration %q", d.TTL)
	}
	return ttl, nil
}

type CacheConfig struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{URL: lingclient.DefaultURL, TTL: "24h"},
		Cache:   CacheConfig{Backend: BackendFile, RedisURL: "redis://localhost:6379/0"},
		Server:  ServerConfig{Addr: ":8080"},
		Mongo:   MongoConfig{URI: "mongodb://localhost:27017", Database: appName},
	}
}

// loadConfig reads path over the defaults. A missing file yields the
// defaults unless required is set.
func loadConfig(path string, required bool) (*Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		if required {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errs.New(errs.ErrCodeInvalidInput, "cache.backend: unknown backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if _, err := c.Dataset.TTLDuration(); err != nil {
		return err
	}
	if c.Dataset.URL != "" {
		if err := errs.ValidateURL(c.Dataset.URL); err != nil {
			return err
		}
	}
	return nil
}
