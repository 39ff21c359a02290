package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	API     APIConfig     `mapstructure:"api"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig points at the remote gateway. An empty BaseURL means the app
// runs in local-only (demo/offline) mode.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// Configured reports whether a remote gateway endpoint is present.
func (a APIConfig) Configured() bool {
	return a.BaseURL != ""
}

// RequestTimeout returns the gateway timeout as a duration.
func (a APIConfig) RequestTimeout() time.Duration {
	if a.Timeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(a.Timeout) * time.Millisecond
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig controls the persisted project snapshot.
type CacheConfig struct {
	Key string `mapstructure:"key"`
	TTL int    `mapstructure:"ttl"` // seconds, 0 keeps the snapshot forever
}

func (c CacheConfig) Expiry() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
