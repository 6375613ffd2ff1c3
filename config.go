package boxing

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Default inclusive bounds of the boxed integer cache when no configuration
// overrides them.
const (
	DefaultCacheMin = -128
	DefaultCacheMax = 127
)

// Config holds runtime tunables.
type Config struct {
	// CacheMin and CacheMax are the inclusive bounds of the interval of
	// integers the runtime memoizes.
	CacheMin int64 `yaml:"cachemin"`
	CacheMax int64 `yaml:"cachemax"`
}

// DefaultConfig returns the configuration NewRuntime uses.
func DefaultConfig() Config {
	return Config{CacheMin: DefaultCacheMin, CacheMax: DefaultCacheMax}
}

// ConfigFromYAML decodes a configuration document. Keys absent from the
// document keep their default values; unknown keys are an error.
func ConfigFromYAML(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("boxing: bad config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("boxing: cannot read config: %w", err)
	}
	return ConfigFromYAML(data)
}

func (c Config) validate() error {
	if c.CacheMin > c.CacheMax {
		return fmt.Errorf("boxing: cache range [%d, %d] is inverted", c.CacheMin, c.CacheMax)
	}
	return nil
}
