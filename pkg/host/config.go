package host

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// MemoryConfig is a ConfigManager backed by an in-memory map. Useful for
// tests and for hosts without a persistent configuration store.
type MemoryConfig struct {
	mu       sync.RWMutex
	sections map[string]map[string]any
}

// NewMemoryConfig creates an empty in-memory config store.
func NewMemoryConfig() *MemoryConfig {
	return &MemoryConfig{sections: make(map[string]map[string]any)}
}

func (c *MemoryConfig) Get(section, key string, def any) any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if values, ok := c.sections[section]; ok {
		if v, ok := values[key]; ok {
			return v
		}
	}
	return def
}

func (c *MemoryConfig) Set(section, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sections[section] == nil {
		c.sections[section] = make(map[string]any)
	}
	c.sections[section][key] = value
	return nil
}

// ViperConfig is a ConfigManager backed by a viper instance. Section/key
// pairs map to viper's dotted keys, so ini sections, nested json/yaml
// objects, and MEDICS_-prefixed environment variables all resolve through
// the same path.
type ViperConfig struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// NewViperConfig wraps an existing viper instance.
func NewViperConfig(v *viper.Viper) *ViperConfig {
	return &ViperConfig{v: v}
}

// LoadConfigFile reads a configuration file (ini, json, yaml, or toml by
// extension) and returns a ViperConfig persisting changes back to it.
func LoadConfigFile(path string) (*ViperConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("MEDICS")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return &ViperConfig{v: v, path: path}, nil
}

func (c *ViperConfig) Get(section, key string, def any) any {
	c.mu.Lock()
	defer c.mu.Unlock()

	full := section + "." + key
	if !c.v.IsSet(full) {
		return def
	}
	return c.v.Get(full)
}

func (c *ViperConfig) Set(section, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.v.Set(section+"."+key, value)
	if c.path != "" {
		if err := c.v.WriteConfigAs(c.path); err != nil {
			return fmt.Errorf("write config %s: %w", c.path, err)
		}
	}
	return nil
}
