package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko"
)

// tomlConfig is a flat key-value configuration read from a TOML file.
// Nested tables result in dotted keys, e.g. "tracing.adapter".
type tomlConfig struct {
	values map[string]interface{}
}

var _ schuko.Configuration = (*tomlConfig)(nil)

// tracer keys of this module; levels default to the level of the root tracer.
var tracerKeys = []string{"topdown.ll", "topdown.ll1", "topdown.scanner", "topdown.ebnf",
	"topdown.source", "topdown.cli"}

// loadConfig reads a TOML configuration. An empty path results in
// a default configuration.
func loadConfig(path string) (*tomlConfig, error) {
	conf := &tomlConfig{values: make(map[string]interface{})}
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration: %w", err)
	}
	if err := conf.parse(data); err != nil {
		return nil, fmt.Errorf("configuration %s: %w", path, err)
	}
	return conf, nil
}

func (c *tomlConfig) parse(data []byte) error {
	var tree map[string]interface{}
	if err := toml.Unmarshal(data, &tree); err != nil {
		return err
	}
	c.flatten("", tree)
	return nil
}

func (c *tomlConfig) flatten(prefix string, tree map[string]interface{}) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]interface{}); ok {
			c.flatten(key, sub)
			continue
		}
		c.values[key] = v
	}
}

// Set overrides a configuration value.
func (c *tomlConfig) Set(key string, value interface{}) {
	c.values[key] = value
}

// InitDefaults is part of interface schuko.Configuration.
func (c *tomlConfig) InitDefaults() {
	c.setDefault("tracing.adapter", "go")
	c.setDefault("tracelevel.root", "Error")
	for _, key := range tracerKeys {
		c.setDefault("tracelevel."+key, c.GetString("tracelevel.root"))
	}
	c.setDefault("parser.verbosity", 0)
	c.setDefault("scanner.skip-comments", true)
}

func (c *tomlConfig) setDefault(key string, value interface{}) {
	if !c.IsSet(key) {
		c.values[key] = value
	}
}

// IsSet is part of interface schuko.Configuration.
func (c *tomlConfig) IsSet(key string) bool {
	_, ok := c.values[key]
	return ok
}

// GetString is part of interface schuko.Configuration.
func (c *tomlConfig) GetString(key string) string {
	v, ok := c.values[key]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// GetInt is part of interface schuko.Configuration.
func (c *tomlConfig) GetInt(key string) int {
	switch v := c.values[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

// GetBool is part of interface schuko.Configuration.
func (c *tomlConfig) GetBool(key string) bool {
	switch v := c.values[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// IsInteractive is part of interface schuko.Configuration.
func (c *tomlConfig) IsInteractive() bool {
	return c.GetBool("interactive")
}
