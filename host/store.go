package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// ConfigStore is the host's in-memory configuration tree. Package config
// files merge in as defaults: values already present in the store win.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]interface{}
}

// NewConfigStore creates an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]interface{})}
}

// MergeFile parses path (YAML or TOML, by extension) and merges the result
// under key. Existing store values take precedence over file values.
func (s *ConfigStore) MergeFile(key, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	parsed := make(map[string]interface{})
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q: %s", ext, path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, _ := s.values[key].(map[string]interface{})
	s.values[key] = mergeMaps(parsed, existing)
	return nil
}

// Set stores a value at a dotted path ("blog.cache.ttl"), creating
// intermediate maps as needed.
func (s *ConfigStore) Set(path string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := strings.Split(path, ".")
	node := s.values
	for _, k := range keys[:len(keys)-1] {
		child, ok := node[k].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			node[k] = child
		}
		node = child
	}
	node[keys[len(keys)-1]] = value
}

// Get returns the value at a dotted path.
func (s *ConfigStore) Get(path string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var current interface{} = s.values
	for _, k := range strings.Split(path, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = node[k]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// GetString returns the string at a dotted path, or fallback.
func (s *ConfigStore) GetString(path, fallback string) string {
	v, ok := s.Get(path)
	if !ok {
		return fallback
	}
	str, ok := v.(string)
	if !ok {
		return fallback
	}
	return str
}

// Sub returns the map at a dotted path, or nil.
func (s *ConfigStore) Sub(path string) map[string]interface{} {
	v, ok := s.Get(path)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]interface{})
	return m
}

// mergeMaps deep-merges override on top of base. Override values win; maps
// present on both sides merge recursively.
func mergeMaps(base, override map[string]interface{}) map[string]interface{} {
	if override == nil {
		return base
	}
	out := make(map[string]interface{}, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		overrideMap, okOverride := v.(map[string]interface{})
		baseMap, okBase := out[k].(map[string]interface{})
		if okOverride && okBase {
			out[k] = mergeMaps(baseMap, overrideMap)
			continue
		}
		out[k] = v
	}
	return out
}
