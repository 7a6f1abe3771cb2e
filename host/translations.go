package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
)

// FallbackLocale is used when a key is missing for the requested locale.
const FallbackLocale = "en"

// TranslationRegistry collects namespaced translation directories and loads
// locale catalogs lazily. Keys use "namespace::segment.segment" syntax.
type TranslationRegistry struct {
	mu      sync.Mutex
	dirs    map[string]string                       // namespace -> directory
	catalog map[string]map[string]map[string]string // namespace -> locale -> flattened keys
}

// NewTranslationRegistry creates an empty registry.
func NewTranslationRegistry() *TranslationRegistry {
	return &TranslationRegistry{
		dirs:    make(map[string]string),
		catalog: make(map[string]map[string]map[string]string),
	}
}

// AddDir registers a package's lang directory under its namespace.
func (r *TranslationRegistry) AddDir(namespace, dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirs[namespace] = dir
	delete(r.catalog, namespace)
}

// T resolves a translation key for a locale. Lookup falls back to
// FallbackLocale, then to the key itself so missing translations stay visible.
func (r *TranslationRegistry) T(locale, key string) string {
	ns, rest, ok := strings.Cut(key, "::")
	if !ok {
		return key
	}

	if v, ok := r.lookup(ns, locale, rest); ok {
		return v
	}
	if locale != FallbackLocale {
		if v, ok := r.lookup(ns, FallbackLocale, rest); ok {
			return v
		}
	}
	return key
}

func (r *TranslationRegistry) lookup(namespace, locale, key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	locales, ok := r.catalog[namespace]
	if !ok {
		locales = make(map[string]map[string]string)
		r.catalog[namespace] = locales
	}

	flat, ok := locales[locale]
	if !ok {
		loaded, err := r.loadLocale(namespace, locale)
		if err != nil {
			loaded = map[string]string{}
		}
		locales[locale] = loaded
		flat = loaded
	}

	v, ok := flat[key]
	return v, ok
}

// loadLocale parses <dir>/<locale>.yaml into flattened dotted keys.
func (r *TranslationRegistry) loadLocale(namespace, locale string) (map[string]string, error) {
	dir, ok := r.dirs[namespace]
	if !ok {
		return nil, fmt.Errorf("unknown translation namespace: %s", namespace)
	}

	data, err := os.ReadFile(filepath.Join(dir, locale+".yaml"))
	if err != nil {
		return nil, err
	}

	tree := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parsing %s/%s.yaml: %w", namespace, locale, err)
	}

	flat := make(map[string]string)
	flatten("", tree, flat)
	return flat, nil
}

func flatten(prefix string, tree map[string]interface{}, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprintf("%v", val)
		}
	}
}
