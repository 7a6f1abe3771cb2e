package host

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/tjventurini/service-provider/pack"
)

// GraphQLPlugin is the surface packages contribute schema and namespaces to.
// The host may run without one; registrars must check App.GraphQL() for nil.
type GraphQLPlugin interface {
	// AddSchemaFile contributes one schema file by path. The file must exist;
	// its content is not interpreted here.
	AddSchemaFile(path string) error

	// AddNamespace records a resolver namespace for a kind.
	AddNamespace(kind pack.NamespaceKind, namespace string)
}

// SchemaCollector is the default GraphQLPlugin: it accumulates schema
// sources and namespaces for a downstream GraphQL server to consume.
type SchemaCollector struct {
	mu         sync.Mutex
	files      []string
	namespaces map[pack.NamespaceKind][]string
}

// NewSchemaCollector creates an empty collector.
func NewSchemaCollector() *SchemaCollector {
	return &SchemaCollector{namespaces: make(map[pack.NamespaceKind][]string)}
}

// AddSchemaFile records a schema file after checking it exists.
func (c *SchemaCollector) AddSchemaFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("graphql schema not found: %s", path)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files = append(c.files, path)
	return nil
}

// AddNamespace appends a namespace for a kind.
func (c *SchemaCollector) AddNamespace(kind pack.NamespaceKind, namespace string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.namespaces[kind] = append(c.namespaces[kind], namespace)
}

// SchemaFiles returns the contributed schema files in contribution order.
func (c *SchemaCollector) SchemaFiles() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.files...)
}

// Namespaces returns all namespaces for a kind.
func (c *SchemaCollector) Namespaces(kind pack.NamespaceKind) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.namespaces[kind]...)
}

// Kinds returns the kinds that have at least one namespace, sorted.
func (c *SchemaCollector) Kinds() []pack.NamespaceKind {
	c.mu.Lock()
	defer c.mu.Unlock()

	kinds := make([]pack.NamespaceKind, 0, len(c.namespaces))
	for k := range c.namespaces {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
