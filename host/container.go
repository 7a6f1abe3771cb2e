package host

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs a container service. It receives the config payload
// given at binding time, nil when none was provided.
type Factory func(config map[string]interface{}) (interface{}, error)

// binding is one lazy singleton slot.
type binding struct {
	factory Factory
	config  map[string]interface{}

	once     sync.Once
	instance interface{}
	err      error
}

// Container holds named lazy singletons. A factory runs at most once, on
// first resolution, and receives its binding's config payload.
type Container struct {
	mu       sync.RWMutex
	bindings map[string]*binding
	resolved func(name string)
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{bindings: make(map[string]*binding)}
}

// Singleton binds name to factory. Rebinding an existing name replaces the
// binding; an already-resolved instance under the old binding is discarded.
func (c *Container) Singleton(name string, factory Factory, config map[string]interface{}) error {
	if name == "" {
		return fmt.Errorf("service name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("service %s: factory cannot be nil", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[name] = &binding{factory: factory, config: config}
	return nil
}

// OnResolve installs a callback invoked after every successful resolution.
func (c *Container) OnResolve(fn func(name string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved = fn
}

// Resolve returns the singleton instance for name, constructing it on first
// call. A factory error is sticky: later resolutions return the same error.
func (c *Container) Resolve(name string) (interface{}, error) {
	c.mu.RLock()
	b, ok := c.bindings[name]
	fn := c.resolved
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("service not bound: %s", name)
	}

	b.once.Do(func() {
		b.instance, b.err = b.factory(b.config)
	})
	if b.err != nil {
		return nil, fmt.Errorf("resolving %s: %w", name, b.err)
	}
	if fn != nil {
		fn(name)
	}
	return b.instance, nil
}

// Has reports whether name is bound.
func (c *Container) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.bindings[name]
	return ok
}

// Names returns all bound service names, sorted.
func (c *Container) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.bindings))
	for name := range c.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
