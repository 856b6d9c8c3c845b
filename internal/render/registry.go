package render

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds an engine factory under the given name. Engine packages
// call it from init(), so importing a backend package is what makes its
// name valid. Register panics on a nil factory or a duplicate name;
// both are programmer errors caught at startup.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("render: Register called twice for backend " + name)
	}
	registry[name] = factory
}

// Names returns the registered backend names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registered reports whether name is in the supported set.
func Registered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// bind validates name against the registered set and produces a bound
// engine. The membership check runs before any factory call, so an
// unknown name never reaches an engine. A factory failure wraps
// ErrBackendLoad and leaves nothing bound.
func bind(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownBackend, name, Names())
	}
	b, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBackendLoad, name, err)
	}
	return b, nil
}
