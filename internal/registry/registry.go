// Package registry provides a global registry of ledger storage backends.
// Backends register themselves in init() functions, allowing the CLI
// to open a store by its configured name without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Backend is a ledger store that holds an open resource.
type Backend interface {
	t2048.LedgerStore
	io.Closer
}

// Info contains metadata about a registered backend.
type Info struct {
	Name        string
	DefaultPath string
}

// Factory opens a backend at the given path.
type Factory func(path string) (Backend, error)

type entry struct {
	factory     Factory
	defaultPath string
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend factory to the registry.
// Panics if a backend with the same name is already registered.
func Register(name, defaultPath string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}
	backends[name] = entry{factory: f, defaultPath: defaultPath}
}

// List returns information about all registered backends, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(backends))
	for name, e := range backends {
		result = append(result, Info{Name: name, DefaultPath: e.defaultPath})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Open opens the named backend. An empty path selects the backend's default.
func Open(name, path string) (Backend, error) {
	mu.RLock()
	e, ok := backends[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}
	if path == "" {
		path = e.defaultPath
	}
	return e.factory(path)
}

// DefaultPath returns the default store location for the named backend.
func DefaultPath(name string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := backends[name]
	return e.defaultPath, ok
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
