package draw

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownSurface is returned by NewSurface for names nobody registered.
var ErrUnknownSurface = errors.New("draw: unknown surface")

// SurfaceFactory creates a new surface instance.
type SurfaceFactory func() Surface

var (
	registryMu sync.RWMutex
	surfaces   = make(map[string]SurfaceFactory)
)

// Register registers a surface factory with the given name.
// It is typically called from init() in surface packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    draw.Register("raster", func() draw.Surface {
//	        return NewSurface()
//	    })
//	}
//
// Register panics if factory is nil or the name is already taken.
func Register(name string, factory SurfaceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("draw: Register factory is nil")
	}
	if _, dup := surfaces[name]; dup {
		panic("draw: Register called twice for " + name)
	}
	surfaces[name] = factory
}

// Unregister removes a surface from the registry. Used by tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(surfaces, name)
}

// NewSurface creates a new surface instance by name.
func NewSurface(name string) (Surface, error) {
	registryMu.RLock()
	factory, ok := surfaces[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownSurface, name)
	}
	return factory(), nil
}

// Surfaces returns the registered surface names, sorted.
func Surfaces() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(surfaces))
	for name := range surfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a surface with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := surfaces[name]
	return ok
}
