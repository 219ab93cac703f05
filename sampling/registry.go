package sampling

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/xid"
)

// A Factory creates a collector with the given name.
type Factory func(name string) Collector

// DefaultType is the type tag used when none is given.
const DefaultType = "collector"

// Registry maps collector type names and their aliases to factories.
type Registry struct {
	lock sync.RWMutex

	factories   map[string]Factory
	defaultType string
}

// NewRegistry creates an empty registry whose default type is DefaultType.
func NewRegistry() *Registry {
	return &Registry{
		factories:   make(map[string]Factory),
		defaultType: DefaultType,
	}
}

// Register binds typeName and every alias to f. Nothing is registered if any
// of the names is taken.
func (r *Registry) Register(
	typeName string,
	f Factory,
	aliases ...string,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	names := append([]string{typeName}, aliases...)
	for _, n := range names {
		if _, ok := r.factories[n]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateCollectorType, n)
		}
	}

	for _, n := range names {
		r.factories[n] = f
	}

	return nil
}

// SetDefault changes the type used for an empty type tag.
func (r *Registry) SetDefault(typeName string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.factories[typeName]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCollectorType, typeName)
	}

	r.defaultType = typeName

	return nil
}

// Make creates a collector of the given type. An empty type uses the default
// type. An empty name is replaced by a generated unique one.
func (r *Registry) Make(typeName, name string) (Collector, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if typeName == "" {
		typeName = r.defaultType
	}

	f, ok := r.factories[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollectorType, typeName)
	}

	if name == "" {
		name = typeName + "_" + xid.New().String()
	}

	return f(name), nil
}

// Types returns every registered name, aliases included, sorted.
func (r *Registry) Types() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// RegisterBuiltins registers the plain collector and the recorder.
func RegisterBuiltins(r *Registry) error {
	err := r.Register(DefaultType, func(name string) Collector {
		return NewBase(name)
	})
	if err != nil {
		return err
	}

	return r.Register("recorder", func(name string) Collector {
		return NewRecorder(name)
	}, "rec", "file")
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process wide registry with the builtin types
// registered.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := RegisterBuiltins(defaultRegistry); err != nil {
			panic(err)
		}
	})

	return defaultRegistry
}

// MakeCollector creates a collector from the default registry.
func MakeCollector(typeName, name string) (Collector, error) {
	return DefaultRegistry().Make(typeName, name)
}
