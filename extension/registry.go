package extension

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/viant/shellsim/model/types"
)

var (
	// ErrDuplicateCommand is returned when a command name is registered twice.
	ErrDuplicateCommand = errors.New("duplicate command")
	// ErrMissingCommand is returned when a required command has no owner.
	ErrMissingCommand = errors.New("missing command")
)

// Entry binds a command name to its owner
type Entry struct {
	Name      string
	Category  types.Category
	Signature types.Signature
	Simulator types.Simulator // nil for built-ins
}

// Section groups catalog entries by category
type Section struct {
	Category   types.Category
	Signatures types.Signatures
}

// Registry is the static name -> category partition. It is populated once at
// start-up and is read-only afterwards.
type Registry struct {
	entries    map[string]*Entry
	simulators []types.Simulator
	fallback   types.Fallback
	mux        sync.RWMutex
}

// Lookup returns the entry for a command name
func (r *Registry) Lookup(name string) (*Entry, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	entry, ok := r.entries[name]
	return entry, ok
}

// Category returns the category owning name, CategoryUnknown otherwise
func (r *Registry) Category(name string) types.Category {
	if entry, ok := r.Lookup(name); ok {
		return entry.Category
	}
	return types.CategoryUnknown
}

// Fallback returns the simulator handling unregistered names
func (r *Registry) Fallback() types.Fallback {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.fallback
}

// Register adds every command of a simulator to the partition
func (r *Registry) Register(simulator types.Simulator) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	category := simulator.Category()
	if err := r.reserve(category, simulator, simulator.Commands()...); err != nil {
		return fmt.Errorf("failed to register %v: %w", simulator.Name(), err)
	}
	if fallback, ok := simulator.(types.Fallback); ok {
		if r.fallback != nil {
			return fmt.Errorf("failed to register %v: fallback already provided by %v", simulator.Name(), r.fallback.Name())
		}
		r.fallback = fallback
	}
	r.simulators = append(r.simulators, simulator)
	return nil
}

// Reserve claims names handled outside of simulators, e.g. shell built-ins
func (r *Registry) Reserve(category types.Category, signatures ...types.Signature) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.reserve(category, nil, signatures...)
}

func (r *Registry) reserve(category types.Category, simulator types.Simulator, signatures ...types.Signature) error {
	for _, signature := range signatures {
		if prev, ok := r.entries[signature.Name]; ok {
			return fmt.Errorf("%w: %v claimed by %v and %v", ErrDuplicateCommand, signature.Name, prev.Category, category)
		}
	}
	for _, signature := range signatures {
		r.entries[signature.Name] = &Entry{Name: signature.Name, Category: category, Signature: signature, Simulator: simulator}
	}
	return nil
}

// Validate checks that every required name is owned by the expected category
// and that unknown names have somewhere to go.
func (r *Registry) Validate(required map[types.Category][]string) error {
	r.mux.RLock()
	defer r.mux.RUnlock()
	var errs []error
	for category, names := range required {
		for _, name := range names {
			entry, ok := r.entries[name]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %v (%v)", ErrMissingCommand, name, category))
				continue
			}
			if entry.Category != category {
				errs = append(errs, fmt.Errorf("%v: expected category %v, but had %v", name, category, entry.Category))
			}
		}
	}
	if r.fallback == nil {
		errs = append(errs, errors.New("no fallback simulator registered"))
	}
	return errors.Join(errs...)
}

// Simulators returns registered simulators in registration order
func (r *Registry) Simulators() []types.Simulator {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return append([]types.Simulator(nil), r.simulators...)
}

// Names returns all registered command names, sorted
func (r *Registry) Names() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]string, 0, len(r.entries))
	for name := range r.entries {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Catalog returns entries grouped by category in dispatch order, names sorted
func (r *Registry) Catalog() []*Section {
	r.mux.RLock()
	defer r.mux.RUnlock()
	byCategory := map[types.Category]*Section{}
	for _, entry := range r.entries {
		section, ok := byCategory[entry.Category]
		if !ok {
			section = &Section{Category: entry.Category}
			byCategory[entry.Category] = section
		}
		section.Signatures = append(section.Signatures, entry.Signature)
	}
	var ret []*Section
	for _, category := range types.Categories {
		section, ok := byCategory[category]
		if !ok {
			continue
		}
		sort.Slice(section.Signatures, func(i, j int) bool {
			return section.Signatures[i].Name < section.Signatures[j].Name
		})
		ret = append(ret, section)
	}
	return ret
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}
