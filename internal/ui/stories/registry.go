package stories

import (
	"fmt"
	"sort"
	"sync"

	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

// Factory builds a fresh story instance.
type Factory func() Story

// Entry describes a registered story.
type Entry struct {
	Name        string
	Description string
	factory     Factory
}

// Registry is an in-memory catalogue of stories keyed by name.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Default returns a registry holding the built-in stories.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister("icon_button", "Icon buttons in every variant, state and color", func() Story { return NewIconButtonStory() })
	r.MustRegister("toast", "A toast anchored to the bottom of the viewport", func() Story { return NewToastStory() })
	return r
}

// Register stores a story factory under name.
func (r *Registry) Register(name, description string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("story name is required")
	}
	if factory == nil {
		return fmt.Errorf("story factory is nil for %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("story %q already registered", name)
	}
	r.entries[name] = Entry{Name: name, Description: description, factory: factory}
	return nil
}

// MustRegister is Register for built-in stories; it panics on error.
func (r *Registry) MustRegister(name, description string, factory Factory) {
	if err := r.Register(name, description, factory); err != nil {
		panic(err)
	}
}

// Get builds a new instance of the named story.
func (r *Registry) Get(name string) (Story, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, glinterrors.NewUnknownStoryError(name, r.Names())
	}
	return entry.factory(), nil
}

// Names returns the registered story names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every entry sorted by name.
func (r *Registry) List() []Entry {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		if entry, ok := r.entries[name]; ok {
			entries = append(entries, entry)
		}
	}
	return entries
}
