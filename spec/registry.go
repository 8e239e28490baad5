package spec

import (
	"fmt"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]*Set)
)

// Register registers a descriptor set in the global registry
func Register(s *Set) error {
	if s == nil {
		return fmt.Errorf("cannot register nil set")
	}
	if s.Name == "" {
		return fmt.Errorf("set must have a name")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[s.Name]; exists {
		return fmt.Errorf("set %q already registered", s.Name)
	}

	registry[s.Name] = s
	return nil
}

// Lookup looks up a descriptor set by name
func Lookup(name string) *Set {
	mu.RLock()
	defer mu.RUnlock()
	s := registry[name]
	return s
}

// All returns all registered descriptor sets
func All() map[string]*Set {
	mu.RLock()
	defer mu.RUnlock()

	result := make(map[string]*Set, len(registry))
	for k, v := range registry {
		result[k] = v
	}
	return result
}
