// Package registry provides a generic thread-safe Registry[K, V] with
// ordered keys.
package registry

import (
	"cmp"
	"maps"
	"slices"
	"sync"
)

// Registry is a thread-safe key-value store.
type Registry[K cmp.Ordered, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// New creates a new empty Registry.
func New[K cmp.Ordered, V any]() *Registry[K, V] {
	return &Registry[K, V]{items: make(map[K]V)}
}

// TryRegister stores value only if key is free. Returns false if the key
// was already taken.
func (r *Registry[K, V]) TryRegister(key K, value V) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[key]; ok {
		return false
	}
	r.items[key] = value
	return true
}

// Get retrieves a value by key. Returns the value and true if found.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.items[key]
	return value, ok
}

// Has returns true if the key exists in the registry.
func (r *Registry[K, V]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[key]
	return ok
}

// Keys returns all keys in ascending order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.items))
}

// ForEach applies fn to each entry in key order.
// fn must not call back into the registry.
func (r *Registry[K, V]) ForEach(fn func(K, V)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(r.items)) {
		fn(k, r.items[k])
	}
}

// Len returns the number of entries in the registry.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
