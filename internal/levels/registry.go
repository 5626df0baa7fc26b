// Package levels provides the level layout registry for the sokoban
// platform. The builtin campaign registers itself in init(); additional
// levels can be loaded from YAML pack files. The simulation consumes
// registries through its LayoutSource interface without knowing where
// layouts came from.
package levels

import (
	"fmt"
	"sort"
	"sync"
)

// Level is one registered layout. The layout matrix uses the loader's tile
// codes: 0 floor, 1 player, 2 block, 4 goal, 8 wall.
type Level struct {
	ID     int
	Name   string
	Layout [][]int
}

// Registry holds levels indexed by integer id.
type Registry struct {
	mu     sync.RWMutex
	levels map[int]Level
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{levels: make(map[int]Level)}
}

// Add registers a level. Panics on a duplicate id or a non-positive id:
// the level set is static, trusted configuration, and clashes are
// programming faults.
func (r *Registry) Add(lvl Level) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lvl.ID < 1 {
		panic(fmt.Sprintf("levels: invalid level id %d", lvl.ID))
	}
	if _, exists := r.levels[lvl.ID]; exists {
		panic(fmt.Sprintf("levels: level %d already registered", lvl.ID))
	}
	r.levels[lvl.ID] = lvl
}

// Layout returns the layout matrix for a level id.
// Implements the simulation's LayoutSource.
func (r *Registry) Layout(id int) ([][]int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lvl, ok := r.levels[id]
	if !ok {
		return nil, false
	}
	return lvl.Layout, true
}

// Get returns a registered level by id.
func (r *Registry) Get(id int) (Level, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lvl, ok := r.levels[id]
	return lvl, ok
}

// All returns every registered level, sorted by id.
func (r *Registry) All() []Level {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Level, 0, len(r.levels))
	for _, lvl := range r.levels {
		result = append(result, lvl)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Count returns the number of registered levels.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.levels)
}

// Default is the process-wide registry the builtin campaign registers into.
var Default = NewRegistry()

// Add registers a level into the default registry.
func Add(lvl Level) {
	Default.Add(lvl)
}

// Get returns a level from the default registry.
func Get(id int) (Level, bool) {
	return Default.Get(id)
}

// All lists the default registry's levels sorted by id.
func All() []Level {
	return Default.All()
}
