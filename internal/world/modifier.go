package world

import (
	"fmt"
	"sort"
	"sync"

	"metropolis/internal/noise"
)

// DefaultModifierID is the identifier world configs use to select the city generator.
const DefaultModifierID = "metropolis:default"

// Modifier swaps a world's base terrain generation for one of ours.
type Modifier interface {
	ID() string
	Name() string
	// ModifyWorldGenerator returns the base generator for a world with the given seed.
	ModifyWorldGenerator(seed int64) (TerrainGenerator, error)
}

type voronoiModifier struct{}

func (voronoiModifier) ID() string   { return DefaultModifierID }
func (voronoiModifier) Name() string { return "Metropolis Modifier" }

func (voronoiModifier) ModifyWorldGenerator(seed int64) (TerrainGenerator, error) {
	return StandardGenerator(seed)
}

// Registry maps modifier IDs to modifiers. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	modifiers map[string]Modifier
}

// NewRegistry returns a registry holding the default modifier.
func NewRegistry() *Registry {
	r := &Registry{modifiers: make(map[string]Modifier)}
	_ = r.Register(voronoiModifier{})
	return r
}

// Register adds a modifier. IDs must be unique.
func (r *Registry) Register(m Modifier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modifiers[m.ID()]; ok {
		return fmt.Errorf("world: modifier %q already registered", m.ID())
	}
	r.modifiers[m.ID()] = m
	return nil
}

// Lookup returns the modifier for id.
func (r *Registry) Lookup(id string) (Modifier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modifiers[id]
	if !ok {
		return nil, fmt.Errorf("%w: unknown world modifier %q", noise.ErrConfiguration, id)
	}
	return m, nil
}

// IDs lists registered modifier IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.modifiers))
	for id := range r.modifiers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
