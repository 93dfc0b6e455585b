package booking

import (
	"strings"
	"sync"
)

// Registry owns the fleet. Insertion order is preserved so listings and
// filters come back in the order vehicles were registered.
type Registry struct {
	mu       sync.RWMutex
	vehicles []Vehicle
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (g *Registry) indexOf(id string) int {
	for i := range g.vehicles {
		if strings.EqualFold(g.vehicles[i].ID, id) {
			return i
		}
	}
	return -1
}

// Add registers a new vehicle with status Available.
func (g *Registry) Add(id, model, plate string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.indexOf(id) >= 0 {
		return ErrDuplicateID
	}
	for i := range g.vehicles {
		if strings.EqualFold(g.vehicles[i].Plate, plate) {
			return ErrDuplicatePlate
		}
	}
	g.vehicles = append(g.vehicles, Vehicle{ID: id, Model: model, Plate: plate, Status: VehicleAvailable})
	return nil
}

// Find looks a vehicle up by id, case-insensitively. Absence is a
// normal empty result, not an error.
func (g *Registry) Find(id string) (Vehicle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i := g.indexOf(id); i >= 0 {
		return g.vehicles[i], true
	}
	return Vehicle{}, false
}

// SetStatus overwrites the vehicle's status directly. The registry does
// not enforce the transition graph; that discipline lives in the
// workflows that call it.
func (g *Registry) SetStatus(id string, status VehicleStatus) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	g.vehicles[i].Status = status
	return nil
}

func (g *Registry) SetModel(id, model string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	g.vehicles[i].Model = model
	return nil
}

func (g *Registry) Remove(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	g.vehicles = append(g.vehicles[:i], g.vehicles[i+1:]...)
	return nil
}

// FilterByModel returns the vehicles whose model contains the keyword,
// case-insensitively, in registry order. No match yields an empty
// slice, not an error.
func (g *Registry) FilterByModel(keyword string) []Vehicle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	kw := strings.ToLower(keyword)
	out := make([]Vehicle, 0)
	for _, v := range g.vehicles {
		if strings.Contains(strings.ToLower(v.Model), kw) {
			out = append(out, v)
		}
	}
	return out
}

// List returns a copy of the fleet in registry order.
func (g *Registry) List() []Vehicle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vehicle, len(g.vehicles))
	copy(out, g.vehicles)
	return out
}

// Restore replaces the fleet wholesale. Used once at boot to load the
// persisted state.
func (g *Registry) Restore(vehicles []Vehicle) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vehicles = make([]Vehicle, len(vehicles))
	copy(g.vehicles, vehicles)
}
