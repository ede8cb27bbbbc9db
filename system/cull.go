package system

import (
	"slices"

	"github.com/lixenwraith/turtle-dive/component"
	"github.com/lixenwraith/turtle-dive/parameter"
)

// Cull removes entities past the cull line left of the field, keeping survivor order
// Returns the number of removed entities
func (s *EntityStore) Cull() int {
	before := s.Len()
	limit := -parameter.CullMargin

	s.Hazards = slices.DeleteFunc(s.Hazards, func(h component.Hazard) bool {
		return h.PastEdge(limit)
	})
	s.Pickups = slices.DeleteFunc(s.Pickups, func(p component.Pickup) bool {
		return p.PastEdge(limit)
	})

	return before - s.Len()
}

// RemovePickup deletes the pickup at index i, shifting later pickups down
func (s *EntityStore) RemovePickup(i int) {
	s.Pickups = slices.Delete(s.Pickups, i, i+1)
}
