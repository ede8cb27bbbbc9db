package system

import (
	"github.com/lixenwraith/turtle-dive/component"
	"github.com/lixenwraith/turtle-dive/vmath"
)

// CollisionResult reports the outcome of one resolver pass
type CollisionResult struct {
	// Hit is set when a hazard touched the player; nothing else is evaluated after it
	Hit bool
	// HazardIndex is the first hazard hit, -1 when Hit is false
	HazardIndex int
	// Collected is the number of pickups removed this pass
	Collected int
}

// CollisionResolver tests the player against hazards, then pickups
type CollisionResolver struct {
	// Forgiveness is subtracted from the combined radii of hazard tests only
	Forgiveness float64
}

// NewCollisionResolver creates a resolver with the given hazard forgiveness
func NewCollisionResolver(forgiveness float64) *CollisionResolver {
	return &CollisionResolver{Forgiveness: forgiveness}
}

// Resolve runs after the seabed check of a live tick
// Hazards are checked first in index order and the first hit short-circuits
// Pickups are walked in reverse so removal by index does not skip neighbors
func (r *CollisionResolver) Resolve(p *component.PlayerBody, store *EntityStore) CollisionResult {
	res := CollisionResult{HazardIndex: -1}

	for i := range store.Hazards {
		h := &store.Hazards[i]
		if vmath.CirclesOverlap(p.Pos, p.Radius, h.Pos, h.Radius, r.Forgiveness) {
			res.Hit = true
			res.HazardIndex = i
			return res
		}
	}

	for i := len(store.Pickups) - 1; i >= 0; i-- {
		k := &store.Pickups[i]
		if vmath.CirclesOverlap(p.Pos, p.Radius, k.Pos, k.Radius, 0) {
			store.RemovePickup(i)
			res.Collected++
		}
	}

	return res
}
