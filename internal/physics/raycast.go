package physics

import (
	"gravityshift/internal/components"
	"gravityshift/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast returns the closest non-trigger collider on a layer in mask hit by
// the ray within maxDistance.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask components.LayerMask) (RaycastHit, bool) {
	if rl.Vector3LengthSqr(direction) == 0 || maxDistance <= 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	w.eachCollider(mask, func(obj *engine.GameObject, box *components.BoxCollider) {
		bounds := NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())
		if hitInfo, ok := raycastBox(origin, direction, bounds, maxDistance); ok {
			if hitInfo.Distance <= closestHit.Distance {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
	})

	return closestHit, hit
}

// RaycastAny is Raycast without the hit details.
func (w *World) RaycastAny(origin, direction rl.Vector3, maxDistance float32, mask components.LayerMask) bool {
	_, ok := w.Raycast(origin, direction, maxDistance, mask)
	return ok
}

// CheckSphere reports whether a sphere overlaps any non-trigger collider on
// a layer in mask.
func (w *World) CheckSphere(center rl.Vector3, radius float32, mask components.LayerMask) bool {
	found := false
	w.eachCollider(mask, func(_ *engine.GameObject, box *components.BoxCollider) {
		if found {
			return
		}
		bounds := NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())
		found = bounds.IntersectsSphere(center, radius)
	})
	return found
}

// raycastBox is a slab test; a ray starting inside the box hits its far side.
func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	min, max := box.Min, box.Max

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return RaycastHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return RaycastHit{}, false
	}

	if tmin > tmax {
		return RaycastHit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return RaycastHit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal from the face that was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{Y: -1}
	} else if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{Y: 1}
	} else if abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{Z: -1}
	} else {
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
